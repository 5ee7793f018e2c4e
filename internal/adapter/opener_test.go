package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startCall struct {
	name string
	args []string
}

func recordingOpener(command string, args []string, goos string, err error) (*Opener, *[]startCall) {
	var calls []startCall
	o := NewOpener(command, args, NullLogger())
	o.goos = goos
	o.start = func(name string, args ...string) error {
		calls = append(calls, startCall{name: name, args: args})
		return err
	}
	return o, &calls
}

func TestOpener_ConfiguredBrowser(t *testing.T) {
	o, calls := recordingOpener("firefox", []string{"--new-tab"}, "linux", nil)
	require.NoError(t, o.Open("https://example.com/a"))
	assert.Equal(t, []startCall{{name: "firefox", args: []string{"--new-tab", "https://example.com/a"}}}, *calls)
}

func TestOpener_SystemDefaultPerPlatform(t *testing.T) {
	cases := map[string]startCall{
		"linux":   {name: "xdg-open", args: []string{"u"}},
		"darwin":  {name: "open", args: []string{"u"}},
		"windows": {name: "cmd", args: []string{"/c", "start", "", "u"}},
	}
	for goos, want := range cases {
		o, calls := recordingOpener("", nil, goos, nil)
		require.NoError(t, o.Open("u"), goos)
		assert.Equal(t, []startCall{want}, *calls, goos)
	}
}

func TestOpener_Errors(t *testing.T) {
	o, calls := recordingOpener("", nil, "linux", errors.New("not found"))
	assert.Error(t, o.Open(""))
	assert.Empty(t, *calls)

	err := o.Open("https://example.com")
	assert.ErrorContains(t, err, "not found")
}

func TestIMDbTitleURL(t *testing.T) {
	assert.Equal(t, "https://www.imdb.com/title/tt0111161/", IMDbTitleURL("tt0111161"))
}
