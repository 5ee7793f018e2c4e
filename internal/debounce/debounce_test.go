package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyLatestTicketFires(t *testing.T) {
	d := New(500 * time.Millisecond)

	var tickets []Ticket
	for _, id := range []string{"tt1", "tt2", "tt3", "tt4"} {
		tickets = append(tickets, d.Schedule(id))
	}

	fired := 0
	var firedKey string
	for _, tk := range tickets {
		if d.Fire(tk) {
			fired++
			firedKey = tk.Key
		}
	}

	assert.Equal(t, 1, fired)
	assert.Equal(t, "tt4", firedKey)
}

func TestDebouncer_TicketFiresOnce(t *testing.T) {
	d := New(time.Millisecond)
	tk := d.Schedule("tt1")

	assert.True(t, d.Fire(tk))
	assert.False(t, d.Fire(tk))
}

func TestDebouncer_CancelInvalidates(t *testing.T) {
	d := New(time.Second)
	tk := d.Schedule("tt1")
	assert.True(t, d.Pending(tk))

	d.Cancel()
	assert.False(t, d.Pending(tk))
	assert.False(t, d.Fire(tk))
}

func TestDebouncer_TicketCarriesDelay(t *testing.T) {
	d := New(250 * time.Millisecond)
	tk := d.Schedule("tt9")
	assert.Equal(t, 250*time.Millisecond, tk.Delay)
	assert.Equal(t, "tt9", tk.Key)
	assert.Equal(t, 250*time.Millisecond, d.Delay())
}

func TestDebouncer_ZeroTicketNeverFires(t *testing.T) {
	var d Debouncer
	assert.False(t, d.Fire(Ticket{}))
	assert.Equal(t, time.Duration(0), New(-time.Second).Delay())
}
