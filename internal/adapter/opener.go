package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// IMDbTitleURL returns the IMDb page for a title identifier
func IMDbTitleURL(id string) string {
	return fmt.Sprintf("https://www.imdb.com/title/%s/", id)
}

// Opener opens URLs (IMDb pages, posters) in a browser
type Opener struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	goos    string
	logger  *slog.Logger

	start func(name string, args ...string) error
}

// NewOpener creates a new Opener. An empty command uses the system default handler.
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: strings.TrimSpace(command),
		args:    args,
		goos:    runtime.GOOS,
		logger:  logger,
		start:   startCommand,
	}
}

// startCommand launches name asynchronously; it does not wait for the browser to exit
func startCommand(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// Open opens url in the configured browser or system default
func (o *Opener) Open(url string) error {
	if strings.TrimSpace(url) == "" {
		return errors.New("nothing to open")
	}

	// Tier 1: user configured a specific browser
	if o.command != "" {
		args := append(append([]string{}, o.args...), url)
		o.logger.Info("opening with configured browser", "command", o.command, "args", args)
		if err := o.start(o.command, args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", o.command, err)
		}
		return nil
	}

	// Tier 2: system default (open/xdg-open/start)
	name, args := o.defaultCommand(url)
	o.logger.Info("opening with system default", "os", o.goos, "url", url)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// defaultCommand returns the platform's URL handler invocation
func (o *Opener) defaultCommand(url string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}
