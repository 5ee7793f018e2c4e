package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

// probeQuery is searched to check a new API key
const probeQuery = "movie"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// runSetupFlow asks for an OMDb API key, checks it and saves it to the config file
func runSetupFlow(sessionSvc *service.SessionService) error {
	fmt.Println()
	fmt.Println(styles.TitleStyle.Render("Welcome to marquee!"))
	fmt.Println()
	fmt.Println("marquee needs an OMDb API key. Get a free one at https://www.omdbapi.com/apikey.aspx")
	fmt.Println()

	for {
		key, err := promptAPIKey()
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		cfg.OMDb.APIKey = key
		if err := checkKeyWithSpinner(); err != nil {
			fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
			fmt.Println()
			continue
		}
		break
	}

	if err := sessionSvc.SetAPIKey(cfg, cfg.OMDb.APIKey); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(styles.SuccessStyle.Render("✓ Configuration saved!"))
	fmt.Println()
	return nil
}

// promptAPIKey reads the key with hidden input when stdin is a terminal
func promptAPIKey() (string, error) {
	fmt.Print("API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		keyBytes, err := term.ReadPassword(fd)
		fmt.Println() // Add newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// checkKeyWithSpinner runs a probe search with a visual spinner.
// A no-match answer still proves the key works.
func checkKeyWithSpinner() error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OMDb.Timeout)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		_, err := newMovieService(nil).Search(ctx, probeQuery)
		resultCh <- err
	}()

	frame := 0
	fmt.Printf("\r%s Checking API key...", spinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			switch {
			case err == nil, errors.Is(err, domain.ErrNoResults):
				fmt.Println(styles.SuccessStyle.Render("✓ API key accepted"))
				return nil
			case errors.Is(err, domain.ErrAuthFailed):
				return errors.New("invalid OMDb API key")
			default:
				return fmt.Errorf("could not reach OMDb: %w", err)
			}

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking API key...", spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}
