package log

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// WithSpinner executes fn while showing a spinner with the given message.
// Resolution can block on network fallback, so the CLI indicates progress.
func WithSpinner(message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], spinnerInterval)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		return fmt.Errorf("failed to color spinner: %w", err)
	}

	s.Start()
	s.FinalMSG = message + " done\n"
	defer s.Stop()

	return fn()
}
