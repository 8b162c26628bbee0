// Package repl runs the interactive read-execute-print loop of the assistant.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/assistant/internal/command"
)

const (
	welcome = "Welcome to the assistant bot!"
	goodbye = "Good bye!"
)

// Loop reads commands from an input stream and writes their results.
type Loop struct {
	handler *command.Handler
	prompt  string
	log     *slog.Logger
}

// New returns a Loop that executes lines with h and prints prompt before
// every read.
func New(h *command.Handler, prompt string, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.Default()
	}
	return &Loop{handler: h, prompt: prompt, log: log}
}

// Run greets the user and processes lines from in until a close or exit
// command, end of input, or cancellation of ctx. Cancellation interrupts a
// pending read and is returned as ctx.Err(). End of input is a normal exit.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, welcome)
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		fmt.Fprint(out, l.prompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			l.log.Debug("end of input")
			fmt.Fprintln(out)
			fmt.Fprintln(out, goodbye)
			return nil
		}

		res := l.handler.Execute(line)
		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
		if res.Exit {
			return nil
		}
	}
}

// readLines scans in on its own goroutine. lines is closed at end of input, after which readErr
// yields the scan error (nil at EOF). The goroutine stops sending once done
// is closed; a read already in progress finishes when in returns.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}
