// Package command turns line commands into address book operations and
// their results into display text.
package command

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mesh-intelligence/assistant/pkg/types"
)

// Reply texts shared by several commands.
const (
	replyGreeting   = "How can I help you?"
	replyGoodbye    = "Good bye!"
	replyNoRecord   = "No record found"
	replyAdded      = "Contact added."
	replyUpdated    = "Contact updated."
	replyRemoved    = "Phone removed."
	replyDeleted    = "Contact deleted."
	replyNoContacts = "No contacts saved."
	replyNoUpcoming = "No upcoming birthdays."
)

// Clock returns the current date for the upcoming-birthdays query.
type Clock func() time.Time

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Result is the outcome of one executed line.
type Result struct {
	Output string // text to print; empty for blank input
	Exit   bool   // the session should end
}

// Handler executes commands against one AddressBook.
type Handler struct {
	book         *types.AddressBook
	now          Clock
	upcomingDays int
	jsonOutput   bool
	log          *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock sets the source of today's date. Defaults to time.Now.
func WithClock(c Clock) Option {
	return func(h *Handler) { h.now = c }
}

// WithUpcomingDays sets the birthdays look-ahead window.
func WithUpcomingDays(days int) Option {
	return func(h *Handler) { h.upcomingDays = days }
}

// WithJSON makes listing commands print JSON.
func WithJSON(enabled bool) Option {
	return func(h *Handler) { h.jsonOutput = enabled }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// New returns a Handler operating on book.
func New(book *types.AddressBook, opts ...Option) *Handler {
	h := &Handler{
		book:         book,
		now:          time.Now,
		upcomingDays: types.DefaultUpcomingDays,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Book returns the address book the handler operates on.
func (h *Handler) Book() *types.AddressBook { return h.book }

// Execute parses and runs one input line. Errors never escape: they are
// translated into their display text.
func (h *Handler) Execute(line string) Result {
	name, args := ParseInput(line)
	if name == "" {
		return Result{}
	}
	if name == "close" || name == "exit" {
		return Result{Output: replyGoodbye, Exit: true}
	}

	h.log.Debug("command", "name", name, "args", len(args))

	out, err := h.Run(name, args)
	if err != nil {
		msg, known := Message(err)
		if known {
			h.log.Debug("command failed", "name", name, "err", err)
		} else {
			h.log.Error("command failed", "name", name, "err", err)
		}
		return Result{Output: msg}
	}
	return Result{Output: out}
}

// Run executes the named command with args and returns its output.
// Unknown names return ErrUnknownCommand.
func (h *Handler) Run(name string, args []string) (string, error) {
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		return "", ErrUnknownCommand
	}
	return commands[i].run(h, args)
}
