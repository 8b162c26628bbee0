package command

import (
	"errors"

	"github.com/mesh-intelligence/assistant/pkg/types"
)

// Command errors. Value-type validation failures come from package types.
var (
	ErrArgumentCount   = errors.New("wrong number of arguments")
	ErrMissingArgument = errors.New("missing argument")
	ErrMissingRecord   = errors.New("record not found")
	ErrNoPhones        = errors.New("record has no phones")
	ErrNoBirthday      = errors.New("record has no birthday")
	ErrUnknownCommand  = errors.New("unknown command")
)

// fallbackMessage is shown for errors missing from messages.
const fallbackMessage = "Something went wrong."

// messages translates errors into the text shown to the user. The first
// entry matching with errors.Is wins, so specific errors precede the ones
// they wrap.
var messages = []struct {
	err error
	msg string
}{
	{ErrArgumentCount, "Enter the argument for the command"},
	{ErrMissingArgument, "Invalid input. Please provide correct arguments."},
	{ErrMissingRecord, "Contact not found."},
	{ErrNoPhones, "No phone for this name."},
	{ErrNoBirthday, "No birthday for this name."},
	{ErrUnknownCommand, "Invalid command."},
	{types.ErrEmptyName, "Name cannot be empty."},
	{types.ErrInvalidPhone, "Phone number must be 10 digits."},
	{types.ErrInvalidBirthday, "Invalid date format. Use DD.MM.YYYY"},
	{types.ErrValidation, "Invalid value."},
}

// Message returns the user-facing text for err and whether err was one of
// the known errors.
func Message(err error) (string, bool) {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return fallbackMessage, false
}
