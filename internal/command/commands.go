package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/assistant/pkg/types"
)

// command is one entry of the dispatch table.
type command struct {
	name  string
	usage string
	short string
	run   func(h *Handler, args []string) (string, error)
}

// commands lists the dispatchable commands in help order. close and exit
// are handled by Execute.
var commands = []command{
	{"hello", "hello", "greet the assistant", runHello},
	{"add", "add <name> <phone>", "add a phone, creating the contact if needed", runAdd},
	{"change", "change <name> <old phone> <new phone>", "replace a phone number", runChange},
	{"remove-phone", "remove-phone <name> <phone>", "remove a phone number", runRemovePhone},
	{"add-birthday", "add-birthday <name> <DD.MM.YYYY>", "set a birthday, creating the contact if needed", runAddBirthday},
	{"phone", "phone <name>", "show the phones of a contact", runPhone},
	{"show-birthday", "show-birthday <name>", "show the birthday of a contact", runShowBirthday},
	{"show", "show <name>", "show everything known about a contact", runShow},
	{"delete", "delete <name>", "delete a contact", runDelete},
	{"all", "all", "list every phone of every contact", runAll},
	{"birthdays", "birthdays", "list birthdays in the coming week", runBirthdays},
	{"help", "help", "show this help", nil},
}

func init() {
	// help reads the table, so it is attached after initialization.
	for i := range commands {
		if commands[i].name == "help" {
			commands[i].run = runHelp
		}
	}
}

func runHello(*Handler, []string) (string, error) {
	return replyGreeting, nil
}

func runAdd(h *Handler, args []string) (string, error) {
	if err := exactArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if r := h.book.Find(name); r != nil {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		return replyAdded, nil
	}

	r, err := types.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	h.book.AddRecord(r)
	return replyAdded, nil
}

func runChange(h *Handler, args []string) (string, error) {
	if err := exactArgs(args, 3); err != nil {
		return "", err
	}
	name, old, next := args[0], args[1], args[2]

	r := h.book.Find(name)
	if r == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingRecord, name)
	}
	if err := r.EditPhone(old, next); err != nil {
		return "", err
	}
	return replyUpdated, nil
}

func runRemovePhone(h *Handler, args []string) (string, error) {
	if err := exactArgs(args, 2); err != nil {
		return "", err
	}
	r := h.book.Find(args[0])
	if r == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingRecord, args[0])
	}
	r.RemovePhone(args[1])
	return replyRemoved, nil
}

func runAddBirthday(h *Handler, args []string) (string, error) {
	if err := exactArgs(args, 2); err != nil {
		return "", err
	}
	name, date := args[0], args[1]

	if r := h.book.Find(name); r != nil {
		if err := r.AddBirthday(date); err != nil {
			return "", err
		}
		return replyAdded, nil
	}

	r, err := types.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(date); err != nil {
		return "", err
	}
	h.book.AddRecord(r)
	return replyAdded, nil
}

func runPhone(h *Handler, args []string) (string, error) {
	name, err := firstArg(args)
	if err != nil {
		return "", err
	}
	r := h.book.Find(name)
	if r == nil {
		return replyNoRecord, nil
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoPhones, name)
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, ","), nil
}

func runShowBirthday(h *Handler, args []string) (string, error) {
	name, err := firstArg(args)
	if err != nil {
		return "", err
	}
	r := h.book.Find(name)
	if r == nil {
		return replyNoRecord, nil
	}
	b, ok := r.Birthday()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoBirthday, name)
	}
	return b.String(), nil
}

func runShow(h *Handler, args []string) (string, error) {
	name, err := firstArg(args)
	if err != nil {
		return "", err
	}
	r := h.book.Find(name)
	if r == nil {
		return replyNoRecord, nil
	}
	if h.jsonOutput {
		return marshal(r)
	}
	return r.String(), nil
}

func runDelete(h *Handler, args []string) (string, error) {
	name, err := firstArg(args)
	if err != nil {
		return "", err
	}
	if h.book.Find(name) == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingRecord, name)
	}
	h.book.Delete(name)
	return replyDeleted, nil
}

func runAll(h *Handler, _ []string) (string, error) {
	records := h.book.Records()
	if h.jsonOutput {
		if records == nil {
			records = []*types.Record{}
		}
		return marshal(records)
	}

	var lines []string
	for _, r := range records {
		for _, p := range r.Phones() {
			lines = append(lines, fmt.Sprintf("%s: %s", r.Name(), p))
		}
	}
	if len(lines) == 0 {
		return replyNoContacts, nil
	}
	return strings.Join(lines, "\n"), nil
}

// upcomingJSON is the JSON form of one birthdays entry.
type upcomingJSON struct {
	Name         string `json:"name"`
	Birthday     string `json:"birthday"`
	Date         string `json:"date"`
	Congratulate string `json:"congratulate"`
}

func runBirthdays(h *Handler, _ []string) (string, error) {
	upcoming, err := h.book.UpcomingWithin(h.now(), h.upcomingDays)
	if err != nil {
		// Matches are still valid; only the reported records were skipped.
		h.log.Warn("birthdays skipped", "err", err)
	}

	if h.jsonOutput {
		out := make([]upcomingJSON, len(upcoming))
		for i, u := range upcoming {
			b, _ := u.Record.Birthday()
			out[i] = upcomingJSON{
				Name:         u.Record.Name().String(),
				Birthday:     b.String(),
				Date:         u.Date.Format(types.BirthdayLayout),
				Congratulate: u.Congratulate.Format(types.BirthdayLayout),
			}
		}
		return marshal(out)
	}

	if len(upcoming) == 0 {
		return replyNoUpcoming, nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		b, _ := u.Record.Birthday()
		lines[i] = fmt.Sprintf("%s: %s", u.Record.Name(), b)
		if !u.Congratulate.Equal(u.Date) {
			lines[i] += fmt.Sprintf(" (congratulate on %s)", u.Congratulate.Format(types.BirthdayLayout))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func runHelp(*Handler, []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Commands:")
	for _, c := range commands {
		fmt.Fprintf(&sb, "\n  %-40s %s", c.usage, c.short)
	}
	fmt.Fprintf(&sb, "\n  %-40s %s", "close | exit", "leave the assistant")
	return sb.String(), nil
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal output: %w", err)
	}
	return string(data), nil
}
