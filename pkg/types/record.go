package types

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Record is one contact: a name, an ordered list of phones and an optional
// birthday. The name is fixed at construction.
type Record struct {
	ID       string // UUID v7, generated on creation.
	name     Name
	phones   []Phone
	birthday *Birthday // nil until set
}

// NewRecord returns an empty Record for name.
// Returns ErrEmptyName if name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{ID: generateID(), name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates number and appends it. Duplicates are kept.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to number. No-op when absent.
func (r *Record) RemovePhone(number string) {
	if i := r.indexPhone(number); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// EditPhone replaces the first phone equal to old with next, keeping its
// position. A missing old number is not an error and leaves the record
// unchanged; an invalid next number is rejected with ErrInvalidPhone.
func (r *Record) EditPhone(old, next string) error {
	i := r.indexPhone(old)
	if i < 0 {
		return nil
	}
	p, err := NewPhone(next)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to number, or nil.
func (r *Record) FindPhone(number string) *Phone {
	i := r.indexPhone(number)
	if i < 0 {
		return nil
	}
	return &r.phones[i]
}

func (r *Record) indexPhone(number string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == number })
}

// AddBirthday parses text as DD.MM.YYYY and sets it, replacing any
// previous birthday. The record is unchanged on error.
func (r *Record) AddBirthday(text string) error {
	b, err := NewBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders the record on one line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	birthday := "N/A"
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}

// recordJSON is the wire form of a Record.
type recordJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		ID:     r.ID,
		Name:   r.name.value,
		Phones: make([]string, len(r.phones)),
	}
	for i, p := range r.phones {
		out.Phones[i] = p.value
	}
	if b, ok := r.Birthday(); ok {
		out.Birthday = b.String()
	}
	return json.Marshal(out)
}

// generateID returns a new UUID v7, falling back to v4.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
