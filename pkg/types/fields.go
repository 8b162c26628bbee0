package types

import "time"

// PhoneLength is the exact number of digits in a Phone.
const PhoneLength = 10

// BirthdayLayout is the textual form of a Birthday (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Name identifies a contact. The zero value is not a valid Name; use NewName.
type Name struct {
	value string
}

// NewName returns a Name for value. Returns ErrEmptyName if value is empty.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

// String returns the name as entered.
func (n Name) String() string { return n.value }

// Phone is a fixed-length numeric phone number.
type Phone struct {
	value string
}

// NewPhone returns a Phone for value.
// Returns ErrInvalidPhone unless value is exactly PhoneLength ASCII digits.
func NewPhone(value string) (Phone, error) {
	if !isPhoneNumber(value) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: value}, nil
}

// String returns the digits of the phone number.
func (p Phone) String() string { return p.value }

func isPhoneNumber(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date. It is stored as a date value at midnight
// UTC, not as the text it was parsed from.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value in the DD.MM.YYYY form. Returns
// ErrInvalidBirthday if value does not match the layout exactly or does not
// name a real calendar date (31.04.2024, 29.02.2023, year 0000).
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil || t.Year() < 1 {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: t}, nil
}

// BirthdayFromDate returns the Birthday falling on the calendar date of t.
func BirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: truncateDate(t)}
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// truncateDate drops the clock and location of t, keeping its calendar date.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
