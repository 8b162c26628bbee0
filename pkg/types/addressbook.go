package types

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// DefaultUpcomingDays is the look-ahead window of UpcomingBirthdays.
const DefaultUpcomingDays = 7

// AddressBook is a name-keyed collection of Records that remembers
// insertion order. It is not safe for concurrent use.
type AddressBook struct {
	index   map[string]int
	records []*Record
}

// NewAddressBook returns an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{index: make(map[string]int)}
}

// AddRecord stores r under its name. A record already stored under the same
// name is replaced and the new one takes over its position.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.name.value
	if i, ok := b.index[key]; ok {
		b.records[i] = r
		return
	}
	b.index[key] = len(b.records)
	b.records = append(b.records, r)
}

// Find returns the record stored under name, or nil.
func (b *AddressBook) Find(name string) *Record {
	i, ok := b.index[name]
	if !ok {
		return nil
	}
	return b.records[i]
}

// Delete removes the record stored under name. No-op when absent.
func (b *AddressBook) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].name.value] = j
	}
}

// Records returns the stored records in insertion order.
func (b *AddressBook) Records() []*Record { return slices.Clone(b.records) }

// Len returns the number of stored records.
func (b *AddressBook) Len() int { return len(b.records) }

// UpcomingBirthday is one entry of the upcoming-birthdays query.
type UpcomingBirthday struct {
	Record *Record
	// Date is the birthday's occurrence in the queried year.
	Date time.Time
	// Congratulate is Date moved to the following Monday when Date falls on
	// a weekend. It is advisory and plays no part in selecting records.
	Congratulate time.Time
}

// UpcomingBirthdays returns the records whose birthday falls between today
// and DefaultUpcomingDays days after it, inclusive.
func (b *AddressBook) UpcomingBirthdays(today time.Time) ([]UpcomingBirthday, error) {
	return b.UpcomingWithin(today, DefaultUpcomingDays)
}

// UpcomingWithin returns, in insertion order, the records whose birthday
// occurs between today and today+days inclusive in today's year. Only the
// calendar date of today is used.
//
// Records born on 29 February are skipped in non-leap years. The remaining
// matches are still returned, together with an error wrapping
// ErrNoOccurrence for each skipped record.
func (b *AddressBook) UpcomingWithin(today time.Time, days int) ([]UpcomingBirthday, error) {
	today = truncateDate(today)

	var (
		upcoming []UpcomingBirthday
		errs     []error
	)
	for _, r := range b.records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		date, err := occurrenceIn(bd, today.Year())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.name, err))
			continue
		}

		until := daysBetween(today, date)
		if until < 0 || until > days {
			continue
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Record:       r,
			Date:         date,
			Congratulate: nextWeekday(date),
		})
	}
	return upcoming, errors.Join(errs...)
}

// occurrenceIn returns the date of bd in year.
func occurrenceIn(bd Birthday, year int) (time.Time, error) {
	_, m, d := bd.date.Date()
	if m == time.February && d == 29 && !isLeapYear(year) {
		return time.Time{}, fmt.Errorf("%w %d", ErrNoOccurrence, year)
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC), nil
}

// daysBetween returns the number of whole days from a to b. Both must be
// midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// nextWeekday moves a Saturday or Sunday to the following Monday.
func nextWeekday(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
