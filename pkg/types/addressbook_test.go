package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func names(records []*Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name().String()
	}
	return out
}

func upcomingNames(up []UpcomingBirthday) []string {
	out := make([]string, len(up))
	for i, u := range up {
		out[i] = u.Record.Name().String()
	}
	return out
}

func TestAddressBookAddFind(t *testing.T) {
	book := NewAddressBook()
	john := newTestRecord(t, "John", "1234567890")

	book.AddRecord(john)

	assert.Same(t, john, book.Find("John"))
	assert.Nil(t, book.Find("john"), "keys are case sensitive")
	assert.Nil(t, book.Find("Unknown"))
	assert.Equal(t, 1, book.Len())
}

func TestAddressBookAddOverwrites(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "Anna"))
	book.AddRecord(newTestRecord(t, "John", "1111111111"))
	book.AddRecord(newTestRecord(t, "Zoe"))

	replacement := newTestRecord(t, "John", "2222222222")
	book.AddRecord(replacement)

	assert.Equal(t, 3, book.Len())
	assert.Same(t, replacement, book.Find("John"))
	assert.Equal(t, []string{"2222222222"}, phoneValues(book.Find("John")), "no merge with the old record")
	assert.Equal(t, []string{"Anna", "John", "Zoe"}, names(book.Records()), "overwrite keeps position")
}

func TestAddressBookDelete(t *testing.T) {
	book := NewAddressBook()
	for _, n := range []string{"Anna", "John", "Zoe", "Mark"} {
		book.AddRecord(newTestRecord(t, n))
	}

	book.Delete("John")
	assert.Nil(t, book.Find("John"))
	assert.Equal(t, []string{"Anna", "Zoe", "Mark"}, names(book.Records()))

	// Index must still resolve records that moved.
	assert.Equal(t, "Zoe", book.Find("Zoe").Name().String())
	assert.Equal(t, "Mark", book.Find("Mark").Name().String())

	book.Delete("Unknown")
	assert.Equal(t, 3, book.Len())

	book.AddRecord(newTestRecord(t, "John"))
	assert.Equal(t, []string{"Anna", "Zoe", "Mark", "John"}, names(book.Records()))
}

func TestAddressBookRecordsReturnsCopy(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(newTestRecord(t, "Anna"))

	records := book.Records()
	records[0] = nil
	assert.NotNil(t, book.Records()[0])
}

func TestUpcomingBirthdaysWindow(t *testing.T) {
	today := date(2024, time.January, 22)
	book := NewAddressBook()
	for offset := -1; offset <= 8; offset++ {
		d := today.AddDate(0, 0, offset)
		r := newTestRecord(t, fmt.Sprintf("offset%+d", offset))
		require.NoError(t, r.AddBirthday(fmt.Sprintf("%02d.%02d.1990", d.Day(), int(d.Month()))))
		book.AddRecord(r)
	}
	book.AddRecord(newTestRecord(t, "no-birthday", "1234567890"))

	up, err := book.UpcomingBirthdays(today)
	require.NoError(t, err)

	want := []string{"offset+0", "offset+1", "offset+2", "offset+3", "offset+4", "offset+5", "offset+6", "offset+7"}
	assert.Equal(t, want, upcomingNames(up))
}

func TestUpcomingBirthdaysInsertionOrder(t *testing.T) {
	today := date(2024, time.January, 22)
	book := NewAddressBook()

	late := newTestRecord(t, "Late")
	require.NoError(t, late.AddBirthday("28.01.1980"))
	early := newTestRecord(t, "Early")
	require.NoError(t, early.AddBirthday("22.01.2000"))
	book.AddRecord(late)
	book.AddRecord(early)

	up, err := book.UpcomingBirthdays(today)
	require.NoError(t, err)
	assert.Equal(t, []string{"Late", "Early"}, upcomingNames(up))
}

func TestUpcomingBirthdaysCongratulationDate(t *testing.T) {
	today := date(2024, time.January, 22)
	tests := []struct {
		birthday string
		want     time.Time
	}{
		{birthday: "24.01.1990", want: date(2024, time.January, 24)},
		{birthday: "27.01.1990", want: date(2024, time.January, 29)},
		{birthday: "28.01.1990", want: date(2024, time.January, 29)},
		{birthday: "29.01.1990", want: date(2024, time.January, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.birthday, func(t *testing.T) {
			book := NewAddressBook()
			r := newTestRecord(t, "Anna")
			require.NoError(t, r.AddBirthday(tt.birthday))
			book.AddRecord(r)

			up, err := book.UpcomingBirthdays(today)
			require.NoError(t, err)
			require.Len(t, up, 1)
			assert.Equal(t, tt.want, up[0].Congratulate)
			assert.Equal(t, "2024", up[0].Date.Format("2006"))
		})
	}
}

func TestUpcomingBirthdaysWeekendShiftDoesNotFilter(t *testing.T) {
	// 29.01.2024 is a Monday 7 days out. A Sunday birthday on 28.01 shifts to
	// that Monday and is included; nothing shifts past the window edge out.
	today := date(2024, time.January, 21)
	book := NewAddressBook()
	r := newTestRecord(t, "Sunday")
	require.NoError(t, r.AddBirthday("28.01.1990"))
	book.AddRecord(r)

	up, err := book.UpcomingBirthdays(today)
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.Equal(t, date(2024, time.January, 29), up[0].Congratulate)
}

func TestUpcomingBirthdaysIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2030, time.January, 20, 23, 59, 0, 0, loc)

	book := NewAddressBook()
	r := newTestRecord(t, "Anna")
	require.NoError(t, r.AddBirthday("27.01.2030"))
	book.AddRecord(r)

	up, err := book.UpcomingBirthdays(today)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna"}, upcomingNames(up))
}

func TestUpcomingBirthdaysYearBoundary(t *testing.T) {
	book := NewAddressBook()
	r := newTestRecord(t, "NewYear")
	require.NoError(t, r.AddBirthday("02.01.1990"))
	book.AddRecord(r)

	up, err := book.UpcomingBirthdays(date(2024, time.December, 28))
	require.NoError(t, err)
	assert.Empty(t, up, "only this year's occurrence is considered")
}

func TestUpcomingBirthdaysEarliestDate(t *testing.T) {
	book := NewAddressBook()
	r := newTestRecord(t, "Ancient")
	require.NoError(t, r.AddBirthday("01.01.0001"))
	book.AddRecord(r)

	up, err := book.UpcomingBirthdays(date(2029, time.December, 31).AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.True(t, date(2030, time.January, 1).Equal(up[0].Date))
}

func TestUpcomingBirthdaysLeapDay(t *testing.T) {
	book := NewAddressBook()
	leap := newTestRecord(t, "Leap")
	require.NoError(t, leap.AddBirthday("29.02.2000"))
	march := newTestRecord(t, "March")
	require.NoError(t, march.AddBirthday("01.03.1990"))
	book.AddRecord(leap)
	book.AddRecord(march)

	t.Run("common year skips and reports", func(t *testing.T) {
		up, err := book.UpcomingBirthdays(date(2023, time.February, 27))
		assert.ErrorIs(t, err, ErrNoOccurrence)
		assert.Contains(t, err.Error(), "Leap")
		assert.Equal(t, []string{"March"}, upcomingNames(up))
	})

	t.Run("leap year includes", func(t *testing.T) {
		up, err := book.UpcomingBirthdays(date(2024, time.February, 27))
		require.NoError(t, err)
		assert.Equal(t, []string{"Leap", "March"}, upcomingNames(up))
	})
}

func TestUpcomingWithin(t *testing.T) {
	today := date(2030, time.January, 20)
	book := NewAddressBook()
	r := newTestRecord(t, "Anna")
	require.NoError(t, r.AddBirthday("23.01.2030"))
	book.AddRecord(r)

	up, err := book.UpcomingWithin(today, 3)
	require.NoError(t, err)
	assert.Len(t, up, 1)

	up, err = book.UpcomingWithin(today, 2)
	require.NoError(t, err)
	assert.Empty(t, up)

	up, err = book.UpcomingBirthdays(date(2030, time.March, 1))
	require.NoError(t, err)
	assert.Empty(t, up)
}
