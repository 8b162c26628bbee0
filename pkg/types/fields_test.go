package types

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	n, err := NewName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())

	_, err = NewName("")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "ten digits", value: "1234567890"},
		{name: "all zeros", value: "0000000000"},
		{name: "nine digits", value: "123456789", wantErr: true},
		{name: "eleven digits", value: "12345678901", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "letter inside", value: "12345a7890", wantErr: true},
		{name: "leading plus", value: "+123456789", wantErr: true},
		{name: "dashes", value: "123-456-78", wantErr: true},
		{name: "space padded", value: " 123456789", wantErr: true},
		{name: "non-ascii digits", value: "١٢٣٤٥٦٧٨٩٠", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, p.String())
		})
	}
}

func TestNewPhoneAcceptsEveryDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		value := strings.Repeat(fmt.Sprint(d), PhoneLength)
		_, err := NewPhone(value)
		assert.NoError(t, err, value)
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "ordinary date", value: "23.01.1985", want: time.Date(1985, time.January, 23, 0, 0, 0, 0, time.UTC)},
		{name: "leap day in leap year", value: "29.02.2024", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "end of year", value: "31.12.1999", want: time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{name: "first day of year one", value: "01.01.0001", want: time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year zero", value: "01.01.0000", wantErr: true},
		{name: "leap day in common year", value: "29.02.2023", wantErr: true},
		{name: "february 30", value: "30.02.2024", wantErr: true},
		{name: "april 31", value: "31.04.2024", wantErr: true},
		{name: "month 13", value: "01.13.2024", wantErr: true},
		{name: "single digit day", value: "1.01.2024", wantErr: true},
		{name: "single digit month", value: "01.1.2024", wantErr: true},
		{name: "two digit year", value: "01.01.24", wantErr: true},
		{name: "iso format", value: "2024-01-01", wantErr: true},
		{name: "slashes", value: "01/01/2024", wantErr: true},
		{name: "trailing text", value: "01.01.2024x", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBirthday)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(b.Date()))
			assert.Equal(t, tt.value, b.String(), "rendering must reproduce the input")
		})
	}
}

func TestBirthdayFromDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	b := BirthdayFromDate(time.Date(2030, time.January, 23, 22, 30, 0, 0, loc))
	assert.Equal(t, "23.01.2030", b.String())
	assert.True(t, time.Date(2030, time.January, 23, 0, 0, 0, 0, time.UTC).Equal(b.Date()))
}
