package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-05-15",
			want:  domain.Date{Year: 2024, Month: time.May, Day: 15},
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  domain.Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "leap day in non-leap year",
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			name:    "wrong format",
			input:   "15/05/2024",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_String(t *testing.T) {
	d := domain.NewDate(2024, time.March, 7)
	assert.Equal(t, "2024-03-07", d.String(), "single-digit month and day must be zero padded")
}

func TestDate_MonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", domain.NewDate(2024, time.March, 7).MonthKey())
	assert.Equal(t, "2024-12", domain.NewDate(2024, time.December, 31).MonthKey())
}

func TestDate_AddDays(t *testing.T) {
	d := domain.NewDate(2024, time.March, 1)
	assert.Equal(t, domain.NewDate(2024, time.February, 29), d.AddDays(-1), "crossing a month boundary backwards lands on the leap day")
	assert.Equal(t, domain.NewDate(2024, time.March, 8), d.AddDays(7))
}

func TestDate_Between(t *testing.T) {
	from := domain.NewDate(2024, time.May, 1)
	to := domain.NewDate(2024, time.May, 31)

	assert.True(t, domain.NewDate(2024, time.May, 1).Between(from, to), "range start is inclusive")
	assert.True(t, domain.NewDate(2024, time.May, 31).Between(from, to), "range end is inclusive")
	assert.True(t, domain.NewDate(2024, time.May, 15).Between(from, to))
	assert.False(t, domain.NewDate(2024, time.April, 30).Between(from, to))
	assert.False(t, domain.NewDate(2024, time.June, 1).Between(from, to))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := domain.NewDate(2024, time.January, 5)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(raw))

	var back domain.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "january", year: 2024, month: time.January, want: 31},
		{name: "april", year: 2024, month: time.April, want: 30},
		{name: "february leap year", year: 2024, month: time.February, want: 29},
		{name: "february non-leap year", year: 2023, month: time.February, want: 28},
		{name: "february century non-leap", year: 1900, month: time.February, want: 28},
		{name: "february 400-year leap", year: 2000, month: time.February, want: 29},
		{name: "december", year: 2024, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DaysInMonth(tt.year, tt.month))
		})
	}
}
