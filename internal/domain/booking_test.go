package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 9*60 + 30},
		{in: "23:59", want: 23*60 + 59},
		{in: "9:30", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "0930", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			assert.ErrorIs(t, err, ErrValidation)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())

	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d)

	for _, in := range []string{"2024-13-01", "01-01-2024", "2024/01/01", "yesterday", ""} {
		_, err := ParseDate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		Date:  "2024-01-01",
		Start: 9 * 60,
		End:   10 * 60,
	}

	tests := []struct {
		name       string
		date       string
		start, end TimeOfDay
		want       bool
	}{
		{name: "identical", date: "2024-01-01", start: 9 * 60, end: 10 * 60, want: true},
		{name: "contained", date: "2024-01-01", start: 9*60 + 15, end: 9*60 + 45, want: true},
		{name: "covering", date: "2024-01-01", start: 8 * 60, end: 11 * 60, want: true},
		{name: "tail overlap", date: "2024-01-01", start: 9*60 + 30, end: 10*60 + 30, want: true},
		{name: "head overlap", date: "2024-01-01", start: 8*60 + 30, end: 9*60 + 30, want: true},
		{name: "abuts after", date: "2024-01-01", start: 10 * 60, end: 11 * 60, want: false},
		{name: "abuts before", date: "2024-01-01", start: 8 * 60, end: 9 * 60, want: false},
		{name: "disjoint", date: "2024-01-01", start: 14 * 60, end: 15 * 60, want: false},
		{name: "other date", date: "2024-01-02", start: 9 * 60, end: 10 * 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.date, tt.start, tt.end))
		})
	}
}
