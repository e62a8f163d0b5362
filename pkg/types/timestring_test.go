package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "regular", input: "09:30", want: "09:30"},
		{name: "trimmed", input: " 17:00 ", want: "17:00"},
		{name: "midnight start", input: "00:00", want: "00:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "no leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "after end of day", input: "24:01", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "signed hour", input: "+9:00", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "signed minute", input: "09:+5", wantErr: true},
		{name: "inner space", input: "09: 5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.Equal(t, 540, TimeString("09:00").Minutes())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2026, 10, 19, 15, 20, 0, 0, loc)

	got := TimeString("14:30").OnDate(date)
	assert.Equal(t, time.Date(2026, 10, 19, 14, 30, 0, 0, loc), got)
}

func TestTimeString_OnDate_DSTStart(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 2026-03-08: в 02:00 часы переводятся на 03:00
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)

	got := TimeString("10:00").OnDate(date)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC), got.UTC())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan("08:15"))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	assert.Error(t, ts.Scan(42))
}
