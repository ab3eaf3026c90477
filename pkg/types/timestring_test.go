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
		{name: "valid HH:MM", input: "17:00", want: "17:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "postgres TIME format", input: "08:30:00", want: "08:30"},
		{name: "empty string", input: "", wantErr: true},
		{name: "missing minutes", input: "17", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Seconds(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Seconds())
	assert.Equal(t, 61200, TimeString("17:00").Seconds())
	assert.Equal(t, 30600, TimeString("08:30").Seconds())
	assert.Equal(t, 30615, TimeString("08:30:15").Seconds())
	assert.Equal(t, 86340, TimeString("23:59").Seconds())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("08:00"))
	assert.False(t, TimeString("17:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("17:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:30"), got)

	_, err = TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}
