package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "09:00"},
		{name: "valid evening", value: "21:30"},
		{name: "midnight", value: "00:00"},
		{name: "single digit hour", value: "9:00", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minutes out of range", value: "10:60", wantErr: true},
		{name: "garbage", value: "ab:cd", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeStringFromString(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("21:30").IsBefore("08:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("10:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), next)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	day := time.Date(2024, 6, 10, 17, 45, 0, 0, loc)

	at, err := TimeString("09:30").On(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 30, 0, 0, loc), at)
}
