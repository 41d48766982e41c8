package plist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateFidelity(t *testing.T) {
	checkLedger(t)
	tests := []struct {
		name string
		us   int64
	}{
		{"reference epoch", 978307200_000_000},
		{"after epoch", 1_700_000_000_250_000},
		{"after epoch whole seconds", 1_234_567_890_000_000},
		{"before epoch", 946_684_800_500_000},
		{"unix epoch", 0},
		{"before unix epoch", -86_400_250_000},
		{"one and a half seconds before", 978307200_000_000 - 1_500_000},
		{"reference timestamp", 1_546_635_600_123_456},
		{"odd microsecond", 1_700_000_000_123_457},
		{"one microsecond", 1_600_000_000_000_001},
		{"before epoch odd microsecond", 946_684_800_123_457},
		{"before unix epoch odd microsecond", -86_400_123_457},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDateUnixMicro(tt.us)
			defer d.Free()
			require.Equal(t, tt.us, d.UnixMicro())
			require.Equal(t, time.UnixMicro(tt.us).UTC(), d.Time())

			bin, err := d.ToBinary()
			require.NoError(t, err)
			back, err := FromBinary(bin)
			require.NoError(t, err)
			defer back.Free()
			got, ok := back.AsDate()
			require.True(t, ok)
			require.Equal(t, tt.us, got.UnixMicro())
		})
	}
}

func TestDateRaw(t *testing.T) {
	checkLedger(t)
	d := NewDate(time.Date(2001, 1, 1, 0, 0, 10, 500_000_000, time.UTC))
	defer d.Free()
	sec, usec := d.Raw()
	require.Equal(t, int32(10), sec)
	require.Equal(t, int32(500_000), usec)

	d.Set(time.Date(2000, 12, 31, 23, 59, 58, 500_000_000, time.UTC))
	sec, usec = d.Raw()
	require.Equal(t, int32(-1), sec)
	require.Equal(t, int32(-500_000), usec)
}

func TestDateOutOfRangePanics(t *testing.T) {
	checkLedger(t)
	require.Panics(t, func() { NewDate(time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)) })
	require.Panics(t, func() { NewDate(time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)) })
}

func TestSplitJoinUnixMicro(t *testing.T) {
	for _, us := range []int64{0, 1, -1, 978307200_000_001, 978307199_999_999, -5_000_000_000_000} {
		sec, usec := splitUnixMicro(us)
		if sec != 0 && usec != 0 {
			require.Equal(t, sec < 0, usec < 0, "parts share a sign for %d", us)
		}
		require.Equal(t, us, joinUnixMicro(sec, usec))
	}
}

func TestDateSetInPlace(t *testing.T) {
	checkLedger(t)
	d := NewDateUnixMicro(0)
	defer d.Free()

	// Whether the engine can hold a value in place depends on where the
	// nearest doubles fall.
	d.SetUnixMicro(1_700_000_000_123_402)
	require.Equal(t, int64(1_700_000_000_123_402), d.UnixMicro())
	d.SetUnixMicro(1_700_000_000_123_400)
	require.Equal(t, int64(1_700_000_000_123_399), d.UnixMicro())

	for us := int64(1_700_000_000_123_400); us < 1_700_000_000_123_600; us++ {
		d.SetUnixMicro(us)
		got := d.UnixMicro()
		require.LessOrEqual(t, got, us)
		require.GreaterOrEqual(t, got, us-1)

		sec, usec := splitUnixMicro(us)
		require.Equal(t, joinUnixMicro(engineDate(sec, dateArg(sec, usec))), got, "%d", us)
	}
}

func TestReplaceDateKeepsMicroseconds(t *testing.T) {
	checkLedger(t)
	arr := ArrayOf("placeholder")
	defer arr.Free()

	for _, us := range []int64{1_546_635_600_123_456, 1_700_000_000_123_402, 946_684_800_123_457} {
		src := NewDateUnixMicro(us)
		item, _ := arr.GetMut(0)
		item.ReplaceWith(src)

		got, ok := item.AsDate()
		require.True(t, ok)
		sec, usec := splitUnixMicro(us)
		require.Equal(t, joinUnixMicro(engineDate(sec, dateArg(sec, usec))), got.UnixMicro())
		require.InDelta(t, us, got.UnixMicro(), 1)
		src.Free()
	}
}
