package seatcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatValid(t *testing.T) {
	cases := []struct {
		id  string
		bit int
	}{
		{"a1", 0},
		{"a20", 19},
		{"A1", 0},
		{"A20", 19},
		{"a9", 8},
	}

	for _, c := range cases {
		bit, ok := ParseSeat(c.id)
		require.True(t, ok, "expected %q to parse", c.id)
		assert.Equal(t, c.bit, bit)
	}
}

func TestParseSeatInvalid(t *testing.T) {
	invalid := []string{"", "a", "a0", "a01", "a21", "b1", "1a", "a1b", "aa1", "-a1"}

	for _, id := range invalid {
		_, ok := ParseSeat(id)
		assert.False(t, ok, "expected %q to be rejected", id)
	}
}

func TestFormatSeatRoundTrip(t *testing.T) {
	for bit := 0; bit < SeatCount; bit++ {
		id := FormatSeat(bit)
		gotBit, ok := ParseSeat(id)
		require.True(t, ok)
		assert.Equal(t, bit, gotBit)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("a1"))
	assert.True(t, IsValid("a20"))
	assert.False(t, IsValid("a21"))
	assert.False(t, IsValid(""))
}

func TestBuildMask(t *testing.T) {
	mask := BuildMask([]string{"a1", "a2", "a20"})
	assert.Equal(t, uint32(1<<0|1<<1|1<<19), mask)
}

func TestBuildMaskIgnoresInvalidIDs(t *testing.T) {
	mask := BuildMask([]string{"a1", "garbage", "a21"})
	assert.Equal(t, uint32(1<<0), mask)
}

func TestAllSeatsCoversWholeRange(t *testing.T) {
	all := AllSeats()
	require.Len(t, all, SeatCount)
	assert.Equal(t, "a1", all[0])
	assert.Equal(t, "a20", all[SeatCount-1])

	mask := BuildMask(all)
	assert.Equal(t, AllSeatsMask, mask)
}
