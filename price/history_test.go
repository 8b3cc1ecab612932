package price

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(mid string, minute int) Frame {
	p := NewMid(dec(mid), dec("1"))

	return Frame{
		Open:      p,
		High:      p,
		Low:       p,
		Close:     p,
		CloseTime: time.Date(2021, 1, 1, 10, minute, 0, 0, time.UTC),
	}
}

func TestHistoryIndexesNewestFirst(t *testing.T) {
	h := NewHistory(Minutes(10))
	h.Push(frameAt("100", 0))
	h.Push(frameAt("110", 10))
	h.Push(frameAt("120", 20))

	require.Equal(t, 3, h.Len())

	assert.True(t, h.At(0).Equal(frameAt("120", 20)))
	assert.True(t, h.At(1).Equal(frameAt("110", 10)))
	assert.True(t, h.At(2).Equal(frameAt("100", 0)))
}

func TestHistoryRecentIsChronological(t *testing.T) {
	h := NewHistory(Minutes(10))
	h.Push(frameAt("100", 0))
	h.Push(frameAt("110", 10))
	h.Push(frameAt("120", 20))

	recent := h.Recent(2)

	require.Len(t, recent, 2)
	assert.True(t, recent[0].Equal(frameAt("110", 10)))
	assert.True(t, recent[1].Equal(frameAt("120", 20)))
}

func TestHistoryRecentClampsToLength(t *testing.T) {
	h := NewHistory(Minutes(10))
	h.Push(frameAt("100", 0))

	assert.Len(t, h.Recent(5), 1)
}
