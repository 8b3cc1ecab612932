package price

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMidSplitsSpread(t *testing.T) {
	p := NewMid(dec("200"), dec("1"))

	assert.True(t, dec("199.5").Equal(p.Bid))
	assert.True(t, dec("200.5").Equal(p.Ask))
}

func TestMidAndSpread(t *testing.T) {
	p := Price{Bid: dec("99"), Ask: dec("101")}

	assert.True(t, dec("100").Equal(p.Mid()))
	assert.True(t, dec("2").Equal(p.Spread()))
}

func TestSubIsMidDifference(t *testing.T) {
	a := NewMid(dec("150"), dec("2"))
	b := NewMid(dec("100"), dec("4"))

	assert.True(t, dec("50").Equal(a.Sub(b)))
}

func TestFrameEqual(t *testing.T) {
	ts := time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)
	f := Frame{
		Open:      NewMid(dec("100"), dec("1")),
		High:      NewMid(dec("150"), dec("1")),
		Low:       NewMid(dec("50"), dec("1")),
		Close:     NewMid(dec("120"), dec("1")),
		CloseTime: ts,
	}

	same := f
	assert.True(t, f.Equal(same))

	other := f
	other.Close = NewMid(dec("121"), dec("1"))
	assert.False(t, f.Equal(other))
}
