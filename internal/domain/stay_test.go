package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestStay_Nights(t *testing.T) {
	tests := []struct {
		name string
		stay Stay
		want int
	}{
		{"three nights", Stay{day(1), day(4)}, 3},
		{"partial day rounds up", Stay{day(1), day(2).Add(2 * time.Hour)}, 2},
		{"under a day is one night", Stay{day(1), day(1).Add(3 * time.Hour)}, 1},
		{"equal dates clamp to one", Stay{day(1), day(1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stay.Nights())
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(100, Stay{day(1), day(4)}))
}

func TestStay_Valid(t *testing.T) {
	assert.True(t, Stay{day(1), day(2)}.Valid())
	assert.False(t, Stay{day(1), day(1)}.Valid())
	assert.False(t, Stay{day(3), day(1)}.Valid())
}

func TestStay_Overlaps(t *testing.T) {
	existing := Stay{day(5), day(10)}

	assert.True(t, Stay{day(8), day(12)}.Overlaps(existing))
	assert.True(t, Stay{day(3), day(6)}.Overlaps(existing))
	assert.True(t, Stay{day(1), day(20)}.Overlaps(existing))
	assert.True(t, Stay{day(6), day(7)}.Overlaps(existing))
	assert.True(t, Stay{day(5), day(10)}.Overlaps(existing))

	// соседние интервалы не пересекаются
	assert.False(t, Stay{day(10), day(12)}.Overlaps(existing))
	assert.False(t, Stay{day(1), day(5)}.Overlaps(existing))
}

func TestStay_Overlaps_MatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	randomStay := func() Stay {
		start := rnd.Intn(60)
		length := 1 + rnd.Intn(10)
		return Stay{CheckIn: day(1).AddDate(0, 0, start), CheckOut: day(1).AddDate(0, 0, start+length)}
	}

	for i := 0; i < 5000; i++ {
		requested := randomStay()
		existing := randomStay()

		want := existing.CheckIn.Before(requested.CheckOut) && requested.CheckIn.Before(existing.CheckOut)
		assert.Equal(t, want, requested.Overlaps(existing),
			"requested=%v existing=%v", requested, existing)
	}
}
