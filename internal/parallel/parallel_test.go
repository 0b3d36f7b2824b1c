package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForCoversAllIndices(t *testing.T) {
	configs := map[string]Config{
		"default":    DefaultConfig(),
		"sequential": {Enabled: false},
		"single":     WithWorkers(1),
		"four":       WithWorkers(4),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			const n = 37
			seen := make([]int32, n)
			For(n, func(i int) {
				atomic.AddInt32(&seen[i], 1)
			}, cfg)

			for i, count := range seen {
				assert.Equal(t, int32(1), count, "index %d visited %d times", i, count)
			}
		})
	}
}

func TestForZeroUnits(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestForDisjointWrites(t *testing.T) {
	const n = 100
	out := make([]int, n)
	For(n, func(i int) { out[i] = i * i }, WithWorkers(8))

	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestWithWorkersDisablesBelowTwo(t *testing.T) {
	assert.False(t, WithWorkers(1).Enabled)
	assert.False(t, WithWorkers(0).Enabled)
	assert.True(t, WithWorkers(2).Enabled)
}
