package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemoryLabeled(t *testing.T) {
	raw := "Processor Pool Total: 2097152000 Used: 838860800 Free: 1258291200\n I/O Pool Total: 8388608 Used: 4194304 Free: 4194304"

	stats, ok := ParseMemory(raw)
	require.True(t, ok)
	assert.Equal(t, int64(2097152000), stats.Total)
	assert.Equal(t, int64(838860800), stats.Used)
	assert.Equal(t, int64(1258291200), stats.Free)
	assert.Equal(t, 40, stats.UsedPercent())
	assert.Equal(t, int64(2000), stats.TotalMB())
	assert.Equal(t, int64(800), stats.UsedMB())
}

func TestParseMemoryColumnar(t *testing.T) {
	raw := ` Head    Total(b)     Used(b)     Free(b)   Lowest(b)  Largest(b)
Processor  65DD53B0   104857600    88080384    16777216    12582912    15728640
      I/O  7AE6F00     16777216     4194304    12582912    11534336    12058624
`
	stats, ok := ParseMemory(raw)
	require.True(t, ok)
	assert.Equal(t, int64(104857600), stats.Total)
	assert.Equal(t, int64(88080384), stats.Used)
	assert.Equal(t, int64(16777216), stats.Free)
	assert.Equal(t, 84, stats.UsedPercent())
}

func TestParseMemoryLabeledWinsOverColumnar(t *testing.T) {
	raw := ` Head    Total(b)     Used(b)
Processor  65DD53B0   1000    900    100
Processor Pool Total: 2000 Used: 500 Free: 1500
`
	stats, ok := ParseMemory(raw)
	require.True(t, ok)
	assert.Equal(t, int64(2000), stats.Total)
}

func TestParseMemoryNoData(t *testing.T) {
	_, ok := ParseMemory("show process memory\n% Invalid input detected")
	assert.False(t, ok)

	_, ok = ParseMemory("")
	assert.False(t, ok)
}

func TestParseMemoryZeroTotalRejected(t *testing.T) {
	_, ok := ParseMemory("Processor Pool Total: 0 Used: 0 Free: 0")
	assert.False(t, ok)
}

func TestUsedPercentTruncates(t *testing.T) {
	stats := MemoryStats{Total: 3, Used: 2}
	assert.Equal(t, 66, stats.UsedPercent())
}
