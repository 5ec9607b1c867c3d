package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"routehealth/internal/parse"
)

func TestRoutingCountsAndSamples(t *testing.T) {
	records := []parse.Record{
		{"protocol": "C", "network": "10.1.12.0/24"},
		{"protocol": "O", "network": "10.1.23.0/24"},
		{"protocol": "B", "network": "192.168.50.0/24"},
		{"protocol": "B", "network": "192.168.60.0/24"},
	}
	verdict := New().Routing(records, "")
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Equal(t, 4, verdict.TotalRoutes)
	assert.Len(t, verdict.Samples, 3)
}

func TestRoutingEmpty(t *testing.T) {
	verdict := New().Routing(nil, "")
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Zero(t, verdict.TotalRoutes)
	assert.Empty(t, verdict.Samples)
}

func TestRoutingFallbackToRaw(t *testing.T) {
	raw := "C        10.1.12.0/24 is directly connected, GigabitEthernet0/0\n"
	verdict := New().Routing(nil, raw)
	assert.Equal(t, 1, verdict.TotalRoutes)
}
