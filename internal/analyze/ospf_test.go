package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routehealth/internal/parse"
)

func fullNeighbor(id, deadTime string) parse.Record {
	return parse.Record{
		"neighbor_id": id,
		"priority":    "1",
		"state":       "FULL/DR",
		"dead_time":   deadTime,
		"address":     id,
		"interface":   "Gi0/0",
		"area":        "0.0.0.0",
	}
}

func TestOSPFNeighborsAllFull(t *testing.T) {
	records := []parse.Record{
		fullNeighbor("10.0.0.2", "00:00:37"),
		fullNeighbor("10.0.0.3", "00:00:31"),
	}
	verdict := New().OSPFNeighbors(records, "")
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Equal(t, 2, verdict.TotalNeighbors)
	assert.Equal(t, 2, verdict.FullNeighbors)
	assert.Equal(t, AreaCounts{Total: 2, Full: 2}, verdict.NeighborsByArea["0.0.0.0"])
}

func TestOSPFNeighborsNonFullIsCritical(t *testing.T) {
	records := []parse.Record{
		fullNeighbor("10.0.0.2", "00:00:37"),
		{"neighbor_id": "10.0.0.3", "state": "EXSTART/BDR", "dead_time": "00:00:35", "interface": "Gi0/1", "area": "0.0.0.0"},
	}
	verdict := New().OSPFNeighbors(records, "")
	assert.Equal(t, StatusCritical, verdict.Status)
	require.Len(t, verdict.DownNeighbors, 1)
	assert.Equal(t, "10.0.0.3", verdict.DownNeighbors[0].NeighborID)
	assert.Equal(t, "EXSTART/BDR", verdict.DownNeighbors[0].State)
	assert.Equal(t, 1, verdict.NeighborsByArea["0.0.0.0"].Down)
}

func TestOSPFNeighborsLowDeadTimeIsWarning(t *testing.T) {
	records := []parse.Record{fullNeighbor("10.0.0.2", "00:00:09")}
	verdict := New().OSPFNeighbors(records, "")
	assert.Equal(t, StatusWarningUpper, verdict.Status)
	require.Len(t, verdict.LowDeadTime, 1)
	assert.Equal(t, 9, verdict.LowDeadTime[0].DeadSeconds)
}

func TestOSPFNeighborsCriticalBeatsWarning(t *testing.T) {
	records := []parse.Record{
		{"neighbor_id": "10.0.0.3", "state": "INIT", "dead_time": "00:00:05", "area": "0.0.0.0"},
	}
	verdict := New().OSPFNeighbors(records, "")
	assert.Equal(t, StatusCritical, verdict.Status)
}

func TestOSPFNeighborsNotConfigured(t *testing.T) {
	verdict := New().OSPFNeighbors(nil, "")
	assert.Equal(t, StatusNotConfigured, verdict.Status)
	assert.NotNil(t, verdict.NeighborsByArea)
}

func TestOSPFNeighborsAreaBuckets(t *testing.T) {
	records := []parse.Record{
		fullNeighbor("10.0.0.2", "00:00:37"),
		{"neighbor_id": "10.0.0.4", "state": "FULL/BDR", "dead_time": "00:00:30", "area": "0.0.0.1"},
		{"neighbor_id": "10.0.0.5", "state": "DOWN", "dead_time": "00:00:30", "area": "0.0.0.1"},
	}
	verdict := New().OSPFNeighbors(records, "")
	assert.Equal(t, AreaCounts{Total: 1, Full: 1}, verdict.NeighborsByArea["0.0.0.0"])
	assert.Equal(t, AreaCounts{Total: 2, Full: 1, Down: 1}, verdict.NeighborsByArea["0.0.0.1"])
}

func TestOSPFDatabaseFlooding(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("                Router Link States (Area 0)\n\n")
	for i := 0; i < 10001; i++ {
		sb.WriteString("10.0.0.1        10.0.0.1        512         0x80000004 0x00A1B2 2\n")
	}
	verdict := New().OSPFDatabase(sb.String())
	assert.Equal(t, StatusWarningUpper, verdict.Status)
	assert.True(t, verdict.FloodingDetected)
	assert.Equal(t, 10001, verdict.TotalLSAs)
}

func TestOSPFDatabaseHealthy(t *testing.T) {
	raw := "                Router Link States (Area 0)\n\n10.0.0.1 10.0.0.1 512 0x80000004 0x00A1B2 2\n"
	verdict := New().OSPFDatabase(raw)
	assert.Equal(t, StatusOK, verdict.Status)
	assert.False(t, verdict.FloodingDetected)
	assert.Equal(t, 1, verdict.TotalLSAs)
	assert.Equal(t, 1, verdict.LSAByType["Router"])
}

func TestOSPFInterfacesIssue(t *testing.T) {
	records := []parse.Record{
		{"interface": "Gi0/0", "area": "0", "state": "DR", "neighbors": "1"},
		{"interface": "Gi0/1", "area": "0", "state": "DOWN", "neighbors": "0"},
	}
	verdict := New().OSPFInterfaces(records, "")
	assert.Equal(t, StatusWarningUpper, verdict.Status)
	require.Len(t, verdict.Issues, 1)
	assert.Equal(t, "Gi0/1", verdict.Issues[0].Interface)
	assert.Contains(t, verdict.Issues[0].Issue, "DOWN")
	assert.Len(t, verdict.Enabled, 2)
}

func TestOSPFInterfacesHealthy(t *testing.T) {
	records := []parse.Record{
		{"interface": "Gi0/0", "area": "0", "state": "DR", "neighbors": "1"},
	}
	verdict := New().OSPFInterfaces(records, "")
	assert.Equal(t, StatusOK, verdict.Status)
	assert.Empty(t, verdict.Issues)
}
