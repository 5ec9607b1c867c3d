package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredInterfaceBrief(t *testing.T) {
	records, ok := Structured("show ip interface brief", interfaceBriefOutput)
	require.True(t, ok)
	require.Len(t, records, 4)
	assert.Equal(t, "GigabitEthernet0/0", records[0]["interface"])
	assert.Equal(t, "administratively down", records[2]["status"])
}

func TestStructuredBGPSummary(t *testing.T) {
	records, ok := Structured("show ip bgp summary", bgpSummaryOutput)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, "10.1.12.2", records[0]["neighbor"])
	assert.Equal(t, "12", records[0]["state_pfxrcd"])
	assert.Equal(t, "Active", records[1]["state_pfxrcd"])
}

func TestStructuredOSPFNeighbor(t *testing.T) {
	records, ok := Structured("show ip ospf neighbor", ospfNeighborOutput)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, "FULL/DR", records[0]["state"])
	assert.Equal(t, "00:00:37", records[0]["dead_time"])
}

func TestStructuredCPU(t *testing.T) {
	records, ok := Structured("show processes cpu", "CPU utilization for five seconds: 12%/3%; one minute: 9%")
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "12%", records[0]["cpu_utilization"])
}

func TestStructuredUnknownCommand(t *testing.T) {
	_, ok := Structured("show ip bgp neighbors", bgpNeighborsOutput)
	assert.False(t, ok, "stateful families have no template")

	_, ok = Structured("show ip ospf database", ospfDatabaseOutput)
	assert.False(t, ok)
}

func TestStructuredNoMatchingRows(t *testing.T) {
	_, ok := Structured("show ip interface brief", "% Invalid input detected")
	assert.False(t, ok)

	_, ok = Structured("show ip interface brief", "")
	assert.False(t, ok)
}

func TestStructuredLongestPrefixWins(t *testing.T) {
	raw := "Gi0/0        1     0               10.1.12.1/24       1     DR    1/1\n"
	records, ok := Structured("show ip ospf interface brief", raw)
	require.True(t, ok)
	assert.Equal(t, "Gi0/0", records[0]["interface"])
	assert.Equal(t, "0", records[0]["area"])
}
