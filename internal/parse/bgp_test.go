package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bgpSummaryOutput = `BGP router identifier 10.0.0.1, local AS number 65001
BGP table version is 42, main routing table version 42

Neighbor        V           AS MsgRcvd MsgSent   TblVer  InQ OutQ Up/Down  State/PfxRcd
10.1.12.2       4        65002    1204    1199       42    0    0 00:41:22       12
10.1.13.3       4        65003     880     874       42    0    0 00:02:10 Active
`

func TestParseBGPSummary(t *testing.T) {
	records := ParseBGPSummary(bgpSummaryOutput)
	require.Len(t, records, 2)

	up := records[0]
	assert.Equal(t, "10.1.12.2", up["neighbor"])
	assert.Equal(t, "65002", up["as"])
	assert.Equal(t, "00:41:22", up["uptime"])
	assert.Equal(t, "12", up["state_pfxrcd"])
	assert.Equal(t, "Established", up["state"])
	assert.Equal(t, "12", up["prefixes_received"])

	down := records[1]
	assert.Equal(t, "Active", down["state"])
	assert.Equal(t, "0", down["prefixes_received"])
}

func TestParseBGPSummaryNoNeighborRows(t *testing.T) {
	raw := "BGP router identifier 10.0.0.1, local AS number 65001\n% BGP not active"
	assert.Empty(t, ParseBGPSummary(raw))
}

func TestParseBGPSummaryShortRowsSkipped(t *testing.T) {
	raw := "10.1.12.2 4 65002\n"
	assert.Empty(t, ParseBGPSummary(raw))
}

const bgpNeighborsOutput = `BGP neighbor is 10.1.12.2,  remote AS 65002, external link
  BGP version 4, remote router ID 10.0.0.2
  BGP state = Established, up for 00:41:22
  Last read 00:00:12, last write 00:00:09
  Connections established 9; dropped 8
  Last reset 00:45:01, due to Peer closed the session
    4 accepted prefixes

BGP neighbor is 10.1.13.3,  remote AS 65003, external link
  BGP state = Active
  Connections established 1; dropped 0
  Last reset never
`

func TestParseBGPNeighbors(t *testing.T) {
	records := ParseBGPNeighbors(bgpNeighborsOutput)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "10.1.12.2", first["neighbor"])
	assert.Equal(t, "65002", first["remote_as"])
	assert.Equal(t, "Established", first["state"])
	assert.Equal(t, "00:41:22", first["uptime"])
	assert.Equal(t, "8", first["route_flaps"])
	assert.Equal(t, "4", first["prefixes_received"])
	assert.Contains(t, first["last_reset"], "Peer closed")

	second := records[1]
	assert.Equal(t, "10.1.13.3", second["neighbor"])
	assert.Equal(t, "Active", second["state"])
	assert.Equal(t, "0", second["route_flaps"])
	assert.Equal(t, "0", second["prefixes_received"])
}

func TestParseBGPNeighborsEmpty(t *testing.T) {
	assert.Empty(t, ParseBGPNeighbors(""))
	assert.Empty(t, ParseBGPNeighbors("% BGP not active"))
}

func TestParseBGPNeighborsIgnoresLeadingNoise(t *testing.T) {
	raw := "  Connections established 5; dropped 4\nBGP neighbor is 10.0.0.9,  remote AS 65009\n  Connections established 2; dropped 1\n"
	records := ParseBGPNeighbors(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "10.0.0.9", records[0]["neighbor"])
	assert.Equal(t, "1", records[0]["route_flaps"])
}
