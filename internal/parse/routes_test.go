package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeOutput = `Codes: L - local, C - connected, S - static, R - RIP, M - mobile, B - BGP
       D - EIGRP, EX - EIGRP external, O - OSPF, IA - OSPF inter area

Gateway of last resort is not set

      10.0.0.0/8 is variably subnetted, 4 subnets, 2 masks
C        10.1.12.0/24 is directly connected, GigabitEthernet0/0
L        10.1.12.1/32 is directly connected, GigabitEthernet0/0
O        10.1.23.0/24 [110/2] via 10.1.12.2, 00:12:04, GigabitEthernet0/0
B        192.168.50.0/24 [20/0] via 10.1.12.2, 01:02:11
`

func TestParseRoutes(t *testing.T) {
	records := ParseRoutes(routeOutput)
	require.Len(t, records, 4)

	assert.Equal(t, "C", records[0]["protocol"])
	assert.Equal(t, "10.1.12.0/24", records[0]["network"])
	assert.Empty(t, records[0]["nexthop_ip"])

	assert.Equal(t, "O", records[2]["protocol"])
	assert.Equal(t, "10.1.12.2", records[2]["nexthop_ip"])

	assert.Equal(t, "B", records[3]["protocol"])
	assert.Equal(t, "192.168.50.0/24", records[3]["network"])
}

func TestParseRoutesIgnoresPreamble(t *testing.T) {
	raw := "Codes: L - local, C - connected\nGateway of last resort is not set\n"
	assert.Empty(t, ParseRoutes(raw))
}
