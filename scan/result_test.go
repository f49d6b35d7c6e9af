package scan

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultString(t *testing.T) {
	r := NewResult(net.ParseIP("127.0.0.1"))
	r.Open = []uint16{22, 31337}

	assert.Equal(t, "\nScan complete.\nPort 22 is open (ssh)\nPort 31337 is open\n", r.String())
}

func TestResultStringWithoutOpenPorts(t *testing.T) {
	assert.Equal(t, "\nScan complete.\n", NewResult(net.ParseIP("::1")).String())
}
