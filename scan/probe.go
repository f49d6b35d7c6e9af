package scan

import (
	"net"
	"strconv"
	"time"
)

type PortState uint8

const (
	PortClosed PortState = iota
	PortOpen
)

// Prober attempts a single connection. A connect scan cannot tell closed ports
// from filtered ones, so every failure is reported as PortClosed.
type Prober interface {
	Probe(target net.IP, port uint16, timeout time.Duration) PortState
}

type ConnectProber struct{}

func (ConnectProber) Probe(target net.IP, port uint16, timeout time.Duration) PortState {
	addr := net.JoinHostPort(target.String(), strconv.Itoa(int(port)))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return PortClosed
	}
	_ = conn.Close()
	return PortOpen
}
