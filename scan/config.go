package scan

import (
	"errors"
	"fmt"
	"math"
	"net"
	"time"
)

const (
	MaxPort        = 65535
	DefaultWorkers = 4
	MaxWorkers     = math.MaxUint16
	DefaultTimeout = time.Second
	DefaultDelay   = 50 * time.Millisecond
)

var (
	ErrInvalidTarget    = errors.New("invalid target address")
	ErrInvalidPortRange = errors.New("port range out of bounds")
	ErrInvalidWorkers   = errors.New("worker count out of bounds")
)

// Config describes a single scan. It is never modified once a scan starts and
// every worker receives its own copy.
type Config struct {
	Target    net.IP
	StartPort uint16
	EndPort   uint16
	Workers   int
	// Timeout bounds each connection attempt.
	Timeout time.Duration
	// Delay is slept by a worker after every attempt.
	Delay time.Duration
}

func NewConfig(target net.IP, startPort uint16, endPort uint16, workers int) Config {
	return Config{
		Target:    target,
		StartPort: startPort,
		EndPort:   endPort,
		Workers:   workers,
		Timeout:   DefaultTimeout,
		Delay:     DefaultDelay,
	}
}

func (c Config) Validate() error {
	if c.Target == nil || c.Target.To16() == nil {
		return ErrInvalidTarget
	}
	if c.StartPort == 0 || c.StartPort > c.EndPort {
		return fmt.Errorf("%w: %d-%d", ErrInvalidPortRange, c.StartPort, c.EndPort)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Timeout < 0 || c.Delay < 0 {
		return errors.New("timeout and delay must not be negative")
	}
	return nil
}

// PortCount is the number of ports in the configured range.
func (c Config) PortCount() int {
	return int(c.EndPort) - int(c.StartPort) + 1
}
