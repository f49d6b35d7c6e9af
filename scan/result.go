package scan

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Result is the outcome of one scan. Open is ascending and free of duplicates.
type Result struct {
	Host     net.IP
	Open     []uint16
	Duration time.Duration
}

func NewResult(host net.IP) Result {
	return Result{
		Host: host,
		Open: []uint16{},
	}
}

func (r Result) String() string {

	text := &strings.Builder{}
	text.WriteString("\nScan complete.\n")

	for _, port := range r.Open {
		if service := DescribePort(port); service != "" {
			fmt.Fprintf(text, "Port %d is open (%s)\n", port, service)
			continue
		}
		fmt.Fprintf(text, "Port %d is open\n", port)
	}

	return text.String()
}
