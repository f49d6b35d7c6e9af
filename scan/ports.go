package scan

//go:generate go run ../tools/update-ports.go

// DescribePort returns the IANA service name registered for a TCP port, or an
// empty string if there is none.
func DescribePort(port uint16) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}
