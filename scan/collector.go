package scan

import "slices"

// collect drains open until it is closed and returns the ports sorted
// ascending with duplicates removed.
func collect(open <-chan uint16) []uint16 {
	ports := []uint16{}
	for port := range open {
		ports = append(ports, port)
	}

	slices.Sort(ports)
	return slices.Compact(ports)
}
