package scan

// PortIterator walks the ports owned by one worker: every Nth port of the
// range, starting at an offset of the worker's index.
type PortIterator struct {
	next   int
	end    int
	stride int
}

func NewPortIterator(cfg Config, index int) *PortIterator {
	return &PortIterator{
		// int rather than uint16 so that ranges ending at 65535 still terminate
		next:   int(cfg.StartPort) + index,
		end:    int(cfg.EndPort),
		stride: cfg.Workers,
	}
}

// Peek returns the next port without advancing.
func (pi *PortIterator) Peek() (uint16, bool) {
	if pi.next > pi.end || pi.stride < 1 {
		return 0, false
	}
	return uint16(pi.next), true
}

func (pi *PortIterator) Next() (uint16, bool) {
	port, ok := pi.Peek()
	if ok {
		pi.next += pi.stride
	}
	return port, ok
}

// Assignment returns every port the iterator would yield.
func Assignment(cfg Config, index int) []uint16 {
	ports := []uint16{}
	pi := NewPortIterator(cfg, index)
	for port, ok := pi.Next(); ok; port, ok = pi.Next() {
		ports = append(ports, port)
	}
	return ports
}
