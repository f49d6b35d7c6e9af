package scan

type Scanner interface {
	Scan(cfg Config) (Result, error)
	OutputResult(result Result)
}

// ProgressFunc is called once for every open port as soon as it is found.
// It is invoked from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(port uint16)
