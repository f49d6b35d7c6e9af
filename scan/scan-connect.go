package scan

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var _ Scanner = (*ConnectScanner)(nil)

type ConnectScanner struct {
	prober   Prober
	progress ProgressFunc
}

// NewConnectScanner creates a connect scanner. A nil prober dials real TCP
// connections and a nil progress func disables progress reporting.
func NewConnectScanner(prober Prober, progress ProgressFunc) *ConnectScanner {
	if prober == nil {
		prober = ConnectProber{}
	}
	return &ConnectScanner{
		prober:   prober,
		progress: progress,
	}
}

// Scan probes every port in the configured range exactly once and returns the
// open ports in ascending order. It blocks until every worker has finished.
func (s *ConnectScanner) Scan(cfg Config) (Result, error) {

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	result := NewResult(cfg.Target)
	startTime := time.Now()

	logrus.Debugf("Scanning %d ports on %s with %d workers...", cfg.PortCount(), cfg.Target, cfg.Workers)

	openChan := make(chan uint16)

	g := &errgroup.Group{}
	for i := 0; i < cfg.Workers; i++ {
		w := worker{
			cfg:      cfg,
			index:    i,
			prober:   s.prober,
			progress: s.progress,
		}
		g.Go(func() error {
			probed := w.probe(openChan)
			logrus.Debugf("Worker %d done after %d ports", w.index, probed)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(openChan)
	}()

	result.Open = collect(openChan)
	result.Duration = time.Since(startTime)

	logrus.Debugf("Scan of %s finished in %s, %d open", cfg.Target, result.Duration, len(result.Open))

	return result, nil
}

func (s *ConnectScanner) OutputResult(result Result) {
	fmt.Print(result.String())
}

type worker struct {
	cfg      Config
	index    int
	prober   Prober
	progress ProgressFunc
}

// probe scans the worker's share of the range and sends each open port on out.
// It returns the number of ports attempted once the share is exhausted.
func (w worker) probe(out chan<- uint16) int {

	logrus.Debugf("Worker %d starting at port %d", w.index, int(w.cfg.StartPort)+w.index)

	ports := NewPortIterator(w.cfg, w.index)
	probed := 0
	for port, ok := ports.Next(); ok; port, ok = ports.Next() {
		if w.prober.Probe(w.cfg.Target, port, w.cfg.Timeout) == PortOpen {
			out <- port
			if w.progress != nil {
				w.progress(port)
			}
		}
		probed++
		time.Sleep(w.cfg.Delay)
	}

	return probed
}
