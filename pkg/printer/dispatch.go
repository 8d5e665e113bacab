package printer

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"
)

// Job carries the two renditions of a receipt a strategy may need: the
// self-contained HTML document and the raw ESC/POS byte stream.
type Job struct {
	HTML   string
	ESCPOS []byte
}

// Strategy is one way of getting a receipt onto paper.
type Strategy interface {
	Name() string
	Print(ctx context.Context, job Job) error
}

// Dispatcher tries its strategies in order, degrading every failure mode to
// a boolean result plus a logged diagnostic. It never returns an error and
// never panics out to the caller.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher creates a dispatcher over the given cascade.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{strategies: strategies}
}

// Dispatch attempts each strategy until one succeeds. A strategy that
// fails or panics falls through to the next; all of them failing yields
// false. Nothing propagates to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, job Job) bool {
	for _, s := range d.strategies {
		if err := tryStrategy(ctx, s, job); err != nil {
			log.Printf("printer: strategy %s failed: %v", s.Name(), err)
			continue
		}
		return true
	}
	return false
}

// tryStrategy runs one strategy, converting a panic into an error so the
// cascade keeps going.
func tryStrategy(ctx context.Context, s Strategy, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Print(ctx, job)
}

// --- Spool strategy: isolated surface via the system print command ---

// spoolStrategy writes the HTML document to an isolated temp file and hands
// it to the system print spooler. The temp file is removed regardless of
// outcome.
type spoolStrategy struct {
	command string // resolved spooler, empty means probe at print time
	timeout time.Duration
}

// NewSpoolStrategy creates the spooler-backed strategy. An empty command
// resolves lp/lpr from PATH per job.
func NewSpoolStrategy(command string) Strategy {
	return &spoolStrategy{command: command, timeout: 15 * time.Second}
}

func (s *spoolStrategy) Name() string { return "spool" }

func (s *spoolStrategy) Print(ctx context.Context, job Job) error {
	cmd := s.command
	if cmd == "" {
		cmd = spoolCommand()
	}
	if cmd == "" {
		return fmt.Errorf("printer: no spool command available")
	}

	f, err := os.CreateTemp("", "receipt-*.html")
	if err != nil {
		return fmt.Errorf("printer: failed to create spool file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(job.HTML); err != nil {
		f.Close()
		return fmt.Errorf("printer: failed to write spool file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("printer: failed to close spool file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if out, err := exec.CommandContext(ctx, cmd, path).CombinedOutput(); err != nil {
		return fmt.Errorf("printer: %s failed: %v (%s)", cmd, err, out)
	}
	return nil
}

// --- Direct strategy: raw ESC/POS to the configured device ---

// directStrategy bypasses the spooler and writes the ESC/POS stream
// straight to a thermal printer.
type directStrategy struct {
	printer Printer
}

// NewDirectStrategy creates the device-backed fallback strategy.
func NewDirectStrategy(p Printer) Strategy {
	return &directStrategy{printer: p}
}

func (s *directStrategy) Name() string { return "direct" }

func (s *directStrategy) Print(ctx context.Context, job Job) error {
	if len(job.ESCPOS) == 0 {
		return fmt.Errorf("printer: job has no ESC/POS rendition")
	}
	return s.printer.Print(job.ESCPOS)
}
