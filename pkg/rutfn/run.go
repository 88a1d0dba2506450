package rutfn

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rutkit/pkg/logger"
)

// Stats summarises a Run.
type Stats struct {
	Read    int `json:"read" yaml:"read"`
	Written int `json:"written" yaml:"written"`
	Failed  int `json:"failed" yaml:"failed"`
	Dropped int `json:"dropped" yaml:"dropped"`
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger used for per-line failures and the final summary.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSkipErrors suppresses the error text that map operations would
// otherwise write for values they cannot transform.
func WithSkipErrors() Option {
	return func(r *runner) { r.skipErrors = true }
}

// WithJSONLines reads and writes one JSON string per line instead of raw text.
func WithJSONLines() Option {
	return func(r *runner) { r.jsonLines = true }
}

type runner struct {
	log        *slog.Logger
	skipErrors bool
	jsonLines  bool
}

// Run applies op to every non-blank line read from r and writes results to w.
// It stops at the first read or write failure, or when ctx is done, and
// returns the counters accumulated so far. Output counted in Stats.Written is
// flushed to w on every return path.
func Run(ctx context.Context, r io.Reader, w io.Writer, op Operation, opts ...Option) (Stats, error) {
	run := &runner{log: logger.Noop()}
	for _, opt := range opts {
		opt(run)
	}
	if op.Map == nil && op.Filter == nil {
		return Stats{}, fmt.Errorf("%w: %q has no stage", ErrUnknownOperation, op.Name)
	}

	start := time.Now()
	log := run.log.With(logger.Component("rutfn"), logger.Operation(op.Name))

	var stats Stats
	bw := bufio.NewWriter(w)
	err := run.process(ctx, bufio.NewScanner(r), bw, op, log, &stats)
	if ferr := bw.Flush(); ferr != nil && !errors.Is(err, ErrWrite) {
		err = errors.Join(err, ErrWrite, ferr)
	}
	if err != nil {
		return stats, err
	}

	log.InfoContext(ctx, "stream processed",
		logger.Count("read", stats.Read),
		logger.Count("written", stats.Written),
		logger.Count("failed", stats.Failed),
		logger.Count("dropped", stats.Dropped),
		logger.Duration(time.Since(start)),
	)
	return stats, nil
}

func (r *runner) process(ctx context.Context, sc *bufio.Scanner, bw *bufio.Writer, op Operation, log *slog.Logger, stats *Stats) error {
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw := sc.Text()
		input, err := r.decode(raw)
		if err != nil {
			stats.Read++
			stats.Failed++
			log.DebugContext(ctx, "undecodable line", logger.Input(raw), logger.Error(err))
			if !r.skipErrors {
				if err := r.emit(bw, err.Error()); err != nil {
					return errors.Join(ErrWrite, err)
				}
				stats.Written++
			}
			continue
		}

		input = Normalize(input)
		if input == "" {
			continue
		}
		stats.Read++

		var (
			out  string
			keep = true
		)
		if op.IsFilter() {
			out = input
			if !op.Filter(input) {
				keep = false
				stats.Dropped++
			}
		} else {
			out, err = op.Map(input)
			if err != nil {
				stats.Failed++
				log.DebugContext(ctx, "map failed", logger.Input(input), logger.Error(err))
				out = err.Error()
				keep = !r.skipErrors
			}
		}
		if !keep {
			continue
		}
		if err := r.emit(bw, out); err != nil {
			return errors.Join(ErrWrite, err)
		}
		stats.Written++
	}
	if err := sc.Err(); err != nil {
		return errors.Join(ErrRead, err)
	}
	return nil
}

func (r *runner) decode(line string) (string, error) {
	if !r.jsonLines {
		return line, nil
	}
	if Normalize(line) == "" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal([]byte(line), &s); err != nil {
		return "", flatten(err)
	}
	return s, nil
}

func (r *runner) emit(w *bufio.Writer, s string) error {
	if r.jsonLines {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		s = string(b)
	}
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
