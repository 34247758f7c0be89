// Package record provides parallel line oriented record processing, used to
// normalize captured raw feeds with one worker per core.
package record

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxBufferSize = 1 << 24 // 16MB, soft limit
	defaultMaxTokenSize  = 1 << 26 // 64MB, hard limit
)

// ProcessFunc transforms one record into its output bytes. A nil result skips
// the record.
type ProcessFunc func([]byte) ([]byte, error)

// ProcessorOption allows configuration of the Processor.
type ProcessorOption func(*Processor)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.numWorkers = n
		}
	}
}

// Processor handles parallel processing of newline delimited records. Output
// order is not guaranteed to match input order.
type Processor struct {
	processFunc   ProcessFunc
	numWorkers    int
	maxBufferSize int
	maxTokenSize  int
}

// NewProcessor creates a Processor with one worker per core.
func NewProcessor(processFunc ProcessFunc, opts ...ProcessorOption) *Processor {
	p := &Processor{
		processFunc:   processFunc,
		numWorkers:    runtime.NumCPU(),
		maxBufferSize: defaultMaxBufferSize,
		maxTokenSize:  defaultMaxTokenSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reads lines from the input, processes them in parallel and writes
// results to the output.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	scanner := bufio.NewScanner(bufio.NewReader(r))
	scanner.Buffer(make([]byte, 0, p.maxBufferSize), p.maxTokenSize)
	workChan := make(chan []byte, p.numWorkers*2)
	var writeMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(workChan)
		for scanner.Scan() {
			token := scanner.Bytes()
			data := make([]byte, len(token))
			copy(data, token)
			select {
			case workChan <- data:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})
	for i := 0; i < p.numWorkers; i++ {
		g.Go(func() error {
			for data := range workChan {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := p.processFunc(data)
				if err != nil {
					return err
				}
				if result != nil {
					writeMu.Lock()
					_, err := bw.Write(result)
					writeMu.Unlock()
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	return g.Wait()
}
