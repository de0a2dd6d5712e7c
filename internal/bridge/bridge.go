// Package bridge adapts a blocking or push-style generation call into an
// ordered pull sequence of chunks. One producer goroutine runs the engine
// call and hands chunks to the consumer over a bounded channel; a sentinel
// value terminates the sequence on completion or failure.
package bridge

import (
	"context"
	"fmt"
	"io"
)

// Producer runs one generation, pushing each produced chunk through emit.
// A nil return ends the sequence normally; an error (or panic) ends it with
// that failure after all previously emitted chunks have been delivered.
// emit returns the context error once the consumer is gone, which the
// producer should propagate to stop generating.
type Producer func(ctx context.Context, emit func(string) error) error

type item struct {
	chunk string
	err   error // io.EOF marks normal completion
}

// Stream is the consumer side of one generation.
type Stream struct {
	items chan item
	done  chan struct{}
}

// Start launches p on its own goroutine so the consumer is never blocked
// waiting for the first token. Chunks are forwarded exactly as emitted, in
// emission order, without buffering, merging or splitting. When ctx is
// cancelled the producer's sends unblock with the context error and late
// output is discarded, so teardown never waits on a stalled engine.
func Start(ctx context.Context, capacity int, p Producer) *Stream {
	if capacity < 1 {
		capacity = 1
	}
	s := &Stream{
		items: make(chan item, capacity),
		done:  make(chan struct{}),
	}
	emit := func(chunk string) error {
		select {
		case s.items <- item{chunk: chunk}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	go func() {
		defer close(s.done)
		err := runProducer(ctx, p, emit)
		if err == nil {
			err = io.EOF
		}
		select {
		case s.items <- item{err: err}:
		case <-ctx.Done():
		}
	}()
	return s
}

// runProducer keeps engine panics inside the producer goroutine; they
// surface to the consumer only through the error sentinel.
func runProducer(ctx context.Context, p Producer, emit func(string) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panic: %v", r)
		}
	}()
	return p(ctx, emit)
}

// Recv returns the next chunk. After the last chunk it reports io.EOF for
// normal completion or the producer's error for a failure; in both cases
// the producer goroutine has already returned. A cancelled ctx makes Recv
// return immediately with the context error.
func (s *Stream) Recv(ctx context.Context) (string, error) {
	select {
	case it := <-s.items:
		if it.err != nil {
			<-s.done
			return "", it.err
		}
		return it.chunk, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Wait blocks until the producer goroutine has exited.
func (s *Stream) Wait() {
	<-s.done
}
