package annotate

import (
	"fmt"
	"sync"

	"github.com/cyclopcam/logs"
)

// ParamsFunc returns the parameters for one Annotator in a Pool.  It is
// called once per Annotator so each can be given its own TTF face.
type ParamsFunc func() (Params, error)

// Pool is a simple pool of Annotators for processing frames from multiple
// goroutines, each goroutine takes an Annotator for the duration of a frame
type Pool struct {
	// pool of annotators
	annotators chan *Annotator
	// size of pool
	size int
	// mu guards closed and sends on annotators
	mu     sync.Mutex
	closed bool
}

// NewPool creates a new Annotator pool
func NewPool(size int, params ParamsFunc, log logs.Log) (*Pool, error) {

	if size < 1 {
		return nil, fmt.Errorf("invalid pool size %d", size)
	}

	p := &Pool{
		annotators: make(chan *Annotator, size),
		size:       size,
	}

	for i := 0; i < size; i++ {
		prm, err := params()

		if err != nil {
			// close any instances that may have been created before receiving
			// the error
			p.Close()
			return nil, fmt.Errorf("error creating annotator %d: %w", i, err)
		}

		p.Return(NewAnnotator(prm, log))
	}

	return p, nil
}

// Size returns the number of Annotators in the pool
func (p *Pool) Size() int {
	return p.size
}

// Get an Annotator from the pool, blocking until one is free.  Returns nil
// once the pool has been closed.
func (p *Pool) Get() *Annotator {
	return <-p.annotators
}

// Return an Annotator to the pool.  Annotators returned after the pool has
// been closed are closed instead.
func (p *Pool) Return(a *Annotator) {

	if a == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = a.Close()
		return
	}

	select {
	case p.annotators <- a:
	default:
		// pool is full
	}
}

// Close the pool and all idle Annotators in it.  Annotators still in use
// are closed when they are returned.
func (p *Pool) Close() {

	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()
		return
	}

	p.closed = true
	close(p.annotators)
	p.mu.Unlock()

	for next := range p.annotators {
		_ = next.Close()
	}
}
