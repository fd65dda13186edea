// Package rowcursor implements the engine-facing Iterator facade (§4.D): a
// public, lazily-initialized row cursor with Init/Next/Current. Init is
// deferred to the first Next call so that constructing an iterator per
// column per scan never pays decode-setup cost if the scan short-circuits.
package rowcursor

import (
	"fmt"

	"github.com/vectorlake/colvec/coltype"
	"github.com/vectorlake/colvec/errs"
)

// rows is the minimal surface the facade needs from the null-mask wrapper
// it drives; kept as an interface so tests can substitute a fake. It is an
// alias, so a build func declared with an identical interface literal
// elsewhere has the same type as New's parameter.
type rows = interface {
	HasNext() bool
	Next() error
	Current() (*coltype.Cell, bool)
}

// closer is implemented by null-mask wrappers that hold pooled resources
// (the null-index slice). Checked via type assertion so rows implementations
// without resources to release don't need a no-op method.
type closer interface {
	Close()
}

// Iterator is the public, engine-facing row cursor returned by the buffer
// dispatcher. It is poisoned on any fatal decode error: the failing Next
// and every later Next return an error wrapping ErrIteratorPoisoned, HasNext
// reports false and Current reports a null row, per spec §4.E/§7.
type Iterator struct {
	build func() (rows, error) // deferred construction, run once on first Next

	r    rows
	init bool

	poisoned    bool
	poisonedErr error
}

// New returns an Iterator that defers running build until the first call
// to Next. build performs whatever header parsing and decoder construction
// the buffer dispatcher needs (§4.E steps 2-4); it runs at most once.
func New(build func() (rows, error)) *Iterator {
	return &Iterator{build: build}
}

// Init performs first-call initialization; subsequent calls are no-ops.
// Most callers never call Init directly — Next calls it automatically —
// but it is exposed so callers can pay setup cost eagerly if they prefer.
func (it *Iterator) Init() error {
	if it.init {
		return nil
	}
	it.init = true

	if it.poisoned {
		return it.poisonedErr
	}

	r, err := it.build()
	if err != nil {
		it.poison(err)
		return it.poisonedErr
	}
	it.r = r

	return nil
}

// HasNext reports whether another row is available. Calling it on a
// poisoned iterator returns false; callers that need to distinguish
// "exhausted" from "poisoned" should check the error from Next.
func (it *Iterator) HasNext() bool {
	if it.poisoned {
		return false
	}
	if !it.init {
		if err := it.Init(); err != nil {
			return false
		}
	}
	return it.r.HasNext()
}

// Next advances to the next row. If the iterator has not yet been
// initialized, it first calls Init. Calling Next past exhaustion or after a
// fatal error is reported as an error rather than silently continuing.
func (it *Iterator) Next() error {
	if it.poisoned {
		return it.poisonedErr
	}

	if !it.init {
		if err := it.Init(); err != nil {
			return err
		}
	}

	if !it.r.HasNext() {
		it.release()
		return errs.ErrIteratorExhausted
	}

	if err := it.r.Next(); err != nil {
		it.poison(err)
		return it.poisonedErr
	}

	return nil
}

// Current returns the current row's value: (cell, false) for a non-null
// row, (nil, true) for a null row. It is read-only and idempotent between
// Next calls, per spec §4.D.
func (it *Iterator) Current() (*coltype.Cell, bool) {
	if it.poisoned || it.r == nil {
		return nil, true
	}
	return it.r.Current()
}

// Err returns the error that poisoned the iterator, if any.
func (it *Iterator) Err() error {
	if it.poisoned {
		return it.poisonedErr
	}
	return nil
}

func (it *Iterator) poison(err error) {
	it.poisoned = true
	it.poisonedErr = fmt.Errorf("%w: %w", errs.ErrIteratorPoisoned, err)
	it.release()
}

// release returns any pooled resources the underlying rows implementation
// holds (§5 resource discipline). Safe to call multiple times.
func (it *Iterator) release() {
	if c, ok := it.r.(closer); ok {
		c.Close()
	}
}
