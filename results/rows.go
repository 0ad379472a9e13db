package results

import (
	"fmt"
	"iter"
	"log/slog"
)

// Rows is a single-pass cursor over the solutions of one document.
//
// Rows is poisoned by its first error: Next returns false from then on and
// Err keeps returning that error. Rows produced before the error stay valid.
// A Rows is not safe for concurrent use.
type Rows struct {
	src      *eventSource
	machine  *rowMachine
	vars     []Variable
	bnodes   *BlankNodeTable
	logger   *slog.Logger
	maxRows  int
	produced int

	row  Row
	err  error
	done bool
}

func newRows(src *eventSource, vars []Variable, slots map[string]int, o options) *Rows {
	bnodes := NewBlankNodeTable()
	return &Rows{
		src:     src,
		machine: newRowMachine(slots, len(vars), bnodes),
		vars:    vars,
		bnodes:  bnodes,
		logger:  o.logger,
		maxRows: o.maxRows,
	}
}

// Variables returns the declared variables in slot order.
func (r *Rows) Variables() []Variable { return r.vars }

// Next decodes the next row. It returns false at the end of the results or
// on error; check Err to tell them apart.
func (r *Rows) Next() bool {
	r.row = nil
	if r.done {
		return false
	}
	for {
		ev, err := r.src.next()
		if err != nil {
			r.fail(err)
			return false
		}
		outcome, row, err := r.machine.step(ev)
		if err != nil {
			r.fail(err)
			return false
		}
		switch outcome {
		case rowReady:
			r.produced++
			if r.maxRows > 0 && r.produced > r.maxRows {
				r.fail(fmt.Errorf("%w: document has more than %d rows", ErrRowLimitExceeded, r.maxRows))
				return false
			}
			r.row = row
			return true
		case rowsExhausted:
			r.done = true
			r.logger.Debug("sparql results exhausted", slog.Int("rows", r.produced), slog.Int("blank_nodes", r.bnodes.Len()))
			return false
		}
	}
}

func (r *Rows) fail(err error) {
	r.err = err
	r.done = true
	r.logger.Debug("sparql results row failed", slog.Int("rows", r.produced), slog.Any("error", err))
}

// Row returns the row decoded by the last successful Next.
func (r *Rows) Row() Row { return r.row }

// Err returns the first error met by Next.
func (r *Rows) Err() error { return r.err }

// Close stops decoding. The underlying reader is not closed.
func (r *Rows) Close() error {
	r.done = true
	r.row = nil
	return nil
}

// All returns the remaining rows as a sequence. An error is yielded once,
// with a nil row, as the last element.
func (r *Rows) All() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for r.Next() {
			if !yield(r.row, nil) {
				return
			}
		}
		if r.err != nil {
			yield(nil, r.err)
		}
	}
}

// Collect drains rows into a slice.
func (r *Rows) Collect() ([]Row, error) {
	var out []Row
	for row, err := range r.All() {
		if err != nil {
			return out, err
		}
		out = append(out, row)
	}
	return out, nil
}
