package results

import (
	"io"
	"log/slog"
)

// Read decodes the head of a SPARQL Query Results XML document from r.
//
// For an ASK document the whole answer is returned as a BooleanResult. For a
// SELECT document Read stops after the opening <results> tag and returns
// *Solutions whose Rows decode the remaining input on demand; r must stay
// readable until the rows are consumed or closed.
func Read(r io.Reader, opts ...Option) (QueryResult, error) {
	o := buildOptions(opts)
	src := newEventSource(r)
	header := newHeaderMachine()
	for {
		ev, err := src.next()
		if err != nil {
			return nil, err
		}
		outcome, err := header.step(ev)
		if err != nil {
			o.logger.Debug("sparql results header rejected", slog.Any("error", err))
			return nil, err
		}
		switch outcome {
		case headerBoolean:
			o.logger.Debug("sparql results header", slog.String("kind", "boolean"), slog.Bool("value", header.answer))
			return BooleanResult(header.answer), nil
		case headerSolutions, headerEmptySolutions:
			vars := header.variables
			o.logger.Debug("sparql results header",
				slog.String("kind", "solutions"),
				slog.Any("variables", VariableNames(vars)),
				slog.Bool("empty", outcome == headerEmptySolutions))
			rows := newRows(src, vars, header.index(), o)
			if outcome == headerEmptySolutions {
				rows.done = true
			}
			return &Solutions{Variables: vars, Rows: rows}, nil
		}
	}
}
