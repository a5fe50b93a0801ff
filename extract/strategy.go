package extract

import "github.com/bhavya-dabas/docrank/model"

// Strategy attempts to extract text lines from the document at path.
// A strategy that runs cleanly but finds nothing returns an empty slice and
// a nil error; that is a "no data" outcome, not a failure.
type Strategy func(path string) ([]model.Line, error)

// FirstSuccess composes strategies into one that tries each in order and
// returns the first non-empty line set. Errors are remembered but do not
// stop the chain; if no strategy yields lines, the first error (if any) is
// returned alongside the empty result.
func FirstSuccess(strategies ...Strategy) Strategy {
	return func(path string) ([]model.Line, error) {
		var firstErr error
		for _, s := range strategies {
			lines, err := s(path)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if len(lines) > 0 {
				return lines, nil
			}
		}
		return nil, firstErr
	}
}
