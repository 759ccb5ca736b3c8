package process

import (
	"fmt"

	"github.com/cwbudde/algo-sac/sac"
)

// Op is a single-trace, in-place transform.
type Op func(*sac.Trace) error

// Each applies op to every trace in index order. It stops at the first
// failure and reports the failing index; earlier traces stay modified.
func Each(traces []*sac.Trace, op Op) error {
	for i, t := range traces {
		if err := op(t); err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return nil
}

// Copy applies op to a deep copy of t and returns the copy. t is never
// modified.
func Copy(t *sac.Trace, op Op) (*sac.Trace, error) {
	c := t.Clone()
	if err := op(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyAll applies op to deep copies of traces and returns the copies.
func CopyAll(traces []*sac.Trace, op Op) ([]*sac.Trace, error) {
	clones := cloneAll(traces)
	if err := Each(clones, op); err != nil {
		return nil, err
	}
	return clones, nil
}

func cloneAll(traces []*sac.Trace) []*sac.Trace {
	clones := make([]*sac.Trace, len(traces))
	for i, t := range traces {
		clones[i] = t.Clone()
	}
	return clones
}
