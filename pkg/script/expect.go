package script

import (
	"fmt"
	"slices"

	"github.com/spicery/customlist/pkg/list"
)

// Check compares an outcome, and the list it left behind, with the
// expectation. It returns one message per mismatch. An error the
// expectation does not name is always a mismatch.
func (e *Expect) Check(outcome Outcome, l *list.List[any]) []string {
	var mismatches []string
	kind := KindOf(outcome.Err)
	if e == nil {
		if outcome.Err != nil {
			mismatches = append(mismatches, fmt.Sprintf("unexpected error: %v", outcome.Err))
		}
		return mismatches
	}
	if e.Error != nil {
		if kind != *e.Error {
			mismatches = append(mismatches, fmt.Sprintf("expected error %s, got %s", *e.Error, kind))
		}
	} else if outcome.Err != nil {
		mismatches = append(mismatches, fmt.Sprintf("unexpected error: %v", outcome.Err))
	}
	if e.Value != nil && !SameValue(e.Value.V, outcome.Value) {
		mismatches = append(mismatches, fmt.Sprintf("expected value %v (%T), got %v (%T)", e.Value.V, e.Value.V, outcome.Value, outcome.Value))
	}
	if e.Count != nil && l.Len() != *e.Count {
		mismatches = append(mismatches, fmt.Sprintf("expected count %d, got %d", *e.Count, l.Len()))
	}
	if e.Found != nil {
		if outcome.Found == nil {
			mismatches = append(mismatches, "expected a found result, got none")
		} else if *outcome.Found != *e.Found {
			mismatches = append(mismatches, fmt.Sprintf("expected found %v, got %v", *e.Found, *outcome.Found))
		}
	}
	if e.Index != nil {
		if outcome.Index == nil {
			mismatches = append(mismatches, "expected an index result, got none")
		} else if *outcome.Index != *e.Index {
			mismatches = append(mismatches, fmt.Sprintf("expected index %d, got %d", *e.Index, *outcome.Index))
		}
	}
	if e.Sequence != nil {
		if got := l.ToSlice(); !slices.EqualFunc(e.Sequence, got, SameValue) {
			mismatches = append(mismatches, fmt.Sprintf("expected sequence %v, got %v", e.Sequence, got))
		}
	}
	if e.Buffer != nil && !slices.EqualFunc(e.Buffer, outcome.Buffer, SameValue) {
		mismatches = append(mismatches, fmt.Sprintf("expected buffer %v, got %v", e.Buffer, outcome.Buffer))
	}
	return mismatches
}
