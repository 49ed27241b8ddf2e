package script

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/spicery/customlist/pkg/list"
)

// Error kinds reported for list errors.
const (
	KindNone             = "none"
	KindInvalidArgument  = "InvalidArgument"
	KindIndexOutOfRange  = "IndexOutOfRange"
	KindInvalidOperation = "InvalidOperation"
	KindOther            = "Other"
)

// ErrorKinds lists the kinds an expectation may name.
var ErrorKinds = []string{KindNone, KindInvalidArgument, KindIndexOutOfRange, KindInvalidOperation}

// KindOf classifies err by the list sentinel it wraps.
func KindOf(err error) string {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, list.ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, list.ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, list.ErrInvalidOperation):
		return KindInvalidOperation
	}
	return KindOther
}

// SameValue is the element equality used for script lists. Scalars decoded
// from YAML keep their type, so 1 and "1" differ.
func SameValue(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// State is what actions operate on.
type State struct {
	List *list.List[any]
}

// Outcome is what an action produced. Only the fields meaningful for the
// op are set.
type Outcome struct {
	Value  any
	Found  *bool
	Index  *int
	Buffer []any
	Err    error
}

func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return "error: " + o.Err.Error()
	case o.Found != nil:
		return fmt.Sprint(*o.Found)
	case o.Index != nil:
		return fmt.Sprint(*o.Index)
	case o.Buffer != nil:
		return fmt.Sprint(o.Buffer)
	case o.Value != nil:
		return fmt.Sprint(o.Value)
	}
	return "ok"
}

type Action interface {
	Apply(state *State) Outcome
}

////////////////////////////////////////////////////////////////////////////////
/// Actions
////////////////////////////////////////////////////////////////////////////////

// NewAction replaces the list with one built from Values. Nil Values is the
// absent source.
type NewAction struct {
	Values  []any
	FromSeq bool
}

func (a *NewAction) Apply(state *State) Outcome {
	var l *list.List[any]
	var err error
	if a.FromSeq {
		var seq iter.Seq[any]
		if a.Values != nil {
			seq = slices.Values(a.Values)
		}
		l, err = list.FromSeqFunc[any](SameValue, seq)
	} else {
		l, err = list.FromSliceFunc[any](SameValue, a.Values)
	}
	if err != nil {
		return Outcome{Err: err}
	}
	state.List = l
	return Outcome{}
}

type AddAction struct {
	Value any
}

func (a *AddAction) Apply(state *State) Outcome {
	return Outcome{Err: state.List.Add(a.Value)}
}

type InsertAction struct {
	Index int
	Value any
}

func (a *InsertAction) Apply(state *State) Outcome {
	return Outcome{Err: state.List.Insert(a.Index, a.Value)}
}

type RemoveAtAction struct {
	Index int
}

func (a *RemoveAtAction) Apply(state *State) Outcome {
	return Outcome{Err: state.List.RemoveAt(a.Index)}
}

type RemoveAction struct {
	Value any
}

func (a *RemoveAction) Apply(state *State) Outcome {
	found, err := state.List.Remove(a.Value)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Found: &found}
}

type GetAction struct {
	Index int
}

func (a *GetAction) Apply(state *State) Outcome {
	value, err := state.List.Get(a.Index)
	return Outcome{Value: value, Err: err}
}

type SetAction struct {
	Index int
	Value any
}

func (a *SetAction) Apply(state *State) Outcome {
	return Outcome{Err: state.List.Set(a.Index, a.Value)}
}

type ContainsAction struct {
	Value any
}

func (a *ContainsAction) Apply(state *State) Outcome {
	found := state.List.Contains(a.Value)
	return Outcome{Found: &found}
}

type IndexOfAction struct {
	Value any
}

func (a *IndexOfAction) Apply(state *State) Outcome {
	index := state.List.IndexOf(a.Value)
	return Outcome{Index: &index}
}

type ClearAction struct{}

func (a *ClearAction) Apply(state *State) Outcome {
	state.List.Clear()
	return Outcome{}
}

// CopyToAction copies into a fresh buffer of Size slots. A nil Size is the
// absent buffer.
type CopyToAction struct {
	Size   *int
	Offset int
}

func (a *CopyToAction) Apply(state *State) Outcome {
	var buffer []any
	if a.Size != nil {
		buffer = make([]any, *a.Size)
	}
	err := state.List.CopyTo(buffer, a.Offset)
	return Outcome{Buffer: buffer, Err: err}
}

type CountAction struct{}

func (a *CountAction) Apply(state *State) Outcome {
	return Outcome{Value: state.List.Len()}
}

// IterateAction walks the list with a cursor and returns what it saw.
type IterateAction struct{}

func (a *IterateAction) Apply(state *State) Outcome {
	seen := []any{}
	for it := state.List.Iterator(); it.Next(); {
		seen = append(seen, it.Value())
	}
	return Outcome{Buffer: seen}
}
