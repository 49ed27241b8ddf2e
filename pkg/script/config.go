package script

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/spicery/customlist/pkg/common"
)

// Op names accepted in a step's "op" field.
const (
	OpNew      = "new"
	OpAdd      = "add"
	OpInsert   = "insert"
	OpRemoveAt = "removeAt"
	OpRemove   = "remove"
	OpGet      = "get"
	OpSet      = "set"
	OpContains = "contains"
	OpIndexOf  = "indexOf"
	OpClear    = "clear"
	OpCopyTo   = "copyTo"
	OpCount    = "count"
	OpIterate  = "iterate"
)

// Ops lists every known op in documentation order.
var Ops = []string{OpNew, OpAdd, OpInsert, OpRemoveAt, OpRemove, OpGet, OpSet, OpContains, OpIndexOf, OpClear, OpCopyTo, OpCount, OpIterate}

// Sources accepted by the "new" op.
const (
	FromSlice = "slice"
	FromSeq   = "seq"
)

// Script is the top-level structure of an operation script.
type Script struct {
	Name        string               `yaml:"name,omitempty"`
	Description string               `yaml:"description,omitempty"`
	Initial     []any                `yaml:"initial,omitempty"`
	Options     *common.PrintOptions `yaml:"options,omitempty"`
	Steps       []Step               `yaml:"steps"`
}

// Step is one list operation with its arguments and optional expectations.
// A missing or null value is the absent value.
type Step struct {
	Op     string  `yaml:"op"`
	Index  *int    `yaml:"index,omitempty"`
	Value  any     `yaml:"value,omitempty"`
	Values []any   `yaml:"values,omitempty"`
	From   string  `yaml:"from,omitempty"`
	Size   *int    `yaml:"size,omitempty"`
	Offset int     `yaml:"offset,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists the checks applied after a step. Unset fields are not
// checked.
type Expect struct {
	Value    *ExpectedValue `yaml:"value,omitempty"`
	Count    *int           `yaml:"count,omitempty"`
	Found    *bool          `yaml:"found,omitempty"`
	Index    *int           `yaml:"index,omitempty"`
	Error    *string        `yaml:"error,omitempty"`
	Sequence []any          `yaml:"sequence,omitempty"`
	Buffer   []any          `yaml:"buffer,omitempty"`
}

// ExpectedValue holds a decoded scalar or collection so that an expected
// value of 0, false, "" or null is still distinguishable from no
// expectation.
type ExpectedValue struct {
	V any
}

// UnmarshalYAML decodes the expectation fields, then records an explicit
// "value: null" as an expected absent value. yaml.v3 leaves a pointer field
// nil for null without calling ExpectedValue.UnmarshalYAML.
func (e *Expect) UnmarshalYAML(node *yaml.Node) error {
	type plain Expect
	if err := node.Decode((*plain)(e)); err != nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "value" && e.Value == nil {
			e.Value = &ExpectedValue{}
		}
	}
	return nil
}

func (e *ExpectedValue) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&e.V)
}

func needsIndex(op string) bool {
	switch op {
	case OpInsert, OpRemoveAt, OpGet, OpSet:
		return true
	}
	return false
}

func takesValue(op string) bool {
	switch op {
	case OpAdd, OpInsert, OpRemove, OpSet, OpContains, OpIndexOf:
		return true
	}
	return false
}

// Validate checks that the step's fields fit its op.
func (s Step) Validate() error {
	if s.Op == "" {
		return fmt.Errorf("missing 'op'")
	}
	if !slices.Contains(Ops, s.Op) {
		return fmt.Errorf("unknown op '%s'", s.Op)
	}
	if needsIndex(s.Op) && s.Index == nil {
		return fmt.Errorf("op '%s' requires 'index'", s.Op)
	}
	if !needsIndex(s.Op) && s.Index != nil {
		return fmt.Errorf("op '%s' does not take 'index'", s.Op)
	}
	if s.Value != nil && !takesValue(s.Op) {
		return fmt.Errorf("op '%s' does not take 'value'", s.Op)
	}
	if s.Op != OpNew && (s.Values != nil || s.From != "") {
		return fmt.Errorf("only op '%s' takes 'values' and 'from'", OpNew)
	}
	if s.From != "" && s.From != FromSlice && s.From != FromSeq {
		return fmt.Errorf("invalid 'from' value '%s': expected '%s' or '%s'", s.From, FromSlice, FromSeq)
	}
	if s.Op != OpCopyTo && (s.Size != nil || s.Offset != 0) {
		return fmt.Errorf("only op '%s' takes 'size' and 'offset'", OpCopyTo)
	}
	if s.Size != nil && *s.Size < 0 {
		return fmt.Errorf("invalid 'size' %d: must not be negative", *s.Size)
	}
	return nil
}

// ToAction converts a Step to a concrete Action implementation.
func (s Step) ToAction() (Action, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Op {
	case OpNew:
		return &NewAction{Values: s.Values, FromSeq: s.From == FromSeq}, nil
	case OpAdd:
		return &AddAction{Value: s.Value}, nil
	case OpInsert:
		return &InsertAction{Index: *s.Index, Value: s.Value}, nil
	case OpRemoveAt:
		return &RemoveAtAction{Index: *s.Index}, nil
	case OpRemove:
		return &RemoveAction{Value: s.Value}, nil
	case OpGet:
		return &GetAction{Index: *s.Index}, nil
	case OpSet:
		return &SetAction{Index: *s.Index, Value: s.Value}, nil
	case OpContains:
		return &ContainsAction{Value: s.Value}, nil
	case OpIndexOf:
		return &IndexOfAction{Value: s.Value}, nil
	case OpClear:
		return &ClearAction{}, nil
	case OpCopyTo:
		return &CopyToAction{Size: s.Size, Offset: s.Offset}, nil
	case OpCount:
		return &CountAction{}, nil
	case OpIterate:
		return &IterateAction{}, nil
	}
	// Validate has already rejected anything else.
	return nil, fmt.Errorf("no action for op '%s'", s.Op)
}

// LoadScript loads a Script from a YAML file.
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename) // #nosec G304 - CLI tool reads user-specified script files
	if err != nil {
		return nil, fmt.Errorf("failed to read script file '%s': %w", filename, err)
	}

	script, err := LoadScriptFromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML in script file '%s': %w", filename, err)
	}
	return script, nil
}

// LoadScriptFromString loads a Script from a YAML string.
func LoadScriptFromString(yamlContent string) (*Script, error) {
	var script Script
	err := yaml.Unmarshal([]byte(yamlContent), &script)
	if err != nil {
		return nil, err
	}

	return &script, nil
}
