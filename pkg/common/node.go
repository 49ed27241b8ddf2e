package common

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/spicery/customlist/pkg/list"
)

// Snapshot is the rendered view of a list: its count and the textual form of
// each element, head first.
type Snapshot struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"list"`
	Count   int      `json:"count" yaml:"count" xml:"count,attr"`
	Values  []string `json:"values" yaml:"values" xml:"item"`
}

const FormatJSON = "JSON"
const FormatYAML = "YAML"
const FormatXML = "XML"
const FormatAsciiTree = "ASCIITREE"
const FormatDOT = "DOT"
const FormatMermaid = "MERMAID"

const LabelHead = "head"
const LabelNil = "nil"

// PrintFunc writes a snapshot to output in one format.
type PrintFunc func(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error

// SnapshotOf renders every element of l with fmt.Sprint.
func SnapshotOf[T any](l *list.List[T]) *Snapshot {
	s := &Snapshot{Count: l.Len(), Values: make([]string, 0, l.Len())}
	for v := range l.Values() {
		s.Values = append(s.Values, fmt.Sprint(v))
	}
	return s
}

// ToList rebuilds a list of the snapshot's values.
func (s *Snapshot) ToList() *list.List[string] {
	return list.New(s.Values...)
}

// TrimValue shortens value to trimLength characters, ending in an ellipsis.
func TrimValue(value string, trimLength int) string {
	if trimLength > 0 && len(value) > trimLength {
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return value[:trimLength-1] + "…"
		}
		return value[:trimLength]
	}
	return value
}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case FormatJSON:
		return PrintListJSON, nil
	case FormatXML:
		return PrintListXML, nil
	case FormatYAML:
		return PrintListYAML, nil
	case FormatMermaid:
		return PrintListMermaid, nil
	case FormatAsciiTree:
		return PrintListAsciiTree, nil
	case FormatDOT:
		return PrintListDOT, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// displayLabel is the label shown for the element at index by the diagram
// formats.
func displayLabel(s *Snapshot, index int, options *PrintOptions) string {
	value := TrimValue(s.Values[index], options.TrimValueOnOutput)
	if options.IncludeIndex {
		return fmt.Sprintf("%d: %s", index, value)
	}
	return value
}

func orDefaults(options *PrintOptions) *PrintOptions {
	if options == nil {
		return &PrintOptions{}
	}
	return options
}
