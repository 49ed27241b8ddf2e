package common

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree nests each element under its predecessor, so the tree reads
// as the forward chain from head.
func convertToTree(snapshot *Snapshot, options *PrintOptions) AsciiNode {
	var chain []AsciiNode
	for i := len(snapshot.Values) - 1; i >= 0; i-- {
		chain = []AsciiNode{{
			Label:    displayLabel(snapshot, i, options),
			Children: chain,
		}}
	}
	return AsciiNode{
		Label:    LabelHead,
		Props:    []string{fmt.Sprintf("count: %d", snapshot.Count)},
		Children: chain,
	}
}

func PrintListAsciiTree(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(snapshot, orDefaults(options))))
	return err
}
