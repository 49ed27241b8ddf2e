package common

import (
	"fmt"
	"io"
	"strings"
)

func PrintListDOT(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	options = orDefaults(options)
	var b strings.Builder

	// Initialize the DOT graph
	fmt.Fprintln(&b, `digraph G {`)
	fmt.Fprintln(&b, `  bgcolor="transparent";`)
	fmt.Fprintln(&b, `  rankdir="LR";`)
	fmt.Fprintln(&b, `  node [shape="box", style="filled", fontname="Ubuntu Mono"];`)
	fmt.Fprintf(&b, "  \"%s\" [label=\"%s\", shape=\"plaintext\", style=\"\"];\n", LabelHead, LabelHead)

	previous := LabelHead
	for i := range snapshot.Values {
		nodeID := fmt.Sprintf("node_%d", i)
		fillColor := nodeColors[i%len(nodeColors)]
		fmt.Fprintf(&b, "  \"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", nodeID, escapeDOTValue(displayLabel(snapshot, i, options)), fillColor)
		fmt.Fprintf(&b, "  \"%s\" -> \"%s\";\n", previous, nodeID)
		previous = nodeID
	}

	// The chain always ends in nil, which is also where head points when empty.
	fmt.Fprintf(&b, "  \"%s\" [label=\"%s\", shape=\"point\"];\n", LabelNil, LabelNil)
	fmt.Fprintf(&b, "  \"%s\" -> \"%s\";\n", previous, LabelNil)

	// Close the graph
	fmt.Fprintln(&b, `}`)
	_, err := io.WriteString(output, b.String())
	return err
}

func escapeDOTValue(value string) string {
	// Escape special characters for DOT format
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

var nodeColors = []string{
	"lightgoldenrodyellow",
	"PaleTurquoise",
}
