package common

import (
	"fmt"
	"io"
	"strings"
)

func PrintListMermaid(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	options = orDefaults(options)
	if indentDelta == "" {
		indentDelta = "  "
	}
	var b strings.Builder
	fmt.Fprintln(&b, "flowchart LR")
	fmt.Fprintf(&b, "%s%s([%s])\n", indentDelta, LabelHead, LabelHead)
	previous := LabelHead
	for i := range snapshot.Values {
		nodeID := fmt.Sprintf("n%d", i)
		fmt.Fprintf(&b, "%s%s --> %s[\"%s\"]\n", indentDelta, previous, nodeID, escapeMermaidValue(displayLabel(snapshot, i, options)))
		previous = nodeID
	}
	fmt.Fprintf(&b, "%s%s --> %s((%s))\n", indentDelta, previous, LabelNil, LabelNil)
	_, err := io.WriteString(output, b.String())
	return err
}

func escapeMermaidValue(value string) string {
	return strings.ReplaceAll(value, `"`, "#quot;")
}
