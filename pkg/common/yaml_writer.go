package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintListYAML(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	indent := orDefaults(options).Indent
	if indent == 0 {
		indent = len(indentDelta)
	}
	if indent > 0 {
		encoder.SetIndent(indent)
	}
	if err := encoder.Encode(snapshot); err != nil {
		return err
	}
	return encoder.Close()
}
