package common

import (
	"encoding/json"
	"fmt"
	"io"
)

func PrintListJSON(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if indentDelta != "" {
		encoder.SetIndent("", indentDelta)
	}
	return encoder.Encode(snapshot)
}

// ReadSnapshotJSON decodes a snapshot written by PrintListJSON. A missing
// count is taken from the values; a count that disagrees with them is an
// error.
func ReadSnapshotJSON(input io.Reader) (*Snapshot, error) {
	var wire struct {
		Count  *int     `json:"count"`
		Values []string `json:"values"`
	}
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&wire)
	if err != nil {
		return nil, err
	}
	snapshot := &Snapshot{Count: len(wire.Values), Values: wire.Values}
	if snapshot.Values == nil {
		snapshot.Values = []string{}
	}
	if wire.Count != nil && *wire.Count != len(snapshot.Values) {
		return nil, fmt.Errorf("snapshot count %d does not match %d values", *wire.Count, len(snapshot.Values))
	}
	return snapshot, nil
}
