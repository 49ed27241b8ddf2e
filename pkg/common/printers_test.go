package common

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/spicery/customlist/pkg/list"
)

func TestTrimValue(t *testing.T) {
	tests := []struct {
		value    string
		trim     int
		expected string
	}{
		{"abcdef", 0, "abcdef"},
		{"abcdef", 10, "abcdef"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "a"},
	}
	for _, tt := range tests {
		if got := TrimValue(tt.value, tt.trim); got != tt.expected {
			t.Errorf("Expected TrimValue(%q, %d) = %q, got %q", tt.value, tt.trim, tt.expected, got)
		}
	}
}

func TestSnapshotOf(t *testing.T) {
	s := SnapshotOf(list.New(1, 2, 3))
	if s.Count != 3 {
		t.Errorf("Expected count 3, got %d", s.Count)
	}
	if strings.Join(s.Values, ",") != "1,2,3" {
		t.Errorf("Expected values 1,2,3, got %v", s.Values)
	}
	if got := s.ToList().String(); got != "[1 2 3]" {
		t.Errorf("Expected [1 2 3], got %s", got)
	}
}

func TestPickPrintFunc(t *testing.T) {
	for _, format := range []string{"json", "YAML", "xml", "asciitree", "dot", "Mermaid"} {
		if _, err := PickPrintFunc(format); err != nil {
			t.Errorf("Expected format %s to be known, got %v", format, err)
		}
	}
	if _, err := PickPrintFunc("csv"); err == nil {
		t.Errorf("Expected error for unknown format")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := SnapshotOf(list.New("a", "b"))
	if err := PrintListJSON(original, "", &buf, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"count":2,"values":["a","b"]}` {
		t.Errorf("Unexpected JSON: %s", got)
	}
	read, err := ReadSnapshotJSON(&buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if read.Count != 2 || read.Values[1] != "b" {
		t.Errorf("Expected snapshot to survive round trip, got %+v", read)
	}
}

func TestReadSnapshotJSONValidation(t *testing.T) {
	s, err := ReadSnapshotJSON(strings.NewReader(`{"values":["x"]}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Count != 1 {
		t.Errorf("Expected count inferred as 1, got %d", s.Count)
	}
	if _, err := ReadSnapshotJSON(strings.NewReader(`{"count":3,"values":["x"]}`)); err == nil {
		t.Errorf("Expected mismatched count to be rejected")
	}
	if _, err := ReadSnapshotJSON(strings.NewReader(`{"count":0,"values":["x"]}`)); err == nil {
		t.Errorf("Expected explicit zero count with one value to be rejected")
	}
	zero, err := ReadSnapshotJSON(strings.NewReader(`{"count":0,"values":[]}`))
	if err != nil || zero.Count != 0 {
		t.Errorf("Expected explicit zero count on no values to be accepted, got %+v (%v)", zero, err)
	}
	if _, err := ReadSnapshotJSON(strings.NewReader(`not json`)); err == nil {
		t.Errorf("Expected malformed input to be rejected")
	}
	empty, err := ReadSnapshotJSON(strings.NewReader(`{}`))
	if err != nil || empty.Count != 0 || len(empty.Values) != 0 {
		t.Errorf("Expected empty snapshot, got %+v (%v)", empty, err)
	}
}

func TestPrintListYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintListYAML(SnapshotOf(list.New(1, 2)), "  ", &buf, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var read Snapshot
	if err := yaml.Unmarshal(buf.Bytes(), &read); err != nil {
		t.Fatalf("Expected valid YAML, got %v:\n%s", err, buf.String())
	}
	if read.Count != 2 || len(read.Values) != 2 || read.Values[0] != "1" {
		t.Errorf("Expected count 2 and values [1 2], got %+v", read)
	}
	if !strings.HasPrefix(buf.String(), "count: 2\n") {
		t.Errorf("Expected count first, got %q", buf.String())
	}
}

func TestPrintListXML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintListXML(SnapshotOf(list.New("a")), "", &buf, &PrintOptions{IncludeIndex: true}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := `<list count="1"><item index="0">a</item></list>` + "\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestPrintListDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintListDOT(SnapshotOf(list.New(`say "hi"`, "x")), "", &buf, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`"head" -> "node_0";`,
		`"node_0" -> "node_1";`,
		`"node_1" -> "nil";`,
		`label="say \"hi\""`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected DOT output to contain %s, got:\n%s", want, out)
		}
	}

	buf.Reset()
	_ = PrintListDOT(SnapshotOf(list.New[int]()), "", &buf, nil)
	if !strings.Contains(buf.String(), `"head" -> "nil";`) {
		t.Errorf("Expected empty list head to point at nil, got:\n%s", buf.String())
	}
}

func TestPrintListMermaid(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintListMermaid(SnapshotOf(list.New(7)), "", &buf, &PrintOptions{IncludeIndex: true}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "flowchart LR\n  head([head])\n  head --> n0[\"0: 7\"]\n  n0 --> nil((nil))\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConvertToTreeNestsChain(t *testing.T) {
	tree := convertToTree(SnapshotOf(list.New("a", "b", "c")), &PrintOptions{TrimValueOnOutput: 0})
	if tree.Label != LabelHead || tree.Props[0] != "count: 3" {
		t.Errorf("Unexpected root: %+v", tree)
	}
	var labels []string
	for node := tree.Children; len(node) > 0; node = node[0].Children {
		if len(node) != 1 {
			t.Fatalf("Expected exactly one successor, got %d", len(node))
		}
		labels = append(labels, node[0].Label)
	}
	if strings.Join(labels, "") != "abc" {
		t.Errorf("Expected chain a->b->c, got %v", labels)
	}

	var buf bytes.Buffer
	if err := PrintListAsciiTree(SnapshotOf(list.New("a")), "", &buf, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "head") || !strings.Contains(buf.String(), "a") {
		t.Errorf("Expected rendered tree to mention head and a, got %q", buf.String())
	}
}

func TestPrintOptionsMerge(t *testing.T) {
	var unset *PrintOptions
	merged := unset.Merge(&PrintOptions{Format: "DOT", Indent: 4})
	if merged.Format != "DOT" || merged.Indent != 4 {
		t.Errorf("Expected defaults to fill nil options, got %+v", merged)
	}
	merged = (&PrintOptions{Format: "JSON"}).Merge(&PrintOptions{Format: "DOT", TrimValueOnOutput: 3})
	if merged.Format != "JSON" || merged.TrimValueOnOutput != 3 {
		t.Errorf("Expected set fields to win, got %+v", merged)
	}
}
