package common

import (
	"encoding/xml"
	"fmt"
	"io"
)

type xmlItem struct {
	Index *int   `xml:"index,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xmlList struct {
	XMLName xml.Name  `xml:"list"`
	Count   int       `xml:"count,attr"`
	Items   []xmlItem `xml:"item"`
}

func PrintListXML(snapshot *Snapshot, indentDelta string, output io.Writer, options *PrintOptions) error {
	options = orDefaults(options)
	doc := xmlList{Count: snapshot.Count, Items: make([]xmlItem, len(snapshot.Values))}
	for i, value := range snapshot.Values {
		doc.Items[i].Value = value
		if options.IncludeIndex {
			index := i
			doc.Items[i].Index = &index
		}
	}
	encoder := xml.NewEncoder(output)
	encoder.Indent("", indentDelta)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	_, err := fmt.Fprintln(output)
	return err
}
