package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

/**
 * Convert a struct to an ordered map keyed by its json tags
 * @param {interface{}} v - Struct value
 * @returns {*orderedmap.OrderedMap} Fields in declaration order
 */
func StructToOrderedMap(v interface{}) (*orderedmap.OrderedMap, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := orderedmap.New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// PrintFormat prints rows as a table on stdout, the columns are the keys of the first row.
func PrintFormat(dataList []*orderedmap.OrderedMap) {
	FprintFormat(os.Stdout, dataList)
}

func FprintFormat(w io.Writer, dataList []*orderedmap.OrderedMap) {
	if len(dataList) == 0 {
		return
	}
	keys := dataList[0].Keys()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(keys))
	for _, k := range keys {
		header = append(header, strings.ToUpper(k))
	}
	t.AppendHeader(header)

	for _, record := range dataList {
		row := make(table.Row, 0, len(keys))
		for _, k := range keys {
			v, _ := record.Get(k)
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	t.Render()
}

// Output formats accepted by PrintDocument.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// PrintDocument writes v as indented JSON or as YAML.
func PrintDocument(w io.Writer, v interface{}, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}
