package utils

import (
	"bytes"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func TestStructToOrderedMapKeepsFieldOrder(t *testing.T) {
	m, err := StructToOrderedMap(row{Name: "debug", Type: "BOOLEAN", Value: "false"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "type", "value"}, m.Keys())
	v, ok := m.Get("value")
	assert.True(t, ok)
	assert.Equal(t, "false", v)
}

func TestFprintFormat(t *testing.T) {
	m, err := StructToOrderedMap(row{Name: "debug", Type: "BOOLEAN", Value: "false"})
	require.NoError(t, err)

	var buf bytes.Buffer
	FprintFormat(&buf, []*orderedmap.OrderedMap{m})
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "BOOLEAN")

	buf.Reset()
	FprintFormat(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestPrintDocument(t *testing.T) {
	doc := map[string]interface{}{"name": "app1", "roles": []interface{}{"web"}}

	var buf bytes.Buffer
	require.NoError(t, PrintDocument(&buf, doc, FormatJSON))
	assert.JSONEq(t, `{"name": "app1", "roles": ["web"]}`, buf.String())

	buf.Reset()
	require.NoError(t, PrintDocument(&buf, doc, FormatYAML))
	assert.Equal(t, "name: app1\nroles:\n  - web\n", buf.String())

	assert.Error(t, PrintDocument(&buf, doc, "xml"))
}

func TestQuery(t *testing.T) {
	doc := map[string]interface{}{
		"servicename": "eslap://acme/services/web/1.0",
		"roles": []interface{}{
			map[string]interface{}{"name": "web"},
			map[string]interface{}{"name": "db"},
		},
	}

	values, err := Query(doc, "$.servicename")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"eslap://acme/services/web/1.0"}, values)

	values, err = Query(doc, "$.roles[*].name")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"web", "db"}, values)

	_, err = Query(doc, "$.roles[")
	assert.Error(t, err)
}
