package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatTable, false},
		{"xml", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFormatterPrefersValue(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		Headers: []string{"type", "count"},
		Rows:    [][]string{{"provinces", "24"}},
		Value:   map[string]int{"provinces": 24},
	}

	err := (&JSONFormatter{Indent: "  "}).Format(&buf, data)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 24, decoded["provinces"])
}

func TestJSONFormatterFallsBackToRows(t *testing.T) {
	var buf bytes.Buffer
	data := Data{Rows: [][]string{{"a", "b"}}}

	err := (&JSONFormatter{}).Format(&buf, data)
	require.NoError(t, err)

	var decoded [][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, data.Rows, decoded)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := Data{Value: map[string]string{"status": "ok"}}

	err := (&YAMLFormatter{}).Format(&buf, data)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "status: ok")
}

func TestTableFormatterTitlesHeaders(t *testing.T) {
	var buf bytes.Buffer
	data := Data{
		Headers: []string{"type", "last sync"},
		Rows: [][]string{
			{"provinces", "never"},
			{"parks", "2026-08-29"},
		},
	}

	err := (&TableFormatter{}).Format(&buf, data)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Type")
	assert.Contains(t, out, "Last Sync")
	assert.Contains(t, out, "provinces")
	assert.Contains(t, out, "2026-08-29")
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
}

func TestTableFormatterEmptyRows(t *testing.T) {
	var buf bytes.Buffer

	err := (&TableFormatter{}).Format(&buf, Data{Headers: []string{"type"}})
	require.NoError(t, err)
}
