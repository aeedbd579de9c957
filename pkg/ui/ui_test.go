package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sampleTable struct {
	Items []sampleItem `json:"items" yaml:"items"`
}

type sampleItem struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

func (s sampleTable) Header() []string { return []string{"name", "path"} }

func (s sampleTable) Rows() [][]string {
	rows := make([][]string, len(s.Items))
	for i, item := range s.Items {
		rows[i] = []string{item.Name, item.Path}
	}
	return rows
}

func (s sampleTable) Summary() string { return "2 items" }

var sample = sampleTable{Items: []sampleItem{
	{Name: "classes", Path: "/repo/lejos/classes/0.9.1/classes-0.9.1.jar"},
	{Name: "sensors", Path: "/repo/com/example/sensors/1.2/sensors-1.2.jar"},
}}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"TEXT", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", FormatAuto, true},
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
			if tt.in != "" && tt.in != "TEXT" && tt.in != "plain" && tt.in != "yml" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestNewRenderer_AutoWithBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "done\n", buf.String())
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sample))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "classes-0.9.1.jar")
	assert.Equal(t, "2 items", lines[3])

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult("just a string"))
	assert.Equal(t, "just a string\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sample))
	assert.Contains(t, buf.String(), "sensors-1.2.jar")
	assert.Contains(t, buf.String(), "2 items")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sample))
	assert.Contains(t, buf.String(), `"name": "classes"`)
	assert.NotContains(t, buf.String(), "2 items")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sample))

	var decoded sampleTable
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)

	buf.Reset()
	require.NoError(t, r.RenderMessage("ok"))
	assert.Equal(t, "message: ok\n", buf.String())
}
