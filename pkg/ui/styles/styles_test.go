package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/nxj/pkg/ui/styles"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info", "Muted", "Bold",
		"FilePath", "Included", "Excluded", "TableHeader",
	} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.Equal(t, lipgloss.NewStyle().Render("x"), styles.GetStyle("Nope").Render("x"))
}

func TestLoadStylesFromData(t *testing.T) {
	original := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = original })

	err := styles.LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Accent:
    italic: true
    foreground: accent
    foreground_unknown: ignored
`))
	require.NoError(t, err)
	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Accent").GetItalic())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
