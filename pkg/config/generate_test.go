package config

import (
	"strings"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/nxj/pkg/types"
)

func TestGenerateStarter(t *testing.T) {
	content, err := GenerateStarter(Starter{
		MainClass:     "com.example.Robot",
		BootClasspath: "/opt/lejos/lib/classes.jar",
		Dependencies: []types.Dependency{
			types.NewDependency("com.example", "sensors", "1.2"),
			{GroupID: "lejos", ArtifactID: "classes", Version: "0.9.1"},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(content, "# nxj project file"))

	var parsed map[string]interface{}
	require.NoError(t, gotoml.Unmarshal([]byte(content), &parsed))

	link := parsed["link"].(map[string]interface{})
	assert.Equal(t, "com.example.Robot", link["main_class"])
	assert.Equal(t, "LE", link["endianness"])

	deps := parsed["dependencies"].([]interface{})
	require.Len(t, deps, 2)
	second := deps[1].(map[string]interface{})
	assert.Equal(t, "compile", second["scope"], "missing scope is written as compile")
	_, hasType := second["type"]
	assert.False(t, hasType)
}

func TestGenerateStarter_NoDependencies(t *testing.T) {
	content, err := GenerateStarter(Starter{MainClass: "Main"})
	require.NoError(t, err)
	assert.NotContains(t, content, "[[dependencies]]")
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}
	assert.Contains(t, content, "# [link]")
	assert.Contains(t, content, `# tool = "nxjlink"`)

	// appended to a starter file, the result still parses
	starter, err := GenerateStarter(Starter{MainClass: "Main"})
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, gotoml.Unmarshal([]byte(starter+"\n"+content), &parsed))
	assert.Equal(t, "Main", parsed["link"].(map[string]interface{})["main_class"])
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# header\n\n[link]\nkey = 1\n  nested = \"x\""
	want := "# header\n\n[link]\n# key = 1\n#   nested = \"x\""
	assert.Equal(t, want, commentOutConfigValues(in, false))

	want = "# header\n\n# [link]\n# key = 1\n#   nested = \"x\""
	assert.Equal(t, want, commentOutConfigValues(in, true))
}
