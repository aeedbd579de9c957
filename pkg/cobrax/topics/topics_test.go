package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"option-verbose.txt":      {Data: []byte("Verbose help")},
		"classpath.md":            {Data: []byte("# Classpath\n\nHow entries are resolved")},
		"config.txxt":             {Data: []byte("Configuration Guide")},
		"ignore.json":             {Data: []byte("{}")},
		"advanced/repository.txt": {Data: []byte("Repository layout")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"option-verbose", true, "Verbose help"},
			{"classpath", true, "# Classpath\n\nHow entries are resolved"},
			{"repository", true, "Repository layout"},
			{"config", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"classpath", "classpath", true},
		{"option-verbose", "option-verbose", true},
		{"verbose", "option-verbose", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"classpath", "option-verbose", "repository"}, tm.ListTopics())
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "link",
		Short: "Link something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := Initialize(rootCmd, topicFS())
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd, &out
}

func TestInitialize(t *testing.T) {
	rootCmd, _ := newTestRoot(t)
	rootCmd.InitDefaultHelpCmd()

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
	assert.True(t, helpCmd.DisableFlagParsing)
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "topic",
			args: []string{"help", "repository"},
			want: []string{"Repository layout"},
		},
		{
			name: "option topic",
			args: []string{"help", "--verbose"},
			want: []string{"Verbose help"},
		},
		{
			name: "help flag ignored",
			args: []string{"help", "--help", "repository"},
			want: []string{"Repository layout"},
		},
		{
			name: "topic list",
			args: []string{"help", "topics"},
			want: []string{"General topics:", "  classpath", "Option topics:", "  --verbose", "testapp help <topic>"},
		},
		{
			name: "command help",
			args: []string{"help", "link"},
			want: []string{"Link something"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd, out := newTestRoot(t)
			rootCmd.SetArgs(tt.args)
			require.NoError(t, rootCmd.Execute())

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestHelpCommand_NoTopics(t *testing.T) {
	rootCmd := &cobra.Command{Use: "testapp"}
	rootCmd.AddCommand(&cobra.Command{Use: "link", Run: func(cmd *cobra.Command, args []string) {}})
	_, err := Initialize(rootCmd, fstest.MapFS{})
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "No help topics available.", strings.TrimSpace(out.String()))
}

func TestStripHelpFlags(t *testing.T) {
	assert.Equal(t, []string{"--verbose"}, stripHelpFlags([]string{"-h", "--verbose", "--help"}))
	assert.Empty(t, stripHelpFlags([]string{"--help"}))
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	rendered := (&GlamourRenderer{Style: "notty"}).Render("# Classpath", ".md")
	assert.Contains(t, rendered, "Classpath")
}
