package nxj

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nxj/pkg/cobrax/topics"
)

//go:embed topics
var topicsFS embed.FS

func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return err
	}
	_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	return err
}
