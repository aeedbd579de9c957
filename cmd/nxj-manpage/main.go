package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/nxj/cmd/nxj"
	"github.com/arthur-debert/nxj/internal/version"
)

func main() {
	rootCmd := nxj.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NXJ",
		Section: "1",
		Source:  "nxj " + version.Version,
		Manual:  "nxj manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
