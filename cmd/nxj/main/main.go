package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/nxj/cmd/nxj"
	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/ui/styles"
)

func main() {
	// Ctrl-C cancels a running link or upload and kills the child tool
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := nxj.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
