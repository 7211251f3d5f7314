package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pickupctl",
		Short:        "Operate the pickup resolver: seed catalog fixtures and run resolves.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newSeedCommand(), newResolveCommand())
	return cmd
}
