package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tagcat/internal/cli"
	"tagcat/internal/cli/commands"
	"tagcat/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tagcat",
		Short:   "Catalog of tagged C++ test cases",
		Long:    `Scan Catch style test sources, resolve their bracketed tags into tags and properties, and list, browse or export the resulting catalog.`,
		Version: version,
	}

	cfg := config.New()
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, afero.NewOsFs(), clockwork.NewRealClock())
	cmds.Register(rootCmd, &flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
