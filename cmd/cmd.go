package cmd

import (
	"context"
	"log/slog"

	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/internal/config"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:  "haven",
	Long: `Creator platform backend: mint orchestration and ledger state views`,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g.  `./config.yaml`")
	flags.String("network", common.NetworkLiskSepolia.String(), "network to connect to, E.g. `lisk` or `lisk-sepolia`")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)

		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands and handlers
	cmd.AddCommand(
		NewRunCommand(),
		NewVersionCommand(),
	)

	// Execute command
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Panic("Failed to execute root command", slogx.Error(err))
	}
}
