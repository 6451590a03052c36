package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/shoe-card-service/internal/pkg/logger"
)

var (
	verbose bool
	log     = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cardctl",
		Short: "Preview catalog cards from product JSON",
		Long: `cardctl renders catalog cards locally, using the same variant,
price formatting and styling rules as the card service.

Examples:
  cardctl render -f shoe.json
  cardctl render -f shoes.json --now 2024-05-20 --json
  cardctl badge on-sale`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			l, err := logger.New(level, true)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRenderCmd(), newBadgeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
