package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// newBadgeCmd prints the badge metadata of a variant.
func newBadgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "badge [variant]",
		Short:     "Show the badge label and emphasis for a variant",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on-sale", "new-release", "default"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := domain.ParseVariant(args[0])
			if err != nil {
				return err
			}
			badge, ok := domain.BadgeFor(v)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no badge\n", v)
				return nil
			}
			b, err := json.Marshal(badge)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
