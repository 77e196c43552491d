package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/startright-uk/startright/internal/config"
	"github.com/startright-uk/startright/internal/order"
	"github.com/startright-uk/startright/internal/prompt"
)

func promptCmd(cfg *config.Config) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "prompt [order-file]",
		Short: "Print the generation prompt for an order and artifact kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := readOrder(args[0])
			if err != nil {
				return err
			}

			text := prompt.NewBuilder(cfg.Business.Reviewer).Build(o, order.ArtifactKind(kind))
			if text == "" {
				return fmt.Errorf("unknown artifact kind %q", kind)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(order.ArtifactPlan), "Artifact kind (study, plan, name-suggestions, advice, formation-checklist)")

	return cmd
}
