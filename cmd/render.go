package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/startright-uk/startright/internal/config"
	"github.com/startright-uk/startright/internal/document"
	"github.com/startright-uk/startright/internal/order"
)

func renderCmd(cfg *config.Config) *cobra.Command {
	var (
		title     string
		orderPath string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "render [text-file]",
		Short: "Assemble a generated text file into a .docx document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			o := new(order.Order)
			if orderPath != "" {
				if o, err = readOrder(orderPath); err != nil {
					return err
				}
			}

			doc, err := document.NewAssembler(cfg.Business.Issuer).Assemble(string(text), title, o)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, doc, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "Business Plan", "Document title")
	cmd.Flags().StringVar(&orderPath, "order", "", "Order JSON file used for the title block")
	cmd.Flags().StringVarP(&output, "output", "o", "document.docx", "Output file")

	return cmd
}

func readOrder(path string) (*order.Order, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	o := new(order.Order)
	if err := json.Unmarshal(b, o); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", path, err)
	}

	return o, nil
}
