package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/startright-uk/startright/internal/config"
	"github.com/startright-uk/startright/internal/version"
)

// LambdaRuntimeEnv is set by the AWS Lambda runtime.
const LambdaRuntimeEnv = "AWS_LAMBDA_RUNTIME_API"

func main() {
	rootCmd := newRootCmd()
	if len(os.Args) == 1 && os.Getenv(LambdaRuntimeEnv) != "" {
		rootCmd.SetArgs([]string{"lambda"})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        = new(config.Config)
	)

	rootCmd := &cobra.Command{
		Use:           "startright",
		Short:         "StartRight UK order and chat API",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}

			*cfg = *loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults to $"+config.ConfigPathEnv+")")

	rootCmd.AddCommand(serveCmd(cfg))
	rootCmd.AddCommand(lambdaCmd(cfg))
	rootCmd.AddCommand(renderCmd(cfg))
	rootCmd.AddCommand(promptCmd(cfg))

	return rootCmd
}
