package main

import (
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/cobra"

	"github.com/startright-uk/startright/internal/api/rest/middlewares"
	"github.com/startright-uk/startright/internal/config"
)

func lambdaCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve the API as an AWS Lambda function behind an API Gateway HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cfg, os.Stdout)
			if err != nil {
				return err
			}
			logger.Info("lambda_starting", "provider", cfg.Generation.Provider)

			handler, err := newAPIHandler(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("lambda_init_failed", "error", err)
				return err
			}

			proxy := httpadapter.NewV2(middlewares.NewGatewayRequestIDMiddleware().Handle(handler))
			awslambda.Start(proxy.ProxyWithContext)
			return nil
		},
	}
}
