package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/fenotesb/helping-hands-platform/internal/config"
	"github.com/fenotesb/helping-hands-platform/internal/handler"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	cfg := config.Load()
	h := handler.NewOrderHandler(cfg, logger)

	lambda.Start(h.Capture)
}
