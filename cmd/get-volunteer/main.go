package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/fenotesb/helping-hands-platform/internal/config"
	"github.com/fenotesb/helping-hands-platform/internal/handler"
	"github.com/fenotesb/helping-hands-platform/internal/storage"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	cfg := config.Load()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatalw("failed to load AWS config", "error", err)
	}

	volunteers := storage.NewVolunteerDynamoDBRepository(dynamodb.NewFromConfig(awsCfg), cfg.VolunteerTable)
	h := handler.NewVolunteerHandler(volunteers, logger)

	lambda.Start(h.Get)
}
