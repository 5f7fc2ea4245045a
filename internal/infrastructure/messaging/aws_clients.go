package messaging

import (
	"context"
	"log"
	"os"

	"varejo_xpto/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// ConnectSNS creates the SNS client used by the initialize-topic publisher.
// SNS_ENDPOINT (optional) points at a local stack.
func ConnectSNS() *sns.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return sns.NewFromConfig(cfg, func(o *sns.Options) {
		if endpoint := os.Getenv("SNS_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// ConnectSQS creates the SQS client shared by queue publishers and consumers.
// SQS_ENDPOINT (optional) points at a local stack.
func ConnectSQS() *sqs.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := os.Getenv("SQS_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
