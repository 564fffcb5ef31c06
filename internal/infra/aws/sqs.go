package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"todo-api/internal/domain/gateway/queue"
	pkgsqs "todo-api/pkg/sqs"
)

var _ queue.Sender = (*pkgsqs.Sender)(nil)

// NewSqsClient creates the SQS client. A non-empty endpoint (LocalStack, ElasticMQ) replaces the AWS one.
func NewSqsClient(cfg aws.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewSQSSender returns the queue sender used by the event gateway
func NewSQSSender(client *sqs.Client) queue.Sender {
	return pkgsqs.NewSender(client)
}
