package aws

import (
	"go-shortener/pkg/resource"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates an SQS client, pointing at app.cloud.aws-endpoint when set (LocalStack)
func NewSqsClient(config awssdk.Config) *sqs.Client {
	return sqs.NewFromConfig(config, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = awssdk.String(endpoint)
		}
	})
}
