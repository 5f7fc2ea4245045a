package messaging

import (
	"context"
	"encoding/json"
	"log"

	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSTopicPublisher publishes InitializeOrder events to the fan-out topic.
// Every subscribed queue (lead, order) receives one delivery.

type SNSTopicPublisher struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.IInitializeOrderPublisher = (*SNSTopicPublisher)(nil)

func NewSNSTopicPublisher(client *sns.Client, topicARN string) *SNSTopicPublisher {
	return &SNSTopicPublisher{client: client, topicARN: topicARN}
}

func (p *SNSTopicPublisher) PublishInitializeOrder(ctx context.Context, event events.InitializeOrder) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(events.SubjectNewOrderRequest),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"orderId": {DataType: aws.String("String"), StringValue: aws.String(event.OrderID)},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[messaging][sns] initialize-order published order_id=%s", event.OrderID)
	return nil
}
