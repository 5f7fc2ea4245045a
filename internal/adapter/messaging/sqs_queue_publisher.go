package messaging

import (
	"context"
	"encoding/json"
	"log"

	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSQueuePublisher sends the point-to-point pipeline messages. Message
// attributes mirror the payload keys consumers filter or trace on.

type SQSQueuePublisher struct {
	client          *sqs.Client
	stockQueueURL   string
	paymentQueueURL string
	updateQueueURL  string
}

var _ interfaces.IPipelinePublisher = (*SQSQueuePublisher)(nil)

func NewSQSQueuePublisher(client *sqs.Client, stockQueueURL, paymentQueueURL, updateQueueURL string) *SQSQueuePublisher {
	return &SQSQueuePublisher{
		client:          client,
		stockQueueURL:   stockQueueURL,
		paymentQueueURL: paymentQueueURL,
		updateQueueURL:  updateQueueURL,
	}
}

func (p *SQSQueuePublisher) PublishStockUpdate(ctx context.Context, event events.StockUpdate) error {
	attrs := map[string]sqstypes.MessageAttributeValue{
		"operation": stringAttr(event.Operation),
		"productId": stringAttr(event.ProductID),
	}
	if event.OrderID != "" {
		attrs["orderId"] = stringAttr(event.OrderID)
	}
	if err := p.send(ctx, p.stockQueueURL, event, attrs); err != nil {
		return err
	}
	log.Printf("[messaging][sqs] stock-update published product_id=%s operation=%s order_id=%s", event.ProductID, event.Operation, event.OrderID)
	return nil
}

func (p *SQSQueuePublisher) PublishProcessTransaction(ctx context.Context, event events.ProcessTransaction) error {
	attrs := map[string]sqstypes.MessageAttributeValue{
		"orderId": stringAttr(event.OrderID),
		"amount":  numberAttr(event.OrderTotalValue.String()),
		"email":   stringAttr(event.CustomerData.Email),
	}
	if err := p.send(ctx, p.paymentQueueURL, event, attrs); err != nil {
		return err
	}
	log.Printf("[messaging][sqs] process-transaction published order_id=%s amount=%s", event.OrderID, event.OrderTotalValue.String())
	return nil
}

func (p *SQSQueuePublisher) PublishUpdateOrder(ctx context.Context, event events.UpdateOrder) error {
	attrs := map[string]sqstypes.MessageAttributeValue{
		"orderId": stringAttr(event.OrderID),
		"status":  stringAttr(event.Status),
	}
	if event.TransactionID != "" {
		attrs["transactionId"] = stringAttr(event.TransactionID)
	}
	if err := p.send(ctx, p.updateQueueURL, event, attrs); err != nil {
		return err
	}
	log.Printf("[messaging][sqs] update-order published order_id=%s status=%s", event.OrderID, event.Status)
	return nil
}

func (p *SQSQueuePublisher) send(ctx context.Context, queueURL string, payload any, attrs map[string]sqstypes.MessageAttributeValue) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attrs,
	})
	return err
}

func stringAttr(v string) sqstypes.MessageAttributeValue {
	return sqstypes.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
}

func numberAttr(v string) sqstypes.MessageAttributeValue {
	return sqstypes.MessageAttributeValue{DataType: aws.String("Number"), StringValue: aws.String(v)}
}
