package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// RecordHandler processes one decoded message body. A nil return deletes the
// message; an error leaves it on the queue for redelivery under the queue's
// visibility timeout/backoff.
type RecordHandler func(ctx context.Context, body []byte) error

// ErrFatalRecord marks a record that will never succeed (malformed payload,
// missing required reference, invalid transition). The consumer logs and
// deletes it instead of letting it loop back; a deleted record is not moved
// to a dead-letter queue, so the log line is its only trace.
var ErrFatalRecord = errors.New("fatal record")

const (
	defaultWaitTime     = 20 * time.Second
	defaultBatchSize    = 10
	defaultRecordBudget = 25 * time.Second
)

// SQSConsumer long-polls one queue and feeds records to a handler. Records
// within a batch run sequentially for predictable failure semantics; scale
// comes from running more consumer processes.

type SQSConsumer struct {
	client   *sqs.Client
	queueURL string
	name     string
	handler  RecordHandler

	waitTime     time.Duration
	batchSize    int32
	recordBudget time.Duration
}

func NewSQSConsumer(client *sqs.Client, name, queueURL string, handler RecordHandler) *SQSConsumer {
	return &SQSConsumer{
		client:       client,
		queueURL:     queueURL,
		name:         name,
		handler:      handler,
		waitTime:     defaultWaitTime,
		batchSize:    defaultBatchSize,
		recordBudget: defaultRecordBudget,
	}
}

// Run polls until the context is cancelled.
func (c *SQSConsumer) Run(ctx context.Context) {
	log.Printf("[messaging][consumer] %s started queue=%s", c.name, c.queueURL)
	for {
		if ctx.Err() != nil {
			log.Printf("[messaging][consumer] %s stopped", c.name)
			return
		}

		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: c.batchSize,
			WaitTimeSeconds:     int32(c.waitTime / time.Second),
		})
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("[messaging][consumer] %s stopped", c.name)
				return
			}
			log.Printf("[messaging][consumer] %s receive failed err=%v", c.name, err)
			time.Sleep(time.Second)
			continue
		}

		for _, msg := range out.Messages {
			c.handleMessage(ctx, msg.Body, msg.ReceiptHandle)
		}
	}
}

func (c *SQSConsumer) handleMessage(ctx context.Context, body, receiptHandle *string) {
	if body == nil {
		return
	}

	recordCtx, cancel := context.WithTimeout(ctx, c.recordBudget)
	defer cancel()

	err := c.handler(recordCtx, UnwrapEnvelope([]byte(*body)))
	switch {
	case err == nil:
		// Delivered.
	case errors.Is(err, ErrFatalRecord):
		log.Printf("[messaging][consumer] %s fatal record, discarding err=%v", c.name, err)
	default:
		// Leave the message for redrive.
		log.Printf("[messaging][consumer] %s record failed, releasing for redelivery err=%v", c.name, err)
		return
	}

	if _, derr := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: receiptHandle,
	}); derr != nil {
		log.Printf("[messaging][consumer] %s delete failed err=%v", c.name, derr)
	}
}

type snsEnvelope struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
	Subject string `json:"Subject"`
}

// UnwrapEnvelope extracts the inner payload from an SNS notification
// delivered to SQS without raw message delivery; plain SQS bodies pass
// through untouched.
func UnwrapEnvelope(body []byte) []byte {
	var env snsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	if env.Type != "Notification" || env.Message == "" {
		return body
	}
	return []byte(env.Message)
}
