package repository

import (
	"context"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// The ledger table name is fixed by contract with the provisioning templates.
const (
	stockTableName      = "product-stock"
	stockProductIDIndex = "product_id-index"
)

type stockEntryItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Type      string `dynamodbav:"type"`
	Quantity  int    `dynamodbav:"quantity"`
	Reason    string `dynamodbav:"reason"`
	OrderID   string `dynamodbav:"order_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StockDynamoRepository persists the append-only stock ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)
//
// Entries are insert-only; there is no update or delete path.

type StockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{ddb: ddb, tableName: stockTableName}
}

func (r *StockDynamoRepository) Create(ctx context.Context, entry entities.StockEntry) error {
	av, err := attributevalue.MarshalMap(toStockEntryItem(entry))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return translateConditional(err)
}

func (r *StockDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.StockEntry, error) {
	entries := make([]entities.StockEntry, 0)

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(stockProductIDIndex),
			KeyConditionExpression: aws.String("product_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: productID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it stockEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromStockEntryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func (r *StockDynamoRepository) ListSaleDecreasesBefore(ctx context.Context, cutoff time.Time) ([]entities.StockEntry, error) {
	entries := make([]entities.StockEntry, 0)

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#type = :decrease AND attribute_exists(#order_id) AND #created_at < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#type":       "type",
				"#order_id":   "order_id",
				"#created_at": "created_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":decrease": &types.AttributeValueMemberS{Value: string(entities.StockEntryTypeDecrease)},
				":cutoff":   &types.AttributeValueMemberS{Value: formatTime(cutoff)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it stockEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromStockEntryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func toStockEntryItem(e entities.StockEntry) stockEntryItem {
	return stockEntryItem{
		ID:        e.ID,
		ProductID: e.ProductID,
		Type:      string(e.Type),
		Quantity:  e.Quantity,
		Reason:    e.Reason,
		OrderID:   e.OrderID,
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func fromStockEntryItem(it stockEntryItem) entities.StockEntry {
	return entities.StockEntry{
		ID:        it.ID,
		ProductID: it.ProductID,
		Type:      entities.StockEntryType(it.Type),
		Quantity:  it.Quantity,
		Reason:    it.Reason,
		OrderID:   it.OrderID,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
