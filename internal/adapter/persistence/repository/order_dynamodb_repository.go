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
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderItemRecord struct {
	ID              string `dynamodbav:"id"`
	Quantity        int    `dynamodbav:"quantity"`
	ProductName     string `dynamodbav:"product_name"`
	UnitPrice       string `dynamodbav:"unit_price"`
	TotalPrice      string `dynamodbav:"total_price"`
	HasStockControl bool   `dynamodbav:"has_stock_control"`
}

type orderCustomerRecord struct {
	CPF   string `dynamodbav:"cpf"`
	Email string `dynamodbav:"email"`
	Name  string `dynamodbav:"name"`
}

type orderAddressRecord struct {
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	ZipCode      string `dynamodbav:"zip_code"`
	Country      string `dynamodbav:"country"`
}

type orderRecord struct {
	ID            string              `dynamodbav:"id"`
	LeadID        string              `dynamodbav:"lead_id"`
	Customer      orderCustomerRecord `dynamodbav:"customer"`
	Items         []orderItemRecord   `dynamodbav:"items"`
	TotalItems    int                 `dynamodbav:"total_items"`
	TotalValue    string              `dynamodbav:"total_value"`
	Status        string              `dynamodbav:"status"`
	Address       orderAddressRecord  `dynamodbav:"address_data"`
	Reason        string              `dynamodbav:"reason,omitempty"`
	TransactionID string              `dynamodbav:"transaction_id,omitempty"`
	CreatedAt     string              `dynamodbav:"created_at"`
	UpdatedAt     string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary fields are stored as decimal strings. Status updates are
// conditional on the stored row still being PENDING, which enforces the
// terminal states at the storage layer.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_COLLECTION_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, order entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderRecord(order))
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

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, reason, transactionID string) (entities.Order, error) {
	now := formatTime(time.Now())

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if reason != "" {
		expr += ", #reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
		names["#reason"] = "reason"
	}
	if transactionID != "" {
		expr += ", #transaction_id = :transaction_id"
		values[":transaction_id"] = &types.AttributeValueMemberS{Value: transactionID}
		names["#transaction_id"] = "transaction_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, translateConditional(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRecord{
			ID:              it.ID,
			Quantity:        it.Quantity,
			ProductName:     it.ProductName,
			UnitPrice:       it.UnitPrice.String(),
			TotalPrice:      it.TotalPrice.String(),
			HasStockControl: it.HasStockControl,
		})
	}
	return orderRecord{
		ID:     o.ID,
		LeadID: o.LeadID,
		Customer: orderCustomerRecord{
			CPF:   o.Customer.CPF,
			Email: o.Customer.Email,
			Name:  o.Customer.Name,
		},
		Items:      items,
		TotalItems: o.TotalItems,
		TotalValue: o.TotalValue.String(),
		Status:     string(o.Status),
		Address: orderAddressRecord{
			Street:       o.AddressData.Street,
			Number:       o.AddressData.Number,
			Complement:   o.AddressData.Complement,
			Neighborhood: o.AddressData.Neighborhood,
			City:         o.AddressData.City,
			State:        o.AddressData.State,
			ZipCode:      o.AddressData.ZipCode,
			Country:      o.AddressData.Country,
		},
		Reason:        o.Reason,
		TransactionID: o.TransactionID,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	items := make([]entities.OrderItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		unit, _ := decimal.NewFromString(it.UnitPrice)
		total, _ := decimal.NewFromString(it.TotalPrice)
		items = append(items, entities.OrderItem{
			ID:              it.ID,
			Quantity:        it.Quantity,
			ProductName:     it.ProductName,
			UnitPrice:       unit,
			TotalPrice:      total,
			HasStockControl: it.HasStockControl,
		})
	}
	totalValue, _ := decimal.NewFromString(rec.TotalValue)
	return entities.Order{
		ID:     rec.ID,
		LeadID: rec.LeadID,
		Customer: entities.Customer{
			CPF:   rec.Customer.CPF,
			Email: rec.Customer.Email,
			Name:  rec.Customer.Name,
		},
		Items:      items,
		TotalItems: rec.TotalItems,
		TotalValue: totalValue,
		Status:     entities.OrderStatus(rec.Status),
		AddressData: entities.Address{
			Street:       rec.Address.Street,
			Number:       rec.Address.Number,
			Complement:   rec.Address.Complement,
			Neighborhood: rec.Address.Neighborhood,
			City:         rec.Address.City,
			State:        rec.Address.State,
			ZipCode:      rec.Address.ZipCode,
			Country:      rec.Address.Country,
		},
		Reason:        rec.Reason,
		TransactionID: rec.TransactionID,
		CreatedAt:     parseTime(rec.CreatedAt),
		UpdatedAt:     parseTime(rec.UpdatedAt),
	}
}
