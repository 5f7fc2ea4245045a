package repository

import (
	"context"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultTransactionsTableName = "transactions"

type transactionCardItem struct {
	CardNumber     string `dynamodbav:"card_number"`
	CardHolderName string `dynamodbav:"card_holder_name"`
	ExpiryMonth    string `dynamodbav:"expiry_month"`
	ExpiryYear     string `dynamodbav:"expiry_year"`
	CVV            string `dynamodbav:"cvv"`
}

type transactionItem struct {
	ID             string              `dynamodbav:"id"`
	OrderID        string              `dynamodbav:"order_id"`
	Amount         string              `dynamodbav:"amount"`
	PaymentStatus  string              `dynamodbav:"payment_status"`
	AuthCode       string              `dynamodbav:"auth_code,omitempty"`
	GatewayMessage string              `dynamodbav:"gateway_message,omitempty"`
	ProcessingTime int64               `dynamodbav:"processing_time_ms"`
	CardData       transactionCardItem `dynamodbav:"card_data"`
	Customer       orderCustomerRecord `dynamodbav:"customer_data"`
	Address        orderAddressRecord  `dynamodbav:"address_data"`
	CreatedAt      string              `dynamodbav:"created_at"`
	UpdatedAt      string              `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Callers must hand in already-masked card data; this layer stores fields
// verbatim.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTION_COLLECTION_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, txn entities.Transaction) error {
	av, err := attributevalue.MarshalMap(toTransactionItem(txn))
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

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:             t.ID,
		OrderID:        t.OrderID,
		Amount:         t.Amount.String(),
		PaymentStatus:  string(t.PaymentStatus),
		AuthCode:       t.AuthCode,
		GatewayMessage: t.GatewayMessage,
		ProcessingTime: t.ProcessingTime,
		CardData: transactionCardItem{
			CardNumber:     t.CardData.CardNumber,
			CardHolderName: t.CardData.CardHolderName,
			ExpiryMonth:    t.CardData.ExpiryMonth,
			ExpiryYear:     t.CardData.ExpiryYear,
			CVV:            t.CardData.CVV,
		},
		Customer: orderCustomerRecord{
			CPF:   t.Customer.CPF,
			Email: t.Customer.Email,
			Name:  t.Customer.Name,
		},
		Address: orderAddressRecord{
			Street:       t.AddressData.Street,
			Number:       t.AddressData.Number,
			Complement:   t.AddressData.Complement,
			Neighborhood: t.AddressData.Neighborhood,
			City:         t.AddressData.City,
			State:        t.AddressData.State,
			ZipCode:      t.AddressData.ZipCode,
			Country:      t.AddressData.Country,
		},
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Transaction{
		ID:             it.ID,
		OrderID:        it.OrderID,
		Amount:         amount,
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		AuthCode:       it.AuthCode,
		GatewayMessage: it.GatewayMessage,
		ProcessingTime: it.ProcessingTime,
		CardData: entities.MaskedCard{
			CardNumber:     it.CardData.CardNumber,
			CardHolderName: it.CardData.CardHolderName,
			ExpiryMonth:    it.CardData.ExpiryMonth,
			ExpiryYear:     it.CardData.ExpiryYear,
			CVV:            it.CardData.CVV,
		},
		Customer: entities.Customer{
			CPF:   it.Customer.CPF,
			Email: it.Customer.Email,
			Name:  it.Customer.Name,
		},
		AddressData: entities.Address{
			Street:       it.Address.Street,
			Number:       it.Address.Number,
			Complement:   it.Address.Complement,
			Neighborhood: it.Address.Neighborhood,
			City:         it.Address.City,
			State:        it.Address.State,
			ZipCode:      it.Address.ZipCode,
			Country:      it.Address.Country,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
