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

const defaultProductsTableName = "products"

type productItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Price           string `dynamodbav:"price"`
	Description     string `dynamodbav:"description,omitempty"`
	IsActive        bool   `dynamodbav:"is_active"`
	HasStockControl bool   `dynamodbav:"has_stock_control"`
}

// ProductDynamoRepository reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCT_COLLECTION_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}

	price, _ := decimal.NewFromString(it.Price)
	return entities.Product{
		ID:              it.ID,
		Name:            it.Name,
		Price:           price,
		Description:     it.Description,
		IsActive:        it.IsActive,
		HasStockControl: it.HasStockControl,
	}, nil
}
