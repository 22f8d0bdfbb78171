package repository

import (
	"context"
	"errors"

	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFinancingsTableName = "financings"

type financingItem struct {
	ID             string  `dynamodbav:"id"`
	Lender         string  `dynamodbav:"lender"`
	Description    string  `dynamodbav:"description,omitempty"`
	Category       string  `dynamodbav:"category,omitempty"`
	Principal      float64 `dynamodbav:"principal"`
	MonthlyPayment float64 `dynamodbav:"monthly_payment"`
	StartDate      string  `dynamodbav:"start_date"`
	EndDate        string  `dynamodbav:"end_date,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// FinancingDynamoRepository persists Financing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FinancingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinancingRepository = (*FinancingDynamoRepository)(nil)

func NewFinancingDynamoRepository(ddb *dynamodb.Client) *FinancingDynamoRepository {
	return &FinancingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINANCINGS_TABLE", defaultFinancingsTableName),
	}
}

func (r *FinancingDynamoRepository) Create(ctx context.Context, f entities.Financing) (entities.Financing, error) {
	av, err := attributevalue.MarshalMap(toFinancingItem(f))
	if err != nil {
		return entities.Financing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Financing{}, err
	}
	return f, nil
}

func (r *FinancingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Financing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Financing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Financing{}, nil
	}

	var it financingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Financing{}, err
	}
	return fromFinancingItem(it), nil
}

func (r *FinancingDynamoRepository) GetAll(ctx context.Context) ([]entities.Financing, error) {
	var result []entities.Financing
	err := scanPages(ctx, r.ddb, r.tableName, func(items []map[string]types.AttributeValue) error {
		var page []financingItem
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		for _, it := range page {
			result = append(result, fromFinancingItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *FinancingDynamoRepository) Update(ctx context.Context, f entities.Financing) (entities.Financing, error) {
	av, err := attributevalue.MarshalMap(toFinancingItem(f))
	if err != nil {
		return entities.Financing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Financing{}, nil
		}
		return entities.Financing{}, err
	}
	return f, nil
}

func (r *FinancingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFinancingItem(f entities.Financing) financingItem {
	return financingItem{
		ID:             f.ID,
		Lender:         f.Lender,
		Description:    f.Description,
		Category:       f.Category,
		Principal:      f.Principal,
		MonthlyPayment: f.MonthlyPayment,
		StartDate:      timeString(f.StartDate),
		EndDate:        timeStringPtr(f.EndDate),
		CreatedAt:      timeString(f.CreatedAt),
		UpdatedAt:      timeString(f.UpdatedAt),
	}
}

func fromFinancingItem(it financingItem) entities.Financing {
	return entities.Financing{
		ID:             it.ID,
		Lender:         it.Lender,
		Description:    it.Description,
		Category:       it.Category,
		Principal:      it.Principal,
		MonthlyPayment: it.MonthlyPayment,
		StartDate:      parseTime(it.StartDate),
		EndDate:        parseTimePtr(it.EndDate),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
