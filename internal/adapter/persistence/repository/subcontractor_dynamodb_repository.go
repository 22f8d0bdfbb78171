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

const defaultSubcontractorsTableName = "subcontractors"

type subcontractorItem struct {
	ID           string   `dynamodbav:"id"`
	CompanyName  string   `dynamodbav:"company_name"`
	ContactName  string   `dynamodbav:"contact_name,omitempty"`
	Email        string   `dynamodbav:"email,omitempty"`
	Phone        string   `dynamodbav:"phone,omitempty"`
	Services     []string `dynamodbav:"services,omitempty"`
	PaymentTerms string   `dynamodbav:"payment_terms,omitempty"`
	HourlyRate   float64  `dynamodbav:"hourly_rate"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// SubcontractorDynamoRepository persists Subcontractor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SubcontractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubcontractorRepository = (*SubcontractorDynamoRepository)(nil)

func NewSubcontractorDynamoRepository(ddb *dynamodb.Client) *SubcontractorDynamoRepository {
	return &SubcontractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBCONTRACTORS_TABLE", defaultSubcontractorsTableName),
	}
}

func (r *SubcontractorDynamoRepository) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	av, err := attributevalue.MarshalMap(toSubcontractorItem(s))
	if err != nil {
		return entities.Subcontractor{}, err
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
		return entities.Subcontractor{}, err
	}
	return s, nil
}

func (r *SubcontractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Subcontractor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subcontractor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subcontractor{}, nil
	}

	var it subcontractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subcontractor{}, err
	}
	return fromSubcontractorItem(it), nil
}

func (r *SubcontractorDynamoRepository) GetAll(ctx context.Context) ([]entities.Subcontractor, error) {
	var result []entities.Subcontractor
	err := scanPages(ctx, r.ddb, r.tableName, func(items []map[string]types.AttributeValue) error {
		var page []subcontractorItem
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		for _, it := range page {
			result = append(result, fromSubcontractorItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SubcontractorDynamoRepository) Update(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	av, err := attributevalue.MarshalMap(toSubcontractorItem(s))
	if err != nil {
		return entities.Subcontractor{}, err
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
			return entities.Subcontractor{}, nil
		}
		return entities.Subcontractor{}, err
	}
	return s, nil
}

func (r *SubcontractorDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSubcontractorItem(s entities.Subcontractor) subcontractorItem {
	return subcontractorItem{
		ID:           s.ID,
		CompanyName:  s.CompanyName,
		ContactName:  s.ContactName,
		Email:        s.Email,
		Phone:        s.Phone,
		Services:     s.Services,
		PaymentTerms: s.PaymentTerms,
		HourlyRate:   s.HourlyRate,
		CreatedAt:    timeString(s.CreatedAt),
		UpdatedAt:    timeString(s.UpdatedAt),
	}
}

func fromSubcontractorItem(it subcontractorItem) entities.Subcontractor {
	return entities.Subcontractor{
		ID:           it.ID,
		CompanyName:  it.CompanyName,
		ContactName:  it.ContactName,
		Email:        it.Email,
		Phone:        it.Phone,
		Services:     it.Services,
		PaymentTerms: it.PaymentTerms,
		HourlyRate:   it.HourlyRate,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
