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

const defaultClientsTableName = "clients"

type clientItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Company string `dynamodbav:"company,omitempty"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	State   string `dynamodbav:"state,omitempty"`

	ProjectNumber       string `dynamodbav:"project_number,omitempty"`
	ProjectContractDate string `dynamodbav:"project_contract_date,omitempty"`
	ProjectFinalDate    string `dynamodbav:"project_final_date,omitempty"`
	ProjectDeadline     string `dynamodbav:"project_deadline,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetAll(ctx context.Context) ([]entities.Client, error) {
	var result []entities.Client
	err := scanPages(ctx, r.ddb, r.tableName, func(items []map[string]types.AttributeValue) error {
		var page []clientItem
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		for _, it := range page {
			result = append(result, fromClientItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:                  c.ID,
		Name:                c.Name,
		Company:             c.Company,
		Email:               c.Email,
		Phone:               c.Phone,
		City:                c.City,
		State:               c.State,
		ProjectNumber:       c.ProjectNumber,
		ProjectContractDate: timeStringPtr(c.ProjectContractDate),
		ProjectFinalDate:    timeStringPtr(c.ProjectFinalDate),
		ProjectDeadline:     timeStringPtr(c.ProjectDeadline),
		CreatedAt:           timeString(c.CreatedAt),
		UpdatedAt:           timeString(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:                  it.ID,
		Name:                it.Name,
		Company:             it.Company,
		Email:               it.Email,
		Phone:               it.Phone,
		City:                it.City,
		State:               it.State,
		ProjectNumber:       it.ProjectNumber,
		ProjectContractDate: parseTimePtr(it.ProjectContractDate),
		ProjectFinalDate:    parseTimePtr(it.ProjectFinalDate),
		ProjectDeadline:     parseTimePtr(it.ProjectDeadline),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
