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

const defaultServicesTableName = "contract_services"

type contractServiceItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id"`
	SubcontractorID string `dynamodbav:"subcontractor_id,omitempty"`
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description,omitempty"`
	Category        string `dynamodbav:"category,omitempty"`
	StartDate       string `dynamodbav:"start_date,omitempty"`
	EndDate         string `dynamodbav:"end_date,omitempty"`
	Status          string `dynamodbav:"status"`

	EstimatedCost float64  `dynamodbav:"estimated_cost"`
	ActualCost    *float64 `dynamodbav:"actual_cost,omitempty"`
	Currency      string   `dynamodbav:"currency,omitempty"`

	ProgressPercent float64 `dynamodbav:"progress_percent"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractServiceDynamoRepository persists ContractService entities in
// DynamoDB. The budget is flattened onto the item; there is no nested map.
//
// Table requirements:
//   - PK: id (string)

type ContractServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractServiceRepository = (*ContractServiceDynamoRepository)(nil)

func NewContractServiceDynamoRepository(ddb *dynamodb.Client) *ContractServiceDynamoRepository {
	return &ContractServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACT_SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ContractServiceDynamoRepository) Create(ctx context.Context, s entities.ContractService) (entities.ContractService, error) {
	av, err := attributevalue.MarshalMap(toContractServiceItem(s))
	if err != nil {
		return entities.ContractService{}, err
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
		return entities.ContractService{}, err
	}
	return s, nil
}

func (r *ContractServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractService{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractService{}, nil
	}

	var it contractServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractService{}, err
	}
	return fromContractServiceItem(it), nil
}

func (r *ContractServiceDynamoRepository) GetAll(ctx context.Context) ([]entities.ContractService, error) {
	var result []entities.ContractService
	err := scanPages(ctx, r.ddb, r.tableName, func(items []map[string]types.AttributeValue) error {
		var page []contractServiceItem
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		for _, it := range page {
			result = append(result, fromContractServiceItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ContractServiceDynamoRepository) Update(ctx context.Context, s entities.ContractService) (entities.ContractService, error) {
	av, err := attributevalue.MarshalMap(toContractServiceItem(s))
	if err != nil {
		return entities.ContractService{}, err
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
			return entities.ContractService{}, nil
		}
		return entities.ContractService{}, err
	}
	return s, nil
}

func (r *ContractServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toContractServiceItem(s entities.ContractService) contractServiceItem {
	return contractServiceItem{
		ID:              s.ID,
		ClientID:        s.ClientID,
		SubcontractorID: s.SubcontractorID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		StartDate:       timeStringPtr(s.StartDate),
		EndDate:         timeStringPtr(s.EndDate),
		Status:          string(s.Status),
		EstimatedCost:   s.Budget.EstimatedCost,
		ActualCost:      s.Budget.ActualCost,
		Currency:        s.Budget.Currency,
		ProgressPercent: s.ProgressPercent,
		CreatedAt:       timeString(s.CreatedAt),
		UpdatedAt:       timeString(s.UpdatedAt),
	}
}

func fromContractServiceItem(it contractServiceItem) entities.ContractService {
	return entities.ContractService{
		ID:              it.ID,
		ClientID:        it.ClientID,
		SubcontractorID: it.SubcontractorID,
		Name:            it.Name,
		Description:     it.Description,
		Category:        it.Category,
		StartDate:       parseTimePtr(it.StartDate),
		EndDate:         parseTimePtr(it.EndDate),
		Status:          entities.ServiceStatus(it.Status),
		Budget: entities.Budget{
			EstimatedCost: it.EstimatedCost,
			ActualCost:    it.ActualCost,
			Currency:      it.Currency,
		},
		ProgressPercent: it.ProgressPercent,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
