package repository

import (
	"context"
	"errors"
	"time"

	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID    string `dynamodbav:"id"`
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	Year  int    `dynamodbav:"year,omitempty"`
	VIN   string `dynamodbav:"vin,omitempty"`
	Plate string `dynamodbav:"plate,omitempty"`

	LastMaintenanceDate     string `dynamodbav:"last_maintenance_date,omitempty"`
	NextMaintenanceDate     string `dynamodbav:"next_maintenance_date,omitempty"`
	LicensePlateRenewalDate string `dynamodbav:"license_plate_renewal_date,omitempty"`
	DOTRenewalDate          string `dynamodbav:"dot_renewal_date,omitempty"`
	InsuranceExpiry         string `dynamodbav:"insurance_expiry,omitempty"`
	RegistrationExpiry      string `dynamodbav:"registration_expiry,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	var result []entities.Vehicle
	err := scanPages(ctx, r.ddb, r.tableName, func(items []map[string]types.AttributeValue) error {
		var page []vehicleItem
		if err := attributevalue.UnmarshalListOfMaps(items, &page); err != nil {
			return err
		}
		for _, it := range page {
			result = append(result, fromVehicleItem(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// SetLastMaintenanceDate stamps only the maintenance fields, leaving the rest
// of the item untouched. Returns the zero value when the vehicle is missing.
func (r *VehicleDynamoRepository) SetLastMaintenanceDate(ctx context.Context, id string, at time.Time) (entities.Vehicle, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #last = :last, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#last":       "last_maintenance_date",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":last":       &types.AttributeValueMemberS{Value: timeString(at)},
			":updated_at": &types.AttributeValueMemberS{Value: timeString(time.Now().UTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:                      v.ID,
		Make:                    v.Make,
		Model:                   v.Model,
		Year:                    v.Year,
		VIN:                     v.VIN,
		Plate:                   v.Plate,
		LastMaintenanceDate:     timeStringPtr(v.LastMaintenanceDate),
		NextMaintenanceDate:     timeStringPtr(v.NextMaintenanceDate),
		LicensePlateRenewalDate: timeStringPtr(v.LicensePlateRenewalDate),
		DOTRenewalDate:          timeStringPtr(v.DOTRenewalDate),
		InsuranceExpiry:         timeStringPtr(v.InsuranceExpiry),
		RegistrationExpiry:      timeStringPtr(v.RegistrationExpiry),
		CreatedAt:               timeString(v.CreatedAt),
		UpdatedAt:               timeString(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:                      it.ID,
		Make:                    it.Make,
		Model:                   it.Model,
		Year:                    it.Year,
		VIN:                     it.VIN,
		Plate:                   it.Plate,
		LastMaintenanceDate:     parseTimePtr(it.LastMaintenanceDate),
		NextMaintenanceDate:     parseTimePtr(it.NextMaintenanceDate),
		LicensePlateRenewalDate: parseTimePtr(it.LicensePlateRenewalDate),
		DOTRenewalDate:          parseTimePtr(it.DOTRenewalDate),
		InsuranceExpiry:         parseTimePtr(it.InsuranceExpiry),
		RegistrationExpiry:      parseTimePtr(it.RegistrationExpiry),
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
