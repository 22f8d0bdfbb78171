package repository

import (
	"context"
	"time"

	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentMarkersTableName = "payment_markers"

type paymentMarkerItem struct {
	AlertID       string `dynamodbav:"alert_id"`
	IsPaid        bool   `dynamodbav:"is_paid"`
	PaidDate      string `dynamodbav:"paid_date,omitempty"`
	IsCancelled   bool   `dynamodbav:"is_cancelled"`
	ReminderCount int    `dynamodbav:"reminder_count"`
	LastReminder  string `dynamodbav:"last_reminder,omitempty"`
}

// PaymentMarkerDynamoRepository persists PaymentMarker records in DynamoDB.
//
// Table requirements:
//   - PK: alert_id (string)
//
// Every write is an unconditional UpdateItem so a marker springs into
// existence on the first operator action against a derived alert. Reads of
// absent markers return the zero value.

type PaymentMarkerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentMarkerRepository = (*PaymentMarkerDynamoRepository)(nil)

func NewPaymentMarkerDynamoRepository(ddb *dynamodb.Client) *PaymentMarkerDynamoRepository {
	return &PaymentMarkerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_MARKERS_TABLE", defaultPaymentMarkersTableName),
	}
}

func (r *PaymentMarkerDynamoRepository) Get(ctx context.Context, alertID string) (entities.PaymentMarker, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"alert_id": &types.AttributeValueMemberS{Value: alertID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMarker{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMarker{}, nil
	}

	var it paymentMarkerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMarker{}, err
	}
	return fromPaymentMarkerItem(it), nil
}

func (r *PaymentMarkerDynamoRepository) SetPaid(ctx context.Context, alertID string, paidDate time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"alert_id": &types.AttributeValueMemberS{Value: alertID},
		},
		UpdateExpression: aws.String("SET #is_paid = :is_paid, #paid_date = :paid_date"),
		ExpressionAttributeNames: map[string]string{
			"#is_paid":   "is_paid",
			"#paid_date": "paid_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_paid":   &types.AttributeValueMemberBOOL{Value: true},
			":paid_date": &types.AttributeValueMemberS{Value: timeString(paidDate)},
		},
	})
	return err
}

func (r *PaymentMarkerDynamoRepository) SetCancelled(ctx context.Context, alertID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"alert_id": &types.AttributeValueMemberS{Value: alertID},
		},
		UpdateExpression: aws.String("SET #is_cancelled = :is_cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#is_cancelled": "is_cancelled",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_cancelled": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	return err
}

func (r *PaymentMarkerDynamoRepository) IncrementReminder(ctx context.Context, alertID string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"alert_id": &types.AttributeValueMemberS{Value: alertID},
		},
		UpdateExpression: aws.String("ADD #reminder_count :one SET #last_reminder = :last_reminder"),
		ExpressionAttributeNames: map[string]string{
			"#reminder_count": "reminder_count",
			"#last_reminder":  "last_reminder",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":           &types.AttributeValueMemberN{Value: "1"},
			":last_reminder": &types.AttributeValueMemberS{Value: timeString(at)},
		},
	})
	return err
}

func fromPaymentMarkerItem(it paymentMarkerItem) entities.PaymentMarker {
	return entities.PaymentMarker{
		AlertID:       it.AlertID,
		IsPaid:        it.IsPaid,
		PaidDate:      parseTimePtr(it.PaidDate),
		IsCancelled:   it.IsCancelled,
		ReminderCount: it.ReminderCount,
		LastReminder:  parseTimePtr(it.LastReminder),
	}
}
