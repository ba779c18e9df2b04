package repository

import (
	"context"
	"encoding/json"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReconciliationTableName = "checkout_reconciliation"

// dynamoAPI is the subset of *dynamodb.Client used by the store.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type reconciliationItem struct {
	Subject     string `dynamodbav:"subject"`
	OrderID     string `dynamodbav:"order_id,omitempty"`
	PendingKind string `dynamodbav:"pending_kind,omitempty"`
	Record      string `dynamodbav:"record"`
	CreatedAt   string `dynamodbav:"created_at"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
}

// ReconciliationDynamoRepository keeps one checkout record per shopper.
//
// Table requirements:
//   - PK: subject (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB removes expired items lazily, so Load also filters on expires_at.

type ReconciliationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IReconciliationStore = (*ReconciliationDynamoRepository)(nil)

// NewReconciliationDynamoRepository uses the table named by the configuration,
// or the default table when none is given.
func NewReconciliationDynamoRepository(ddb *dynamodb.Client, tableName string) *ReconciliationDynamoRepository {
	if tableName == "" {
		tableName = defaultReconciliationTableName
	}
	return newReconciliationDynamoRepository(ddb, tableName)
}

func newReconciliationDynamoRepository(ddb dynamoAPI, tableName string) *ReconciliationDynamoRepository {
	return &ReconciliationDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ReconciliationDynamoRepository) Save(ctx context.Context, subject string, rec entities.ReconciliationRecord, ttl time.Duration) error {
	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = r.now().UTC().Add(ttl)
	}
	it, err := toReconciliationItem(subject, rec)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ReconciliationDynamoRepository) Load(ctx context.Context, subject string) (entities.ReconciliationRecord, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"subject": &types.AttributeValueMemberS{Value: subject},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReconciliationRecord{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.ReconciliationRecord{}, false, nil
	}

	var it reconciliationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReconciliationRecord{}, false, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.ReconciliationRecord{}, false, nil
	}
	rec, err := fromReconciliationItem(it)
	if err != nil {
		return entities.ReconciliationRecord{}, false, err
	}
	return rec, true, nil
}

func (r *ReconciliationDynamoRepository) Delete(ctx context.Context, subject string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"subject": &types.AttributeValueMemberS{Value: subject},
		},
	})
	return err
}

func toReconciliationItem(subject string, rec entities.ReconciliationRecord) (reconciliationItem, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return reconciliationItem{}, err
	}
	it := reconciliationItem{
		Subject:   subject,
		OrderID:   rec.OrderID,
		Record:    string(raw),
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: rec.ExpiresAt.Unix(),
	}
	if rec.Pending != nil {
		it.PendingKind = string(rec.Pending.Kind)
	}
	return it, nil
}

func fromReconciliationItem(it reconciliationItem) (entities.ReconciliationRecord, error) {
	var rec entities.ReconciliationRecord
	if err := json.Unmarshal([]byte(it.Record), &rec); err != nil {
		return entities.ReconciliationRecord{}, err
	}
	if rec.OrderID == "" {
		rec.OrderID = it.OrderID
	}
	if rec.ExpiresAt.IsZero() && it.ExpiresAt > 0 {
		rec.ExpiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return rec, nil
}
