package repository

import (
	"context"
	"encoding/json"
	"time"

	"csob_gateway/internal/domain/entities"
	"csob_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDiagnosticsTableName = "gateway_diagnostics"
	diagnosticsMerchantIDIndex  = "merchant_id-index"
)

type archivedCallItem struct {
	ID         string `dynamodbav:"id"`
	MerchantID string `dynamodbav:"merchant_id"`
	CallID     int    `dynamodbav:"call_id"`
	Failed     bool   `dynamodbav:"failed"`
	RecordedAt string `dynamodbav:"recorded_at"`
	Request    string `dynamodbav:"request,omitempty"`
	Response   string `dynamodbav:"response,omitempty"`
}

// DiagnosticArchiveDynamoRepository persists ArchivedCall entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: merchant_id-index (PK: merchant_id)

type DiagnosticArchiveDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiagnosticArchiveRepository = (*DiagnosticArchiveDynamoRepository)(nil)

func NewDiagnosticArchiveDynamoRepository(ddb *dynamodb.Client) *DiagnosticArchiveDynamoRepository {
	return &DiagnosticArchiveDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DIAGNOSTICS_TABLE", defaultDiagnosticsTableName),
	}
}

func (r *DiagnosticArchiveDynamoRepository) Create(ctx context.Context, call entities.ArchivedCall) (entities.ArchivedCall, error) {
	it := toArchivedCallItem(call)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ArchivedCall{}, err
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
		return entities.ArchivedCall{}, err
	}
	return call, nil
}

func (r *DiagnosticArchiveDynamoRepository) ListByMerchantID(ctx context.Context, merchantID string) ([]entities.ArchivedCall, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(diagnosticsMerchantIDIndex),
		KeyConditionExpression: aws.String("merchant_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: merchantID},
		},
	})
	if err != nil {
		return nil, err
	}

	calls := make([]entities.ArchivedCall, 0, len(out.Items))
	for _, raw := range out.Items {
		var it archivedCallItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		calls = append(calls, fromArchivedCallItem(it))
	}
	return calls, nil
}

func toArchivedCallItem(call entities.ArchivedCall) archivedCallItem {
	return archivedCallItem{
		ID:         call.ID,
		MerchantID: call.MerchantID,
		CallID:     call.CallID,
		Failed:     call.Failed,
		RecordedAt: call.RecordedAt.UTC().Format(time.RFC3339Nano),
		Request:    string(call.Request),
		Response:   string(call.Response),
	}
}

func fromArchivedCallItem(it archivedCallItem) entities.ArchivedCall {
	dt, _ := time.Parse(time.RFC3339Nano, it.RecordedAt)
	call := entities.ArchivedCall{
		ID:         it.ID,
		MerchantID: it.MerchantID,
		CallID:     it.CallID,
		Failed:     it.Failed,
		RecordedAt: dt,
	}
	if it.Request != "" {
		call.Request = json.RawMessage(it.Request)
	}
	if it.Response != "" {
		call.Response = json.RawMessage(it.Response)
	}
	return call
}
