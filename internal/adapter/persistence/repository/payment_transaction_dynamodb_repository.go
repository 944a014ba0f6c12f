package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultTransactionsTableName = "payment_transactions"

	BuyOrderIndex = "buy_order-index"
	SessionIndex  = "session_id-index"
	StatusIndex   = "status-index"

	// fixed width so that stored timestamps compare lexicographically
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type paymentTransactionItem struct {
	PK             string `dynamodbav:"pk"`
	Token          string `dynamodbav:"token"`
	PaymentMethod  string `dynamodbav:"payment_method"`
	BuyOrder       string `dynamodbav:"buy_order"`
	MethodBuyOrder string `dynamodbav:"method_buy_order"`
	SessionID      string `dynamodbav:"session_id,omitempty"`
	MethodSession  string `dynamodbav:"method_session,omitempty"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	MethodStatus   string `dynamodbav:"method_status"`

	Payload           string `dynamodbav:"payload,omitempty"`
	Response          string `dynamodbav:"response,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`

	OrderCreated   bool   `dynamodbav:"order_created"`
	OrderID        string `dynamodbav:"order_id,omitempty"`
	OrderClaim     string `dynamodbav:"order_claim,omitempty"`
	OrderClaimedAt string `dynamodbav:"order_claimed_at,omitempty"`

	CancelledBy  string `dynamodbav:"cancelled_by,omitempty"`
	CancelledAt  string `dynamodbav:"cancelled_at,omitempty"`
	CancelReason string `dynamodbav:"cancel_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentTransactionDynamoRepository persists PaymentTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: pk (string) = "<payment_method>#<token>"
//   - GSI buy_order-index (PK: method_buy_order)
//   - GSI session_id-index (PK: method_session, SK: created_at)
//   - GSI status-index (PK: method_status, SK: created_at)
//
// Every mutation is a single-item conditional write, so the status guards and
// the order claim hold under concurrent writers.

type PaymentTransactionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentTransactionDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultTransactionsTableName
	}
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.now()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(t))
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentTransaction{}, interfaces.ErrTransactionAlreadyExists
		}
		return entities.PaymentTransaction{}, err
	}
	return t, nil
}

func (r *PaymentTransactionDynamoRepository) GetByToken(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            transactionKey(method, token),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromAttributes(out.Item)
}

func (r *PaymentTransactionDynamoRepository) GetByBuyOrder(ctx context.Context, method entities.PaymentMethod, buyOrder string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(BuyOrderIndex),
		KeyConditionExpression: aws.String("method_buy_order = :k"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: compositeKey(method, buyOrder)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentTransaction{}, nil
	}
	// GSI projections are eventually consistent; reload by key
	found, err := fromAttributes(out.Items[0])
	if err != nil || found.Token == "" {
		return found, err
	}
	return r.GetByToken(ctx, method, found.Token)
}

func (r *PaymentTransactionDynamoRepository) ListBySessionID(ctx context.Context, method entities.PaymentMethod, sessionID string, limit int) ([]entities.PaymentTransaction, error) {
	return r.queryNewestFirst(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(SessionIndex),
		KeyConditionExpression: aws.String("method_session = :k"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: compositeKey(method, sessionID)},
		},
	}, limit)
}

func (r *PaymentTransactionDynamoRepository) ListUnlinkedAuthorized(ctx context.Context, method entities.PaymentMethod, limit int) ([]entities.PaymentTransaction, error) {
	return r.queryNewestFirst(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(StatusIndex),
		KeyConditionExpression: aws.String("method_status = :k"),
		FilterExpression:       aws.String("attribute_not_exists(#oc) OR #oc = :false"),
		ExpressionAttributeNames: map[string]string{
			"#oc": "order_created",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k":     &types.AttributeValueMemberS{Value: compositeKey(method, string(entities.TransactionStatusAuthorized))},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}, limit)
}

// queryNewestFirst pages through a created_at-sorted index until limit items
// survived the filter.
func (r *PaymentTransactionDynamoRepository) queryNewestFirst(ctx context.Context, in *dynamodb.QueryInput, limit int) ([]entities.PaymentTransaction, error) {
	in.ScanIndexForward = aws.Bool(false)
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	items := make([]entities.PaymentTransaction, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			t, err := fromAttributes(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, t)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
	}
	return items, nil
}

func (r *PaymentTransactionDynamoRepository) UpdateStatus(ctx context.Context, method entities.PaymentMethod, token string, upd interfaces.StatusUpdate) (entities.PaymentTransaction, bool, error) {
	expr := "SET #status = :status, #method_status = :method_status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":        &types.AttributeValueMemberS{Value: string(upd.Status)},
		":method_status": &types.AttributeValueMemberS{Value: compositeKey(method, string(upd.Status))},
	}
	names := map[string]string{
		"#status":        "status",
		"#method_status": "method_status",
	}
	if len(upd.Response) > 0 {
		expr += ", #response = :response"
		vals[":response"] = &types.AttributeValueMemberS{Value: string(upd.Response)}
		names["#response"] = "response"
	}
	if upd.ProviderPaymentID != "" {
		expr += ", #ppid = :ppid"
		vals[":ppid"] = &types.AttributeValueMemberS{Value: upd.ProviderPaymentID}
		names["#ppid"] = "provider_payment_id"
	}

	cond := ""
	if len(upd.UnlessStatus) > 0 {
		placeholders := make([]string, 0, len(upd.UnlessStatus))
		for i, s := range upd.UnlessStatus {
			ph := fmt.Sprintf(":unless%d", i)
			placeholders = append(placeholders, ph)
			vals[ph] = &types.AttributeValueMemberS{Value: string(s)}
		}
		cond = "NOT (#status IN (" + strings.Join(placeholders, ", ") + "))"
	}

	return r.conditionalUpdate(ctx, method, token, cond, expr, vals, names)
}

func (r *PaymentTransactionDynamoRepository) UpdateResponse(ctx context.Context, method entities.PaymentMethod, token string, response json.RawMessage) (entities.PaymentTransaction, error) {
	t, _, err := r.conditionalUpdate(ctx, method, token,
		"",
		"SET #response = :response, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":response": &types.AttributeValueMemberS{Value: string(response)},
		},
		map[string]string{"#response": "response"},
	)
	return t, err
}

func (r *PaymentTransactionDynamoRepository) MarkCancelled(ctx context.Context, method entities.PaymentMethod, token, cancelledBy, reason string, at time.Time) (entities.PaymentTransaction, bool, error) {
	return r.conditionalUpdate(ctx, method, token,
		"NOT (#status IN (:authorized, :canceled, :refunded, :charged_back))",
		"SET #status = :canceled, #method_status = :method_status, #cancelled_by = :cancelled_by, #cancelled_at = :cancelled_at, #cancel_reason = :cancel_reason, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":authorized":    &types.AttributeValueMemberS{Value: string(entities.TransactionStatusAuthorized)},
			":canceled":      &types.AttributeValueMemberS{Value: string(entities.TransactionStatusCanceled)},
			":refunded":      &types.AttributeValueMemberS{Value: string(entities.TransactionStatusRefunded)},
			":charged_back":  &types.AttributeValueMemberS{Value: string(entities.TransactionStatusChargedBack)},
			":method_status": &types.AttributeValueMemberS{Value: compositeKey(method, string(entities.TransactionStatusCanceled))},
			":cancelled_by":  &types.AttributeValueMemberS{Value: cancelledBy},
			":cancelled_at":  &types.AttributeValueMemberS{Value: formatTime(at)},
			":cancel_reason": &types.AttributeValueMemberS{Value: reason},
		},
		map[string]string{
			"#status":        "status",
			"#method_status": "method_status",
			"#cancelled_by":  "cancelled_by",
			"#cancelled_at":  "cancelled_at",
			"#cancel_reason": "cancel_reason",
		},
	)
}

// ReplaceToken moves the record to a new key in one transaction. The new key
// must not exist yet.
func (r *PaymentTransactionDynamoRepository) ReplaceToken(ctx context.Context, method entities.PaymentMethod, oldToken, newToken string) (entities.PaymentTransaction, error) {
	old, err := r.rawItem(ctx, method, oldToken)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if old.Token == "" {
		return entities.PaymentTransaction{}, nil
	}

	moved := fromPaymentTransactionItem(old)
	moved.Token = newToken
	moved.UpdatedAt = r.now()
	item := toPaymentTransactionItem(moved)
	// an in-flight order claim stays with the record
	item.OrderClaim, item.OrderClaimedAt = old.OrderClaim, old.OrderClaimedAt

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
					ExpressionAttributeNames: map[string]string{"#pk": "pk"},
				},
			},
			{
				Delete: &types.Delete{
					TableName:                 aws.String(r.tableName),
					Key:                       transactionKey(method, oldToken),
					ConditionExpression:       aws.String("attribute_exists(#pk) AND #updated_at = :updated_at"),
					ExpressionAttributeNames:  map[string]string{"#pk": "pk", "#updated_at": "updated_at"},
					ExpressionAttributeValues: map[string]types.AttributeValue{":updated_at": &types.AttributeValueMemberS{Value: old.UpdatedAt}},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 && aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
			return entities.PaymentTransaction{}, interfaces.ErrTransactionAlreadyExists
		}
		return entities.PaymentTransaction{}, err
	}
	return moved, nil
}

func (r *PaymentTransactionDynamoRepository) ClaimOrderCreation(ctx context.Context, method entities.PaymentMethod, token, claimID string, staleAfter time.Duration) (bool, error) {
	now := r.now()
	_, applied, err := r.conditionalUpdate(ctx, method, token,
		"#status = :authorized AND (attribute_not_exists(#oc) OR #oc = :false) AND (attribute_not_exists(#claim) OR #claimed_at < :stale)",
		"SET #claim = :claim, #claimed_at = :claimed_at, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":authorized": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusAuthorized)},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":stale":      &types.AttributeValueMemberS{Value: formatTime(now.Add(-staleAfter))},
			":claim":      &types.AttributeValueMemberS{Value: claimID},
			":claimed_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		map[string]string{
			"#status":     "status",
			"#oc":         "order_created",
			"#claim":      "order_claim",
			"#claimed_at": "order_claimed_at",
		},
	)
	return applied, err
}

func (r *PaymentTransactionDynamoRepository) ReleaseOrderClaim(ctx context.Context, method entities.PaymentMethod, token, claimID string) error {
	_, _, err := r.conditionalUpdate(ctx, method, token,
		"#claim = :claim",
		"REMOVE #claim, #claimed_at SET #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":claim": &types.AttributeValueMemberS{Value: claimID},
		},
		map[string]string{
			"#claim":      "order_claim",
			"#claimed_at": "order_claimed_at",
		},
	)
	return err
}

func (r *PaymentTransactionDynamoRepository) LinkOrder(ctx context.Context, method entities.PaymentMethod, token string, link interfaces.OrderLink) (entities.PaymentTransaction, bool, error) {
	now := r.now()
	cond := "#status = :authorized AND (attribute_not_exists(#oc) OR #oc = :false)"
	vals := map[string]types.AttributeValue{
		":authorized": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusAuthorized)},
		":false":      &types.AttributeValueMemberBOOL{Value: false},
		":true":       &types.AttributeValueMemberBOOL{Value: true},
		":order_id":   &types.AttributeValueMemberS{Value: link.OrderID},
	}
	if link.ClaimID != "" {
		cond += " AND #claim = :claim"
		vals[":claim"] = &types.AttributeValueMemberS{Value: link.ClaimID}
	} else {
		cond += " AND (attribute_not_exists(#claim) OR #claimed_at < :stale)"
		vals[":stale"] = &types.AttributeValueMemberS{Value: formatTime(now.Add(-link.StaleAfter))}
	}

	return r.conditionalUpdate(ctx, method, token, cond,
		"SET #oc = :true, #order_id = :order_id, #updated_at = :updated_at REMOVE #claim, #claimed_at",
		vals,
		map[string]string{
			"#status":     "status",
			"#oc":         "order_created",
			"#order_id":   "order_id",
			"#claim":      "order_claim",
			"#claimed_at": "order_claimed_at",
		},
	)
}

func (r *PaymentTransactionDynamoRepository) Delete(ctx context.Context, method entities.PaymentMethod, token string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          transactionKey(method, token),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// conditionalUpdate runs an UpdateItem on an existing item guarded by cond.
// When the condition fails it returns applied=false and the stored item, if any.
func (r *PaymentTransactionDynamoRepository) conditionalUpdate(
	ctx context.Context,
	method entities.PaymentMethod,
	token string,
	cond string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.PaymentTransaction, bool, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(r.now())}
	condition := "attribute_exists(#pk)"
	if cond != "" {
		condition += " AND (" + cond + ")"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 transactionKey(method, token),
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#pk": "pk", "#updated_at": "updated_at"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, err := fromAttributes(cfe.Item)
			return current, false, err
		}
		return entities.PaymentTransaction{}, false, err
	}
	t, err := fromAttributes(out.Attributes)
	return t, err == nil && t.Token != "", err
}

func (r *PaymentTransactionDynamoRepository) rawItem(ctx context.Context, method entities.PaymentMethod, token string) (paymentTransactionItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            transactionKey(method, token),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return paymentTransactionItem{}, err
	}
	var it paymentTransactionItem
	if len(out.Item) == 0 {
		return it, nil
	}
	err = attributevalue.UnmarshalMap(out.Item, &it)
	return it, err
}

func transactionKey(method entities.PaymentMethod, token string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: compositeKey(method, token)},
	}
}

func compositeKey(method entities.PaymentMethod, value string) string {
	return string(method) + "#" + value
}

func fromAttributes(av map[string]types.AttributeValue) (entities.PaymentTransaction, error) {
	if len(av) == 0 {
		return entities.PaymentTransaction{}, nil
	}
	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func toPaymentTransactionItem(t entities.PaymentTransaction) paymentTransactionItem {
	it := paymentTransactionItem{
		PK:                compositeKey(t.PaymentMethod, t.Token),
		Token:             t.Token,
		PaymentMethod:     string(t.PaymentMethod),
		BuyOrder:          t.BuyOrder,
		MethodBuyOrder:    compositeKey(t.PaymentMethod, t.BuyOrder),
		SessionID:         t.SessionID,
		Amount:            t.Amount.String(),
		Status:            string(t.Status),
		MethodStatus:      compositeKey(t.PaymentMethod, string(t.Status)),
		Payload:           string(t.Payload),
		Response:          string(t.Response),
		ProviderPaymentID: t.ProviderPaymentID,
		OrderCreated:      t.OrderCreated,
		CancelledBy:       t.CancelledBy,
		CancelReason:      t.CancelReason,
		CreatedAt:         formatTime(t.CreatedAt),
		UpdatedAt:         formatTime(t.UpdatedAt),
	}
	if t.SessionID != "" {
		it.MethodSession = compositeKey(t.PaymentMethod, t.SessionID)
	}
	if t.OrderID != nil {
		it.OrderID = *t.OrderID
	}
	if t.CancelledAt != nil {
		it.CancelledAt = formatTime(*t.CancelledAt)
	}
	return it
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	amount, _ := decimal.NewFromString(it.Amount)
	t := entities.PaymentTransaction{
		Token:             it.Token,
		BuyOrder:          it.BuyOrder,
		SessionID:         it.SessionID,
		Amount:            amount,
		Status:            entities.TransactionStatus(it.Status),
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		ProviderPaymentID: it.ProviderPaymentID,
		OrderCreated:      it.OrderCreated,
		CancelledBy:       it.CancelledBy,
		CancelReason:      it.CancelReason,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.Payload != "" {
		t.Payload = json.RawMessage(it.Payload)
	}
	if it.Response != "" {
		t.Response = json.RawMessage(it.Response)
	}
	if it.OrderID != "" {
		orderID := it.OrderID
		t.OrderID = &orderID
	}
	if it.CancelledAt != "" {
		at := parseTime(it.CancelledAt)
		t.CancelledAt = &at
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
