package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type stubDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (s *stubDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return s.getItem(in)
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return s.putItem(in)
}

func (s *stubDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return s.updateItem(in)
}

func (s *stubDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return s.deleteItem(in)
}

func (s *stubDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return s.query(in)
}

func (s *stubDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return s.transact(in)
}

func sampleTransaction() entities.PaymentTransaction {
	orderID := "order-1"
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.PaymentTransaction{
		Token:             "tok-1",
		BuyOrder:          "BO-1",
		SessionID:         "S1",
		Amount:            decimal.RequireFromString("10000.50"),
		Status:            entities.TransactionStatusAuthorized,
		PaymentMethod:     entities.PaymentMethodWebpay,
		Payload:           json.RawMessage(`{"items":[1]}`),
		Response:          json.RawMessage(`{"status":"AUTHORIZED"}`),
		ProviderPaymentID: "tok-1",
		OrderCreated:      true,
		OrderID:           &orderID,
		CreatedAt:         created,
		UpdatedAt:         created.Add(time.Second),
	}
}

func marshalItem(t *testing.T, tx entities.PaymentTransaction) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(tx))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestPaymentTransactionItem_Mapping(t *testing.T) {
	tx := sampleTransaction()
	it := toPaymentTransactionItem(tx)

	if it.PK != "webpay#tok-1" || it.MethodBuyOrder != "webpay#BO-1" || it.MethodSession != "webpay#S1" || it.MethodStatus != "webpay#AUTHORIZED" {
		t.Fatalf("unexpected keys %+v", it)
	}
	if it.Amount != "10000.5" {
		t.Fatalf("unexpected amount %q", it.Amount)
	}
	if it.CreatedAt != "2026-03-01T12:00:00.000000000Z" {
		t.Fatalf("timestamps must be fixed width, got %q", it.CreatedAt)
	}

	back := fromPaymentTransactionItem(it)
	if !back.Amount.Equal(tx.Amount) || !back.CreatedAt.Equal(tx.CreatedAt) || back.OrderID == nil || *back.OrderID != "order-1" {
		t.Fatalf("unexpected round trip %+v", back)
	}
	if string(back.Payload) != string(tx.Payload) || back.CancelledAt != nil {
		t.Fatalf("unexpected round trip %+v", back)
	}
}

func TestPaymentTransactionItem_NoSessionLeavesIndexKeyUnset(t *testing.T) {
	tx := sampleTransaction()
	tx.SessionID = ""
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(tx))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["method_session"]; ok {
		t.Fatalf("empty GSI key must be omitted")
	}
}

func TestPaymentTransactionDynamoRepository_Create(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		api := &stubDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#pk)" {
				t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
			}
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}}
		r := NewPaymentTransactionDynamoRepository(api, "")

		_, err := r.Create(context.Background(), sampleTransaction())
		if !errors.Is(err, interfaces.ErrTransactionAlreadyExists) {
			t.Fatalf("expected ErrTransactionAlreadyExists, got %v", err)
		}
	})

	t.Run("uses configured table", func(t *testing.T) {
		api := &stubDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.TableName) != "tx" {
				t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
			}
			return &dynamodb.PutItemOutput{}, nil
		}}
		r := NewPaymentTransactionDynamoRepository(api, "tx")
		if _, err := r.Create(context.Background(), sampleTransaction()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentTransactionDynamoRepository_GetByToken(t *testing.T) {
	tx := sampleTransaction()
	api := &stubDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		pk := in.Key["pk"].(*types.AttributeValueMemberS).Value
		if pk == "webpay#tok-1" {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, tx)}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	r := NewPaymentTransactionDynamoRepository(api, "")

	got, err := r.GetByToken(context.Background(), entities.PaymentMethodWebpay, "tok-1")
	if err != nil || got.Token != "tok-1" || got.Status != entities.TransactionStatusAuthorized {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
	missing, err := r.GetByToken(context.Background(), entities.PaymentMethodWebpay, "nope")
	if err != nil || missing.Token != "" {
		t.Fatalf("expected zero value, got %+v err=%v", missing, err)
	}
}

func TestPaymentTransactionDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("guard becomes a NOT IN condition", func(t *testing.T) {
		stored := sampleTransaction()
		api := &stubDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			cond := aws.ToString(in.ConditionExpression)
			if cond != "attribute_exists(#pk) AND (NOT (#status IN (:unless0, :unless1)))" {
				t.Fatalf("unexpected condition %q", cond)
			}
			if !strings.Contains(aws.ToString(in.UpdateExpression), "#ppid = :ppid") {
				t.Fatalf("provider payment id not written: %q", aws.ToString(in.UpdateExpression))
			}
			if in.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
				t.Fatalf("expected ALL_OLD on condition failure")
			}
			return nil, &types.ConditionalCheckFailedException{Item: marshalItem(t, stored)}
		}}
		r := NewPaymentTransactionDynamoRepository(api, "")

		got, applied, err := r.UpdateStatus(context.Background(), entities.PaymentMethodWebpay, "tok-1", interfaces.StatusUpdate{
			Status:            entities.TransactionStatusPending,
			ProviderPaymentID: "tok-1",
			UnlessStatus:      []entities.TransactionStatus{entities.TransactionStatusAuthorized, entities.TransactionStatusCanceled},
		})
		if err != nil || applied {
			t.Fatalf("expected skipped write, got applied=%v err=%v", applied, err)
		}
		if got.Status != entities.TransactionStatusAuthorized {
			t.Fatalf("expected stored record, got %+v", got)
		}
	})

	t.Run("applied returns new image", func(t *testing.T) {
		updated := sampleTransaction()
		updated.Status = entities.TransactionStatusRejected
		api := &stubDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#pk)" {
				t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
			}
			return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, updated)}, nil
		}}
		r := NewPaymentTransactionDynamoRepository(api, "")

		got, applied, err := r.UpdateStatus(context.Background(), entities.PaymentMethodWebpay, "tok-1", interfaces.StatusUpdate{Status: entities.TransactionStatusRejected})
		if err != nil || !applied || got.Status != entities.TransactionStatusRejected {
			t.Fatalf("unexpected result %+v applied=%v err=%v", got, applied, err)
		}
	})
}

func TestPaymentTransactionDynamoRepository_OrderClaimAndLink(t *testing.T) {
	var conditions []string
	api := &stubDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		conditions = append(conditions, aws.ToString(in.ConditionExpression))
		for name := range in.ExpressionAttributeNames {
			expr := aws.ToString(in.ConditionExpression) + " " + aws.ToString(in.UpdateExpression)
			if !strings.Contains(expr, name) {
				t.Fatalf("unused attribute name %s in %q", name, expr)
			}
		}
		return nil, &types.ConditionalCheckFailedException{}
	}}
	r := NewPaymentTransactionDynamoRepository(api, "")

	claimed, err := r.ClaimOrderCreation(context.Background(), entities.PaymentMethodWebpay, "tok-1", "claim-1", time.Minute)
	if err != nil || claimed {
		t.Fatalf("expected lost claim, got %v err=%v", claimed, err)
	}
	_, applied, err := r.LinkOrder(context.Background(), entities.PaymentMethodWebpay, "tok-1", interfaces.OrderLink{OrderID: "o-1", ClaimID: "claim-1"})
	if err != nil || applied {
		t.Fatalf("expected skipped link, got %v err=%v", applied, err)
	}
	_, _, _ = r.LinkOrder(context.Background(), entities.PaymentMethodWebpay, "tok-1", interfaces.OrderLink{OrderID: "o-1", StaleAfter: time.Minute})
	if err := r.ReleaseOrderClaim(context.Background(), entities.PaymentMethodWebpay, "tok-1", "claim-1"); err != nil {
		t.Fatalf("release must ignore a lost claim, got %v", err)
	}

	if !strings.Contains(conditions[0], "#claimed_at < :stale") {
		t.Fatalf("claim must allow stale takeover: %q", conditions[0])
	}
	if !strings.Contains(conditions[1], "#claim = :claim") {
		t.Fatalf("claimed link must check the claim id: %q", conditions[1])
	}
	if !strings.Contains(conditions[2], "attribute_not_exists(#claim)") {
		t.Fatalf("manual link must respect live claims: %q", conditions[2])
	}
}

func TestPaymentTransactionDynamoRepository_ReplaceToken(t *testing.T) {
	stored := sampleTransaction()
	stored.Token = "900"
	stored.PaymentMethod = entities.PaymentMethodMercadoPago

	api := &stubDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, stored)}, nil
		},
		transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 2 || in.TransactItems[0].Put == nil || in.TransactItems[1].Delete == nil {
				t.Fatalf("expected put+delete, got %+v", in.TransactItems)
			}
			pk := in.TransactItems[0].Put.Item["pk"].(*types.AttributeValueMemberS).Value
			if pk != "mercadopago#pref-1" {
				t.Fatalf("unexpected new key %q", pk)
			}
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
			}
		},
	}
	r := NewPaymentTransactionDynamoRepository(api, "")

	_, err := r.ReplaceToken(context.Background(), entities.PaymentMethodMercadoPago, "900", "pref-1")
	if !errors.Is(err, interfaces.ErrTransactionAlreadyExists) {
		t.Fatalf("expected ErrTransactionAlreadyExists, got %v", err)
	}
}

func TestPaymentTransactionDynamoRepository_ListUnlinkedAuthorized(t *testing.T) {
	tx := sampleTransaction()
	tx.OrderCreated = false
	tx.OrderID = nil
	calls := 0
	api := &stubDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if aws.ToString(in.IndexName) != StatusIndex || aws.ToBool(in.ScanIndexForward) {
			t.Fatalf("unexpected query %+v", in)
		}
		if calls == 1 {
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{},
				LastEvaluatedKey: map[string]types.AttributeValue{"pk": &types.AttributeValueMemberS{Value: "x"}},
			}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, tx), marshalItem(t, tx)}}, nil
	}}
	r := NewPaymentTransactionDynamoRepository(api, "")

	got, err := r.ListUnlinkedAuthorized(context.Background(), entities.PaymentMethodWebpay, 1)
	if err != nil || len(got) != 1 || calls != 2 {
		t.Fatalf("expected one item after paging, got %d items, %d calls, err=%v", len(got), calls, err)
	}
}

func TestPaymentTransactionDynamoRepository_Delete(t *testing.T) {
	api := &stubDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		if in.ReturnValues != types.ReturnValueAllOld {
			t.Fatalf("expected ALL_OLD")
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}}
	r := NewPaymentTransactionDynamoRepository(api, "")

	deleted, err := r.Delete(context.Background(), entities.PaymentMethodWebpay, "tok-1")
	if err != nil || deleted {
		t.Fatalf("expected not deleted, got %v err=%v", deleted, err)
	}
}
