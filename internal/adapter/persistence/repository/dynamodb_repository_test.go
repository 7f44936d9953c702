package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the last input of each call and returns canned outputs.
type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	putErr    error
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	queryOut  []*dynamodb.QueryOutput

	lastGet    *dynamodb.GetItemInput
	lastPut    *dynamodb.PutItemInput
	lastUpdate *dynamodb.UpdateItemInput
	lastDelete *dynamodb.DeleteItemInput
	lastQuery  *dynamodb.QueryInput
	queries    int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGet = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.updateErr
	}
	return f.updateOut, f.updateErr
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.lastDelete = in
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	if f.queries >= len(f.queryOut) {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOut[f.queries]
	f.queries++
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestQuoteTotalsDynamoRepository_Upsert(t *testing.T) {
	totals := entities.QuoteTotals{
		QuoteID: "q1",
		Scope:   "active_run:r1",
		Breakdown: entities.TotalsBreakdown{
			Translation: 650, Certification: 35, Subtotal: 685, Tax: 34.25, Total: 719.25, TaxRate: 0.05,
		},
		CalculatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("first write requires missing row", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewQuoteTotalsDynamoRepository(ddb, "quote_totals")

		got, err := repo.Upsert(context.Background(), totals, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 1 {
			t.Fatalf("expected version 1, got %d", got.Version)
		}
		if aws.ToString(ddb.lastPut.ConditionExpression) != "attribute_not_exists(#quote_id)" {
			t.Fatalf("unexpected condition %q", aws.ToString(ddb.lastPut.ConditionExpression))
		}
		if _, ok := ddb.lastPut.ExpressionAttributeValues[":expected"]; ok {
			t.Fatalf("did not expect :expected on first write")
		}
	})

	t.Run("later write is guarded by version", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewQuoteTotalsDynamoRepository(ddb, "quote_totals")

		got, err := repo.Upsert(context.Background(), totals, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 5 {
			t.Fatalf("expected version 5, got %d", got.Version)
		}
		expected, ok := ddb.lastPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
		if !ok || expected.Value != "4" {
			t.Fatalf("expected :expected=4, got %#v", ddb.lastPut.ExpressionAttributeValues[":expected"])
		}
		var stored quoteTotalsItem
		if err := attributevalue.UnmarshalMap(ddb.lastPut.Item, &stored); err != nil {
			t.Fatalf("unmarshal stored item: %v", err)
		}
		if stored.Version != 5 || stored.Total != "719.25" || stored.Breakdown.TaxRate != "0.05" {
			t.Fatalf("unexpected stored item: %+v", stored)
		}
	})

	t.Run("condition failure is a version conflict", func(t *testing.T) {
		ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		repo := NewQuoteTotalsDynamoRepository(ddb, "quote_totals")

		_, err := repo.Upsert(context.Background(), totals, 2)
		if !errors.Is(err, interfaces.ErrTotalsVersionConflict) {
			t.Fatalf("expected ErrTotalsVersionConflict, got %v", err)
		}
	})
}

func TestQuoteTotalsDynamoRepository_GetByQuoteID(t *testing.T) {
	t.Run("missing row is zero value", func(t *testing.T) {
		repo := NewQuoteTotalsDynamoRepository(&fakeDynamo{}, "quote_totals")
		got, err := repo.GetByQuoteID(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuoteID != "" || got.Version != 0 {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("reads stored breakdown", func(t *testing.T) {
		item := quoteTotalsItem{
			QuoteID: "q1", Scope: "manual_only", Subtotal: "100", Tax: "5", Total: "105", Version: 3,
			Breakdown:    breakdownItem{Translation: "100", Certification: "0", AdditionalItems: "0", DiscountsOrSurcharges: "0", TaxRate: "0.05"},
			CalculatedAt: "2026-01-02T03:04:05Z",
		}
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustMarshal(t, item)}}
		repo := NewQuoteTotalsDynamoRepository(ddb, "quote_totals")

		got, err := repo.GetByQuoteID(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 3 || got.Breakdown.Total != 105 || got.Breakdown.TaxRate != 0.05 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})
}

func TestQuoteDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing quote yields zero quote", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		got, err := repo.UpdateStatus(context.Background(), "q1", entities.QuoteStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero quote, got %+v", got)
		}
	})

	t.Run("returns updated attributes", func(t *testing.T) {
		stored := quoteItem{ID: "q1", QuoteNumber: "Q-20260102-abc123", Status: "sent", Workflow: "self_serve"}
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, stored)}}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		got, err := repo.UpdateStatus(context.Background(), "q1", entities.QuoteStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuoteStatusSent {
			t.Fatalf("expected sent, got %s", got.Status)
		}
		if aws.ToString(ddb.lastUpdate.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("unexpected condition %q", aws.ToString(ddb.lastUpdate.ConditionExpression))
		}
	})
}

func TestQuoteDynamoRepository_UpdateActiveRunClear(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewQuoteDynamoRepository(ddb, "quotes")

	if _, err := repo.UpdateActiveRun(context.Background(), "q1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := aws.ToString(ddb.lastUpdate.UpdateExpression); got != "SET #updated_at = :updated_at REMOVE #active_run_id" {
		t.Fatalf("unexpected update expression %q", got)
	}
}

func TestQuoteDynamoRepository_PaymentClaim(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("claim is conditional on status and a live claim", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		ok, err := repo.ClaimForPayment(context.Background(), "q1", "c-1", now, now.Add(time.Minute))
		if err != nil || !ok {
			t.Fatalf("expected claim, got %v %v", ok, err)
		}
		in := ddb.lastUpdate
		want := "attribute_exists(#id) AND #status IN (:sent, :accepted) AND (attribute_not_exists(#claim) OR #claim_until < :now)"
		if got := aws.ToString(in.ConditionExpression); got != want {
			t.Fatalf("unexpected condition %q", got)
		}
		until, ok := in.ExpressionAttributeValues[":until"].(*types.AttributeValueMemberN)
		if !ok || until.Value != "1772366460000" {
			t.Fatalf("unexpected :until %#v", in.ExpressionAttributeValues[":until"])
		}
		nowVal, ok := in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN)
		if !ok || nowVal.Value != "1772366400000" {
			t.Fatalf("unexpected :now %#v", in.ExpressionAttributeValues[":now"])
		}
		if in.ExpressionAttributeValues[":claim"].(*types.AttributeValueMemberS).Value != "c-1" {
			t.Fatalf("claim id not written")
		}
	})

	t.Run("held claim reports false", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		ok, err := repo.ClaimForPayment(context.Background(), "q1", "c-2", now, now.Add(time.Minute))
		if err != nil || ok {
			t.Fatalf("expected no claim and no error, got %v %v", ok, err)
		}
	})

	t.Run("store error surfaces", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: errors.New("throttled")}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		if _, err := repo.ClaimForPayment(context.Background(), "q1", "c-2", now, now.Add(time.Minute)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("release only drops its own claim", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewQuoteDynamoRepository(ddb, "quotes")

		if err := repo.ReleasePaymentClaim(context.Background(), "q1", "c-1"); err != nil {
			t.Fatalf("a claim taken over by another checkout must not fail: %v", err)
		}
		if got := aws.ToString(ddb.lastUpdate.ConditionExpression); got != "#claim = :claim" {
			t.Fatalf("unexpected condition %q", got)
		}
		if got := aws.ToString(ddb.lastUpdate.UpdateExpression); got != "REMOVE #claim, #claim_until" {
			t.Fatalf("unexpected update %q", got)
		}
	})
}

func TestLineItemDynamoRepository_ListByQuoteID(t *testing.T) {
	override := "30"
	older := lineItemItem{ID: "li-1", QuoteID: "q1", Source: "analysis", BillablePages: "2", BaseRate: "25",
		CertificationAmount: "0", CreatedAt: "2026-01-01T10:00:00Z"}
	newer := lineItemItem{ID: "li-2", QuoteID: "q1", Source: "manual", BillablePages: "1.5", BaseRate: "20",
		OverrideRate: &override, OverrideReason: "rush", CertificationAmount: "10", CreatedAt: "2026-01-01T11:00:00Z"}

	ddb := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{mustMarshal(t, newer)}, LastEvaluatedKey: childKey("q1", "li-2")},
		{Items: []map[string]types.AttributeValue{mustMarshal(t, older)}},
	}}
	repo := NewLineItemDynamoRepository(ddb, "quote_line_items")

	got, err := repo.ListByQuoteID(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items across pages, got %d", len(got))
	}
	if got[0].ID != "li-1" || got[1].ID != "li-2" {
		t.Fatalf("expected oldest first, got %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].OverrideRate == nil || *got[1].OverrideRate != 30 || got[1].EffectiveRate() != 30 {
		t.Fatalf("expected override rate 30, got %+v", got[1].OverrideRate)
	}
	if got[0].OverrideRate != nil {
		t.Fatalf("expected no override on li-1")
	}
}

func keyString(t *testing.T, key map[string]types.AttributeValue, name string) string {
	t.Helper()
	v, ok := key[name].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("key attribute %s missing in %#v", name, key)
	}
	return v.Value
}

func TestChildRepositories_ReadTheirOwnWrites(t *testing.T) {
	t.Run("line items are listed from the base table with consistent reads", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewLineItemDynamoRepository(ddb, "quote_line_items")

		if _, err := repo.ListByQuoteID(context.Background(), "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ddb.lastQuery.IndexName != nil {
			t.Fatalf("expected a base table query, got index %q", aws.ToString(ddb.lastQuery.IndexName))
		}
		if !aws.ToBool(ddb.lastQuery.ConsistentRead) {
			t.Fatalf("expected a strongly consistent query")
		}
		if aws.ToString(ddb.lastQuery.KeyConditionExpression) != "quote_id = :qid" {
			t.Fatalf("unexpected key condition %q", aws.ToString(ddb.lastQuery.KeyConditionExpression))
		}
	})

	t.Run("certifications and adjustments use the same query", func(t *testing.T) {
		ddb := &fakeDynamo{}
		if _, err := NewCertificationDynamoRepository(ddb, "quote_certifications").ListByQuoteID(context.Background(), "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ddb.lastQuery.IndexName != nil || !aws.ToBool(ddb.lastQuery.ConsistentRead) {
			t.Fatalf("certifications: expected consistent base table query")
		}
		if _, err := NewAdjustmentDynamoRepository(ddb, "quote_adjustments").ListByQuoteID(context.Background(), "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ddb.lastQuery.IndexName != nil || !aws.ToBool(ddb.lastQuery.ConsistentRead) {
			t.Fatalf("adjustments: expected consistent base table query")
		}
	})

	t.Run("get and delete address the quote partition", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewLineItemDynamoRepository(ddb, "quote_line_items")

		got, err := repo.GetByID(context.Background(), "q1", "li-1")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero line item, got %+v err=%v", got, err)
		}
		if keyString(t, ddb.lastGet.Key, "quote_id") != "q1" || keyString(t, ddb.lastGet.Key, "id") != "li-1" {
			t.Fatalf("unexpected get key %#v", ddb.lastGet.Key)
		}
		if err := repo.Delete(context.Background(), "q1", "li-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if keyString(t, ddb.lastDelete.Key, "quote_id") != "q1" || keyString(t, ddb.lastDelete.Key, "id") != "li-1" {
			t.Fatalf("unexpected delete key %#v", ddb.lastDelete.Key)
		}
	})
}

func TestLineItemDynamoRepository_UpdateMissing(t *testing.T) {
	ddb := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}
	repo := NewLineItemDynamoRepository(ddb, "quote_line_items")

	got, err := repo.Update(context.Background(), entities.LineItem{ID: "li-1", QuoteID: "q1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero line item, got %+v", got)
	}
	if aws.ToString(ddb.lastPut.ConditionExpression) != "attribute_exists(#id)" {
		t.Fatalf("unexpected condition %q", aws.ToString(ddb.lastPut.ConditionExpression))
	}
}
