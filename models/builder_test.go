package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/commerce/nullable"
)

func TestBuilder_RequiredFieldsPropagate(t *testing.T) {
	x := NewLoyaltyEventAdjustPointsBuilder(10).Reason("goodwill").Build()

	req := NewAdjustLoyaltyPointsRequestBuilder("key-1", x).Build()

	assert.Equal(t, "key-1", req.IdempotencyKey)
	assert.Equal(t, x, req.AdjustPoints)
	assert.NotSame(t, x, req.AdjustPoints)
	assert.False(t, req.AllowNegativeBalance.IsPresent())
}

func TestBuilder_RequiredNilPointerIsAccepted(t *testing.T) {
	req := NewAdjustLoyaltyPointsRequestBuilder("key-1", nil).Build()

	assert.Nil(t, req.AdjustPoints)
	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"adjust_points":null,"idempotency_key":"key-1"}`, string(data))
}

func TestBuilder_OptionalValueRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		build func() *CreatePaymentRequest
		check func(t *testing.T, req *CreatePaymentRequest)
	}{
		{
			name:  "nullable bool false",
			build: func() *CreatePaymentRequest { return NewCreatePaymentRequestBuilder("src", "key").Autocomplete(false).Build() },
			check: func(t *testing.T, req *CreatePaymentRequest) {
				assert.Equal(t, nullable.StateValue, req.Autocomplete.State())
				assert.False(t, req.GetAutocomplete())
			},
		},
		{
			name:  "nullable string",
			build: func() *CreatePaymentRequest { return NewCreatePaymentRequestBuilder("src", "key").Note("lunch").Build() },
			check: func(t *testing.T, req *CreatePaymentRequest) {
				assert.Equal(t, "lunch", req.GetNote())
			},
		},
		{
			name: "nested model",
			build: func() *CreatePaymentRequest {
				return NewCreatePaymentRequestBuilder("src", "key").TipMoney(testMoney(150)).Build()
			},
			check: func(t *testing.T, req *CreatePaymentRequest) {
				require.NotNil(t, req.TipMoney)
				assert.Equal(t, int64(150), req.TipMoney.GetAmount())
				assert.Equal(t, CurrencyUsd, req.TipMoney.GetCurrency())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.build())
		})
	}
}

func TestBuilder_PointerOptionalRoundTrips(t *testing.T) {
	req := NewCreateCustomerRequestBuilder().GivenName("").IdempotencyKey("key-2").Build()

	require.NotNil(t, req.GivenName)
	assert.Equal(t, "", *req.GivenName)
	assert.Equal(t, "key-2", req.GetIdempotencyKey())
	assert.Nil(t, req.FamilyName)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"given_name":"","idempotency_key":"key-2"}`, string(data))
}

func TestBuilder_UnsetRevertsPresence(t *testing.T) {
	x := testAdjustPoints()

	withValue := NewAdjustLoyaltyPointsRequestBuilder("key-1", x).AllowNegativeBalance(true)
	unset := NewAdjustLoyaltyPointsRequestBuilder("key-1", x).AllowNegativeBalance(true).UnsetAllowNegativeBalance().Build()
	never := NewAdjustLoyaltyPointsRequestBuilder("key-1", x).Build()

	assert.True(t, withValue.Build().AllowNegativeBalance.HasValue())
	assert.False(t, unset.AllowNegativeBalance.IsPresent())
	requireSameModel(t, never, unset)

	data, err := json.Marshal(unset)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "allow_negative_balance")
}

func TestBuilder_UnsetAfterNull(t *testing.T) {
	m := NewMoneyBuilder().AmountNull().UnsetAmount().Build()
	assert.False(t, m.Amount.IsPresent())
}

func TestBuilder_ExplicitNull(t *testing.T) {
	req := NewUpdateCustomerRequestBuilder().
		Note("old note").
		NoteNull().
		GivenName("Grace").
		Build()

	assert.True(t, req.Note.IsNull())
	assert.Equal(t, "", req.GetNote())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":null,"given_name":"Grace"}`, string(data))
}

func TestBuilder_ValueAfterNull(t *testing.T) {
	req := NewUpdateCustomerRequestBuilder().NoteNull().Note("new note").Build()
	assert.True(t, req.Note.HasValue())
	assert.Equal(t, "new note", req.GetNote())
}

func TestBuilder_BuildIsIndependentOfInputs(t *testing.T) {
	x := testAdjustPoints()
	b := NewAdjustLoyaltyPointsRequestBuilder("key-1", x)
	built := b.Build()

	x.Points = 99
	x.SetReasonNull()

	assert.Equal(t, 10, built.AdjustPoints.Points)
	assert.Equal(t, "goodwill", built.AdjustPoints.GetReason())
}

func TestBuilder_BuildIsIndependentOfBuilder(t *testing.T) {
	metadata := map[string]string{"channel": "kiosk"}
	b := NewOrderBuilder("loc-1").
		Metadata(metadata).
		LineItems([]*OrderLineItem{testLineItem()})
	first := b.Build()

	// mutate the result and keep using the builder
	first.Metadata.OrZero()["channel"] = "web"
	first.LineItems.OrZero()[0].Quantity = "7"
	first.LocationID = "loc-2"
	b.ReferenceID("ref-9")

	second := b.Build()
	assert.Equal(t, "kiosk", second.Metadata.OrZero()["channel"])
	assert.Equal(t, "2", second.LineItems.OrZero()[0].Quantity)
	assert.Equal(t, "loc-1", second.LocationID)
	assert.Equal(t, "ref-9", second.GetReferenceID())
	assert.False(t, first.ReferenceID.IsPresent(), "earlier build must not see later setter calls")
}

func TestBuilder_FreeFormValueIsCopied(t *testing.T) {
	b := NewCustomAttributeBuilder().Value([]map[string]any{{"tier": "gold"}})
	first := b.Build()

	first.Value.([]map[string]any)[0]["tier"] = "changed"
	second := b.Build()

	assert.Equal(t, []map[string]any{{"tier": "gold"}}, second.Value)

	nested := map[string][]int{"points": {10, 20}}
	built := NewCustomAttributeBuilder().Value(nested).Build()
	nested["points"][0] = 0
	assert.Equal(t, map[string][]int{"points": {10, 20}}, built.Value)
}

func TestBuilder_BuildsDoNotShareMemory(t *testing.T) {
	b := NewListCustomersResponseBuilder().
		Customers([]*Customer{testCustomer()}).
		Errors(testErrors())

	first, second := b.Build(), b.Build()
	requireNoSharedMemory(t, first, second)

	first.Customers[0].GroupIDs.OrZero()[0] = "changed"
	first.Customers[0].Address.SetCountry("CA")
	first.Errors[0].Code = "CHANGED"

	assert.Equal(t, "grp-vip", second.Customers[0].GroupIDs.OrZero()[0])
	assert.Equal(t, "US", second.Customers[0].Address.GetCountry())
	assert.Equal(t, "INVALID_VALUE", second.Errors[0].Code)
}

func TestBuilder_ChainingOrderIndependence(t *testing.T) {
	forward := NewCreatePaymentRequestBuilder("src", "key").
		AmountMoney(testMoney(1000)).
		Autocomplete(true).
		CustomerID("CUST-1").
		Note("lunch").
		TipMoney(testMoney(100)).
		Build()
	backward := NewCreatePaymentRequestBuilder("src", "key").
		TipMoney(testMoney(100)).
		Note("lunch").
		CustomerID("CUST-1").
		Autocomplete(true).
		AmountMoney(testMoney(1000)).
		Build()

	requireSameModel(t, forward, backward)

	a, err := json.Marshal(forward)
	require.NoError(t, err)
	b, err := json.Marshal(backward)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuilder_LastSetterWins(t *testing.T) {
	req := NewCreatePaymentRequestBuilder("src", "key").Note("first").Note("second").Build()
	assert.Equal(t, "second", req.GetNote())
}

func TestBuilder_IdempotentRebuild(t *testing.T) {
	b := NewOrderLineItemBuilder("2").
		Name("Latte").
		Modifiers([]*OrderLineItemModifier{testModifier()}).
		Metadata(map[string]string{"station": "bar"})

	first, second := b.Build(), b.Build()

	assert.NotSame(t, first, second)
	requireSameModel(t, first, second)
	requireNoSharedMemory(t, first, second)
}

func TestBuilder_NilInputsStayNil(t *testing.T) {
	req := NewOrderBuilder("loc-1").LineItems(nil).Metadata(nil).Build()

	assert.True(t, req.LineItems.HasValue())
	assert.Nil(t, req.LineItems.OrZero())
	assert.Nil(t, req.Metadata.OrZero())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"location_id":"loc-1","line_items":null,"metadata":null}`, string(data))
}
