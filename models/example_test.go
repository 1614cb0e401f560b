package models_test

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/commerce/models"
)

func ExampleNewAdjustLoyaltyPointsRequestBuilder() {
	points := models.NewLoyaltyEventAdjustPointsBuilder(10).Reason("goodwill").Build()

	req := models.NewAdjustLoyaltyPointsRequestBuilder("key-1", points).
		AllowNegativeBalance(false).
		Build()

	data, _ := json.Marshal(req)
	fmt.Println(string(data))
	// Output: {"adjust_points":{"points":10,"reason":"goodwill"},"allow_negative_balance":false,"idempotency_key":"key-1"}
}

func ExampleUpdateCustomerRequestBuilder_NoteNull() {
	req := models.NewUpdateCustomerRequestBuilder().
		GivenName("Grace").
		NoteNull().
		Build()

	data, _ := json.Marshal(req)
	fmt.Println(string(data))
	// Output: {"given_name":"Grace","note":null}
}

func ExampleOrderBuilder_Build() {
	b := models.NewOrderBuilder("loc-1").ReferenceID("ref-1")

	first := b.Build()
	second := b.ReferenceID("ref-2").Build()

	fmt.Println(first.GetReferenceID(), second.GetReferenceID())
	// Output: ref-1 ref-2
}
