package models

import (
	"time"
)

// Fixtures shared by the model tests. Each call returns fresh values so tests
// can mutate them freely.

func testMoney(amount int64) *Money {
	return NewMoneyBuilder().Amount(amount).Currency(CurrencyUsd).Build()
}

func testAddress() *Address {
	return NewAddressBuilder().
		AddressLine1("500 Electric Ave").
		AddressLine2("Suite 600").
		AdministrativeDistrictLevel1("NY").
		Country("US").
		Locality("New York").
		PostalCode("10003").
		Build()
}

func testError() *Error {
	return NewErrorBuilder(ErrorCategoryInvalidRequestError, "INVALID_VALUE").
		Detail("points must be non-zero").
		Field("adjust_points.points").
		Build()
}

func testErrors() []*Error {
	return []*Error{testError()}
}

func testCustomer() *Customer {
	return NewCustomerBuilder().
		Address(testAddress()).
		CreatedAt("2024-06-04T12:30:00Z").
		EmailAddress("amelia@example.com").
		FamilyName("Earhart").
		GivenName("Amelia").
		GroupIDs([]string{"grp-vip", "grp-newsletter"}).
		ID("CUST-1").
		Note("prefers email").
		PhoneNumber("+1-212-555-4240").
		Preferences(NewCustomerPreferencesBuilder().EmailUnsubscribed(false).Build()).
		ReferenceID("ext-42").
		UpdatedAt("2024-06-05T08:00:00Z").
		Version(3).
		Build()
}

func testAdjustPoints() *LoyaltyEventAdjustPoints {
	return NewLoyaltyEventAdjustPointsBuilder(10).
		LoyaltyProgramID("prog-1").
		Reason("goodwill").
		Build()
}

func testLoyaltyEvent() *LoyaltyEvent {
	return NewLoyaltyEventBuilder("evt-1", LoyaltyEventTypeAdjustPoints, "2024-06-04T12:30:00Z", "acct-1", LoyaltyEventSourceLoyaltyAPI).
		AdjustPoints(testAdjustPoints()).
		LocationID("loc-1").
		Build()
}

func testCustomAttribute() *CustomAttribute {
	return NewCustomAttributeBuilder().
		CreatedAt("2024-06-04T12:30:00Z").
		Key("favorite-drink").
		UpdatedAt("2024-06-04T12:31:00Z").
		Value(map[string]any{"name": "flat white", "tags": []any{"hot", "milk"}}).
		Version(2).
		Visibility(CustomAttributeVisibilityVisibilityReadWriteValues).
		Build()
}

func testModifier() *OrderLineItemModifier {
	return NewOrderLineItemModifierBuilder().
		BasePriceMoney(testMoney(50)).
		CatalogObjectID("mod-oat-milk").
		Name("Oat milk").
		Quantity("1").
		TotalPriceMoney(testMoney(50)).
		UID("mod-uid-1").
		Build()
}

func testLineItem() *OrderLineItem {
	return NewOrderLineItemBuilder("2").
		BasePriceMoney(testMoney(450)).
		CatalogObjectID("item-latte").
		Metadata(map[string]string{"station": "bar"}).
		Modifiers([]*OrderLineItemModifier{testModifier()}).
		Name("Latte").
		Note("extra hot").
		TotalMoney(testMoney(1000)).
		UID("li-uid-1").
		Build()
}

func testOrder() *Order {
	return NewOrderBuilder("loc-1").
		CreatedAt("2024-06-04T12:30:00Z").
		CustomerID("CUST-1").
		ID("order-1").
		LineItems([]*OrderLineItem{testLineItem()}).
		Metadata(map[string]string{"channel": "kiosk"}).
		ReferenceID("ref-1").
		State(OrderStateOpen).
		TotalMoney(testMoney(1000)).
		Version(1).
		Build()
}

func testPayment() *Payment {
	return NewPaymentBuilder().
		AmountMoney(testMoney(1000)).
		CreatedAt(time.Date(2024, 6, 4, 12, 30, 0, 0, time.UTC)).
		CustomerID("CUST-1").
		ID("pay-1").
		LocationID("loc-1").
		Note("lunch").
		OrderID("order-1").
		ReceiptURL("https://example.com/r/pay-1").
		Status("COMPLETED").
		TipMoney(testMoney(100)).
		TotalMoney(testMoney(1100)).
		Build()
}
