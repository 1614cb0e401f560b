package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "snake_case", input: "loyalty_account_id", want: []string{"loyalty", "account", "id"}},
		{name: "camelCase", input: "customerId", want: []string{"customer", "id"}},
		{name: "PascalCase", input: "CreateCustomerRequest", want: []string{"create", "customer", "request"}},
		{name: "upper snake", input: "VISIBILITY_READ_ONLY", want: []string{"visibility", "read", "only"}},
		{name: "trailing digit", input: "address_line_1", want: []string{"address", "line", "1"}},
		{name: "digit then upper", input: "level1District", want: []string{"level1", "district"}},
		{name: "acronym run stays together", input: "APIError", want: []string{"apierror"}},
		{name: "kebab and dots", input: "x-rate.limit", want: []string{"x", "rate", "limit"}},
		{name: "only separators", input: "__--", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitWords(tt.input), "SplitWords(%q)", tt.input)
		})
	}
}

func TestNamer_TypeName(t *testing.T) {
	n := NewNamer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: "Type"},
		{name: "snake_case", input: "idempotency_key", want: "IdempotencyKey"},
		{name: "trailing initialism", input: "loyalty_account_id", want: "LoyaltyAccountID"},
		{name: "plural initialism", input: "group_ids", want: "GroupIDs"},
		{name: "url", input: "receipt_url", want: "ReceiptURL"},
		{name: "uid", input: "uid", want: "UID"},
		{name: "enum value", input: "API_ERROR", want: "APIError"},
		{name: "enum value without initialism", input: "READ_WRITE_VALUES", want: "ReadWriteValues"},
		{name: "currency code", input: "USD", want: "Usd"},
		{name: "schema name kept", input: "LoyaltyEventAdjustPoints", want: "LoyaltyEventAdjustPoints"},
		{name: "trailing number", input: "address_line_1", want: "AddressLine1"},
		{name: "words ending in s are not plural initialisms", input: "points", want: "Points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.TypeName(tt.input), "TypeName(%q)", tt.input)
		})
	}
}

func TestNamer_ExtraInitialisms(t *testing.T) {
	n := NewNamer("GTIN", "pos")

	assert.Equal(t, "ItemGTIN", n.TypeName("item_gtin"))
	assert.Equal(t, "POSDevices", n.TypeName("pos_devices"))
	assert.Equal(t, "POSs", n.TypeName("poss"))

	// a fresh Namer does not see another's extras
	assert.Equal(t, "ItemGtin", NewNamer().TypeName("item_gtin"))
}

func TestNamer_ParamName(t *testing.T) {
	n := NewNamer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: "v"},
		{name: "single word", input: "points", want: "points"},
		{name: "snake_case", input: "idempotency_key", want: "idempotencyKey"},
		{name: "initialism first stays lower", input: "id", want: "id"},
		{name: "initialism later", input: "loyalty_account_id", want: "loyaltyAccountID"},
		{name: "keyword", input: "type", want: "type_"},
		{name: "keyword range", input: "range", want: "range_"},
		{name: "not a keyword", input: "source", want: "source"},
		{name: "leading digit", input: "1st", want: "p1st"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ParamName(tt.input), "ParamName(%q)", tt.input)
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single word", input: "Money", want: "money"},
		{name: "PascalCase", input: "OrderLineItemModifier", want: "order_line_item_modifier"},
		{name: "already snake", input: "order_state", want: "order_state"},
		{name: "separators", input: "api-client.v2/users", want: "api_client_v2_users"},
		{name: "leading initialism", input: "APIClient", want: "api_client"},
		{name: "trailing initialism", input: "CustomerID", want: "customer_id"},
		{name: "plural initialism", input: "PetIDs", want: "pet_ids"},
		{name: "plural initialism mid-word", input: "APIKeyIDsList", want: "api_key_ids_list"},
		{name: "initialism then word", input: "HTTPServerURL", want: "http_server_url"},
		{name: "digit boundary", input: "V2Users", want: "v2_users"},
		{name: "word ending in s", input: "UserStatus", want: "user_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input), "ToSnakeCase(%q)", tt.input)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "customer.go", FileName("Customer", ""))
	assert.Equal(t, "adjust_loyalty_points_request_builder.go", FileName("AdjustLoyaltyPointsRequest", "_builder"))
	assert.Equal(t, "api_key.go", FileName("APIKey", ""))
}
