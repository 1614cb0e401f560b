// Package models contains the request, response and resource types of the
// commerce API together with a fluent builder for each of them.
//
// Everything in this package except this file and the tests is generated from
// api/commerce.yaml by internal/codegen/sdkgen. Regenerate after changing the
// API description:
//
//	go generate ./models
//
// # Models
//
// Each model is a plain struct whose json tags mirror the API contract.
// Required fields are plain values. Optional fields are pointers, slices or
// maps that are omitted from the JSON encoding when nil. Optional fields that
// the API also allows to be null are nullable.Value fields, which track three
// states: unset (omitted), null (encoded as null) and value.
//
// Models have nil-safe Get methods, Set methods, and for nullable fields
// SetXxxNull and UnsetXxx methods. DeepCopy returns a fully independent copy.
//
// # Builders
//
// New<Model>Builder takes the required fields of the model. Chained methods
// set optional fields, and Build returns a deep copy of the accumulated
// model, so a builder may be reused and the models it produced never share
// memory with it or with each other:
//
//	req := models.NewAdjustLoyaltyPointsRequestBuilder(
//	    "0f2a1c9e-idempotency",
//	    models.NewLoyaltyEventAdjustPointsBuilder(10).Reason("goodwill").Build(),
//	).AllowNegativeBalance(false).Build()
//
// Models are not safe for concurrent mutation. A built model that is no longer
// mutated can be shared freely.
package models

//go:generate go run ../internal/codegen/sdkgen -config ../api/sdkgen.yaml
