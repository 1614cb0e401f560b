// Package commerce is the Go SDK model layer for the commerce API.
//
// The SDK is split into a few packages:
//
//   - models: request, response and resource types with fluent builders,
//     generated from api/commerce.yaml
//   - nullable: the tri-state field wrapper used for optional fields the API
//     allows to be null
//   - oaserrors: structured errors returned by the code generator
//
// This package carries build metadata shared by the SDK's tools and clients:
//
//	req.Header.Set("User-Agent", commerce.UserAgent())
//
// # Presence
//
// Every optional field of a model is in one of three states. It is unset when
// the caller never touched it and it is omitted from the request body. It is
// null when the caller explicitly cleared it, which only nullable fields can
// express. Otherwise it holds a value.
//
//	b := models.NewCustomerPreferencesBuilder()
//	b.EmailUnsubscribed(true)  // value
//	b.EmailUnsubscribedNull()  // null
//	b.UnsetEmailUnsubscribed() // back to unset
//
// # Regenerating
//
// The models package is generated by internal/codegen/sdkgen using the
// configuration in api/sdkgen.yaml:
//
//	go generate ./models
//
// CI runs the generator with -check to fail the build when the committed
// models are stale:
//
//	go run ./internal/codegen/sdkgen -config api/sdkgen.yaml -check
package commerce
