// Package naming provides the identifier rules shared by the code generator.
//
// Names from the API description arrive in snake_case, camelCase or
// SCREAMING_CASE. SplitWords normalises all of them into lower-case words,
// and a Namer joins those words back into exported type and field names or
// unexported parameter names, upper-casing initialisms such as ID and URL.
//
// ToSnakeCase maps generated type names to file names.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
