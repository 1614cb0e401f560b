// Package sdkgen generates the models package from an OpenAPI 3 description.
//
// Generation runs in three steps. [Load] parses the document with
// kin-openapi and converts components.schemas into an intermediate
// representation: object schemas become a [Model], string enums become an
// [Enum], and every property gets a [TypeRef] and a [Presence]. [Render]
// executes the embedded templates for each model, builder, enum and the
// shared deep-copy file, then formats the output with goimports. [Generate]
// runs both and returns a [Result] that can be written or compared with a
// directory.
//
// # Presence
//
// Required properties become plain fields set by the constructor. Optional
// scalars are pointers, optional models, lists and maps rely on nil, and
// optional properties marked nullable use nullable.Value so that unset,
// null and a value stay distinct.
//
// # Issues
//
// Constructs that cannot be rendered exactly (oneOf, inline objects,
// integer enums) are reported as [Issue] values instead of failing. Name
// collisions that would not compile are critical and always fail. With
// [WithStrictMode], warnings fail too.
//
// # Usage
//
//	result, err := sdkgen.Generate(ctx, sdkgen.WithConfigFile("api/sdkgen.yaml"))
//	if err != nil {
//	    return err
//	}
//	return result.Write(result.OutputDir)
package sdkgen
