package sdkgen

import (
	"fmt"
)

// Kind classifies a TypeRef.
type Kind int

const (
	// KindScalar is a Go built-in such as string, int64 or bool, or time.Time.
	KindScalar Kind = iota
	// KindEnum is a named string type generated from an enum schema.
	KindEnum
	// KindModel is a generated struct, always referenced through a pointer.
	KindModel
	// KindList is a slice of Elem.
	KindList
	// KindMap is a string-keyed map of Elem.
	KindMap
	// KindAny is free-form JSON.
	KindAny
)

// TypeRef is the Go shape of a property value.
type TypeRef struct {
	Kind Kind
	// Name is the Go type name for scalars, enums and models.
	Name string
	// Elem is the element type of lists and maps.
	Elem *TypeRef
}

// GoType returns the Go type used to hold a present value.
func (t *TypeRef) GoType() string {
	switch t.Kind {
	case KindScalar, KindEnum:
		return t.Name
	case KindModel:
		return "*" + t.Name
	case KindList:
		return "[]" + t.Elem.GoType()
	case KindMap:
		return "map[string]" + t.Elem.GoType()
	default:
		return "any"
	}
}

// Zero returns the Go zero value literal of GoType.
func (t *TypeRef) Zero() string {
	switch t.Kind {
	case KindEnum:
		return `""`
	case KindScalar:
		switch t.Name {
		case "string":
			return `""`
		case "bool":
			return "false"
		case "time.Time":
			return "time.Time{}"
		default:
			return "0"
		}
	default:
		return "nil"
	}
}

// IsValue reports whether copying the Go value copies all of its data.
func (t *TypeRef) IsValue() bool {
	return t.Kind == KindScalar || t.Kind == KindEnum
}

// UsesTime reports whether the type mentions time.Time.
func (t *TypeRef) UsesTime() bool {
	if t.Kind == KindScalar && t.Name == "time.Time" {
		return true
	}
	return t.Elem != nil && t.Elem.UsesTime()
}

func (t *TypeRef) String() string {
	return t.GoType()
}

// Presence describes how a field records whether it was set.
type Presence int

const (
	// PresenceRequired fields are plain values set by the constructor.
	PresenceRequired Presence = iota
	// PresencePointer fields are optional scalars held through a pointer.
	PresencePointer
	// PresenceOptional fields are optional models, lists, maps or free-form
	// values whose nil value means unset.
	PresenceOptional
	// PresenceNullable fields are optional and nullable and use
	// nullable.Value to tell unset from null.
	PresenceNullable
)

// Field is one property of a Model.
type Field struct {
	// JSONName is the property name in the API description.
	JSONName string
	// Name is the exported Go field name.
	Name string
	// Param is the constructor parameter name for required fields.
	Param string
	// Description is the cleaned property description.
	Description string
	Type        *TypeRef
	Required    bool
	// Nullable is true only for optional properties marked nullable.
	Nullable bool
}

// Presence returns how the field tracks whether it was set.
func (f *Field) Presence() Presence {
	switch {
	case f.Required:
		return PresenceRequired
	case f.Nullable:
		return PresenceNullable
	case f.Type.IsValue():
		return PresencePointer
	default:
		return PresenceOptional
	}
}

// IsPointer reports whether the field holds an optional scalar through a pointer.
func (f *Field) IsPointer() bool { return f.Presence() == PresencePointer }

// IsNullable reports whether the field is a nullable.Value.
func (f *Field) IsNullable() bool { return f.Presence() == PresenceNullable }

// FieldType returns the Go type of the struct field.
func (f *Field) FieldType() string {
	switch f.Presence() {
	case PresenceNullable:
		return "nullable.Value[" + f.Type.GoType() + "]"
	case PresencePointer:
		return "*" + f.Type.GoType()
	default:
		return f.Type.GoType()
	}
}

// Tag returns the struct tag of the field, including backquotes.
func (f *Field) Tag() string {
	switch f.Presence() {
	case PresenceRequired:
		return fmt.Sprintf("`json:%q`", f.JSONName)
	case PresenceNullable:
		return fmt.Sprintf("`json:%q`", f.JSONName+",omitzero")
	default:
		return fmt.Sprintf("`json:%q`", f.JSONName+",omitempty")
	}
}

// Model is an object schema rendered as a struct and a builder.
type Model struct {
	// SchemaName is the key under components.schemas.
	SchemaName  string
	Name        string
	Description string
	// Fields are ordered by JSON name.
	Fields []*Field
	// Required are the required fields in the order the schema lists them.
	Required []*Field
}

// Optional returns the fields that are not required, ordered by JSON name.
func (m *Model) Optional() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}
	return out
}

// HasNullable reports whether any field uses nullable.Value.
func (m *Model) HasNullable() bool {
	for _, f := range m.Fields {
		if f.IsNullable() {
			return true
		}
	}
	return false
}

// EnumValue is one constant of an Enum.
type EnumValue struct {
	// Const is the Go constant name.
	Const string
	// Value is the wire value.
	Value string
}

// Enum is a string schema with an enum list.
type Enum struct {
	SchemaName  string
	Name        string
	Description string
	// Values keep the order of the API description.
	Values []EnumValue
}

// Spec is the intermediate representation of an API description.
type Spec struct {
	Title   string
	Version string
	// Models and Enums are ordered by Go name.
	Models []*Model
	Enums  []*Enum
	// Issues lists constructs that were rendered approximately or not at all.
	Issues []Issue
}
