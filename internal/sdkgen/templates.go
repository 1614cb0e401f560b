package sdkgen

import (
	"bytes"
	"embed"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

// Template names.
const (
	modelTemplate    = "model.go.tmpl"
	builderTemplate  = "builder.go.tmpl"
	enumTemplate     = "enum.go.tmpl"
	deepcopyTemplate = "deepcopy.go.tmpl"
)

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"params":   params,
	"args":     args,
	"consts":   consts,
	"copyStmt": copyStmt,
}

// params renders the constructor parameter list for fields.
func params(fields []*Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Param + " " + f.Type.GoType()
	}
	return strings.Join(parts, ", ")
}

// args renders the constructor argument list for fields.
func args(fields []*Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Param
	}
	return strings.Join(parts, ", ")
}

func consts(values []EnumValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Const
	}
	return strings.Join(parts, ", ")
}

// copyStmt returns the DeepCopyInto statements needed for f beyond the
// shallow struct copy, or "" when the shallow copy is already deep.
func copyStmt(f *Field) string {
	t, x := f.Type, f.Name
	switch f.Presence() {
	case PresenceNullable:
		switch t.Kind {
		case KindScalar, KindEnum:
			return ""
		case KindModel:
			return "\tout." + x + " = in." + x + ".Clone((*" + t.Name + ").DeepCopy)"
		case KindAny:
			return "\tout." + x + " = in." + x + ".Clone(clone.JSON)"
		default:
			return "\tout." + x + " = in." + x + ".Clone(" + containerCopyFunc(t) + ")"
		}
	case PresencePointer:
		return "\tif in." + x + " != nil {\n\t\tout." + x + " = new(" + t.GoType() + ")\n\t\t*out." + x + " = *in." + x + "\n\t}"
	}
	switch t.Kind {
	case KindScalar, KindEnum:
		return ""
	case KindModel:
		return "\tout." + x + " = in." + x + ".DeepCopy()"
	case KindAny:
		return "\tout." + x + " = clone.JSON(in." + x + ")"
	case KindList:
		if fn := elemCopyFunc(t.Elem); fn != "" {
			return "\tout." + x + " = clone.Slice(in." + x + ", " + fn + ")"
		}
		return "\tout." + x + " = clone.Values(in." + x + ")"
	default:
		if fn := elemCopyFunc(t.Elem); fn != "" {
			return "\tout." + x + " = clone.Map(in." + x + ", " + fn + ")"
		}
		return "\tout." + x + " = clone.ValueMap(in." + x + ")"
	}
}

// elemCopyFunc returns the function that deep-copies one element of a list
// or map, or "" when copying the element value is enough.
func elemCopyFunc(elem *TypeRef) string {
	switch elem.Kind {
	case KindModel:
		return "(*" + elem.Name + ").DeepCopy"
	case KindAny:
		return "clone.JSON"
	case KindList, KindMap:
		return containerCopyFunc(elem)
	default:
		return ""
	}
}

// containerCopyFunc returns the function that deep-copies a whole list or map.
func containerCopyFunc(t *TypeRef) string {
	fn := elemCopyFunc(t.Elem)
	if t.Kind == KindList {
		if fn != "" {
			return "clone.SliceWith(" + fn + ")"
		}
		return "clone.Values[" + t.Elem.GoType() + "]"
	}
	if fn != "" {
		return "clone.MapWith(" + fn + ")"
	}
	return "clone.ValueMap[" + t.Elem.GoType() + "]"
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 8*1024))
	},
}

// executeTemplate executes a template by name into a pooled buffer and
// returns a copy of the raw output.
func executeTemplate(name string, data any) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
