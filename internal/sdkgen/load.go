package sdkgen

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/erraggy/commerce/internal/issues"
	"github.com/erraggy/commerce/internal/naming"
	"github.com/erraggy/commerce/internal/severity"
	"github.com/erraggy/commerce/oaserrors"
	"github.com/getkin/kin-openapi/openapi3"
)

// Issue is a construct of the API description that was rendered approximately
// or skipped.
type Issue = issues.Issue

// Severity is the seriousness of an Issue.
type Severity = severity.Severity

const (
	// SeverityInfo marks a processing choice worth knowing about.
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning marks a construct rendered with a looser type. Strict
	// mode fails on warnings.
	SeverityWarning = severity.SeverityWarning
	// SeverityError marks a construct that could not be rendered.
	SeverityError = severity.SeverityError
	// SeverityCritical marks a naming conflict that would not compile.
	// Critical issues always fail the operation.
	SeverityCritical = severity.SeverityCritical
)

const schemaRefPrefix = "#/components/schemas/"

// namespace maps declared Go names to what declared them.
type namespace map[string]string

// taken returns the first of names already declared, and its owner.
func (n namespace) taken(names []string) (name, owner string) {
	for _, candidate := range names {
		if owner, ok := n[candidate]; ok {
			return candidate, owner
		}
	}
	return "", ""
}

func (n namespace) claim(owner string, names []string) {
	for _, name := range names {
		n[name] = owner
	}
}

// Load parses the configured API description and converts its component
// schemas into a Spec. Constructs the generator cannot render exactly are
// reported in Spec.Issues. With strict mode, any warning fails the call.
func Load(ctx context.Context, opts ...Option) (*Spec, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	spec, err := load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := checkIssues(spec.Issues, cfg.strictMode); err != nil {
		return spec, err
	}
	return spec, nil
}

func load(ctx context.Context, cfg *generateConfig) (*Spec, error) {
	doc, err := loadDocument(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c := &converter{
		namer:  cfg.namer(),
		logger: cfg.logger,
		models:  map[string]string{},
		enums:   map[string]string{},
		globals: namespace{},
		files:   namespace{DeepCopyFile: "the deep-copy file"},
	}
	if doc.Components != nil {
		c.schemas = doc.Components.Schemas
	}
	spec, err := c.convert(cfg.include)
	if err != nil {
		return nil, err
	}
	if doc.Info != nil {
		spec.Title = doc.Info.Title
		spec.Version = doc.Info.Version
	}
	return spec, nil
}

func loadDocument(ctx context.Context, cfg *generateConfig) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	var (
		doc *openapi3.T
		err error
	)
	if cfg.specPath != nil {
		doc, err = loader.LoadFromFile(*cfg.specPath)
	} else {
		doc, err = loader.LoadFromData(cfg.specData)
	}
	if err != nil {
		return nil, &oaserrors.ParseError{Path: cfg.source(), Message: "load document", Cause: err}
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, &oaserrors.ValidationError{Path: cfg.source(), Message: "validate document", Cause: err}
	}
	return doc, nil
}

// checkIssues turns blocking issues into an UnsupportedError. Errors and
// critical issues always block. Strict mode also blocks on warnings.
func checkIssues(list issues.List, strict bool) error {
	threshold := SeverityError
	if strict {
		threshold = SeverityWarning
	}
	blocking := list.AtLeast(threshold)
	if len(blocking) == 0 {
		return nil
	}
	paths := make([]string, len(blocking))
	for i, issue := range blocking {
		paths[i] = issue.Path
	}
	return &oaserrors.UnsupportedError{Paths: paths, Strict: strict && len(list.AtLeast(SeverityError)) == 0}
}

// converter builds the IR from the component schemas of one document.
type converter struct {
	namer   *naming.Namer
	logger  Logger
	schemas openapi3.Schemas
	issues  issues.List

	// models and enums map generated schema names to their Go names.
	models map[string]string
	enums  map[string]string
	// globals and files hold the package-level identifiers and file names
	// claimed so far.
	globals namespace
	files   namespace
	// resolving guards against reference cycles through schemas that are
	// inlined rather than generated.
	resolving []string
}

func (c *converter) convert(include []string) (*Spec, error) {
	names, err := c.selected(include)
	if err != nil {
		return nil, err
	}

	claim := func(schema string, goNames, fileNames []string) {
		path := issues.FormatPath("components", "schemas", schema)
		if name, owner := c.globals.taken(goNames); owner != "" {
			c.issues.Add(SeverityCritical, path, "Go name %s is already used by %s", name, owner)
			return
		}
		if name, owner := c.files.taken(fileNames); owner != "" {
			c.issues.Add(SeverityCritical, path, "file name %s is already used by %s", name, owner)
			return
		}
		c.globals.claim("schema "+schema, goNames)
		c.files.claim("schema "+schema, fileNames)
	}

	for _, name := range names {
		var s *openapi3.Schema
		if ref := c.schemas[name]; ref != nil {
			s = ref.Value
		}
		path := issues.FormatPath("components", "schemas", name)
		switch {
		case s == nil:
			c.issues.Add(SeverityError, path, "schema has no value")
		case isStringEnum(s):
			goName := c.namer.TypeName(name)
			c.enums[name] = goName
			claim(name, []string{goName}, []string{naming.FileName(goName, "")})
		case s.Type.Is(openapi3.TypeObject):
			goName := c.namer.TypeName(name)
			c.models[name] = goName
			claim(name,
				[]string{goName, goName + "Builder", "New" + goName, "New" + goName + "Builder"},
				[]string{naming.FileName(goName, ""), naming.FileName(goName, "_builder")})
		case len(s.Enum) > 0:
			c.issues.Add(SeverityWarning, path, "enum of type %s is not generated", typeLabel(s)).
				Context = "only string enums become Go enum types"
		case len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0:
			c.issues.Add(SeverityWarning, path, "composed schema is not generated").
				Context = "references to it are rendered as their inline type"
		default:
			c.issues.Add(SeverityInfo, path, "%s schema is not generated", typeLabel(s)).
				Context = "references to it are rendered as their inline type"
		}
	}

	spec := &Spec{}
	for _, name := range names {
		if goName, ok := c.enums[name]; ok {
			spec.Enums = append(spec.Enums, c.convertEnum(name, goName))
		}
		if goName, ok := c.models[name]; ok {
			spec.Models = append(spec.Models, c.convertModel(name, goName))
		}
	}
	sort.Slice(spec.Models, func(i, j int) bool { return spec.Models[i].Name < spec.Models[j].Name })
	sort.Slice(spec.Enums, func(i, j int) bool { return spec.Enums[i].Name < spec.Enums[j].Name })
	spec.Issues = c.issues
	return spec, nil
}

// selected returns the sorted schema names to generate: all of them, or the
// included ones and everything they reference.
func (c *converter) selected(include []string) ([]string, error) {
	if len(include) == 0 {
		names := make([]string, 0, len(c.schemas))
		for name := range c.schemas {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, nil
	}

	seen := map[string]bool{}
	queue := make([]string, 0, len(include))
	for _, name := range include {
		if _, ok := c.schemas[name]; !ok {
			return nil, &oaserrors.ConfigError{Option: "include", Value: name, Message: "no such schema in components.schemas"}
		}
		if !seen[name] {
			seen[name] = true
			queue = append(queue, name)
		}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, ref := range schemaRefs(c.schemas[name], map[*openapi3.Schema]bool{}) {
			if _, ok := c.schemas[ref]; ok && !seen[ref] {
				seen[ref] = true
				queue = append(queue, ref)
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// schemaRefs lists the component schema names referenced from ref, without
// descending into the referenced schemas themselves.
func schemaRefs(ref *openapi3.SchemaRef, visited map[*openapi3.Schema]bool) []string {
	if ref == nil {
		return nil
	}
	if name, ok := strings.CutPrefix(ref.Ref, schemaRefPrefix); ok {
		return []string{name}
	}
	s := ref.Value
	if s == nil || visited[s] {
		return nil
	}
	visited[s] = true

	var out []string
	for _, p := range s.Properties {
		out = append(out, schemaRefs(p, visited)...)
	}
	out = append(out, schemaRefs(s.Items, visited)...)
	out = append(out, schemaRefs(s.AdditionalProperties.Schema, visited)...)
	for _, group := range []openapi3.SchemaRefs{s.OneOf, s.AnyOf, s.AllOf} {
		for _, r := range group {
			out = append(out, schemaRefs(r, visited)...)
		}
	}
	return out
}

func (c *converter) convertEnum(name, goName string) *Enum {
	s := c.schemas[name].Value
	path := issues.FormatPath("components", "schemas", name)
	e := &Enum{
		SchemaName:  name,
		Name:        goName,
		Description: describe(s.Description, "is the %s enumeration.", name),
	}
	consts := map[string]string{}
	for i, v := range s.Enum {
		str, ok := v.(string)
		if !ok {
			c.issues.Add(SeverityWarning, issues.FormatPath(path, "enum", fmt.Sprint(i)), "enum value %v is not a string and is skipped", v)
			continue
		}
		constName := goName + c.namer.TypeName(str)
		if prev, dup := consts[constName]; dup {
			c.issues.Add(SeverityCritical, issues.FormatPath(path, "enum", fmt.Sprint(i)),
				"values %q and %q both map to constant %s", prev, str, constName)
			continue
		}
		if _, owner := c.globals.taken([]string{constName}); owner != "" {
			c.issues.Add(SeverityCritical, issues.FormatPath(path, "enum", fmt.Sprint(i)),
				"constant %s is already used by %s", constName, owner)
			continue
		}
		c.globals.claim("schema "+name, []string{constName})
		consts[constName] = str
		e.Values = append(e.Values, EnumValue{Const: constName, Value: str})
	}
	valuesFunc := goName + "Values"
	if _, owner := c.globals.taken([]string{valuesFunc}); owner != "" {
		c.issues.Add(SeverityCritical, path, "Go name %s is already used by %s", valuesFunc, owner)
	} else {
		c.globals.claim("schema "+name, []string{valuesFunc})
	}
	if len(e.Values) == 0 {
		c.issues.Add(SeverityError, issues.FormatPath(path, "enum"), "enum has no string values")
	}
	c.logger.Debug("converted enum", "schema", name, "type", goName, "values", len(e.Values))
	return e
}

func (c *converter) convertModel(name, goName string) *Model {
	s := c.schemas[name].Value
	path := issues.FormatPath("components", "schemas", name)
	m := &Model{
		SchemaName:  name,
		Name:        goName,
		Description: describe(s.Description, "is the %s schema.", name),
	}
	for _, kw := range []struct {
		name  string
		group openapi3.SchemaRefs
	}{{"allOf", s.AllOf}, {"anyOf", s.AnyOf}, {"oneOf", s.OneOf}} {
		if len(kw.group) > 0 {
			c.issues.Add(SeverityWarning, issues.FormatPath(path, kw.name), "%s is not supported", kw.name).
				Context = "only the properties declared on the schema itself are generated"
		}
	}

	propNames := make([]string, 0, len(s.Properties))
	for pn := range s.Properties {
		propNames = append(propNames, pn)
	}
	sort.Strings(propNames)

	byJSON := map[string]*Field{}
	// Fields share the model's namespace with its methods. Builders only
	// declare methods.
	members := namespace{"DeepCopy": "a generated method", "DeepCopyInto": "a generated method"}
	builder := namespace{"Build": "a generated method"}
	for _, pn := range propNames {
		prop := s.Properties[pn]
		fpath := issues.FormatPath(path, "properties", pn)
		f := &Field{
			JSONName: pn,
			Name:     c.namer.TypeName(pn),
			Param:    c.namer.ParamName(pn),
			Type:     c.typeOf(prop, fpath),
			Required: slices.Contains(s.Required, pn),
		}
		if prop.Ref == "" && prop.Value != nil {
			f.Description = cleanDescription(prop.Value.Description)
		}
		nullable := prop.Value != nil && prop.Value.Nullable
		f.Nullable = nullable && !f.Required
		if nullable && f.Required {
			c.issues.Add(SeverityInfo, fpath, "property is required and nullable").
				Context = "rendered as required, an explicit null is only representable for pointer types"
		}

		modelNames, builderNames := generatedNames(f)
		clash, owner := members.taken(modelNames)
		if owner == "" {
			clash, owner = builder.taken(builderNames)
		}
		if owner != "" {
			c.issues.Add(SeverityCritical, fpath, "Go name %s is already used by %s", clash, owner)
			continue
		}
		members.claim("property "+pn, modelNames)
		builder.claim("property "+pn, builderNames)
		m.Fields = append(m.Fields, f)
		byJSON[pn] = f
	}

	for _, rn := range s.Required {
		f, ok := byJSON[rn]
		if !ok {
			c.issues.Add(SeverityWarning, issues.FormatPath(path, "required"), "required property %q is not declared", rn)
			continue
		}
		m.Required = append(m.Required, f)
	}

	c.logger.Debug("converted schema", "schema", name, "type", goName, "fields", len(m.Fields), "required", len(m.Required))
	return m
}

// generatedNames lists the names a field declares on its model (the field
// and its accessors) and on the model's builder.
func generatedNames(f *Field) (model, builder []string) {
	model = []string{f.Name, "Get" + f.Name, "Set" + f.Name}
	if f.IsNullable() {
		model = append(model, "Set"+f.Name+"Null", "Unset"+f.Name)
	}
	if f.Required {
		return model, nil
	}
	builder = []string{f.Name}
	if f.IsNullable() {
		builder = append(builder, f.Name+"Null", "Unset"+f.Name)
	}
	return model, builder
}

// typeOf maps a property schema to its Go shape.
func (c *converter) typeOf(ref *openapi3.SchemaRef, path string) *TypeRef {
	if ref == nil {
		return &TypeRef{Kind: KindAny}
	}
	if name, ok := strings.CutPrefix(ref.Ref, schemaRefPrefix); ok {
		if goName, ok := c.enums[name]; ok {
			return &TypeRef{Kind: KindEnum, Name: goName}
		}
		if goName, ok := c.models[name]; ok {
			return &TypeRef{Kind: KindModel, Name: goName}
		}
		if slices.Contains(c.resolving, name) {
			c.issues.Add(SeverityWarning, path, "reference cycle through %s is rendered as any", name)
			return &TypeRef{Kind: KindAny}
		}
		c.resolving = append(c.resolving, name)
		defer func() { c.resolving = c.resolving[:len(c.resolving)-1] }()
	}

	s := ref.Value
	if s == nil {
		c.issues.Add(SeverityError, path, "unresolved reference %s is rendered as any", ref.Ref)
		return &TypeRef{Kind: KindAny}
	}
	if len(s.OneOf) > 0 || len(s.AnyOf) > 0 || len(s.AllOf) > 0 {
		c.issues.Add(SeverityWarning, path, "composed schema is rendered as any")
		return &TypeRef{Kind: KindAny}
	}

	switch {
	case s.Type.Is(openapi3.TypeString):
		if len(s.Enum) > 0 && ref.Ref == "" {
			c.issues.Add(SeverityInfo, path, "inline enum is rendered as string").
				Context = "move it to components.schemas to get a Go enum type"
		}
		if s.Format == "date-time" {
			return &TypeRef{Kind: KindScalar, Name: "time.Time"}
		}
		return &TypeRef{Kind: KindScalar, Name: "string"}
	case s.Type.Is(openapi3.TypeInteger):
		switch s.Format {
		case "int32", "int64":
			return &TypeRef{Kind: KindScalar, Name: s.Format}
		}
		return &TypeRef{Kind: KindScalar, Name: "int"}
	case s.Type.Is(openapi3.TypeNumber):
		if s.Format == "float" {
			return &TypeRef{Kind: KindScalar, Name: "float32"}
		}
		return &TypeRef{Kind: KindScalar, Name: "float64"}
	case s.Type.Is(openapi3.TypeBoolean):
		return &TypeRef{Kind: KindScalar, Name: "bool"}
	case s.Type.Is(openapi3.TypeArray):
		return &TypeRef{Kind: KindList, Elem: c.typeOf(s.Items, issues.FormatPath(path, "items"))}
	case s.Type.Is(openapi3.TypeObject):
		if ap := s.AdditionalProperties; ap.Schema != nil || (ap.Has != nil && *ap.Has) {
			return &TypeRef{Kind: KindMap, Elem: c.typeOf(ap.Schema, issues.FormatPath(path, "additionalProperties"))}
		}
		if len(s.Properties) > 0 {
			c.issues.Add(SeverityWarning, path, "inline object is rendered as any").
				Context = "move it to components.schemas to get a Go struct"
		}
	}
	return &TypeRef{Kind: KindAny}
}

func isStringEnum(s *openapi3.Schema) bool {
	return s.Type.Is(openapi3.TypeString) && len(s.Enum) > 0
}

func typeLabel(s *openapi3.Schema) string {
	if s.Type == nil || len(s.Type.Slice()) == 0 {
		return "untyped"
	}
	return strings.Join(s.Type.Slice(), "|")
}

// cleanDescription folds a description onto one line and caps its length.
func cleanDescription(d string) string {
	d = strings.TrimSpace(strings.ReplaceAll(d, "\n", " "))
	if len(d) > 200 {
		d = d[:197] + "..."
	}
	return d
}

func describe(d, fallback, name string) string {
	if d = cleanDescription(d); d != "" {
		return d
	}
	return fmt.Sprintf(fallback, name)
}
