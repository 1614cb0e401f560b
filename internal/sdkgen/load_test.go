package sdkgen

import (
	"context"
	"errors"
	"testing"

	"github.com/erraggy/commerce/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ModelsAndEnums(t *testing.T) {
	spec := loadSpec(t, shopSpec)

	assert.Equal(t, "Shop API", spec.Title)
	assert.Equal(t, "1.0", spec.Version)
	assert.Empty(t, spec.Issues)

	var models []string
	for _, m := range spec.Models {
		models = append(models, m.Name)
	}
	assert.Equal(t, []string{"Owner", "Pet", "Unused"}, models)

	require.Len(t, spec.Enums, 1)
	color := spec.Enums[0]
	assert.Equal(t, "Color", color.Name)
	assert.Equal(t, "is a paint color.", color.Description)
	assert.Equal(t, []EnumValue{
		{Const: "ColorRed", Value: "RED"},
		{Const: "ColorDarkBlue", Value: "dark-blue"},
	}, color.Values)
}

func TestLoad_FieldOrderAndRequired(t *testing.T) {
	pet := findModel(t, loadSpec(t, shopSpec), "Pet")

	var names []string
	for _, f := range pet.Fields {
		names = append(names, f.JSONName)
	}
	assert.Equal(t, []string{"born_at", "color", "extra", "id", "labels", "name", "nickname", "owner", "tags", "weight"}, names)

	require.Len(t, pet.Required, 2)
	assert.Equal(t, "name", pet.Required[0].JSONName, "constructor follows the required list")
	assert.Equal(t, "id", pet.Required[1].JSONName)

	var optional []string
	for _, f := range pet.Optional() {
		optional = append(optional, f.Name)
	}
	assert.Equal(t, []string{"BornAt", "Color", "Extra", "Labels", "Nickname", "Owner", "Tags", "Weight"}, optional)
	assert.Equal(t, "is the Pet schema.", pet.Description)
}

func TestLoad_FieldShapes(t *testing.T) {
	spec := loadSpec(t, shopSpec)
	pet := findModel(t, spec, "Pet")
	owner := findModel(t, spec, "Owner")

	tests := []struct {
		model     *Model
		field     string
		presence  Presence
		goType    string
		fieldType string
		tag       string
	}{
		{pet, "ID", PresenceRequired, "int64", "int64", "`json:\"id\"`"},
		{pet, "Name", PresenceRequired, "string", "string", "`json:\"name\"`"},
		{pet, "BornAt", PresencePointer, "time.Time", "*time.Time", "`json:\"born_at,omitempty\"`"},
		{pet, "Color", PresencePointer, "Color", "*Color", "`json:\"color,omitempty\"`"},
		{pet, "Weight", PresencePointer, "float32", "*float32", "`json:\"weight,omitempty\"`"},
		{pet, "Owner", PresenceOptional, "*Owner", "*Owner", "`json:\"owner,omitempty\"`"},
		{pet, "Tags", PresenceOptional, "[]string", "[]string", "`json:\"tags,omitempty\"`"},
		{pet, "Extra", PresenceOptional, "any", "any", "`json:\"extra,omitempty\"`"},
		{pet, "Labels", PresenceNullable, "map[string]string", "nullable.Value[map[string]string]", "`json:\"labels,omitzero\"`"},
		{pet, "Nickname", PresenceNullable, "string", "nullable.Value[string]", "`json:\"nickname,omitzero\"`"},
		{owner, "PetIDs", PresenceOptional, "[]string", "[]string", "`json:\"pet_ids,omitempty\"`"},
		{owner, "Pets", PresenceNullable, "[]*Pet", "nullable.Value[[]*Pet]", "`json:\"pets,omitzero\"`"},
	}
	for _, tt := range tests {
		t.Run(tt.model.Name+"."+tt.field, func(t *testing.T) {
			f := findField(t, tt.model, tt.field)
			assert.Equal(t, tt.presence, f.Presence())
			assert.Equal(t, tt.goType, f.Type.GoType())
			assert.Equal(t, tt.fieldType, f.FieldType())
			assert.Equal(t, tt.tag, f.Tag())
		})
	}
}

func TestLoad_Descriptions(t *testing.T) {
	pet := findModel(t, loadSpec(t, shopSpec), "Pet")

	assert.Equal(t, "is the display name.", findField(t, pet, "Name").Description)
	assert.Empty(t, findField(t, pet, "Owner").Description, "references carry no description")
	assert.Equal(t, "petIDs", findField(t, findModel(t, loadSpec(t, shopSpec), "Owner"), "PetIDs").Param)
}

func TestLoad_Include(t *testing.T) {
	spec := loadSpec(t, shopSpec, WithInclude("Owner"))

	var models []string
	for _, m := range spec.Models {
		models = append(models, m.Name)
	}
	assert.Equal(t, []string{"Owner", "Pet"}, models, "Pet is reachable from Owner, Unused is not")
	require.Len(t, spec.Enums, 1, "Color is reachable through Pet")
}

func TestLoad_IncludeUnknownSchema(t *testing.T) {
	_, err := Load(context.Background(), WithSpecData([]byte(shopSpec)), WithInclude("Nope"))
	require.Error(t, err)

	var cfgErr *oaserrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "include", cfgErr.Option)
}

func TestLoad_Initialisms(t *testing.T) {
	spec := loadSpec(t, shopSpec, WithInitialisms("RED"))
	assert.Equal(t, "ColorRED", spec.Enums[0].Values[0].Const)
}

func TestLoad_Issues(t *testing.T) {
	spec := loadSpec(t, issueSpec)

	type want struct {
		path     string
		severity Severity
	}
	var got []want
	for _, i := range spec.Issues {
		got = append(got, want{i.Path, i.Severity})
	}
	assert.Equal(t, []want{
		{"components.schemas.Level", SeverityWarning},
		{"components.schemas.Name", SeverityInfo},
		{"components.schemas.Shape", SeverityWarning},
		{"components.schemas.Drawing.properties.frame", SeverityWarning},
		{"components.schemas.Drawing.properties.kind", SeverityInfo},
		{"components.schemas.Drawing.properties.shape", SeverityWarning},
		{"components.schemas.Drawing.properties.title", SeverityInfo},
	}, got)

	drawing := findModel(t, spec, "Drawing")
	assert.Equal(t, "any", findField(t, drawing, "Frame").Type.GoType())
	assert.Equal(t, "string", findField(t, drawing, "Kind").Type.GoType())
	assert.Equal(t, "string", findField(t, drawing, "Label").Type.GoType(), "non-generated schemas are inlined")
	assert.Equal(t, "int", findField(t, drawing, "Level").Type.GoType())
	assert.Equal(t, "any", findField(t, drawing, "Shape").Type.GoType())

	title := findField(t, drawing, "Title")
	assert.True(t, title.Required)
	assert.False(t, title.Nullable, "required wins over nullable")
}

func TestLoad_StrictMode(t *testing.T) {
	_, err := Load(context.Background(), WithSpecData([]byte(issueSpec)), WithStrictMode(true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrUnsupported))

	var unsupported *oaserrors.UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.True(t, unsupported.Strict)
	assert.Len(t, unsupported.Paths, 4, "every warning is listed")
}

func TestLoad_Conflicts(t *testing.T) {
	spec, err := Load(context.Background(), WithSpecData([]byte(conflictSpec)))
	require.Error(t, err)
	require.NotNil(t, spec, "the converted schemas are returned with their issues")

	var unsupported *oaserrors.UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.False(t, unsupported.Strict)
	assert.ElementsMatch(t, []string{
		"components.schemas.Tone",
		"components.schemas.Widget.properties.build",
		"components.schemas.Widget.properties.get_address",
		"components.schemas.Widget.properties.group_id",
		"components.schemas.Widget.properties.note_null",
		"components.schemas.widget",
		"components.schemas.zz_generated_deepcopy",
	}, unsupported.Paths)
}

func TestLoad_ConflictMessages(t *testing.T) {
	spec, err := Load(context.Background(), WithSpecData([]byte(conflictSpec)))
	require.Error(t, err)

	messages := map[string]string{}
	for _, i := range spec.Issues {
		if i.Severity == SeverityCritical {
			messages[i.Path] = i.Message
		}
	}
	tests := []struct {
		path string
		want string
	}{
		{"components.schemas.Tone", "Go name ToneValues is already used by schema Tone"},
		{"components.schemas.Widget.properties.build", "Go name Build is already used by a generated method"},
		{"components.schemas.Widget.properties.get_address", "Go name GetAddress is already used by property address"},
		{"components.schemas.Widget.properties.group_id", "Go name GroupID is already used by property groupId"},
		{"components.schemas.Widget.properties.note_null", "Go name SetNoteNull is already used by property note"},
		{"components.schemas.widget", "Go name Widget is already used by schema Widget"},
		{"components.schemas.zz_generated_deepcopy", "file name zz_generated_deepcopy.go is already used by the deep-copy file"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, messages[tt.path])
		})
	}

	var names []string
	for _, m := range spec.Models {
		if m.SchemaName != "Widget" {
			continue
		}
		for _, f := range m.Fields {
			names = append(names, f.JSONName)
		}
	}
	assert.Equal(t, []string{"address", "groupId", "note"}, names, "conflicting properties are dropped")
}

func TestLoad_RequiredFieldOnlyReservesModelNames(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: Job API
  version: "1.0"
paths: {}
components:
  schemas:
    Job:
      type: object
      required: [build]
      properties:
        build:
          type: string
`
	spec := loadSpec(t, doc)
	assert.Empty(t, spec.Issues, "a required field gets no builder setter, so Build is free")
	assert.Len(t, findModel(t, spec, "Job").Fields, 1)
}

func TestLoad_EnumConstantCollidesWithModel(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: Paint API
  version: "1.0"
paths: {}
components:
  schemas:
    Color:
      type: string
      enum: [RED, blue]
    ColorRed:
      type: object
      properties:
        hex:
          type: string
`
	spec, err := Load(context.Background(), WithSpecData([]byte(doc)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrUnsupported))

	var paths []string
	for _, i := range spec.Issues {
		if i.Severity == SeverityCritical {
			paths = append(paths, i.Path)
		}
	}
	assert.Equal(t, []string{"components.schemas.Color.enum.0"}, paths)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(context.Background(), WithSpecData([]byte("openapi: [")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestLoad_ValidationError(t *testing.T) {
	doc := "info:\n  title: x\n  version: \"1\"\npaths: {}\n"
	_, err := Load(context.Background(), WithSpecData([]byte(doc)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrValidation))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), WithSpecPath("testdata/missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestCleanDescription(t *testing.T) {
	long := ""
	for len(long) < 250 {
		long += "abcdefghij"
	}
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  is a thing.  ", "is a thing."},
		{"spans\ntwo lines", "spans two lines"},
		{long, long[:197] + "..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanDescription(tt.in))
	}
}
