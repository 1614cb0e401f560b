package sdkgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// shopSpec exercises every property shape the generator supports.
const shopSpec = `openapi: 3.0.3
info:
  title: Shop API
  version: "1.0"
paths: {}
components:
  schemas:
    Color:
      type: string
      description: is a paint color.
      enum: [RED, dark-blue]
    Pet:
      type: object
      required: [name, id]
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
          description: is the display name.
        born_at:
          type: string
          format: date-time
        color:
          $ref: "#/components/schemas/Color"
        owner:
          $ref: "#/components/schemas/Owner"
        tags:
          type: array
          items:
            type: string
        labels:
          type: object
          nullable: true
          additionalProperties:
            type: string
        weight:
          type: number
          format: float
        nickname:
          type: string
          nullable: true
        extra: {}
    Owner:
      type: object
      properties:
        pet_ids:
          type: array
          items:
            type: string
        pets:
          type: array
          nullable: true
          items:
            $ref: "#/components/schemas/Pet"
    Unused:
      type: object
      properties:
        note:
          type: string
`

// issueSpec contains constructs that are rendered approximately.
const issueSpec = `openapi: 3.0.3
info:
  title: Drawing API
  version: "1.0"
paths: {}
components:
  schemas:
    Level:
      type: integer
      enum: [1, 2, 3]
    Shape:
      oneOf:
        - $ref: "#/components/schemas/Circle"
        - $ref: "#/components/schemas/Square"
    Circle:
      type: object
      properties:
        radius:
          type: number
    Square:
      type: object
      properties:
        side:
          type: number
    Name:
      type: string
    Drawing:
      type: object
      required: [title]
      properties:
        title:
          type: string
          nullable: true
        shape:
          $ref: "#/components/schemas/Shape"
        kind:
          type: string
          enum: [a, b]
        frame:
          type: object
          properties:
            width:
              type: integer
        label:
          $ref: "#/components/schemas/Name"
        level:
          $ref: "#/components/schemas/Level"
`

// conflictSpec produces Go code that would not compile.
const conflictSpec = `openapi: 3.0.3
info:
  title: Widget API
  version: "1.0"
paths: {}
components:
  schemas:
    Tone:
      type: string
      enum: [values]
    Widget:
      type: object
      properties:
        address:
          type: string
        build:
          type: boolean
        get_address:
          type: string
        group_id:
          type: string
        groupId:
          type: string
        note:
          type: string
          nullable: true
        note_null:
          type: string
    widget:
      type: object
      properties:
        size:
          type: integer
    zz_generated_deepcopy:
      type: object
      properties:
        size:
          type: integer
`

func loadSpec(t *testing.T, data string, opts ...Option) *Spec {
	t.Helper()
	spec, err := Load(context.Background(), append([]Option{WithSpecData([]byte(data))}, opts...)...)
	require.NoError(t, err)
	return spec
}

func findModel(t *testing.T, spec *Spec, name string) *Model {
	t.Helper()
	for _, m := range spec.Models {
		if m.Name == name {
			return m
		}
	}
	require.Failf(t, "model not found", "no model %s", name)
	return nil
}

func findField(t *testing.T, m *Model, name string) *Field {
	t.Helper()
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "field not found", "no field %s.%s", m.Name, name)
	return nil
}
