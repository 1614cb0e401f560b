package clone

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_NilVsEmpty(t *testing.T) {
	assert.Nil(t, Values[string](nil))

	empty := Values([]string{})
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestValues_Independent(t *testing.T) {
	in := []string{"a", "b"}
	out := Values(in)
	out[0] = "z"
	assert.Equal(t, []string{"a", "b"}, in)
}

type node struct {
	name string
}

func copyNode(n *node) *node {
	if n == nil {
		return nil
	}
	cp := *n
	return &cp
}

func TestSlice(t *testing.T) {
	in := []*node{{name: "a"}, nil, {name: "c"}}
	out := Slice(in, copyNode)

	require.Len(t, out, 3)
	assert.Equal(t, in[0], out[0])
	assert.NotSame(t, in[0], out[0])
	assert.Nil(t, out[1])

	out[2].name = "changed"
	assert.Equal(t, "c", in[2].name)

	assert.Nil(t, Slice[*node](nil, copyNode))
	assert.NotNil(t, Slice([]*node{}, copyNode))
}

func TestSliceWith(t *testing.T) {
	fn := SliceWith(copyNode)
	in := []*node{{name: "a"}}
	out := fn(in)
	assert.NotSame(t, in[0], out[0])
	assert.Nil(t, fn(nil))
}

func TestValueMap(t *testing.T) {
	assert.Nil(t, ValueMap[string](nil))

	in := map[string]string{"k": "v"}
	out := ValueMap(in)
	out["k"] = "changed"
	out["new"] = "x"
	assert.Equal(t, map[string]string{"k": "v"}, in)

	empty := ValueMap(map[string]int{})
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMap(t *testing.T) {
	in := map[string]*node{"a": {name: "a"}, "nil": nil}
	out := Map(in, copyNode)

	require.Len(t, out, 2)
	assert.NotSame(t, in["a"], out["a"])
	assert.Nil(t, out["nil"])

	out["a"].name = "changed"
	assert.Equal(t, "a", in["a"].name)

	assert.Nil(t, Map[*node](nil, copyNode))
	assert.Nil(t, MapWith(copyNode)(nil))
	assert.Len(t, MapWith(copyNode)(in), 2)
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"string", "s"},
		{"bool", true},
		{"float64", 1.5},
		{"int", 3},
		{"number", json.Number("12")},
		{"array", []any{"a", 1.0, map[string]any{"k": "v"}}},
		{"object", map[string]any{"nested": map[string]any{"list": []any{1.0, 2.0}}}},
		{"string slice", []string{"a"}},
		{"string map", map[string]string{"k": "v"}},
		{"raw", json.RawMessage(`{"a":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, JSON(tt.input))
		})
	}
}

func TestJSON_Independent(t *testing.T) {
	in := map[string]any{
		"list":   []any{map[string]any{"n": 1.0}},
		"nested": map[string]any{"k": "v"},
	}
	out := JSON(in).(map[string]any)

	out["nested"].(map[string]any)["k"] = "changed"
	out["list"].([]any)[0].(map[string]any)["n"] = 2.0

	assert.Equal(t, "v", in["nested"].(map[string]any)["k"])
	assert.Equal(t, 1.0, in["list"].([]any)[0].(map[string]any)["n"])
}

type address struct {
	City  string
	Lines []string
}

func TestJSON_TypedValuesAreCopied(t *testing.T) {
	t.Run("slice of maps", func(t *testing.T) {
		in := []map[string]any{{"tier": "gold"}}
		out := JSON(in).([]map[string]any)
		out[0]["tier"] = "changed"
		assert.Equal(t, "gold", in[0]["tier"])
	})

	t.Run("map of slices", func(t *testing.T) {
		in := map[string][]any{"tags": {"a", "b"}}
		out := JSON(in).(map[string][]any)
		out["tags"][0] = "changed"
		assert.Equal(t, "a", in["tags"][0])
	})

	t.Run("int slice", func(t *testing.T) {
		in := []int{1, 2}
		out := JSON(in).([]int)
		out[0] = 9
		assert.Equal(t, []int{1, 2}, in)
	})

	t.Run("pointer to struct", func(t *testing.T) {
		in := &address{City: "Lisbon", Lines: []string{"Rua 1"}}
		out, ok := JSON(in).(*address)
		require.True(t, ok)
		assert.NotSame(t, in, out)
		assert.Equal(t, in, out)

		out.Lines[0] = "changed"
		assert.Equal(t, "Rua 1", in.Lines[0])
	})

	t.Run("typed nil stays typed nil", func(t *testing.T) {
		var in []int
		out, ok := JSON(in).([]int)
		require.True(t, ok)
		assert.Nil(t, out)
	})
}

func BenchmarkJSON(b *testing.B) {
	obj := make(map[string]any, 50)
	for i := range 50 {
		obj["k"+strconv.Itoa(i)] = []any{float64(i), "v", map[string]any{"x": true}}
	}
	b.ResetTimer()
	for range b.N {
		_ = JSON(obj)
	}
}
