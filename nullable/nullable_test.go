package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueStates(t *testing.T) {
	tests := []struct {
		name      string
		value     Value[string]
		state     State
		present   bool
		null      bool
		hasValue  bool
		zero      bool
		orZero    string
		stringRep string
	}{
		{"zero value", Value[string]{}, StateUnset, false, false, false, true, "", "<unset>"},
		{"unset", Unset[string](), StateUnset, false, false, false, true, "", "<unset>"},
		{"null", Null[string](), StateNull, true, true, false, false, "", "<null>"},
		{"value", Of("abc"), StateValue, true, false, true, false, "abc", "abc"},
		{"empty string value", Of(""), StateValue, true, false, true, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.state, tt.value.State())
			assert.Equal(t, tt.present, tt.value.IsPresent())
			assert.Equal(t, tt.null, tt.value.IsNull())
			assert.Equal(t, tt.hasValue, tt.value.HasValue())
			assert.Equal(t, tt.zero, tt.value.IsZero())
			assert.Equal(t, tt.orZero, tt.value.OrZero())
			assert.Equal(t, tt.stringRep, tt.value.String())
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unset", StateUnset.String())
	assert.Equal(t, "null", StateNull.String())
	assert.Equal(t, "value", StateValue.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestValueAccessors(t *testing.T) {
	v, ok := Of(7).Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = Null[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.Equal(t, 3, Null[int]().Or(3))
	assert.Equal(t, 3, Unset[int]().Or(3))
	assert.Equal(t, 9, Of(9).Or(3))

	assert.Nil(t, Null[int]().Ptr())
	assert.Nil(t, Unset[int]().Ptr())

	held := Of(5)
	p := held.Ptr()
	require.NotNil(t, p)
	*p = 6
	assert.Equal(t, 5, held.OrZero(), "Ptr must return a copy")
}

func TestFromPtr(t *testing.T) {
	assert.True(t, FromPtr[string](nil).IsNull())

	s := "x"
	v := FromPtr(&s)
	assert.True(t, v.HasValue())
	s = "y"
	assert.Equal(t, "x", v.OrZero())
}

func TestClone(t *testing.T) {
	copySlice := func(in []int) []int {
		out := make([]int, len(in))
		copy(out, in)
		return out
	}

	t.Run("value is passed through fn", func(t *testing.T) {
		orig := Of([]int{1, 2, 3})
		cp := orig.Clone(copySlice)
		require.True(t, cp.HasValue())

		cp.OrZero()[0] = 100
		assert.Equal(t, []int{1, 2, 3}, orig.OrZero())
	})

	t.Run("null stays null without calling fn", func(t *testing.T) {
		called := false
		cp := Null[[]int]().Clone(func(in []int) []int {
			called = true
			return in
		})
		assert.True(t, cp.IsNull())
		assert.False(t, called)
	})

	t.Run("unset stays unset", func(t *testing.T) {
		cp := Unset[[]int]().Clone(copySlice)
		assert.False(t, cp.IsPresent())
	})

	t.Run("nil fn returns the same value", func(t *testing.T) {
		cp := Of(4).Clone(nil)
		assert.Equal(t, 4, cp.OrZero())
	})
}

type patchBody struct {
	Name  Value[string]            `json:"name,omitzero"`
	Count Value[int64]             `json:"count,omitzero"`
	Tags  Value[[]string]          `json:"tags,omitzero"`
	Meta  Value[map[string]string] `json:"meta,omitzero"`
	Plain Value[bool]              `json:"plain"`
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body patchBody
		want string
	}{
		{
			name: "unset fields are omitted",
			body: patchBody{},
			want: `{"plain":null}`,
		},
		{
			name: "null fields are emitted as null",
			body: patchBody{Name: Null[string](), Tags: Null[[]string](), Plain: Null[bool]()},
			want: `{"name":null,"tags":null,"plain":null}`,
		},
		{
			name: "values are emitted",
			body: patchBody{
				Name:  Of("n"),
				Count: Of(int64(0)),
				Tags:  Of([]string{"a"}),
				Meta:  Of(map[string]string{"k": "v"}),
				Plain: Of(false),
			},
			want: `{"name":"n","count":0,"tags":["a"],"meta":{"k":"v"},"plain":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var body patchBody
	err := json.Unmarshal([]byte(`{"name":null,"count":12,"tags":["x","y"]}`), &body)
	require.NoError(t, err)

	assert.True(t, body.Name.IsNull())
	assert.Equal(t, int64(12), body.Count.OrZero())
	assert.Equal(t, []string{"x", "y"}, body.Tags.OrZero())
	assert.False(t, body.Meta.IsPresent(), "absent key must stay unset")
	assert.False(t, body.Plain.IsPresent())
}

func TestUnmarshalJSON_Whitespace(t *testing.T) {
	var v Value[int]
	require.NoError(t, v.UnmarshalJSON([]byte("  null ")))
	assert.True(t, v.IsNull())
}

func TestUnmarshalJSON_TypeMismatch(t *testing.T) {
	var body patchBody
	err := json.Unmarshal([]byte(`{"count":"twelve"}`), &body)
	assert.Error(t, err)
}

func TestRoundTripPreservesState(t *testing.T) {
	orig := patchBody{Name: Null[string](), Count: Of(int64(3))}
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded patchBody
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, StateNull, decoded.Name.State())
	assert.Equal(t, StateValue, decoded.Count.State())
	assert.Equal(t, StateUnset, decoded.Tags.State())
	// plain has no omitzero, so its unset state encodes as null
	assert.Equal(t, StateNull, decoded.Plain.State())
}
