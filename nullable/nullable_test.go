package nullable_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxonhe/go-tython/nullable"
	"github.com/rxonhe/go-tython/placeholder"
)

type profile struct {
	Name     nullable.Nullable[string] `json:"name"`
	Nickname nullable.Nullable[string] `json:"nickname"`
	Age      nullable.Nullable[int]    `json:"age"`
}

func TestPresentAndAbsent(t *testing.T) {
	n := nullable.Of("test")
	v, ok := n.Get()
	assert.True(t, ok)
	assert.Equal(t, "test", v)
	assert.True(t, n.IsPresent())
	assert.False(t, n.IsAbsent())

	e := nullable.Empty[string]()
	_, ok = e.Get()
	assert.False(t, ok)
	assert.True(t, e.IsAbsent())

	var zero nullable.Nullable[int]
	assert.True(t, zero.IsAbsent())
	assert.Equal(t, 0, zero.Value())
}

func TestValueUsesDefaultConstructor(t *testing.T) {
	calls := 0
	def := nullable.WithDefault(func() []string { calls++; return []string{"x"} })

	absent := nullable.Empty(def)
	assert.Equal(t, []string{"x"}, absent.Value())
	assert.Equal(t, []string{"x"}, absent.Value())
	assert.Equal(t, 2, calls, "the default is built on every read")

	present := nullable.Of([]string{"a"}, def)
	assert.Equal(t, []string{"a"}, present.Value())
	assert.Equal(t, 2, calls)

	assert.Equal(t, "fallback", nullable.Empty[string]().OrElse("fallback"))
	assert.Equal(t, "set", nullable.Of("set").OrElse("fallback"))
}

func TestFromPtrAndPtr(t *testing.T) {
	s := "hi"
	n := nullable.FromPtr(&s)
	require.True(t, n.IsPresent())
	p := n.Ptr()
	require.NotNil(t, p)
	*p = "changed"
	assert.Equal(t, "hi", n.Value(), "Ptr returns a copy")

	assert.True(t, nullable.FromPtr[string](nil).IsAbsent())
	assert.Nil(t, nullable.Empty[int]().Ptr())
}

func TestMapKeepsAbsence(t *testing.T) {
	replaced := nullable.Map(nullable.Of("test"), func(s string) string { return strings.ReplaceAll(s, "t", "a") })
	assert.Equal(t, "aesa", replaced.Value())

	absent := nullable.Map(nullable.Empty[string](), func(s string) string { return strings.ReplaceAll(s, "t", "a") })
	assert.True(t, absent.IsAbsent())

	half := func(n int) nullable.Nullable[int] {
		if n%2 != 0 {
			return nullable.Empty[int]()
		}
		return nullable.Of(n / 2)
	}
	assert.Equal(t, 2, nullable.FlatMap(nullable.Of(4), half).Value())
	assert.True(t, nullable.FlatMap(nullable.Of(3), half).IsAbsent())
}

func TestFilter(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	assert.True(t, nullable.Of(3).Filter(positive).IsPresent())
	assert.True(t, nullable.Of(-3).Filter(positive).IsAbsent())
	assert.True(t, nullable.Empty[int]().Filter(positive).IsAbsent())
}

func TestEvalExpression(t *testing.T) {
	out, err := nullable.Eval(nullable.Of(3), placeholder.It.Add(5).Mul(2))
	require.NoError(t, err)
	assert.Equal(t, 16, out.Value())

	// Absent stays absent, and the chain is never run.
	out, err = nullable.Eval(nullable.Empty[int](), placeholder.It.Div(0))
	require.NoError(t, err)
	assert.True(t, out.IsAbsent())

	_, err = nullable.Eval(nullable.Of(1), placeholder.It.Div(0))
	assert.ErrorIs(t, err, placeholder.ErrDivisionByZero)

	size, err := nullable.EvalAs[string, int](nullable.Of("test"), placeholder.It.Size())
	require.NoError(t, err)
	assert.Equal(t, 4, size.Value())

	_, err = nullable.EvalAs[int, string](nullable.Of(1), placeholder.It.Add(1))
	assert.ErrorIs(t, err, placeholder.ErrTypeMismatch)
}

func TestString(t *testing.T) {
	assert.Equal(t, "10", nullable.Of(10).String())
	assert.Equal(t, "<absent>", nullable.Empty[int]().String())
}

func TestJSON(t *testing.T) {
	p := profile{Name: nullable.Of("ann"), Age: nullable.Of(31)}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ann","nickname":null,"age":31}`, string(b))

	var back profile
	require.NoError(t, json.Unmarshal([]byte(`{"name":"bob","nickname":null}`), &back))
	assert.Equal(t, "bob", back.Name.Value())
	assert.True(t, back.Nickname.IsAbsent())
	assert.True(t, back.Age.IsAbsent())
}
