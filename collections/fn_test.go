package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxonhe/go-tython/collections"
	"github.com/rxonhe/go-tython/placeholder"
)

func TestFuncAcceptsPlainFunctions(t *testing.T) {
	double := func(n int) int { return n * 2 }
	got := collections.Map(ints(1, 2), collections.Func[int, int](double)).All()
	assertSlice(t, got, []int{2, 4})
}

func TestFuncAcceptsExpressions(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), collections.Func[int, int](placeholder.It.Add(5).Mul(2))).All()
	assertSlice(t, got, []int{12, 14, 16})

	// Numeric results are converted to the requested type.
	halves := collections.Map(ints(1, 2), collections.Func[int, float64](placeholder.It.Div(2))).All()
	assertSlice(t, halves, []float64{0.5, 1})

	names := collections.Map(collections.ListOf("ann", "bob"), collections.Func[string, string](placeholder.It.Add("!"))).All()
	assertSlice(t, names, []string{"ann!", "bob!"})
}

func TestPredAcceptsExpressions(t *testing.T) {
	l := ints(1, 5, 10, 15)
	assertSlice(t, l.Filter(collections.Pred[int](placeholder.It.Gt(4))).All(), []int{5, 10, 15})
	assert.True(t, l.AnyMatch(collections.Pred[int](placeholder.It.Eq(10))))
	assert.True(t, l.NoneMatch(collections.Pred[int](placeholder.It.Lt(0))))

	// Non-boolean results are judged by truthiness.
	words := collections.ListOf("", "a", "")
	assertSlice(t, words.Filter(collections.Pred[string](placeholder.It.Size())).All(), []string{"a"})
}

func TestExpressionsWorkAcrossContainers(t *testing.T) {
	s := collections.SetOf(1, 2, 3)
	assertSlice(t, collections.MapSet(s, collections.Func[int, int](placeholder.It.Mod(2))).All(), []int{1, 0})

	d := collections.MapValues(abc(), func(_ string, v int) int {
		return collections.Func[int, int](placeholder.It.Pow(2))(v)
	})
	assertSlice(t, d.Values(), []int{1, 4, 9})

	groups := collections.GroupBy(ints(1, 2, 3, 4), collections.Func[int, bool](placeholder.It.Mod(2).Eq(0)))
	assertSlice(t, groups.Keys(), []bool{false, true})
}

func TestTryReturnsEvaluationFailure(t *testing.T) {
	var out *collections.List[int]
	err := collections.Try(func() {
		out = collections.Map(ints(1, 0, 2), collections.Func[int, int](placeholder.It.RDiv(10)))
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var evalErr *placeholder.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "rdivide(10)", evalErr.Op)
	assert.Equal(t, 0, evalErr.Value)
	assert.ErrorIs(t, err, placeholder.ErrDivisionByZero)
}

func TestTryReturnsConversionFailure(t *testing.T) {
	err := collections.Try(func() {
		collections.Map(ints(1), collections.Func[int, string](placeholder.It.Add(1)))
	})
	assert.ErrorIs(t, err, placeholder.ErrTypeMismatch)

	var halves *collections.List[int]
	err = collections.Try(func() {
		halves = collections.Map(ints(7, 5), collections.Func[int, int](placeholder.It.Div(2)))
	})
	assert.ErrorIs(t, err, placeholder.ErrTypeMismatch)
	assert.Nil(t, halves)

	evens := collections.Map(ints(8, 4), collections.Func[int, int](placeholder.It.Div(2)))
	assertSlice(t, evens.All(), []int{4, 2})
}

func TestTryReturnsNotCallable(t *testing.T) {
	err := collections.Try(func() {
		collections.Map(ints(1), collections.Func[int, int]("nope"))
	})
	assert.ErrorIs(t, err, collections.ErrNotCallable)

	err = collections.Try(func() {
		ints(1).Filter(collections.Pred[int](42))
	})
	assert.ErrorIs(t, err, collections.ErrNotCallable)
}

func TestTryPassesThroughOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = collections.Try(func() { panic("boom") })
	})
	assert.NoError(t, collections.Try(func() {}))
}
