package collections_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/rxonhe/go-tython/collections"
	"github.com/rxonhe/go-tython/placeholder"
)

func TestMacro(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterMacro("sumInts", func(col any, _ ...any) any {
		return collections.Sum(col.(*collections.List[int]))
	})

	if !collections.HasMacro("sumInts") {
		t.Fatal("HasMacro should return true")
	}

	result, err := ints(1, 2, 3, 4, 5).Macro("sumInts")
	if err != nil {
		t.Fatal(err)
	}
	if result.(int) != 15 {
		t.Fatalf("Macro result = %v; want 15", result)
	}
}

func TestMacroArgs(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterMacro("take", func(col any, args ...any) any {
		return col.(*collections.List[int]).Take(args[0].(int))
	})
	result, err := ints(1, 2, 3).Macro("take", 2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, result.(*collections.List[int]).All(), []int{1, 2})
}

func TestMacroNotFound(t *testing.T) {
	_, err := ints(1).Macro("nonexistent_macro_xyz")
	if !errors.Is(err, collections.ErrMacroNotFound) {
		t.Fatalf("expected ErrMacroNotFound, got %v", err)
	}
}

func TestExprMacro(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterExprMacro("size", placeholder.It.Size())
	for _, recv := range []interface {
		Macro(string, ...any) (any, error)
	}{ints(1, 2, 3), collections.SetOf(1, 2, 3), abc()} {
		n, err := recv.Macro("size")
		if err != nil || n != 3 {
			t.Fatalf("size macro = %v, %v; want 3", n, err)
		}
	}

	collections.RegisterExprMacro("broken", placeholder.It.Add(1))
	_, err := ints(1).Macro("broken")
	var evalErr *placeholder.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *placeholder.EvalError, got %v", err)
	}
}

func TestMacroRegistryIsConcurrencySafe(t *testing.T) {
	defer collections.FlushMacros()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			collections.RegisterMacro("noop", func(col any, _ ...any) any { return col })
		}()
		go func() {
			defer wg.Done()
			_ = collections.HasMacro("noop")
		}()
	}
	wg.Wait()
}

func TestMacroNamesAndUnregister(t *testing.T) {
	defer collections.FlushMacros()

	collections.RegisterExprMacro("size", placeholder.It.Size())
	collections.RegisterMacro("first", func(col any, _ ...any) any { return col })
	assertSlice(t, collections.MacroNames(), []string{"first", "size"})

	collections.RegisterMacro("first", nil)
	if collections.HasMacro("first") {
		t.Fatal("registering nil should remove the macro")
	}
	assertSlice(t, collections.MacroNames(), []string{"size"})
}
