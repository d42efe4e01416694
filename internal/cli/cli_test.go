package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rxonhe/go-tython/placeholder"
)

func execute(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tython", cmd.Use)

	for _, name := range []string{"eval", "ops"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add then multiply", []string{"--seed", "3", "add:5", "mul:2"}, "self.add(5).multiply(2)\n16\n"},
		{"reversed divide", []string{"--seed", "4", "rdiv:10"}, "self.rdivide(10)\n2.5\n"},
		{"string length", []string{"--seed", "abc", "--seed-type", "string", "len"}, "self.len()\n3\n"},
		{"quoted operand", []string{"--seed", "ab", "add:'5'"}, "self.add(5)\nab5\n"},
		{"comparison", []string{"--seed", "2.5", "gt:2"}, "self.greaterThan(2)\ntrue\n"},
		{"identity", []string{"--seed", "7"}, "self\n7\n"},
		{"index", []string{"--seed", "hello", "index:-1"}, "self.index(-1)\no\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, &RootOptions{}, append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalJSON(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "--format", "json", "eval", "--seed", "3", "add:5", "mul:2")
	require.NoError(t, err)

	var res EvalResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "self.add(5).multiply(2)", res.Expr)
	assert.Equal(t, float64(3), res.Seed)
	assert.Equal(t, float64(16), res.Result)
}

func TestEvalErrors(t *testing.T) {
	_, err := execute(t, &RootOptions{}, "eval", "--seed", "0", "rdiv:10")
	var evalErr *placeholder.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.ErrorIs(t, err, placeholder.ErrDivisionByZero)
	assert.Equal(t, 0, evalErr.Step)

	_, err = execute(t, &RootOptions{}, "eval", "--seed", "1", "frobnicate:2")
	assert.ErrorIs(t, err, errUnknownOp)

	_, err = execute(t, &RootOptions{}, "eval", "--seed", "x", "--seed-type", "int")
	assert.ErrorIs(t, err, errBadSeedValue)

	_, err = execute(t, &RootOptions{}, "eval", "--seed", "x", "--seed-type", "complex")
	assert.ErrorIs(t, err, errUnknownType)

	_, err = execute(t, &RootOptions{}, "--format", "xml", "ops")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestEvalChainFile(t *testing.T) {
	chain := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(chain, []byte(`steps:
  - op: add
    arg: 5
  - op: divide
    arg: 16
    reversed: true
`), 0o644))

	out, err := execute(t, &RootOptions{}, "eval", "--seed", "3", "--chain", chain, "mul:4")
	require.NoError(t, err)
	assert.Equal(t, "self.add(5).rdivide(16).multiply(4)\n8\n", out)

	_, err = execute(t, &RootOptions{}, "eval", "--chain", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestOps(t *testing.T) {
	out, err := execute(t, &RootOptions{}, "ops")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(placeholder.Ops()))
	assert.Contains(t, lines, "add <arg> (reversible)")
	assert.Contains(t, lines, "index <arg>")
	assert.Contains(t, lines, "negate")

	out, err = execute(t, &RootOptions{}, "--format", "json", "ops")
	require.NoError(t, err)
	var infos []OpInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Equal(t, OpInfo{Name: "add", Operand: true, Reversible: true}, infos[0])
}

func TestVerboseLogsSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := execute(t, &RootOptions{logger: zap.New(core)}, "--verbose", "eval", "--seed", "3", "add:5", "mul:2")
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("placeholder step").Len())
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want Step
	}{
		{"add:5", Step{Op: "add", Arg: 5}},
		{"mul:2.5", Step{Op: "mul", Arg: 2.5}},
		{"eq:true", Step{Op: "eq", Arg: true}},
		{"add:x", Step{Op: "add", Arg: "x"}},
		{"add:\"7\"", Step{Op: "add", Arg: "7"}},
		{"attr:5", Step{Op: "attr", Arg: "5"}},
		{"call:1,a", Step{Op: "call", Arg: []any{1, "a"}}},
		{"len", Step{Op: "len"}},
		{"rsub:1", Step{Op: "rsub", Arg: 1}},
	}
	for _, tt := range tests {
		got, err := ParseStep(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStep("rlen")
	assert.True(t, errors.Is(err, errUnknownOp))
}

func TestParseSeed(t *testing.T) {
	v, err := ParseSeed("3", "")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = ParseSeed("3", "float")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ParseSeed("3", "string")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	v, err = ParseSeed("true", "bool")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}
