package cli

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	"github.com/rxonhe/go-tython/paths"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Seed     string
	SeedType string
	Chain    string
}

// EvalResult is the JSON output of the eval command.
type EvalResult struct {
	Expr   string `json:"expr"`
	Seed   any    `json:"seed"`
	Result any    `json:"result"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [step...]",
		Short: "Record steps and evaluate them against a seed",
		Long: `Record each step onto a placeholder, print the rendered expression
and evaluate it against the seed.

A step is "op" or "op:arg". Prefix a reversible operation with "r" to
swap its operands; call arguments are comma separated.

  tython eval --seed 3 add:5 mul:2          # self.add(5).multiply(2) → 16
  tython eval --seed 4 rdiv:10              # 10 / 4
  tython eval --seed abc --seed-type string len
  tython eval --seed 3 --chain steps.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "value the expression is evaluated against")
	cmd.Flags().StringVarP(&opts.SeedType, "seed-type", "t", "", "seed type: int, float, string or bool (guessed when empty)")
	cmd.Flags().StringVarP(&opts.Chain, "chain", "c", "", "YAML file of steps recorded before the positional ones")

	return cmd
}

func runEval(cmd *cobra.Command, rootOpts *RootOptions, opts *EvalOptions, args []string) error {
	var steps []Step
	if opts.Chain != "" {
		loaded, err := LoadChain(paths.New(opts.Chain))
		if err != nil {
			return err
		}
		steps = append(steps, loaded...)
	}
	for _, arg := range args {
		step, err := ParseStep(arg)
		if err != nil {
			return err
		}
		steps = append(steps, step)
	}

	expr, err := BuildExpr(steps)
	if err != nil {
		return err
	}

	var seed any
	if cmd.Flags().Changed("seed") || opts.SeedType != "" {
		if seed, err = ParseSeed(opts.Seed, opts.SeedType); err != nil {
			return err
		}
	}

	result, err := expr.Eval(seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		b, err := json.Marshal(EvalResult{Expr: expr.String(), Seed: seed, Result: result}, json.Deterministic(true))
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	if _, err := fmt.Fprintln(out, expr); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, result)
	return err
}
