package cli

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	"github.com/rxonhe/go-tython/collections"
	"github.com/rxonhe/go-tython/placeholder"
)

// OpInfo describes one operation for the ops command.
type OpInfo struct {
	Name       string `json:"name"`
	Operand    bool   `json:"operand"`
	Reversible bool   `json:"reversible"`
}

func (o OpInfo) String() string {
	switch {
	case o.Reversible:
		return o.Name + " <arg> (reversible)"
	case o.Operand:
		return o.Name + " <arg>"
	}
	return o.Name
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a step can name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := collections.Map(collections.ListFrom(placeholder.Ops()), func(op placeholder.Op) OpInfo {
				return OpInfo{
					Name:       op.String(),
					Operand:    op.TakesOperand() || op == placeholder.OpCall,
					Reversible: op.Reversible(),
				}
			})

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				b, err := json.Marshal(infos.All())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			var err error
			infos.Each(func(_ int, info OpInfo) {
				if err == nil {
					_, err = fmt.Fprintln(out, info)
				}
			})
			return err
		},
	}
}
