package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/inventory"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		as       string
		fromItem string
		similar  bool
	)

	cmd := &cobra.Command{
		Use:     "export [selector]",
		Short:   MsgExportShort,
		GroupID: "expr",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (fromItem == "") {
				return errors.New(errors.ErrInvalidInput, MsgErrExportSource)
			}
			f, err := inventory.ParseFormat(as)
			if err != nil {
				return err
			}

			var e *expression.Expression
			if fromItem != "" {
				item, err := inventory.ReadStack(fromItem)
				if err != nil {
					return err
				}
				e = expression.FromResource(item, similar)
			} else if e, err = a.loadExpression(args[0]); err != nil {
				return err
			}

			tree, err := e.ToConfig()
			if err != nil {
				return err
			}
			data, err := inventory.Encode(tree, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "yaml", MsgFlagAs)
	cmd.Flags().StringVar(&fromItem, "from-item", "", MsgFlagFromItem)
	cmd.Flags().BoolVar(&similar, "similar", false, MsgFlagSimilar)

	return cmd
}
