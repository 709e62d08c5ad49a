package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func newSolveCmd(a *app) *cobra.Command {
	var seedPath, outPath string

	cmd := &cobra.Command{
		Use:     "solve <selector>",
		Short:   MsgSolveShort,
		GroupID: "expr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadExpression(args[0])
			if err != nil {
				return err
			}

			var r *types.Resource
			if seedPath != "" {
				seed, err := inventory.ReadStack(seedPath)
				if err != nil {
					return err
				}
				r, err = e.SolveFrom(seed)
				if err != nil {
					return err
				}
			} else if r, err = e.Solve(); err != nil {
				return err
			}

			a.println(cmd, a.renderer.RenderResource(r))
			if outPath == "" {
				return nil
			}
			if err := writeStack(outPath, r); err != nil {
				return err
			}
			a.printf(cmd, MsgSolvedWritten, map[string]string{"path": outPath})
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed-item", "", MsgFlagSeedItem)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", MsgFlagOut)

	return cmd
}

func writeStack(path string, r *types.Resource) error {
	f, err := inventory.FormatOf(path)
	if err != nil {
		return err
	}
	data, err := inventory.Encode(inventory.StackOf(r), f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
	}
	return nil
}
