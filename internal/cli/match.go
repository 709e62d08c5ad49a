package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/style"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func newMatchCmd(a *app) *cobra.Command {
	var itemPath, inventoryPath string

	cmd := &cobra.Command{
		Use:     "match <selector>",
		Short:   MsgMatchShort,
		Example: MsgMatchExample,
		GroupID: "expr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (itemPath == "") == (inventoryPath == "") {
				return errors.New(errors.ErrInvalidInput, MsgErrNeedTarget)
			}

			e, err := a.loadExpression(args[0])
			if err != nil {
				return err
			}

			if itemPath != "" {
				item, err := inventory.ReadStack(itemPath)
				if err != nil {
					return err
				}
				return matchItem(cmd, a, e, item)
			}

			doc, err := inventory.ReadDocument(inventoryPath)
			if err != nil {
				return err
			}
			c, err := doc.Container()
			if err != nil {
				return err
			}
			return matchInventory(cmd, a, e, c)
		},
	}

	cmd.Flags().StringVar(&itemPath, "item", "", MsgFlagItem)
	cmd.Flags().StringVar(&inventoryPath, "inventory", "", MsgFlagInventory)
	cmd.MarkFlagsMutuallyExclusive("item", "inventory")

	return cmd
}

func matchItem(cmd *cobra.Command, a *app, e *expression.Expression, item *types.Resource) error {
	verdict := MsgNoMatch
	if e.Matches(item) {
		verdict = MsgMatch
	}
	a.println(cmd, a.renderer.RenderResource(item))
	a.printf(cmd, verdict, nil)
	return nil
}

func matchInventory(cmd *cobra.Command, a *app, e *expression.Expression, c *inventory.SlotContainer) error {
	contents := c.Contents()
	slots := make([]style.SlotStatus, len(contents))
	stacks, items := 0, 0
	for i, r := range contents {
		status := style.StatusEmpty
		switch {
		case r.IsEmpty():
		case e.Matches(r):
			status = style.StatusMatch
			stacks++
			items += r.Amount
		default:
			status = style.StatusMiss
		}
		slots[i] = style.SlotStatus{Index: i, Resource: r, Status: status}
	}

	a.println(cmd, a.renderer.RenderSlots(MsgInventoryTitle, slots))
	a.printf(cmd, MsgMatchSummary, map[string]string{
		"stacks": strconv.Itoa(stacks),
		"slots":  strconv.Itoa(len(contents)),
		"items":  strconv.Itoa(items),
	})
	return nil
}
