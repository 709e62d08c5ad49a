package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/style"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

type removeOptions struct {
	inventory string
	amount    int
	all       bool
	random    bool
	seed      uint64
	write     bool
}

func newRemoveCmd(a *app) *cobra.Command {
	opts := removeOptions{}

	cmd := &cobra.Command{
		Use:     "remove <selector>",
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		GroupID: "expr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.all && cmd.Flags().Changed("amount") {
				return errors.New(errors.ErrInvalidInput, MsgErrAmountModes)
			}
			e, err := a.loadExpression(args[0])
			if err != nil {
				return err
			}
			return runRemove(cmd, a, e, opts)
		},
	}

	cmd.Flags().StringVar(&opts.inventory, "inventory", "", MsgFlagInventory)
	cmd.Flags().IntVarP(&opts.amount, "amount", "n", 0, MsgFlagAmount)
	cmd.Flags().BoolVar(&opts.all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&opts.random, "random", false, MsgFlagRandom)
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, MsgFlagSeed)
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, MsgFlagWrite)
	_ = cmd.MarkFlagRequired("inventory")
	cmd.MarkFlagsMutuallyExclusive("amount", "random")

	return cmd
}

func runRemove(cmd *cobra.Command, a *app, e *expression.Expression, opts removeOptions) error {
	defer logging.LogOperationStart(logging.GetLogger("cli"), "remove")()

	doc, err := inventory.ReadDocument(opts.inventory)
	if err != nil {
		return err
	}
	c, err := doc.Container()
	if err != nil {
		return err
	}

	var amount int
	switch {
	case opts.all:
		amount = expression.NoLimit
	case cmd.Flags().Changed("amount"):
		amount = opts.amount
	default:
		amount, err = e.ImpliedAmount(opts.random, a.rng(opts.seed))
		if err != nil {
			return err
		}
	}

	before := c.Contents()
	ok, err := e.RemoveFromContainer(c, amount)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Newf(errors.ErrNotFound, MsgErrNotEnough, opts.inventory, amount).
			WithDetail("amount", amount)
	}

	after := c.Contents()
	slots := make([]style.SlotStatus, len(after))
	for i := range after {
		s := style.SlotStatus{Index: i, Resource: after[i], Status: style.StatusEmpty}
		removed := amountOf(before[i]) - amountOf(after[i])
		switch {
		case before[i].IsEmpty():
		case removed > 0:
			s.Status, s.Removed, s.Resource = style.StatusTaken, removed, before[i]
		default:
			s.Status = style.StatusMiss
		}
		slots[i] = s
	}
	a.println(cmd, a.renderer.RenderSlots(MsgInventoryTitle, slots))

	if amount == expression.NoLimit {
		a.printf(cmd, MsgRemovedAll, map[string]string{"path": opts.inventory})
	} else {
		a.printf(cmd, MsgRemoved, map[string]string{
			"amount": strconv.Itoa(amount),
			"path":   opts.inventory,
		})
	}

	if !opts.write {
		a.printf(cmd, MsgNotWritten, nil)
		return nil
	}
	return inventory.WriteDocument(opts.inventory, inventory.DocumentOf(c))
}

func amountOf(r *types.Resource) int {
	if r.IsEmpty() {
		return 0
	}
	return r.Amount
}
