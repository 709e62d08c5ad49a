package expression

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// DefaultSeed returns the resource synthesis starts from when the caller
// gives none: a single stone.
func DefaultSeed() *types.Resource {
	return types.NewResource(types.KindStone, 1)
}

// Solve builds a resource that the expression matches, starting from
// DefaultSeed.
func (e *Expression) Solve() (*types.Resource, error) {
	return e.SolveFrom(nil)
}

// SolveFrom builds a resource that the expression matches, using seed as the
// hint for every attribute a matcher leaves open. The seed is not modified.
//
// Attributes are solved in the order they are matched and the first failure
// is returned; no partial resource is exposed. Tag sets in none mode are not
// solved but checked once everything else is in place.
func (e *Expression) SolveFrom(seed *types.Resource) (*types.Resource, error) {
	out := seed.Clone()
	if out == nil {
		out = DefaultSeed()
	}
	if out.Kind.IsEmpty() {
		out.Kind = types.KindStone
	}

	var err error
	if out.Kind, err = e.kind.Solve(out.Kind); err != nil {
		return nil, attributeErr("material", err)
	}
	if out.Amount, err = e.amount.Solve(out.Amount); err != nil {
		return nil, attributeErr("amount", err)
	}
	if out.Durability, err = e.durability.Solve(out.Durability); err != nil {
		return nil, attributeErr("durability", err)
	}
	if out.Lore, err = e.lore.Solve(out.Lore); err != nil {
		return nil, attributeErr("lore", err)
	}
	if out.DisplayName, err = e.name.Solve(out.DisplayName); err != nil {
		return nil, attributeErr("name", err)
	}
	if out, err = e.solveTags(matchers.SourcePrimary, out); err != nil {
		return nil, attributeErr("enchantments", err)
	}
	out.Unbreakable = e.unbreakable.Solve(out.Unbreakable)
	if out, err = e.solveTags(matchers.SourceStored, out); err != nil {
		return nil, attributeErr("enchantmentsHeld", err)
	}

	owner, err := matchers.SolveAnyUUID(e.owners, out.Owner)
	if err != nil {
		return nil, attributeErr("skull", err)
	}
	out.Owner = owner
	if owner != uuid.Nil && !out.Kind.IsIdentityBearing() {
		out.Kind = types.KindPlayerHead
	}

	for _, m := range e.extras {
		if out, err = m.Solve(out); err != nil {
			return nil, attributeErr("extension", err)
		}
	}

	if !e.Matches(out) {
		return nil, errors.NotSolvable("no resource satisfies every matcher of the expression").
			WithDetail("kind", out.Kind.String())
	}

	logger := logging.GetLogger("expression")
	logger.Debug().
		Str("kind", out.Kind.String()).
		Int("amount", out.Amount).
		Msg("Expression solved")
	return out, nil
}

// solveTags runs the any and all sets of src over r. Constrained none sets
// are not solved, only given a resource that can carry their tags; the final
// match decides them.
func (e *Expression) solveTags(src matchers.TagSource, r *types.Resource) (*types.Resource, error) {
	out := r
	for mode, m := range e.tags[src] {
		if m.Unconstrained() {
			continue
		}
		if matchers.ListMode(mode) == matchers.ModeNone {
			out = m.Prepare(out)
			continue
		}
		solved, err := m.Solve(out)
		if err != nil {
			return nil, err
		}
		out = solved
	}
	return out, nil
}

func attributeErr(key string, err error) error {
	return errors.Wrapf(err, errors.ErrNotSolvable, "can't solve %s", key).
		WithDetail("key", key)
}
