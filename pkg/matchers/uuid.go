package matchers

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/identity"
)

// UUID matches an owner identity. uuid.Nil stands for "no owner".
type UUID interface {
	Matcher[uuid.UUID]
	uuidMatcher()
}

type AnyUUID struct{}

func (AnyUUID) uuidMatcher() {}

func (AnyUUID) Matches(uuid.UUID) bool { return true }

func (AnyUUID) Solve(seed uuid.UUID) (uuid.UUID, error) { return seed, nil }

type ExactlyUUID struct {
	ID uuid.UUID
}

func (ExactlyUUID) uuidMatcher() {}

func (m ExactlyUUID) Matches(id uuid.UUID) bool { return id == m.ID }

func (m ExactlyUUID) Solve(uuid.UUID) (uuid.UUID, error) { return m.ID, nil }

// NameUUID matches identities whose resolved name equals Name. Resolution
// goes through the host's identity.Resolver; a nil Resolver resolves nothing.
type NameUUID struct {
	Name     string
	Resolver identity.Resolver
}

func (NameUUID) uuidMatcher() {}

func (m NameUUID) resolver() identity.Resolver {
	if m.Resolver == nil {
		return identity.None{}
	}
	return m.Resolver
}

func (m NameUUID) Matches(id uuid.UUID) bool {
	name, ok := m.resolver().NameOf(id)
	return ok && name == m.Name
}

func (m NameUUID) Solve(uuid.UUID) (uuid.UUID, error) {
	id, ok := m.resolver().IdentityOf(m.Name)
	if !ok {
		return uuid.Nil, errors.NotSolvable("can't find player with name %s", m.Name).
			WithDetail("name", m.Name)
	}
	return id, nil
}

// MatchAnyUUID reports whether any matcher in the list accepts id.
func MatchAnyUUID(ms []UUID, id uuid.UUID) bool {
	for _, m := range ms {
		if m.Matches(id) {
			return true
		}
	}
	return false
}

// SolveAnyUUID returns the first successful solution in list order. When
// every matcher fails, the first failure is returned.
func SolveAnyUUID(ms []UUID, seed uuid.UUID) (uuid.UUID, error) {
	var first error
	for _, m := range ms {
		id, err := m.Solve(seed)
		if err == nil {
			return id, nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		return seed, nil
	}
	return uuid.Nil, first
}
