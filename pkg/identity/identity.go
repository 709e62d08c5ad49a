// Package identity defines the collaborator that maps persistent identities
// to display names and back, and a static in-memory implementation of it.
package identity

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// Resolver resolves identities to names and names to identities.
// Implementations may block (e.g. a remote profile lookup); the matching
// engine calls them synchronously and has no caching contract of its own.
type Resolver interface {
	// NameOf returns the last known name for an identity.
	NameOf(id uuid.UUID) (string, bool)
	// IdentityOf returns the identity currently holding a name.
	IdentityOf(name string) (uuid.UUID, bool)
}

// StaticResolver is a bidirectional table. Name lookups are
// case-insensitive; NameOf returns the name as it was registered.
type StaticResolver struct {
	mu     sync.RWMutex
	names  map[uuid.UUID]string
	byName map[string]uuid.UUID
}

// NewStaticResolver creates an empty resolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		names:  make(map[uuid.UUID]string),
		byName: make(map[string]uuid.UUID),
	}
}

// FromMap builds a resolver from name to UUID text entries, as found in the
// `identities` table of the tool configuration.
func FromMap(entries map[string]string) (*StaticResolver, error) {
	r := NewStaticResolver()
	for name, text := range entries {
		id, err := uuid.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "identity %q has invalid uuid %q", name, text)
		}
		r.Add(name, id)
	}
	return r, nil
}

// Add registers a name for an identity, replacing any previous name it had.
func (r *StaticResolver) Add(name string, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.names[id]; ok {
		delete(r.byName, strings.ToLower(old))
	}
	r.names[id] = name
	r.byName[strings.ToLower(name)] = id
}

// NameOf implements Resolver.
func (r *StaticResolver) NameOf(id uuid.UUID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[id]
	return name, ok
}

// IdentityOf implements Resolver.
func (r *StaticResolver) IdentityOf(name string) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[strings.ToLower(name)]
	return id, ok
}

// Len returns the number of registered identities.
func (r *StaticResolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// None resolves nothing. It is the resolver used when a host supplies none.
type None struct{}

func (None) NameOf(uuid.UUID) (string, bool)     { return "", false }
func (None) IdentityOf(string) (uuid.UUID, bool) { return uuid.Nil, false }
