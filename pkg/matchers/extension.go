package matchers

import (
	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// LocationMatcher matches the named location of a map. Resources of other
// kinds, or maps without a location, never match.
type LocationMatcher struct {
	Location Name
}

func (m LocationMatcher) Matches(r *types.Resource) bool {
	if !r.Kind.HasLocation() || r.Location == "" {
		return false
	}
	return m.Location.Matches(r.Location)
}

// DefaultLocation seeds location synthesis when the resource has none.
const DefaultLocation = "Unknown"

// Solve turns the copy into a map when needed and solves the location,
// seeded by the current one.
func (m LocationMatcher) Solve(r *types.Resource) (*types.Resource, error) {
	out := r.Clone()
	if !out.Kind.HasLocation() {
		out.Kind = types.KindMap
	}

	seed := out.Location
	if seed == "" {
		seed = DefaultLocation
	}
	location, err := m.Location.Solve(seed)
	if err != nil {
		return nil, err
	}
	if location == "" {
		return nil, errors.NotSolvable("a map location can't be empty")
	}
	out.Location = location
	return out, nil
}

// BodyColorMatcher matches the body color of a tropical fish bucket.
type BodyColorMatcher struct {
	Color Enum[types.Color]
}

func (m BodyColorMatcher) Matches(r *types.Resource) bool {
	if !r.Kind.HasBodyColor() || r.BodyColor == "" {
		return false
	}
	return m.Color.Matches(r.BodyColor)
}

func (m BodyColorMatcher) Solve(r *types.Resource) (*types.Resource, error) {
	out := r.Clone()
	if !out.Kind.HasBodyColor() {
		out.Kind = types.KindTropicalFishBucket
	}

	seed := out.BodyColor
	if seed == "" {
		seed = types.ColorWhite
	}
	color, err := m.Color.Solve(seed)
	if err != nil {
		return nil, err
	}
	out.BodyColor = color
	return out, nil
}
