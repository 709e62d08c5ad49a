package expression

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// ToConfig writes the expression out in the configuration shape Parse reads.
// Matchers left at their default are omitted, so Parse(e.ToConfig()) accepts
// exactly the resources e accepts.
//
// Matchers with no configuration form fail with UNSUPPORTED_OPERATION: an
// exact kind that is not registered, extension matchers other than location
// and body color, and tag sets that
// can't be written as a table (two matchers for one tag kind, a lone AnyTag
// in none mode, NoTag outside the default none set).
func (e *Expression) ToConfig() (map[string]any, error) {
	out := map[string]any{}

	if m, ok := e.kind.(matchers.ExactlyEnum[types.Kind]); ok && !m.Value.Known() {
		return nil, errors.Newf(errors.ErrUnsupported, "kind %s is not registered and would not parse back", m.Value).
			WithDetail("key", KeyMaterial)
	}
	if v, ok := enumValue(e.kind); ok {
		out[KeyMaterial] = v
	}
	if v, ok := amountValue(e.amount, false); ok {
		out[KeyAmount] = v
	}
	if v, ok := amountValue(e.durability, false); ok {
		out[KeyDurability] = v
	}
	if v, ok := loreValue(e.lore); ok {
		out[KeyLore] = v
	}
	if v, ok := nameValue(e.name, false); ok {
		out[KeyName] = v
	}

	for src, keys := range tagKeys {
		for mode, key := range keys {
			set := e.tags[src][mode].Set
			if set.IsDefault() {
				continue
			}
			v, err := tagSetValue(set)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrUnsupported, "key %s", key).
					WithDetail("key", key)
			}
			out[key] = v
		}
	}

	if e.unbreakable != types.TriUnset {
		out[KeyUnbreakable] = e.unbreakable == types.TriTrue
	}

	skull, err := ownersValue(e.owners)
	if err != nil {
		return nil, err
	}
	if skull != nil {
		out[KeySkull] = skull
	}

	for _, m := range e.extras {
		switch m := m.(type) {
		case matchers.LocationMatcher:
			v, _ := nameValue(m.Location, true)
			out["map"] = map[string]any{"location": v}
		case matchers.BodyColorMatcher:
			v, ok := enumValue(m.Color)
			if !ok {
				v = anyValue
			}
			out["tropicalFish"] = map[string]any{"bodyColor": v}
		default:
			return nil, errors.Newf(errors.ErrUnsupported,
				"extension matcher %T has no configuration form", m)
		}
	}
	return out, nil
}

func regexValue(p *matchers.Pattern) map[string]any {
	return map[string]any{"regex": p.String(), "regexMultiline": p.Multiline()}
}

// enumValue returns false for AnyEnum, which is the default.
func enumValue[T ~string](m matchers.Enum[T]) (any, bool) {
	switch m := m.(type) {
	case matchers.ExactlyEnum[T]:
		return string(m.Value), true
	case matchers.RegexEnum[T]:
		return regexValue(m.Pattern), true
	}
	return nil, false
}

// amountValue returns false for AnyAmount unless explicit is set.
func amountValue(m matchers.Amount, explicit bool) (any, bool) {
	switch m := m.(type) {
	case matchers.AnyAmount:
		return anyValue, explicit
	case matchers.ExactlyAmount:
		return m.N, true
	case matchers.RangeAmount:
		return map[string]any{"range": map[string]any{
			"low":           m.Low,
			"high":          m.High,
			"inclusiveLow":  m.LowInclusive,
			"inclusiveHigh": m.HighInclusive,
		}}, true
	}
	panic(fmt.Sprintf("expression: unhandled amount matcher %T", m))
}

func loreValue(m matchers.Lore) (any, bool) {
	switch m := m.(type) {
	case matchers.ExactlyLore:
		lines := make([]any, len(m.Lines))
		for i, l := range m.Lines {
			lines[i] = l
		}
		return lines, true
	case matchers.RegexLore:
		return regexValue(m.Pattern), true
	}
	return nil, false
}

// nameValue returns false for AnyName unless explicit is set. Literal names
// that collide with a sentinel are written as an escaped pattern.
func nameValue(m matchers.Name, explicit bool) (any, bool) {
	switch m := m.(type) {
	case matchers.AnyName:
		return anyValue, explicit
	case matchers.VanillaName:
		return vanillaValue, true
	case matchers.ExactlyName:
		trimmed := strings.TrimSpace(m.Name)
		if strings.EqualFold(trimmed, anyValue) || strings.EqualFold(trimmed, vanillaValue) {
			return map[string]any{"regex": regexp2.Escape(m.Name), "regexMultiline": false}, true
		}
		return m.Name, true
	case matchers.RegexName:
		return regexValue(m.Pattern), true
	}
	panic(fmt.Sprintf("expression: unhandled name matcher %T", m))
}

func tagSetValue(set matchers.TagSet) (map[string]any, error) {
	out := make(map[string]any, len(set.Matchers))
	put := func(key string, level matchers.Amount) error {
		if _, dup := out[key]; dup {
			return errors.Newf(errors.ErrUnsupported, "two matchers for tag %s", key)
		}
		v, _ := amountValue(level, true)
		out[key] = v
		return nil
	}

	for _, m := range set.Matchers {
		var err error
		switch m := m.(type) {
		case matchers.ExactlyTag:
			level := m.Level
			if level == nil {
				level = matchers.AnyAmount{}
			}
			err = put(m.Kind.String(), level)
		case matchers.LevelTag:
			level := m.Level
			if level == nil {
				level = matchers.AnyAmount{}
			}
			err = put(levelTagKey, level)
		case matchers.AnyTag:
			// outside a singleton list AnyTag is a tag of any kind and level
			if len(set.Matchers) == 1 {
				return nil, errors.New(errors.ErrUnsupported, "a lone any-tag in none mode")
			}
			err = put(levelTagKey, matchers.AnyAmount{})
		case matchers.NoTag:
			return nil, errors.New(errors.ErrUnsupported, "no-tag has no configuration form")
		default:
			return nil, errors.Newf(errors.ErrUnsupported, "tag matcher %T has no configuration form", m)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ownersValue returns nil for the default list.
func ownersValue(ms []matchers.UUID) (map[string]any, error) {
	if len(ms) == 1 {
		if _, ok := ms[0].(matchers.AnyUUID); ok {
			return nil, nil
		}
	}

	var names, ids []any
	for _, m := range ms {
		switch m := m.(type) {
		case matchers.NameUUID:
			names = append(names, m.Name)
		case matchers.ExactlyUUID:
			ids = append(ids, m.ID.String())
		case matchers.AnyUUID:
			return nil, errors.New(errors.ErrUnsupported,
				"an any-owner matcher can't be listed with other owners").WithDetail("key", KeySkull)
		default:
			return nil, errors.Newf(errors.ErrUnsupported, "owner matcher %T has no configuration form", m)
		}
	}

	out := map[string]any{}
	if len(names) > 0 {
		out["names"] = names
	}
	if len(ids) > 0 {
		out["uuids"] = ids
	}
	return out, nil
}
