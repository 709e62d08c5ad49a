package expression

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/identity"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Configuration keys.
const (
	KeyMaterial    = "material"
	KeyAmount      = "amount"
	KeyDurability  = "durability"
	KeyLore        = "lore"
	KeyName        = "name"
	KeyUnbreakable = "unbreakable"
	KeySkull       = "skull"
	KeyLocation    = "map.location"
	KeyBodyColor   = "tropicalFish.bodyColor"

	// Sentinel literals.
	anyValue     = "any"
	vanillaValue = "vanilla"
	levelTagKey  = "*"
)

// tagKeys names the tag set slots, indexed like Expression.tags.
var tagKeys = [2][3]string{
	matchers.SourcePrimary: {
		matchers.ModeAny:  "enchantmentsAny",
		matchers.ModeAll:  "enchantmentsAll",
		matchers.ModeNone: "enchantmentsNone",
	},
	matchers.SourceStored: {
		matchers.ModeAny:  "enchantmentsHeldAny",
		matchers.ModeAll:  "enchantmentsHeldAll",
		matchers.ModeNone: "enchantmentsHeldNone",
	},
}

var knownKeys = map[string]bool{
	KeyMaterial: true, KeyAmount: true, KeyDurability: true, KeyLore: true,
	KeyName: true, KeyUnbreakable: true, KeySkull: true, "map": true, "tropicalFish": true,
	"enchantmentsAny": true, "enchantmentsAll": true, "enchantmentsNone": true,
	"enchantmentsHeldAny": true, "enchantmentsHeldAll": true, "enchantmentsHeldNone": true,
}

// Option configures parsing.
type Option func(*parser)

// WithResolver sets the resolver used by owner matchers built from player
// names. Without one, names never resolve.
func WithResolver(r identity.Resolver) Option {
	return func(p *parser) {
		p.resolver = r
	}
}

// FromConfig builds an expression from a configuration tree.
func FromConfig(k *koanf.Koanf, opts ...Option) (*Expression, error) {
	e := New()
	if err := e.ParseConfig(k, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Parse builds an expression from a nested map, as decoded from YAML or
// TOML.
func Parse(tree map[string]any, opts ...Option) (*Expression, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(tree, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load expression tree")
	}
	return FromConfig(k, opts...)
}

// ParseConfig overrides the matchers of e with those specified in k. Keys
// that are absent leave the current matcher in place, except unbreakable,
// which is reset to don't care. On error e is left unchanged.
func (e *Expression) ParseConfig(k *koanf.Koanf, opts ...Option) error {
	p := &parser{
		k:   k,
		log: logging.GetLogger("expression.parse"),
	}
	for _, opt := range opts {
		opt(p)
	}

	staged := e.Clone()
	if err := p.parseInto(staged); err != nil {
		return err
	}
	*e = *staged
	return nil
}

type parser struct {
	k        *koanf.Koanf
	resolver identity.Resolver
	log      zerolog.Logger
}

func (p *parser) parseInto(e *Expression) error {
	for _, key := range p.k.MapKeys("") {
		if !knownKeys[key] {
			p.log.Debug().Str("key", key).Msg("Ignoring unknown expression key")
		}
	}

	kind, err := p.parseKind(KeyMaterial)
	if err != nil {
		return err
	}
	e.SetKind(kind)

	amount, err := p.parseAmount(KeyAmount)
	if err != nil {
		return err
	}
	e.SetAmount(amount)

	durability, err := p.parseAmount(KeyDurability)
	if err != nil {
		return err
	}
	e.SetDurability(durability)

	lore, err := p.parseLore(KeyLore)
	if err != nil {
		return err
	}
	e.SetLore(lore)

	name, err := p.parseName(KeyName)
	if err != nil {
		return err
	}
	e.SetName(name)

	for src, keys := range tagKeys {
		for mode, key := range keys {
			set, err := p.parseTags(key, matchers.ListMode(mode))
			if err != nil {
				return err
			}
			e.SetTagSet(matchers.TagSource(src), set)
		}
	}

	owners, err := p.parseSkull(KeySkull)
	if err != nil {
		return err
	}
	e.SetOwners(owners)

	e.unbreakable = types.TriUnset
	if p.k.Exists(KeyUnbreakable) {
		b, err := p.boolAt(KeyUnbreakable)
		if err != nil {
			return err
		}
		e.unbreakable = types.TriOf(b)
	}

	location, err := p.parseName(KeyLocation)
	if err != nil {
		return err
	}
	if location != nil {
		e.setExtra(matchers.LocationMatcher{Location: location})
	}

	color, err := p.parseColor(KeyBodyColor)
	if err != nil {
		return err
	}
	if color != nil {
		e.setExtra(matchers.BodyColorMatcher{Color: color})
	}
	return nil
}

// setExtra replaces the extension matcher of the same type, or appends m.
func (e *Expression) setExtra(m matchers.ResourceMatcher) {
	for i, x := range e.extras {
		if reflect.TypeOf(x) == reflect.TypeOf(m) {
			e.extras[i] = m
			return
		}
	}
	e.extras = append(e.extras, m)
}

func (p *parser) parseKind(path string) (matchers.Enum[types.Kind], error) {
	switch {
	case p.k.Exists(path + ".regex"):
		pattern, err := p.pattern(path)
		if err != nil {
			return nil, err
		}
		return matchers.RegexEnum[types.Kind]{Pattern: pattern}, nil
	case p.isAny(path):
		return matchers.AnyEnum[types.Kind]{}, nil
	case p.k.Exists(path):
		s, err := p.stringAt(path)
		if err != nil {
			return nil, err
		}
		kind, err := types.ParseKind(s)
		if err != nil {
			return nil, keyErr(err, path)
		}
		return matchers.ExactlyEnum[types.Kind]{Value: kind}, nil
	}
	return nil, nil
}

func (p *parser) parseColor(path string) (matchers.Enum[types.Color], error) {
	switch {
	case p.k.Exists(path + ".regex"):
		pattern, err := p.pattern(path)
		if err != nil {
			return nil, err
		}
		return matchers.RegexEnum[types.Color]{Pattern: pattern}, nil
	case p.isAny(path):
		return matchers.AnyEnum[types.Color]{}, nil
	case p.k.Exists(path):
		s, err := p.stringAt(path)
		if err != nil {
			return nil, err
		}
		color, err := types.ParseColor(s)
		if err != nil {
			return nil, keyErr(err, path)
		}
		return matchers.ExactlyEnum[types.Color]{Value: color}, nil
	}
	return nil, nil
}

func (p *parser) parseAmount(path string) (matchers.Amount, error) {
	switch {
	case p.k.Exists(path + ".range"):
		r := matchers.RangeAmount{High: math.MaxInt32}
		var err error
		if r.Low, err = p.intAt(path+".range.low", 0); err != nil {
			return nil, err
		}
		if r.High, err = p.intAt(path+".range.high", math.MaxInt32); err != nil {
			return nil, err
		}
		if r.LowInclusive, err = p.boolOr(path+".range.inclusiveLow", true); err != nil {
			return nil, err
		}
		if r.HighInclusive, err = p.boolOr(path+".range.inclusiveHigh", true); err != nil {
			return nil, err
		}
		if r.Empty() {
			p.log.Debug().Str("key", path).Stringer("range", r).Msg("Range accepts no amount")
		}
		return r, nil
	case p.isAny(path):
		return matchers.AnyAmount{}, nil
	case p.k.Exists(path):
		n, err := p.intAt(path, 0)
		if err != nil {
			return nil, err
		}
		return matchers.ExactlyAmount{N: n}, nil
	}
	return nil, nil
}

func (p *parser) parseLore(path string) (matchers.Lore, error) {
	switch {
	case p.k.Exists(path + ".regex"):
		pattern, err := p.pattern(path)
		if err != nil {
			return nil, err
		}
		return matchers.RegexLore{Pattern: pattern}, nil
	case p.isAny(path):
		return matchers.AnyLore{}, nil
	case p.k.Exists(path):
		lines, err := p.stringsAt(path)
		if err != nil {
			return nil, err
		}
		return matchers.ExactlyLore{Lines: lines}, nil
	}
	return nil, nil
}

func (p *parser) parseName(path string) (matchers.Name, error) {
	switch {
	case p.k.Exists(path + ".regex"):
		pattern, err := p.pattern(path)
		if err != nil {
			return nil, err
		}
		return matchers.RegexName{Pattern: pattern}, nil
	case p.isAny(path):
		return matchers.AnyName{}, nil
	case p.isLiteral(path, vanillaValue):
		return matchers.VanillaName{}, nil
	case p.k.Exists(path):
		s, err := p.stringAt(path)
		if err != nil {
			return nil, err
		}
		return matchers.ExactlyName{Name: s}, nil
	}
	return nil, nil
}

// parseTags reads a table of tag kinds, each mapped to a level matcher. The
// key "*" stands for a tag of any kind.
func (p *parser) parseTags(path string, mode matchers.ListMode) (matchers.TagSet, error) {
	if !p.k.Exists(path) {
		return matchers.TagSet{}, nil
	}
	if _, ok := p.k.Get(path).(map[string]any); !ok {
		return matchers.TagSet{}, errors.Newf(errors.ErrConfigParse,
			"key %s: expected a table of tag kinds", path).WithDetail("key", path)
	}

	var ms []matchers.Tag
	for _, key := range p.k.MapKeys(path) {
		level, err := p.parseAmount(path + "." + key)
		if err != nil {
			return matchers.TagSet{}, err
		}
		if level == nil {
			level = matchers.AnyAmount{}
		}

		if key == levelTagKey {
			ms = append(ms, matchers.LevelTag{Level: level})
			continue
		}
		ms = append(ms, matchers.ExactlyTag{Kind: types.NewTagKind(key), Level: level})
	}

	set, err := matchers.NewTagSet(mode, ms...)
	if err != nil {
		return matchers.TagSet{}, keyErr(err, path)
	}
	return set, nil
}

// parseSkull flattens the names, uuids, name and uuid keys into one list of
// owner matchers, in that order.
func (p *parser) parseSkull(path string) ([]matchers.UUID, error) {
	if !p.k.Exists(path) {
		return nil, nil
	}

	var out []matchers.UUID
	addName := func(name string) {
		out = append(out, matchers.NameUUID{Name: name, Resolver: p.resolver})
	}
	addID := func(key, s string) error {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "key %s: invalid uuid %q", key, s).
				WithDetail("key", key)
		}
		out = append(out, matchers.ExactlyUUID{ID: id})
		return nil
	}

	if p.k.Exists(path + ".names") {
		names, err := p.stringsAt(path + ".names")
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			addName(n)
		}
	}
	if p.k.Exists(path + ".uuids") {
		ids, err := p.stringsAt(path + ".uuids")
		if err != nil {
			return nil, err
		}
		for _, s := range ids {
			if err := addID(path+".uuids", s); err != nil {
				return nil, err
			}
		}
	}
	if p.k.Exists(path + ".name") {
		n, err := p.stringAt(path + ".name")
		if err != nil {
			return nil, err
		}
		addName(n)
	}
	if p.k.Exists(path + ".uuid") {
		s, err := p.stringAt(path + ".uuid")
		if err != nil {
			return nil, err
		}
		if err := addID(path+".uuid", s); err != nil {
			return nil, err
		}
	}

	if len(out) == 0 {
		p.log.Debug().Str("key", path).Msg("Skull section lists no owners")
	}
	return out, nil
}

func (p *parser) pattern(path string) (*matchers.Pattern, error) {
	expr, err := p.stringAt(path + ".regex")
	if err != nil {
		return nil, err
	}
	multiline, err := p.boolOr(path+".regexMultiline", true)
	if err != nil {
		return nil, err
	}
	pattern, err := matchers.CompilePattern(expr, multiline)
	if err != nil {
		return nil, keyErr(err, path+".regex")
	}
	return pattern, nil
}

func (p *parser) isAny(path string) bool {
	return p.isLiteral(path, anyValue)
}

func (p *parser) isLiteral(path, literal string) bool {
	s, ok := p.k.Get(path).(string)
	return ok && strings.EqualFold(strings.TrimSpace(s), literal)
}

func (p *parser) stringAt(path string) (string, error) {
	switch v := p.k.Get(path).(type) {
	case string:
		return v, nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", errors.Newf(errors.ErrConfigParse, "key %s: expected a string, got %T", path, v).
			WithDetail("key", path)
	}
}

func (p *parser) stringsAt(path string) ([]string, error) {
	switch v := p.k.Get(path).(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, x := range v {
			s, ok := x.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrConfigParse,
					"key %s: entry %d is not a string", path, i).WithDetail("key", path)
			}
			out[i] = s
		}
		return out, nil
	case string:
		return []string{v}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "key %s: expected a list of strings, got %T", path, v).
			WithDetail("key", path)
	}
}

func (p *parser) intAt(path string, def int) (int, error) {
	if !p.k.Exists(path) {
		return def, nil
	}

	bad := func(v any) error {
		return errors.Newf(errors.ErrConfigParse, "key %s: expected an integer, got %v", path, v).
			WithDetail("key", path)
	}
	switch v := p.k.Get(path).(type) {
	case int:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, bad(v)
		}
		return v, nil
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, bad(v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return 0, bad(v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, bad(v)
		}
		return int(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, bad(v)
		}
		return int(n), nil
	default:
		return 0, bad(v)
	}
}

func (p *parser) boolAt(path string) (bool, error) {
	switch v := p.k.Get(path).(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b, nil
		}
	}
	return false, errors.Newf(errors.ErrConfigParse, "key %s: expected a boolean", path).
		WithDetail("key", path)
}

func (p *parser) boolOr(path string, def bool) (bool, error) {
	if !p.k.Exists(path) {
		return def, nil
	}
	return p.boolAt(path)
}

func keyErr(err error, key string) error {
	return errors.Wrapf(err, errors.ErrConfigParse, "key %s", key).WithDetail("key", key)
}
