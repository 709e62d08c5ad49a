package inventory

import (
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Stack is the document form of a resource.
type Stack struct {
	Kind               string         `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Amount             int            `yaml:"amount,omitempty" toml:"amount,omitempty"`
	Durability         int            `yaml:"durability,omitempty" toml:"durability,omitempty"`
	Name               string         `yaml:"name,omitempty" toml:"name,omitempty"`
	Lore               []string       `yaml:"lore,omitempty" toml:"lore,omitempty"`
	Enchantments       map[string]int `yaml:"enchantments,omitempty" toml:"enchantments,omitempty"`
	StoredEnchantments map[string]int `yaml:"storedEnchantments,omitempty" toml:"storedEnchantments,omitempty"`
	Unbreakable        bool           `yaml:"unbreakable,omitempty" toml:"unbreakable,omitempty"`
	Owner              string         `yaml:"owner,omitempty" toml:"owner,omitempty"`
	Location           string         `yaml:"location,omitempty" toml:"location,omitempty"`
	BodyColor          string         `yaml:"bodyColor,omitempty" toml:"bodyColor,omitempty"`
}

// Document is a container written out slot by slot.
type Document struct {
	Slots []Stack `yaml:"slots" toml:"slots"`
}

// Resource converts the stack. A stack without a kind, or of kind AIR, is an
// empty slot and yields nil.
func (s Stack) Resource() (*types.Resource, error) {
	if s.Kind == "" {
		return nil, nil
	}
	kind, err := types.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if kind.IsEmpty() {
		return nil, nil
	}

	r := &types.Resource{
		Kind:        kind,
		Amount:      s.Amount,
		Durability:  s.Durability,
		DisplayName: s.Name,
		Lore:        s.Lore,
		Tags:        decodeTags(s.Enchantments),
		StoredTags:  decodeTags(s.StoredEnchantments),
		Unbreakable: s.Unbreakable,
		Location:    s.Location,
	}
	if s.Amount < 0 {
		return nil, errors.Newf(errors.ErrConfigParse, "negative amount %d", s.Amount).
			WithDetail("kind", s.Kind)
	}
	if s.Owner != "" {
		id, err := uuid.Parse(s.Owner)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid owner %q", s.Owner)
		}
		r.Owner = id
	}
	if s.BodyColor != "" {
		color, err := types.ParseColor(s.BodyColor)
		if err != nil {
			return nil, err
		}
		r.BodyColor = color
	}
	return r, nil
}

// StackOf converts a resource to its document form. A nil or empty resource
// yields the empty stack.
func StackOf(r *types.Resource) Stack {
	if r.IsEmpty() {
		return Stack{}
	}
	s := Stack{
		Kind:               r.Kind.String(),
		Amount:             r.Amount,
		Durability:         r.Durability,
		Name:               r.DisplayName,
		Lore:               r.Lore,
		Enchantments:       encodeTags(r.Tags),
		StoredEnchantments: encodeTags(r.StoredTags),
		Unbreakable:        r.Unbreakable,
		Location:           r.Location,
		BodyColor:          r.BodyColor.String(),
	}
	if r.Owner != uuid.Nil {
		s.Owner = r.Owner.String()
	}
	return s
}

func decodeTags(in map[string]int) types.Tags {
	if len(in) == 0 {
		return nil
	}
	out := make(types.Tags, len(in))
	for k, v := range in {
		out[types.NewTagKind(k)] = v
	}
	return out
}

func encodeTags(in types.Tags) map[string]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k.String()] = v
	}
	return out
}

// Container builds a SlotContainer from the document.
func (d *Document) Container() (*SlotContainer, error) {
	c := NewSlotContainer(len(d.Slots))
	for i, s := range d.Slots {
		r, err := s.Resource()
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "slot %d", i).
				WithDetail("slot", i)
		}
		c.slots[i] = r
	}
	return c, nil
}

// DocumentOf writes out the contents of c.
func DocumentOf(c Container) *Document {
	stacks := c.Contents()
	d := &Document{Slots: make([]Stack, len(stacks))}
	for i, s := range stacks {
		d.Slots[i] = StackOf(s)
	}
	return d
}

// ReadDocument loads an inventory document, picking the format from the
// file extension.
func ReadDocument(path string) (*Document, error) {
	var d Document
	if err := readFile(path, &d); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("inventory")
	logger.Debug().
		Str("path", path).
		Int("slots", len(d.Slots)).
		Msg("Inventory document loaded")
	return &d, nil
}

// WriteDocument writes d to path in the format the extension names.
func WriteDocument(path string, d *Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(d, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
	}
	return nil
}

// ReadStack loads a single resource document.
func ReadStack(path string) (*types.Resource, error) {
	var s Stack
	if err := readFile(path, &s); err != nil {
		return nil, err
	}
	r, err := s.Resource()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s describes an empty slot", path).
			WithDetail("path", path)
	}
	return r, nil
}

func readFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrNotFound, "no such file %s", path)
		}
		return errors.Wrapf(err, errors.ErrInternal, "failed to read %s", path)
	}
	if err := Decode(data, f, v); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "in %s", path)
	}
	return nil
}

// Kinds returns the distinct kinds held by c, sorted.
func Kinds(c Container) []types.Kind {
	seen := map[types.Kind]bool{}
	var out []types.Kind
	for _, s := range c.Contents() {
		if s.IsEmpty() || seen[s.Kind] {
			continue
		}
		seen[s.Kind] = true
		out = append(out, s.Kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
