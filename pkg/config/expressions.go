package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/logging"
)

// Selector names an expression document and an optional key path inside
// it.
type Selector struct {
	File string
	Path string
}

// ParseSelector splits "FILE:path". The path is only split off when what
// follows the last colon looks like a key path, so "C:\exprs.yaml" stays a
// file name.
func ParseSelector(s string) Selector {
	i := strings.LastIndex(s, ":")
	if i <= 1 {
		return Selector{File: s}
	}
	path := s[i+1:]
	if path == "" || strings.ContainsAny(path, `/\`) {
		return Selector{File: s}
	}
	return Selector{File: s[:i], Path: path}
}

func (s Selector) String() string {
	if s.Path == "" {
		return s.File
	}
	return s.File + ":" + s.Path
}

// LoadDocument reads a TOML or YAML document into a koanf tree.
func LoadDocument(path string) (*koanf.Koanf, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is neither toml nor yaml", path).
			WithDetail("path", path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "no such file %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "can't read %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return k, nil
}

// LoadExpression builds the expression sel points at. When sel has no path
// and defaultPath is set, defaultPath is used.
func LoadExpression(sel Selector, defaultPath string, opts ...expression.Option) (*expression.Expression, error) {
	k, err := LoadDocument(sel.File)
	if err != nil {
		return nil, err
	}

	path := sel.Path
	if path == "" {
		path = defaultPath
	}
	if path != "" {
		if !k.Exists(path) {
			return nil, errors.Newf(errors.ErrNotFound, "%s has no expression at %s", sel.File, path).
				WithDetail("path", path)
		}
		k = k.Cut(path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("selector", sel.String()).
		Strs("keys", k.MapKeys("")).
		Msg("Expression document loaded")

	e, err := expression.FromConfig(k, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "in %s", sel).
			WithDetails(errors.GetErrorDetails(err))
	}
	return e, nil
}
