package inventory

import (
	"bytes"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q", s).
			WithDetail("format", s)
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "can't tell the format of %s", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

// Encode serializes v.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return data, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", string(f))
}

// Decode parses data into v.
func Decode(data []byte, f Format, v any) error {
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "failed to parse yaml")
		}
		return nil
	case FormatTOML:
		if err := toml.Unmarshal(data, v); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "failed to parse toml")
		}
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown format %q", string(f))
}
