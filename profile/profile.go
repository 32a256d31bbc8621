// Package profile persists reader and formatter configurations as files.
// A profile pins down how a field is decoded and displayed, so the same
// interpretation can be reapplied across sessions and tools. Profiles load
// and save as JSON, YAML, or TOML, chosen by file extension.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/numkit/numkit/num"
)

// Profile names a decoding configuration: which reader variant to apply and
// how to render what it produces.
type Profile struct {
	Name      string
	Reader    num.Reader
	Formatter num.FormatterConfig
}

// doc is the on-disk shape shared by every encoding. Enum fields are stored
// as their names; yaml.v3 does not consult TextMarshaler, so the conversion
// is explicit here rather than left to struct tags.
type doc struct {
	Name      string       `json:"name" yaml:"name" toml:"name"`
	Reader    readerDoc    `json:"reader" yaml:"reader" toml:"reader"`
	Formatter formatterDoc `json:"formatter" yaml:"formatter" toml:"formatter"`
}

type readerDoc struct {
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	Endian string `json:"endian" yaml:"endian" toml:"endian"`
}

type formatterDoc struct {
	Format       string `json:"format" yaml:"format" toml:"format"`
	Uppercase    bool   `json:"uppercase,omitempty" yaml:"uppercase,omitempty" toml:"uppercase,omitempty"`
	Prefix       bool   `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	ZeroPad      bool   `json:"zero_pad,omitempty" yaml:"zero_pad,omitempty" toml:"zero_pad,omitempty"`
	GroupSep     string `json:"group_sep,omitempty" yaml:"group_sep,omitempty" toml:"group_sep,omitempty"`
	GroupSize    int    `json:"group_size,omitempty" yaml:"group_size,omitempty" toml:"group_size,omitempty"`
	ThousandsSep string `json:"thousands_sep,omitempty" yaml:"thousands_sep,omitempty" toml:"thousands_sep,omitempty"`
	Sign         string `json:"sign,omitempty" yaml:"sign,omitempty" toml:"sign,omitempty"`
	Precision    int    `json:"precision,omitempty" yaml:"precision,omitempty" toml:"precision,omitempty"`
}

func (p Profile) toDoc() (doc, error) {
	if !p.Reader.Kind.Valid() {
		return doc{}, fmt.Errorf("profile %q: %w: %d", p.Name, num.ErrUnknownKind, uint8(p.Reader.Kind))
	}
	if _, err := p.Formatter.Formatter(); err != nil {
		return doc{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return doc{
		Name: p.Name,
		Reader: readerDoc{
			Kind:   p.Reader.Kind.String(),
			Endian: p.Reader.Endian.String(),
		},
		Formatter: formatterDoc{
			Format:       p.Formatter.Format.String(),
			Uppercase:    p.Formatter.Uppercase,
			Prefix:       p.Formatter.Prefix,
			ZeroPad:      p.Formatter.ZeroPad,
			GroupSep:     p.Formatter.Group.Sep,
			GroupSize:    p.Formatter.Group.Size,
			ThousandsSep: p.Formatter.ThousandsSep,
			Sign:         p.Formatter.Sign.String(),
			Precision:    p.Formatter.Precision,
		},
	}, nil
}

func (d doc) toProfile() (Profile, error) {
	kind, err := num.ParseKind(d.Reader.Kind)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", d.Name, err)
	}
	endian, err := num.ParseEndian(d.Reader.Endian)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", d.Name, err)
	}
	format, err := num.ParseFormat(d.Formatter.Format)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", d.Name, err)
	}
	sign, err := num.ParseSignMode(d.Formatter.Sign)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %q: %w", d.Name, err)
	}
	return Profile{
		Name:   d.Name,
		Reader: num.NewReader(kind, endian),
		Formatter: num.FormatterConfig{
			Format:       format,
			Uppercase:    d.Formatter.Uppercase,
			Prefix:       d.Formatter.Prefix,
			ZeroPad:      d.Formatter.ZeroPad,
			Group:        num.Grouping{Sep: d.Formatter.GroupSep, Size: d.Formatter.GroupSize},
			ThousandsSep: d.Formatter.ThousandsSep,
			Sign:         sign,
			Precision:    d.Formatter.Precision,
		},
	}, nil
}

// Load reads a profile from path. The encoding follows the file extension:
// .json, .yaml, .yml, or .toml.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var d doc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &d); err != nil {
			return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
		}
	default:
		return Profile{}, fmt.Errorf("load profile %s: unsupported extension %q", path, ext)
	}
	return d.toProfile()
}

// Save writes the profile to path, encoded per the file extension.
func Save(path string, p Profile) error {
	d, err := p.toDoc()
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(d, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(d)
	case ".toml":
		data, err = marshalTOML(d)
	default:
		return fmt.Errorf("save profile %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("save profile %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func marshalTOML(d doc) ([]byte, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(d); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
