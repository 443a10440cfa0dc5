package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mevansam/textparsers/logger"
)

// environment variable naming the settings file to load
const SettingsEnvVar = "TEXTPARSERS_SETTINGS"

// settings file layout. special characters are
// given as single character strings and any
// group or field not present keeps its default.
type fileSettings struct {
	Collection *struct {
		Delimiter  string `yaml:"delimiter" json:"delimiter"`
		Escape     string `yaml:"escape" json:"escape"`
		NullMarker string `yaml:"nullMarker" json:"nullMarker"`
	} `yaml:"collection" json:"collection"`

	Dictionary *struct {
		PairsDelimiter    string `yaml:"pairsDelimiter" json:"pairsDelimiter"`
		KeyValueDelimiter string `yaml:"keyValueDelimiter" json:"keyValueDelimiter"`
		Escape            string `yaml:"escape" json:"escape"`
		NullMarker        string `yaml:"nullMarker" json:"nullMarker"`
		Behaviour         string `yaml:"behaviour" json:"behaviour"`
	} `yaml:"dictionary" json:"dictionary"`

	KeyValue *struct {
		Delimiter  string `yaml:"delimiter" json:"delimiter"`
		Escape     string `yaml:"escape" json:"escape"`
		NullMarker string `yaml:"nullMarker" json:"nullMarker"`
	} `yaml:"keyValue" json:"keyValue"`

	Graduated *struct {
		Delimiter  string `yaml:"delimiter" json:"delimiter"`
		Escape     string `yaml:"escape" json:"escape"`
		NullMarker string `yaml:"nullMarker" json:"nullMarker"`
	} `yaml:"graduated" json:"graduated"`

	Tuple           *fileShape `yaml:"tuple" json:"tuple"`
	Deconstructable *fileShape `yaml:"deconstructable" json:"deconstructable"`

	Enum *struct {
		CaseSensitive  *bool  `yaml:"caseSensitive" json:"caseSensitive"`
		AllowNumerics  *bool  `yaml:"allowNumerics" json:"allowNumerics"`
		FlagsSeparator string `yaml:"flagsSeparator" json:"flagsSeparator"`
	} `yaml:"enum" json:"enum"`
}

type fileShape struct {
	Delimiter     string  `yaml:"delimiter" json:"delimiter"`
	Escape        string  `yaml:"escape" json:"escape"`
	NullMarker    string  `yaml:"nullMarker" json:"nullMarker"`
	Start         *string `yaml:"start" json:"start"`
	End           *string `yaml:"end" json:"end"`
	StrictBorders bool    `yaml:"strictBorders" json:"strictBorders"`
}

// LoadFromEnv loads settings from the file named by the TEXTPARSERS_SETTINGS
// environment variable. When the variable is not set the defaults are returned.
func LoadFromEnv(fs afero.Fs) (*Store, error) {

	path := os.Getenv(SettingsEnvVar)
	if len(path) == 0 {
		logger.TraceMessage("config.LoadFromEnv(): %s not set, using default settings.", SettingsEnvVar)
		return DefaultStore(), nil
	}
	return Load(fs, path)
}

// Load reads a YAML (.yml, .yaml) or JSON with comments (.json, .jsonc)
// settings file. A leading '~' in the path is expanded to the home directory.
func Load(fs afero.Fs, path string) (*Store, error) {

	var (
		err  error
		data []byte
	)

	if path, err = homedir.Expand(path); err != nil {
		return nil, fmt.Errorf("expanding settings path '%s': %w", path, err)
	}
	logger.TraceMessage("config.Load(): Loading settings from '%s'.", path)

	if data, err = afero.ReadFile(fs, path); err != nil {
		return nil, fmt.Errorf("reading settings '%s': %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return Parse(data, false)
	case ".json", ".jsonc":
		return Parse(data, true)
	default:
		return nil, fmt.Errorf("unsupported settings file type '%s'", ext)
	}
}

// Parse decodes settings from YAML or, when isJSON is
// set, from JSON that may contain comments and trailing commas.
func Parse(data []byte, isJSON bool) (*Store, error) {

	var (
		err error
		fs  fileSettings
	)

	if isJSON {
		err = json.Unmarshal(jsonc.ToJSON(data), &fs)
	} else {
		err = yaml.Unmarshal(data, &fs)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	store := DefaultStore()
	if err = fs.apply(store); err != nil {
		return nil, err
	}
	if err = store.Validate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (fs *fileSettings) apply(s *Store) error {

	var (
		err error
	)

	set := func(field string, value string, target *rune) {
		if err != nil || len(value) == 0 {
			return
		}
		*target, err = singleRune(field, value)
	}

	if c := fs.Collection; c != nil {
		set("collection.delimiter", c.Delimiter, &s.Collection.Delimiter)
		set("collection.escape", c.Escape, &s.Collection.Escape)
		set("collection.nullMarker", c.NullMarker, &s.Collection.NullMarker)
	}
	if d := fs.Dictionary; d != nil {
		set("dictionary.pairsDelimiter", d.PairsDelimiter, &s.Dictionary.PairsDelimiter)
		set("dictionary.keyValueDelimiter", d.KeyValueDelimiter, &s.Dictionary.KeyValueDelimiter)
		set("dictionary.escape", d.Escape, &s.Dictionary.Escape)
		set("dictionary.nullMarker", d.NullMarker, &s.Dictionary.NullMarker)

		switch strings.ToLower(d.Behaviour) {
		case "":
		case "overwrite":
			s.Dictionary.Behaviour = OverwriteOnDuplicateKey
		case "throw":
			s.Dictionary.Behaviour = ThrowOnDuplicateKey
		default:
			return fmt.Errorf("%w: unknown dictionary behaviour '%s'", ErrConfiguration, d.Behaviour)
		}
	}
	if kv := fs.KeyValue; kv != nil {
		set("keyValue.delimiter", kv.Delimiter, &s.KeyValue.Delimiter)
		set("keyValue.escape", kv.Escape, &s.KeyValue.Escape)
		set("keyValue.nullMarker", kv.NullMarker, &s.KeyValue.NullMarker)
	}
	if g := fs.Graduated; g != nil {
		set("graduated.delimiter", g.Delimiter, &s.Graduated.Delimiter)
		set("graduated.escape", g.Escape, &s.Graduated.Escape)
		set("graduated.nullMarker", g.NullMarker, &s.Graduated.NullMarker)
	}
	for _, shape := range []struct {
		name   string
		file   *fileShape
		target *DeconstructableSettings
	}{
		{"tuple", fs.Tuple, &s.Tuple},
		{"deconstructable", fs.Deconstructable, &s.Deconstructable},
	} {
		if shape.file == nil {
			continue
		}
		set(shape.name+".delimiter", shape.file.Delimiter, &shape.target.Delimiter)
		set(shape.name+".escape", shape.file.Escape, &shape.target.Escape)
		set(shape.name+".nullMarker", shape.file.NullMarker, &shape.target.NullMarker)
		// an empty border string removes the border
		if shape.file.Start != nil {
			shape.target.Start = 0
			set(shape.name+".start", *shape.file.Start, &shape.target.Start)
		}
		if shape.file.End != nil {
			shape.target.End = 0
			set(shape.name+".end", *shape.file.End, &shape.target.End)
		}
		shape.target.StrictBorders = shape.file.StrictBorders
	}
	if e := fs.Enum; e != nil {
		if e.CaseSensitive != nil {
			s.Enum.CaseSensitive = *e.CaseSensitive
		}
		if e.AllowNumerics != nil {
			s.Enum.AllowNumerics = *e.AllowNumerics
		}
		set("enum.flagsSeparator", e.FlagsSeparator, &s.Enum.FlagsSeparator)
	}
	return err
}

func singleRune(field, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: '%s' must be a single character but was '%s'",
			ErrConfiguration, field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
