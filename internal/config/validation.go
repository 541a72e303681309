package config

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"git.home.luguber.info/inful/assetkit/internal/util/sets"
)

var bankIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func init() {
	// Report fields by their YAML keys.
	validation.ErrorTag = "yaml"
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Extract),
		validation.Field(&c.Vocab),
	)
}

// Validate checks section definitions and name uniqueness.
func (e ExtractConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Sections, validation.Required, validation.By(uniqueSectionNames)),
	)
}

// Validate checks a single section definition.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Source, validation.Required),
		validation.Field(&s.Output, validation.Required, validation.By(differsFrom(s.Source))),
		validation.Field(&s.StartMarker, validation.Required),
		validation.Field(&s.Template, validation.Required),
	)
}

// Validate checks directory settings and bank definitions.
func (v VocabConfig) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.SourceDir, validation.Required),
		validation.Field(&v.IndexDir, validation.Required),
		validation.Field(&v.Banks, validation.Required, validation.By(uniqueBankIDs)),
	)
}

// Validate checks a single bank definition.
func (b Bank) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required, validation.Match(bankIDPattern)),
		validation.Field(&b.Files, validation.Required, validation.Each(validation.Required, validation.By(jsonFileName))),
	)
}

func uniqueSectionNames(value any) error {
	sections, _ := value.([]Section)
	if name, ok := sets.FirstDuplicate(sections, func(s Section) string { return s.Name }); ok {
		return validation.NewError("validation_duplicate_section", "duplicate section name "+name)
	}
	return nil
}

func uniqueBankIDs(value any) error {
	banks, _ := value.([]Bank)
	if id, ok := sets.FirstDuplicate(banks, func(b Bank) string { return b.ID }); ok {
		return validation.NewError("validation_duplicate_bank", "duplicate bank id "+id)
	}
	return nil
}

func jsonFileName(value any) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	if filepath.Base(name) != name {
		return errors.New("must be a bare file name")
	}
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return errors.New("must have a .json extension")
	}
	return nil
}

func differsFrom(source string) validation.RuleFunc {
	return func(value any) error {
		out, _ := value.(string)
		if out != "" && filepath.Clean(out) == filepath.Clean(source) {
			return errors.New("must differ from source")
		}
		return nil
	}
}
