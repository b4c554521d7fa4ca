package override

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bundle is the export/import format for sharing override corrections
// between installations.
type Bundle struct {
	Overrides []Override `yaml:"overrides"`
}

// ImportResult reports a bundle import. A malformed bundle is an expected
// user-input-validation outcome, so it is reported as Success false with a
// reason rather than an error.
type ImportResult struct {
	Success  bool
	Reason   string
	Imported int
}

// ExportBundle serializes every stored override into a bundle document.
func ExportBundle(repo Repository) ([]byte, error) {
	pages, err := repo.Pages()
	if err != nil {
		return nil, fmt.Errorf("repo.Pages() > %w", err)
	}

	var bundle Bundle
	for _, page := range pages {
		overrides, err := repo.FindByPage(page)
		if err != nil {
			return nil, fmt.Errorf("repo.FindByPage(%d) > %w", page, err)
		}
		bundle.Overrides = append(bundle.Overrides, overrides...)
	}

	data, err := yaml.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal() > %w", err)
	}
	return data, nil
}

// ImportBundle validates and stores every override in a bundle document.
// Nothing is stored unless the whole bundle decodes and validates; a
// storage failure part-way through stops the import and is reported with
// the failing page, leaving the pages saved before it in place.
func ImportBundle(data []byte, repo Repository) ImportResult {
	var bundle Bundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return ImportResult{Reason: fmt.Sprintf("malformed bundle: %v", err)}
	}
	if len(bundle.Overrides) == 0 {
		return ImportResult{Reason: "bundle contains no overrides"}
	}
	for i, ov := range bundle.Overrides {
		if err := ov.Validate(); err != nil {
			return ImportResult{Reason: fmt.Sprintf("override %d: %v", i, err)}
		}
	}

	for _, ov := range bundle.Overrides {
		if err := repo.Save(ov); err != nil {
			return ImportResult{Reason: fmt.Sprintf("save page %d: %v", ov.PageNumber, err)}
		}
	}
	return ImportResult{Success: true, Imported: len(bundle.Overrides)}
}
