package override

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=yaml_repository.go -destination=../mocks/override/mock_repository.go -package=mock_override

// Repository defines operations for the locally persisted order overrides.
type Repository interface {
	FindByPage(pageNumber int) ([]Override, error)
	Save(override Override) error
	Delete(pageNumber int, scope Scope) error
	Pages() ([]int, error)
}

// YAMLRepository stores overrides as one YAML file per page under a
// directory. The file holds at most one override per scope.
type YAMLRepository struct {
	dir string
}

// NewYAMLRepository creates a YAMLRepository rooted at dir, creating the
// directory if needed.
func NewYAMLRepository(dir string) (*YAMLRepository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	return &YAMLRepository{dir: dir}, nil
}

func (r *YAMLRepository) pagePath(pageNumber int) string {
	return filepath.Join(r.dir, fmt.Sprintf("page-%d.yml", pageNumber))
}

// FindByPage returns the overrides stored for a page, or nil when none exist.
func (r *YAMLRepository) FindByPage(pageNumber int) ([]Override, error) {
	path := r.pagePath(pageNumber)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	overrides, err := readYamlFile[[]Override](path)
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}
	return overrides, nil
}

// Save validates an override and stores it, replacing any existing override
// for the same (page, scope) pair.
func (r *YAMLRepository) Save(override Override) error {
	if err := override.Validate(); err != nil {
		return fmt.Errorf("override.Validate() > %w", err)
	}

	existing, err := r.FindByPage(override.PageNumber)
	if err != nil {
		return fmt.Errorf("FindByPage(%d) > %w", override.PageNumber, err)
	}

	kept := make([]Override, 0, len(existing)+1)
	for _, ov := range existing {
		if ov.Scope != override.Scope {
			kept = append(kept, ov)
		}
	}
	kept = append(kept, override)
	sort.SliceStable(kept, func(i, j int) bool {
		return scopeOrder[kept[i].Scope] < scopeOrder[kept[j].Scope]
	})

	return writeYamlFile(r.pagePath(override.PageNumber), kept)
}

// Delete removes the override for a (page, scope) pair. Deleting the last
// override of a page removes the page file.
func (r *YAMLRepository) Delete(pageNumber int, scope Scope) error {
	existing, err := r.FindByPage(pageNumber)
	if err != nil {
		return fmt.Errorf("FindByPage(%d) > %w", pageNumber, err)
	}

	kept := make([]Override, 0, len(existing))
	for _, ov := range existing {
		if ov.Scope != scope {
			kept = append(kept, ov)
		}
	}
	if len(kept) == 0 {
		if err := os.Remove(r.pagePath(pageNumber)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("os.Remove > %w", err)
		}
		return nil
	}
	return writeYamlFile(r.pagePath(pageNumber), kept)
}

// Pages lists the page numbers that have stored overrides, ascending.
func (r *YAMLRepository) Pages() ([]int, error) {
	files, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", r.dir, err)
	}

	var pages []int
	for _, file := range files {
		name := file.Name()
		if !strings.HasPrefix(name, "page-") || !strings.HasSuffix(name, ".yml") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "page-"), ".yml"))
		if err != nil {
			continue
		}
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages, nil
}

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return result, nil
}

func writeYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return yaml.NewEncoder(file).Encode(data)
}
