package models

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Category describes one content domain sharing the generic folder/file
// surface. The dozen categories are configuration, not code: routes and
// client pages are generated from this registry.
type Category struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	RoutePrefix string `yaml:"route_prefix" json:"routePrefix"`
	Section     string `yaml:"section" json:"section"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CategoryRegistry holds the configured categories in file order.
type CategoryRegistry struct {
	categories []Category
	bySlug     map[string]Category
}

func NewCategoryRegistry(categories []Category) (*CategoryRegistry, error) {
	reg := &CategoryRegistry{bySlug: make(map[string]Category, len(categories))}
	for _, cat := range categories {
		if !slugPattern.MatchString(cat.Slug) {
			return nil, fmt.Errorf("invalid category slug %q", cat.Slug)
		}
		if cat.Title == "" {
			return nil, fmt.Errorf("category %q has no title", cat.Slug)
		}
		if _, dup := reg.bySlug[cat.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", cat.Slug)
		}
		if cat.RoutePrefix == "" {
			cat.RoutePrefix = "/" + cat.Slug
		}
		reg.bySlug[cat.Slug] = cat
		reg.categories = append(reg.categories, cat)
	}
	if len(reg.categories) == 0 {
		return nil, fmt.Errorf("category registry is empty")
	}
	return reg, nil
}

// LoadCategoryRegistry reads the YAML registry file.
func LoadCategoryRegistry(path string) (*CategoryRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category registry: %w", err)
	}
	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse category registry: %w", err)
	}
	return NewCategoryRegistry(doc.Categories)
}

// All returns the categories in registry order.
func (r *CategoryRegistry) All() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Get looks up a category by slug.
func (r *CategoryRegistry) Get(slug string) (Category, bool) {
	cat, ok := r.bySlug[slug]
	return cat, ok
}

func (r *CategoryRegistry) Has(slug string) bool {
	_, ok := r.bySlug[slug]
	return ok
}
