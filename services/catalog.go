package services

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/yeremiapane/restaurant-pos/models"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var embeddedMenu []byte

type menuFile struct {
	Categories []string          `yaml:"categories"`
	Items      []models.MenuItem `yaml:"items"`
}

// Catalog adalah menu statis; tidak berubah setelah dimuat.
type Catalog struct {
	categories []string
	items      []models.MenuItem
	byID       map[int]models.MenuItem
}

// LoadCatalog memuat menu dari file YAML, atau menu bawaan jika path kosong.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(embeddedMenu)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("menu has no categories")
	}

	known := make(map[string]bool, len(f.Categories))
	for _, cat := range f.Categories {
		if strings.TrimSpace(cat) == "" {
			return nil, fmt.Errorf("menu has an empty category name")
		}
		if known[cat] {
			return nil, fmt.Errorf("duplicate category %q", cat)
		}
		known[cat] = true
	}

	c := &Catalog{
		categories: f.Categories,
		items:      f.Items,
		byID:       make(map[int]models.MenuItem, len(f.Items)),
	}
	for _, item := range f.Items {
		switch {
		case item.Name == "":
			return nil, fmt.Errorf("menu item %d has no name", item.ID)
		case item.Price < 0:
			return nil, fmt.Errorf("menu item %d has a negative price", item.ID)
		case !known[item.Category]:
			return nil, fmt.Errorf("menu item %d: %w: %q", item.ID, ErrUnknownCategory, item.Category)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %d", item.ID)
		}
		c.byID[item.ID] = item
	}
	return c, nil
}

// Categories returns category names in display order, including empty ones.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) DefaultCategory() string {
	return c.categories[0]
}

func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Item(id int) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// ByCategory returns the items of one category; an empty category yields an empty slice.
func (c *Catalog) ByCategory(name string) ([]models.MenuItem, error) {
	if !c.HasCategory(name) {
		return nil, ErrUnknownCategory
	}
	out := []models.MenuItem{}
	for _, item := range c.items {
		if item.Category == name {
			out = append(out, item)
		}
	}
	return out, nil
}
