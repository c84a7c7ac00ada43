package catalog

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/foodexpiry/backend/internal/domain"
)

// recipeFile is the on-disk shape of the catalog
type recipeFile struct {
	Recipes []recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Ingredients     []string `yaml:"ingredients"`
	PreparationTime int      `yaml:"preparation_time"`
	Instructions    string   `yaml:"instructions"`
}

// YAMLCatalog serves read-only recipe reference data from a YAML file
type YAMLCatalog struct {
	path    string
	mutex   sync.RWMutex
	recipes []domain.Recipe
}

// NewYAMLCatalog loads the catalog file at the given path
func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	c := &YAMLCatalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog file, replacing the in-memory recipe set.
// Recipes without an ID get one assigned; recipes without a title are
// rejected so a broken file is caught at load time rather than at serving
// time.
func (c *YAMLCatalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("reading catalog file %s: %w", c.path, err)
	}

	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", c.path, err)
	}

	recipes := make([]domain.Recipe, 0, len(file.Recipes))
	for i, entry := range file.Recipes {
		if entry.Title == "" {
			return fmt.Errorf("catalog file %s: recipe %d has no title", c.path, i)
		}
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		recipes = append(recipes, domain.Recipe{
			ID:              id,
			Title:           entry.Title,
			Ingredients:     entry.Ingredients,
			PreparationTime: entry.PreparationTime,
			Instructions:    entry.Instructions,
		})
	}

	c.mutex.Lock()
	c.recipes = recipes
	c.mutex.Unlock()
	return nil
}

// List returns a copy of all catalog recipes
func (c *YAMLCatalog) List(ctx context.Context) ([]domain.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	recipes := make([]domain.Recipe, len(c.recipes))
	copy(recipes, c.recipes)
	return recipes, nil
}

// GetByID returns a single recipe by its ID
func (c *YAMLCatalog) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, recipe := range c.recipes {
		if recipe.ID == id {
			r := recipe
			return &r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

// Size returns the number of loaded recipes (for debugging/monitoring)
func (c *YAMLCatalog) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.recipes)
}
