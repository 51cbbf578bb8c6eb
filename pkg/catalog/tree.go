package catalog

import (
	"sync"

	"github.com/camshaft/carcatalog/pkg/database/models"
	"gorm.io/gorm"
)

// TrimResponse is the flattened trim node of the aggregate tree.
type TrimResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	ModelID uint   `json:"model_id"`
}

// ModelResponse is a model with its trims nested.
type ModelResponse struct {
	Name  string         `json:"name"`
	Trims []TrimResponse `json:"trims"`
}

// MakeResponse is a make with its models (and their trims) nested.
type MakeResponse struct {
	Name   string          `json:"name"`
	Models []ModelResponse `json:"models"`
}

// TreeCache memoizes the full make -> model -> trim tree. It holds at most
// one snapshot with no TTL: the first Get computes it, later Gets return it
// until Invalidate drops it. All writes that change the tree must go through
// a choke point that calls Invalidate; today that choke point is model
// creation only, so new makes and trims are not visible until the next model
// write clears the snapshot. That narrower contract is deliberate and kept.
type TreeCache struct {
	db *gorm.DB

	mu       sync.Mutex
	snapshot []MakeResponse
	valid    bool
}

func NewTreeCache(db *gorm.DB) *TreeCache {
	return &TreeCache{db: db}
}

// Get returns the cached tree, computing it first if no snapshot is held.
// Concurrent callers during a recompute share one query pass; the mutex is
// held across the rebuild so the snapshot is computed at most once.
func (c *TreeCache) Get() ([]MakeResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.snapshot, nil
	}
	tree, err := c.build()
	if err != nil {
		return nil, err
	}
	c.snapshot = tree
	c.valid = true
	return c.snapshot, nil
}

// Invalidate drops the snapshot so the next Get recomputes it.
func (c *TreeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.valid = false
}

func (c *TreeCache) build() ([]MakeResponse, error) {
	var makes []models.Make
	if err := c.db.Preload("Models.Trims").Find(&makes).Error; err != nil {
		return nil, err
	}
	tree := make([]MakeResponse, 0, len(makes))
	for _, mk := range makes {
		makeNode := MakeResponse{Name: mk.Name, Models: make([]ModelResponse, 0, len(mk.Models))}
		for _, model := range mk.Models {
			modelNode := ModelResponse{Name: model.Name, Trims: make([]TrimResponse, 0, len(model.Trims))}
			for _, trim := range model.Trims {
				modelNode.Trims = append(modelNode.Trims, TrimResponse{
					ID:      trim.ID,
					Name:    trim.Name,
					ModelID: trim.ModelID,
				})
			}
			makeNode.Models = append(makeNode.Models, modelNode)
		}
		tree = append(tree, makeNode)
	}
	return tree, nil
}
