package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/camshaft/carcatalog/pkg/database/repository"
	"github.com/camshaft/carcatalog/pkg/logging"
	"gorm.io/gorm"
)

// modelEntry is one element of a per-make seed file:
// [{"model": "M3", "trims": [{"name": "Competition"}]}]
type modelEntry struct {
	Model string      `json:"model"`
	Trims []trimEntry `json:"trims"`
}

type trimEntry struct {
	Name string `json:"name"`
}

// Importer performs a one-shot bulk load of make/model/trim seed data taken
// from a directory of per-make JSON files. It goes through the same
// repositories as the HTTP create endpoints.
type Importer struct {
	makes  *repository.MakeRepository
	trims  *repository.TrimRepository
	models *repository.ModelRepository
	logger logging.Logger
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{
		makes:  repository.NewMakeRepository(db),
		models: repository.NewModelRepository(db),
		trims:  repository.NewTrimRepository(db),
		logger: logging.GetGlobalLoggerFactory().CreateLogger("importer"),
	}
}

// Run loads every *.json file in dir. The file name minus extension is the
// make name; each entry creates a model under it and trims under the model.
func (imp *Importer) Run(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read seed directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := imp.importFile(dir, entry.Name()); err != nil {
			return fmt.Errorf("failed to import %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (imp *Importer) importFile(dir, filename string) error {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return err
	}

	var modelEntries []modelEntry
	if err := json.Unmarshal(data, &modelEntries); err != nil {
		return err
	}

	makeName := strings.TrimSuffix(filename, ".json")
	if _, err := imp.makes.CreateMake(makeName); err != nil {
		return err
	}

	for _, model := range modelEntries {
		if _, err := imp.models.CreateModel(makeName, model.Model); err != nil {
			return err
		}
		for _, trim := range model.Trims {
			if _, err := imp.trims.CreateTrim(model.Model, trim.Name); err != nil {
				return err
			}
		}
	}

	imp.logger.Info("Imported make", map[string]interface{}{
		"make":   makeName,
		"models": len(modelEntries),
	})
	return nil
}
