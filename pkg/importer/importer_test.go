package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/database/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupImportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestDB()
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, migration.RunMigration(db), "Failed to migrate test database")
	return db
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestImporterLoadsMakeModelTrim(t *testing.T) {
	db := setupImportDB(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "BMW.json",
		`[{"model": "M3", "trims": [{"name": "Competition"}, {"name": "CS"}]},
		  {"model": "M5", "trims": []}]`)

	require.NoError(t, NewImporter(db).Run(dir))

	makes := repository.NewMakeRepository(db)
	mk, err := makes.GetMakeByName("BMW")
	require.NoError(t, err)
	assert.Equal(t, "BMW", mk.Name)

	mods, err := repository.NewModelRepository(db).GetModelsByMake("BMW")
	require.NoError(t, err)
	assert.Len(t, mods, 2)

	trims, err := repository.NewTrimRepository(db).GetTrimsByModel("M3")
	require.NoError(t, err)
	assert.Len(t, trims, 2)
}

func TestImporterSkipsNonJSONFiles(t *testing.T) {
	db := setupImportDB(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "notes.txt", "not json")
	writeSeedFile(t, dir, "Audi.json", `[{"model": "RS4", "trims": [{"name": "Avant"}]}]`)

	require.NoError(t, NewImporter(db).Run(dir))

	makes, err := repository.NewMakeRepository(db).GetAllMakes()
	require.NoError(t, err)
	require.Len(t, makes, 1)
	assert.Equal(t, "Audi", makes[0].Name)
}

func TestImporterRejectsMalformedFile(t *testing.T) {
	db := setupImportDB(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "Broken.json", `{"not": "a list"}`)

	assert.Error(t, NewImporter(db).Run(dir))
}
