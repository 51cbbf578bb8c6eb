package catalog

import (
	"sync"
	"testing"

	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/database/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTreeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestDB()
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, migration.RunMigration(db), "Failed to migrate test database")
	return db
}

func TestTreeCacheBuildsNestedTree(t *testing.T) {
	db := setupTreeDB(t)
	makes := repository.NewMakeRepository(db)
	mods := repository.NewModelRepository(db)
	trims := repository.NewTrimRepository(db)

	_, err := makes.CreateMake("BMW")
	require.NoError(t, err)
	_, err = mods.CreateModel("BMW", "M3")
	require.NoError(t, err)
	_, err = trims.CreateTrim("M3", "Competition")
	require.NoError(t, err)

	cache := NewTreeCache(db)
	tree, err := cache.Get()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "BMW", tree[0].Name)
	require.Len(t, tree[0].Models, 1)
	assert.Equal(t, "M3", tree[0].Models[0].Name)
	require.Len(t, tree[0].Models[0].Trims, 1)
	assert.Equal(t, "Competition", tree[0].Models[0].Trims[0].Name)
}

func TestTreeCacheMemoizesUntilInvalidated(t *testing.T) {
	db := setupTreeDB(t)
	makes := repository.NewMakeRepository(db)

	cache := NewTreeCache(db)
	tree, err := cache.Get()
	require.NoError(t, err)
	assert.Empty(t, tree)

	// A write that bypasses the choke point is not visible yet
	_, err = makes.CreateMake("BMW")
	require.NoError(t, err)
	tree, err = cache.Get()
	require.NoError(t, err)
	assert.Empty(t, tree)

	cache.Invalidate()
	tree, err = cache.Get()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "BMW", tree[0].Name)
}

func TestTreeCacheConcurrentGet(t *testing.T) {
	db := setupTreeDB(t)
	makes := repository.NewMakeRepository(db)
	_, err := makes.CreateMake("BMW")
	require.NoError(t, err)

	cache := NewTreeCache(db)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := cache.Get()
			assert.NoError(t, err)
			assert.Len(t, tree, 1)
		}()
	}
	wg.Wait()
}
