package groups

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.ProductGroup{}))
	return gdb
}

func TestUpdateStatusGuardsCurrentState(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	group, err := repo.Create(ctx, CreateProductGroupDTO{
		Product:   "Onions",
		Quantity:  "500kg",
		Location:  "Pune",
		Deadline:  time.Now().Add(48 * time.Hour),
		CreatedBy: 3,
	})
	require.NoError(t, err)

	moved, err := repo.UpdateStatus(ctx, group.ID, enums.GroupStatusAccepted, enums.GroupStatusDelivered)
	require.NoError(t, err)
	assert.False(t, moved)

	var unchanged models.ProductGroup
	require.NoError(t, gdb.First(&unchanged, "id = ?", group.ID).Error)
	assert.Equal(t, enums.GroupStatusPending, unchanged.Status)

	moved, err = repo.UpdateStatus(ctx, group.ID, enums.GroupStatusPending, enums.GroupStatusAccepted)
	require.NoError(t, err)
	require.True(t, moved)

	moved, err = repo.UpdateStatus(ctx, group.ID, enums.GroupStatusPending, enums.GroupStatusAccepted)
	require.NoError(t, err)
	assert.False(t, moved)
}
