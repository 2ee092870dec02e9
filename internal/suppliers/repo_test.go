package suppliers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Supplier{}))
	return gdb
}

func seedSupplier(t *testing.T, repo *Repository, city, state, pincode string) *models.Supplier {
	t.Helper()
	created, err := repo.Create(context.Background(), CreateSupplierDTO{
		FullName:           "Seed Supplier " + city,
		MobileNumber:       "9876500000",
		BusinessAddress:    "1 Mandi Road",
		City:               city,
		State:              state,
		Pincode:            pincode,
		BusinessType:       "wholesale",
		SupplyCapabilities: []string{"onions"},
	})
	require.NoError(t, err)
	return created
}

func TestSearchByLocationMatchesAnyField(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	pune := seedSupplier(t, repo, "Pune", "Maharashtra", "411001")
	delhi := seedSupplier(t, repo, "Delhi", "Delhi", "110001")
	nagpur := seedSupplier(t, repo, "Nagpur", "Maharashtra", "440001")

	rows, err := repo.SearchByLocation(context.Background(), LocationQuery{City: "pune"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, pune.ID, rows[0].ID)

	rows, err = repo.SearchByLocation(context.Background(), LocationQuery{State: "maha"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.SearchByLocation(context.Background(), LocationQuery{City: "delhi", Pincode: "440001"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	ids := []int64{rows[0].ID, rows[1].ID}
	assert.Contains(t, ids, delhi.ID)
	assert.Contains(t, ids, nagpur.ID)
}

func TestSearchByLocationExactPincode(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	seedSupplier(t, repo, "Pune", "Maharashtra", "411001")

	rows, err := repo.SearchByLocation(context.Background(), LocationQuery{Pincode: "4110"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
