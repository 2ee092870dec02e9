package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marketconnect/marketconnect-backend/pkg/db"
	"github.com/marketconnect/marketconnect-backend/pkg/db/models"
	"github.com/marketconnect/marketconnect-backend/pkg/db/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Vendor{}))
	return gdb
}

func TestRepositoryCreateEnforcesUniqueAuthID(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	uid := "firebase-uid-1"
	dto := CreateVendorDTO{
		ExternalAuthID:   &uid,
		FullName:         "Ravi Kumar",
		MobileNumber:     "9876543210",
		StallAddress:     "12 Market Road",
		City:             "Pune",
		Pincode:          "411001",
		State:            "Maharashtra",
		StallType:        "chaat",
		RawMaterialNeeds: []string{"onions"},
	}
	first, err := repo.Create(ctx, dto)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = repo.Create(ctx, dto)
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "external_auth_id"))

	existing, err := repo.FindByExternalAuthID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, first.ID, existing.ID)
}

func TestRepositoryAllowsMultipleNilAuthIDs(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	dto := CreateVendorDTO{
		FullName:         "Walk-in Vendor",
		MobileNumber:     "9876543210",
		StallAddress:     "12 Market Road",
		City:             "Pune",
		Pincode:          "411001",
		State:            "Maharashtra",
		StallType:        "chaat",
		RawMaterialNeeds: []string{},
	}
	_, err := repo.Create(ctx, dto)
	require.NoError(t, err)
	_, err = repo.Create(ctx, dto)
	require.NoError(t, err)
}

func TestRepositoryListFieldRoundTrip(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateVendorDTO{
		FullName:         "Ravi Kumar",
		MobileNumber:     "9876543210",
		StallAddress:     "12 Market Road",
		City:             "Pune",
		Pincode:          "411001",
		State:            "Maharashtra",
		StallType:        "chaat",
		RawMaterialNeeds: []string{"onions", "green chillies"},
	})
	require.NoError(t, err)

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StringList{"onions", "green chillies"}, loaded.RawMaterialNeeds)

	empty, err := repo.Create(ctx, CreateVendorDTO{
		FullName:         "No Needs",
		MobileNumber:     "9876543211",
		StallAddress:     "13 Market Road",
		City:             "Pune",
		Pincode:          "411001",
		State:            "Maharashtra",
		StallType:        "tea",
		RawMaterialNeeds: []string{},
	})
	require.NoError(t, err)
	loadedEmpty, err := repo.FindByID(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, loadedEmpty.RawMaterialNeeds)
	assert.NotNil(t, loadedEmpty.RawMaterialNeeds)
}

func TestRepositoryDeleteReportsExistence(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateVendorDTO{
		FullName:         "Ravi Kumar",
		MobileNumber:     "9876543210",
		StallAddress:     "12 Market Road",
		City:             "Pune",
		Pincode:          "411001",
		State:            "Maharashtra",
		StallType:        "chaat",
		RawMaterialNeeds: []string{},
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
