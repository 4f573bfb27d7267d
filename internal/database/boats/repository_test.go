package boats

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_boats_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Boat{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db), cleanup
}

func validBoat(businessID uint) *entities.Boat {
	return &entities.Boat{
		BusinessID:   businessID,
		BoatName:     "Blue Pearl",
		Description:  "A comfortable day cruiser",
		TripTypes:    "short,day",
		PricePerHour: 80,
		Capacity:     10,
		BoatType:     "motorboat",
		Location:     "Fethiye",
		Photos:       `["https://example.com/1.jpg","https://example.com/2.jpg"]`,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	boat := validBoat(1)
	require.NoError(t, repo.Create(boat))
	assert.NotZero(t, boat.ID)

	stored, err := repo.ByID(boat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Pearl", stored.BoatName)
	assert.Equal(t, "short,day", stored.TripTypes)
	assert.True(t, stored.Available)
}

func TestRepository_Create_Validation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("missing business", func(t *testing.T) {
		boat := validBoat(0)
		assert.ErrorIs(t, repo.Create(boat), ErrBusinessRequired)
	})

	t.Run("missing required field", func(t *testing.T) {
		boat := validBoat(1)
		boat.Location = ""
		assert.ErrorIs(t, repo.Create(boat), ErrFieldsRequired)
	})

	t.Run("missing hourly price", func(t *testing.T) {
		boat := validBoat(1)
		boat.PricePerHour = 0
		assert.ErrorIs(t, repo.Create(boat), ErrFieldsRequired)
	})

	boats, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, boats)
}

func TestRepository_ByBusiness(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(validBoat(1)))
	require.NoError(t, repo.Create(validBoat(1)))
	require.NoError(t, repo.Create(validBoat(2)))

	mine, err := repo.ByBusiness(1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepository_ByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.ByID(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UpdateLicensePath(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	boat := validBoat(1)
	require.NoError(t, repo.Create(boat))

	affected, err := repo.UpdateLicensePath(boat.ID, "/uploads/boat-licenses/abc.pdf")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	stored, err := repo.ByID(boat.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.BoatLicensePath)
	assert.Equal(t, "/uploads/boat-licenses/abc.pdf", *stored.BoatLicensePath)

	affected, err = repo.UpdateLicensePath(9999, "/nowhere.pdf")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	boat := validBoat(1)
	require.NoError(t, repo.Create(boat))

	affected, err := repo.Delete(boat.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Delete(boat.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
