package http

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

const testJWTSecret = "handler-test-secret"

func setupTestDB(t *testing.T, name string) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_" + name + "_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   dbPath,
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(testJWTSecret, time.Hour)
}

// bearerToken mints a token for the given user the way the login
// endpoint would.
func bearerToken(t *testing.T, user *entities.User) string {
	t.Helper()
	token, err := testTokenManager().Sign(user)
	require.NoError(t, err)
	return "Bearer " + token
}
