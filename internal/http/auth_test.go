package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/database/boats"
	"github.com/selin-bardakci/waveriders/internal/database/users"
	"github.com/selin-bardakci/waveriders/internal/entities"
	"github.com/selin-bardakci/waveriders/internal/storage"
)

func setupAuthRouter(t *testing.T, db *database.Database) *gin.Engine {
	t.Helper()

	userRepo := users.NewRepository(db.DB)
	boatRepo := boats.NewRepository(db.DB)
	service := auth.NewService(userRepo, testTokenManager(), config.Auth{BcryptCost: 4})
	store, err := storage.NewStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	controller := NewAuthController(service, userRepo, boatRepo, store)
	router := gin.New()
	router.POST("/api/auth/login", controller.Login)
	router.POST("/api/auth/signup", controller.Signup)
	router.POST("/api/auth/registerBusiness", controller.RegisterBusiness)
	router.POST("/api/auth/registerBoat", controller.RegisterBoat)
	router.GET("/api/auth/businessID", controller.BusinessID)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_Signup(t *testing.T) {
	t.Run("creates customer account", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postJSON(router, "/api/auth/signup", gin.H{
			"first_name":    "Selin",
			"last_name":     "Deniz",
			"email":         "selin@example.com",
			"password":      "secret123",
			"phone_number":  "+905551112233",
			"date_of_birth": "1999-04-12",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]uint
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp["user_id"])
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postJSON(router, "/api/auth/signup", gin.H{
			"email":    "selin@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		body := gin.H{
			"first_name":    "Selin",
			"last_name":     "Deniz",
			"email":         "dup@example.com",
			"password":      "secret123",
			"phone_number":  "+905551112233",
			"date_of_birth": "1999-04-12",
		}
		require.Equal(t, http.StatusCreated, postJSON(router, "/api/auth/signup", body).Code)

		w := postJSON(router, "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthController_Login(t *testing.T) {
	signup := func(t *testing.T, router *gin.Engine) {
		t.Helper()
		w := postJSON(router, "/api/auth/signup", gin.H{
			"first_name":    "Selin",
			"last_name":     "Deniz",
			"email":         "login@example.com",
			"password":      "secret123",
			"phone_number":  "+905551112233",
			"date_of_birth": "1999-04-12",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)
		signup(t, router)

		w := postJSON(router, "/api/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				ID          uint   `json:"id"`
				Email       string `json:"email"`
				AccountType string `json:"account_type"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "login@example.com", resp.User.Email)
		assert.Equal(t, "customer", resp.User.AccountType)
	})

	t.Run("same response for wrong password and unknown email", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)
		signup(t, router)

		wrongPassword := postJSON(router, "/api/auth/login", gin.H{
			"email":    "login@example.com",
			"password": "nope",
		})
		unknownEmail := postJSON(router, "/api/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})
}

func TestAuthController_RegisterBusiness(t *testing.T) {
	t.Run("accepts business name without personal names", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postJSON(router, "/api/auth/registerBusiness", gin.H{
			"business_name": "Bosphorus Boats",
			"email":         "owner@example.com",
			"password":      "secret123",
			"phone_number":  "+905551112233",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]uint
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp["user_id"])
		assert.NotZero(t, resp["business_id"])

		// The business is resolvable by its owner's user id.
		lookup := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/auth/businessID?user_id="+jsonNumber(resp["user_id"]), nil)
		router.ServeHTTP(lookup, req)
		assert.Equal(t, http.StatusOK, lookup.Code)
	})

	t.Run("rejects registration without any name", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postJSON(router, "/api/auth/registerBusiness", gin.H{
			"email":        "owner@example.com",
			"password":     "secret123",
			"phone_number": "+905551112233",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func jsonNumber(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func postForm(t *testing.T, router *gin.Engine, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_RegisterBoat(t *testing.T) {
	boatForm := func(overrides map[string]string) map[string]string {
		fields := map[string]string{
			"business_id":    "1",
			"boat_name":      "Sea Breeze",
			"description":    "Day cruiser",
			"trip_types":     "2",
			"price_per_hour": "250",
			"capacity":       "8",
			"boat_type":      "motorboat",
			"location":       "Bodrum",
		}
		for key, value := range overrides {
			fields[key] = value
		}
		return fields
	}

	t.Run("creates boat from multipart form", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postForm(t, router, "/api/auth/registerBoat", boatForm(nil))

		require.Equal(t, http.StatusCreated, w.Code)

		var boat entities.Boat
		require.NoError(t, db.DB.First(&boat).Error)
		assert.Equal(t, "Sea Breeze", boat.BoatName)
		assert.Equal(t, "day", boat.TripTypes)
		assert.Equal(t, 250.0, boat.PricePerHour)
		assert.Equal(t, 8, boat.Capacity)
	})

	t.Run("names the malformed numeric field", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		for field, value := range map[string]string{
			"price_per_hour": "12x",
			"capacity":       "eight",
			"price_per_day":  "1k8",
		} {
			w := postForm(t, router, "/api/auth/registerBoat", boatForm(map[string]string{field: value}))

			assert.Equal(t, http.StatusBadRequest, w.Code, field)
			assert.Contains(t, w.Body.String(), "invalid "+field)
		}

		var count int64
		require.NoError(t, db.DB.Model(&entities.Boat{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("missing required field is a validation error", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "auth")
		defer cleanup()
		router := setupAuthRouter(t, db)

		w := postForm(t, router, "/api/auth/registerBoat", boatForm(map[string]string{"price_per_hour": ""}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
