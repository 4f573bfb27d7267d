package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selin-bardakci/waveriders/internal/database"
)

// SweepStatus reports whether the rental status sweep is active.
type SweepStatus interface {
	IsRunning() bool
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      *database.Database
	sweep   SweepStatus
	version string
}

func NewHealthController(db *database.Database, sweep SweepStatus, version string) *HealthController {
	return &HealthController{
		db:      db,
		sweep:   sweep,
		version: version,
	}
}

// Status reports overall service health. Only the database check can
// degrade the status; the sweep entry is informational since the
// scheduler is optional.
func (h *HealthController) Status(c *gin.Context) {
	checks := map[string]string{
		"database":     h.checkDatabase(),
		"rental_sweep": h.checkSweep(),
	}

	status := "healthy"
	statusCode := http.StatusOK
	if checks["database"] != "ok" {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	})
}

func (h *HealthController) checkDatabase() string {
	if h.db == nil {
		return "not configured"
	}
	sqlDB, err := h.db.DB.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	if err := sqlDB.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func (h *HealthController) checkSweep() string {
	if h.sweep == nil {
		return "not configured"
	}
	if h.sweep.IsRunning() {
		return "running"
	}
	return "idle"
}
