package api

import (
	"net/http"

	resdto "jobtrack/internal/handler/dto/response"
	"jobtrack/internal/handler/httperr"
	"jobtrack/internal/handler/middleware"
	"jobtrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MigrationHandler struct {
	migrator *usecase.Migrator
}

func NewMigrationHandler(migrator *usecase.Migrator) *MigrationHandler {
	return &MigrationHandler{migrator: migrator}
}

// @Summary Migration status
// @Description Report whether device-local records exist to migrate
// @Tags migration
// @Produce json
// @Success 200 {object} resdto.MigrationStatusResponse
// @Router /migration/status [get]
func (h *MigrationHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MigrationStatusResponse{
		HasLocalData: h.migrator.HasLocalData(),
		LocalRecords: h.migrator.CountLocalData(),
	})
}

// @Summary Run migration
// @Description Copy all device-local records to the signed-in owner's remote store
// @Tags migration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MigrationResultResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /migration/run [post]
func (h *MigrationHandler) Run(c *gin.Context) {
	result, err := h.migrator.Migrate(c.Request.Context(), middleware.GetOwnerID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Migration failed to start", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMigrationResult(result))
}

// @Summary Clear local data
// @Description Drop all device-local records, typically after a successful migration
// @Tags migration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MigrationClearResponse
// @Failure 401 {object} map[string]string
// @Router /migration/clear [post]
func (h *MigrationHandler) Clear(c *gin.Context) {
	h.migrator.ClearLocalData()
	c.JSON(http.StatusOK, resdto.MigrationClearResponse{Cleared: true})
}
