package api

import (
	"net/http"

	"jobtrack/internal/ai"
	reqdto "jobtrack/internal/handler/dto/request"
	resdto "jobtrack/internal/handler/dto/response"
	"jobtrack/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ExtractHandler struct {
	extractor ai.Extractor
}

func NewExtractHandler(extractor ai.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

// @Summary Extract job fields
// @Description Extract structured job fields from a pasted posting text
// @Tags extract
// @Accept json
// @Produce json
// @Param request body reqdto.ExtractJobRequest true "Raw posting text"
// @Success 200 {object} resdto.ExtractJobResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /extract [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req reqdto.ExtractJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	draft, err := h.extractor.ExtractDraft(c.Request.Context(), req.Text)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Extraction failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}
