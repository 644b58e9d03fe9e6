package api

import (
	"net/http"

	reqdto "jobtrack/internal/handler/dto/request"
	resdto "jobtrack/internal/handler/dto/response"
	"jobtrack/internal/handler/middleware"
	"jobtrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobs *usecase.JobService
}

func NewJobHandler(jobs *usecase.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// @Summary Create job
// @Description Save a new tracked job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobRequest true "Job payload"
// @Success 201 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid deadline format, expected YYYY-MM-DD",
		})
		return
	}

	posting, err := h.jobs.Save(c.Request.Context(), middleware.GetOwnerID(c), draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save job",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPosting(posting))
}

// @Summary List jobs
// @Description List all tracked jobs, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.JobResponse
// @Failure 500 {object} map[string]string
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	postings, err := h.jobs.GetAll(c.Request.Context(), middleware.GetOwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list jobs",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPostings(postings))
}

// @Summary Get job
// @Description Fetch one tracked job by id
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	posting, err := h.jobs.Get(c.Request.Context(), middleware.GetOwnerID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch job",
		})
		return
	}
	if posting == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Job not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPosting(posting))
}

// @Summary Update job
// @Description Partially update a tracked job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req reqdto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid deadline format, expected YYYY-MM-DD",
		})
		return
	}

	posting, err := h.jobs.Update(c.Request.Context(), middleware.GetOwnerID(c), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update job",
		})
		return
	}
	if posting == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Job not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPosting(posting))
}

// @Summary Delete job
// @Description Remove a tracked job by id
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.DeleteJobResponse
// @Failure 500 {object} map[string]string
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	deleted, err := h.jobs.Delete(c.Request.Context(), middleware.GetOwnerID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete job",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteJobResponse{Deleted: deleted})
}
