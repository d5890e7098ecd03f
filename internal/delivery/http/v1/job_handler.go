package v1

import (
	"net/http"
	"strconv"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC      domain.JobUsecase
	researchUC domain.ResearchUsecase
}

type jobStatusRequest struct {
	Status string `json:"status" binding:"required,job_status" example:"closed"`
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase, researchUC domain.ResearchUsecase) {
	handler := &JobHandler{
		jobUC:      jobUC,
		researchUC: researchUC,
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.POST("/seed", handler.Seed)
		jobs.POST("/reseed", handler.Reseed)
		jobs.GET("/:id", handler.Get)
		jobs.PATCH("/:id/status", handler.UpdateStatus)
		jobs.GET("/:id/research", handler.Research)
	}

	r.GET("/research/history", handler.ResearchHistory)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  List jobs in posting order, optionally filtered by status
// @Tags         jobs
// @Produce      json
// @Param        status  query     string  false  "active or closed"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs list", jobs)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.Job  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), &job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// UpdateJobStatus godoc
// @Summary      Open or close a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path      string            true  "Job ID"
// @Param        status  body      jobStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req jobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.jobUC.UpdateJobStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", gin.H{"id": c.Param("id"), "status": req.Status})
}

// SeedJobs godoc
// @Summary      Insert the sample jobs if none exist
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/seed [post]
func (h *JobHandler) Seed(c *gin.Context) {
	ids, err := h.jobUC.SeedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs seeded", gin.H{"ids": ids})
}

// ReseedJobs godoc
// @Summary      Delete every job and insert the sample jobs
// @Description  Applications to the deleted jobs are removed as well
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/reseed [post]
func (h *JobHandler) Reseed(c *gin.Context) {
	ids, err := h.jobUC.ClearAndReseedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs reseeded", gin.H{"ids": ids})
}

// DeepResearch godoc
// @Summary      Company research for a job
// @Description  Always 200; unknown jobs get a placeholder text
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /jobs/{id}/research [get]
func (h *JobHandler) Research(c *gin.Context) {
	research, err := h.researchUC.GetDeepResearch(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company research", research)
}

// ResearchHistory godoc
// @Summary      Past company research lookups
// @Tags         jobs
// @Produce      json
// @Param        candidate_id  query     string  false  "Candidate ID"
// @Param        limit         query     int     false  "Maximum entries, default 10"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Router       /research/history [get]
func (h *JobHandler) ResearchHistory(c *gin.Context) {
	filter := domain.ResearchHistoryFilter{CandidateID: c.Query("candidate_id")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Limit must be a number"))
			return
		}
		filter.Limit = limit
	}

	history, err := h.researchUC.GetResearchHistory(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Research history", history)
}
