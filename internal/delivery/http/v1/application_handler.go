package v1

import (
	"net/http"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required,application_status" example:"reviewed"`
}

// NewApplicationHandler mounts the read routes on r and the apply route on
// write, which carries the stricter rate limit.
func NewApplicationHandler(r, write *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	write.POST("/applications", handler.Apply)

	apps := r.Group("/applications")
	{
		apps.GET("", handler.List)
		apps.DELETE("", handler.ClearAll)
		apps.GET("/:id", handler.Get)
		apps.PATCH("/:id/status", handler.UpdateStatus)
	}
}

// ApplyToJob godoc
// @Summary      Apply a candidate to a job
// @Description  Records the application together with a simulated agent run
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      domain.ApplyInput  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var input domain.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListApplications godoc
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        candidate_id  query     string  false  "Candidate ID"
// @Param        job_id        query     string  false  "Job ID"
// @Param        status        query     string  false  "pending, reviewed, accepted or rejected"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	filter := domain.ApplicationFilter{
		CandidateID: c.Query("candidate_id"),
		JobID:       c.Query("job_id"),
		Status:      c.Query("status"),
	}

	apps, err := h.applicationUC.ListApplications(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications list", apps)
}

// GetApplication godoc
// @Summary      Application with its job and candidate
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	details, err := h.applicationUC.GetApplicationWithDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", details)
}

// UpdateApplicationStatus godoc
// @Summary      Move an application to a new status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string                    true  "Application ID"
// @Param        status  body      applicationStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req applicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", gin.H{"id": c.Param("id"), "status": req.Status})
}

// ClearApplications godoc
// @Summary      Delete every application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [delete]
func (h *ApplicationHandler) ClearAll(c *gin.Context) {
	deleted, err := h.applicationUC.ClearAllApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications cleared", gin.H{"deleted": deleted})
}
