package v1

import (
	"net/http"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// Health godoc
// @Summary      Service health
// @Description  Reports the state of the database and Redis; 503 when any is down
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		response.ErrorWithData(c, http.StatusServiceUnavailable, "System degraded", status, nil)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
