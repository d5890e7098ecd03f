package v1

import (
	"net/http"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC  domain.CandidateUsecase
	experienceUC domain.JobExperienceUsecase
	questionUC   domain.QuestionUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, experienceUC domain.JobExperienceUsecase, questionUC domain.QuestionUsecase) {
	handler := &CandidateHandler{
		candidateUC:  candidateUC,
		experienceUC: experienceUC,
		questionUC:   questionUC,
	}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.PUT("", handler.Upsert)
		candidates.GET("/by-email", handler.GetByEmail)
		candidates.GET("/:id", handler.Get)
		candidates.PATCH("/:id", handler.Update)
		candidates.GET("/:id/profile", handler.GetProfile)

		candidates.GET("/:id/experiences", handler.ListExperiences)
		candidates.POST("/:id/experiences", handler.CreateExperience)
		candidates.POST("/:id/experiences/bulk", handler.CreateBulkExperiences)
		candidates.PUT("/:id/experiences", handler.ReplaceExperiences)

		candidates.GET("/:id/questions", handler.ListQuestions)
		candidates.POST("/:id/questions", handler.CreateQuestion)
		candidates.POST("/:id/questions/bulk", handler.CreateBulkQuestions)
		candidates.PUT("/:id/questions", handler.ReplaceQuestions)
	}
}

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Create a candidate; fails with 409 if the email is taken
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// UpsertCandidate godoc
// @Summary      Create or overwrite a candidate by email
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate JSON"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /candidates [put]
func (h *CandidateHandler) Upsert(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(bindError(err))
		return
	}

	candidate, err := h.candidateUC.UpsertCandidate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate saved", candidate)
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

// GetCandidateByEmail godoc
// @Summary      Find a candidate by email
// @Tags         candidates
// @Produce      json
// @Param        email  query     string  true  "Email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/by-email [get]
func (h *CandidateHandler) GetByEmail(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidateByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

// UpdateCandidate godoc
// @Summary      Partially update a candidate
// @Description  Only supplied fields change. Unknown ids are accepted and ignored.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "Candidate ID"
// @Param        patch  body      domain.CandidatePatch  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.candidateUC.UpdateCandidate(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", nil)
}

// GetProfile godoc
// @Summary      Candidate with work experience and questions
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/profile [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// ListExperiences godoc
// @Summary      List work experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/{id}/experiences [get]
func (h *CandidateHandler) ListExperiences(c *gin.Context) {
	exps, err := h.experienceUC.ListExperiences(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience", exps)
}

// CreateExperience godoc
// @Summary      Add one work experience entry
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id          path      string               true  "Candidate ID"
// @Param        experience  body      domain.JobExperience  true  "Experience JSON"
// @Success      201         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /candidates/{id}/experiences [post]
func (h *CandidateHandler) CreateExperience(c *gin.Context) {
	var exp domain.JobExperience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(bindError(err))
		return
	}

	created, err := h.experienceUC.CreateExperience(c.Request.Context(), c.Param("id"), exp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Work experience added", created)
}

// CreateBulkExperiences godoc
// @Summary      Add several work experience entries
// @Description  Entries are inserted one at a time; on failure the ids already inserted are returned in the error details.
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id           path      string                 true  "Candidate ID"
// @Param        experiences  body      []domain.JobExperience  true  "Experience list"
// @Success      201          {object}  response.Response
// @Router       /candidates/{id}/experiences/bulk [post]
func (h *CandidateHandler) CreateBulkExperiences(c *gin.Context) {
	var exps []domain.JobExperience
	if err := c.ShouldBindJSON(&exps); err != nil {
		c.Error(bindError(err))
		return
	}

	ids, err := h.experienceUC.CreateBulkExperiences(c.Request.Context(), c.Param("id"), exps)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Work experience added", gin.H{"ids": ids})
}

// ReplaceExperiences godoc
// @Summary      Replace all work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id           path      string                 true  "Candidate ID"
// @Param        experiences  body      []domain.JobExperience  true  "Experience list"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /candidates/{id}/experiences [put]
func (h *CandidateHandler) ReplaceExperiences(c *gin.Context) {
	var exps []domain.JobExperience
	if err := c.ShouldBindJSON(&exps); err != nil {
		c.Error(bindError(err))
		return
	}

	ids, err := h.experienceUC.ReplaceExperiences(c.Request.Context(), c.Param("id"), exps)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience replaced", gin.H{"ids": ids})
}

// ListQuestions godoc
// @Summary      List screening questions
// @Tags         questions
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/{id}/questions [get]
func (h *CandidateHandler) ListQuestions(c *gin.Context) {
	qs, err := h.questionUC.ListQuestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Questions", qs)
}

// CreateQuestion godoc
// @Summary      Add one screening question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Candidate ID"
// @Param        question  body      domain.Question  true  "Question JSON"
// @Success      201       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /candidates/{id}/questions [post]
func (h *CandidateHandler) CreateQuestion(c *gin.Context) {
	var q domain.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		c.Error(bindError(err))
		return
	}

	created, err := h.questionUC.CreateQuestion(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Question added", created)
}

// CreateBulkQuestions godoc
// @Summary      Add several screening questions
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id         path      string             true  "Candidate ID"
// @Param        questions  body      []domain.Question  true  "Question list"
// @Success      201        {object}  response.Response
// @Router       /candidates/{id}/questions/bulk [post]
func (h *CandidateHandler) CreateBulkQuestions(c *gin.Context) {
	var qs []domain.Question
	if err := c.ShouldBindJSON(&qs); err != nil {
		c.Error(bindError(err))
		return
	}

	ids, err := h.questionUC.CreateBulkQuestions(c.Request.Context(), c.Param("id"), qs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Questions added", gin.H{"ids": ids})
}

// ReplaceQuestions godoc
// @Summary      Replace all screening questions
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id         path      string             true  "Candidate ID"
// @Param        questions  body      []domain.Question  true  "Question list"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /candidates/{id}/questions [put]
func (h *CandidateHandler) ReplaceQuestions(c *gin.Context) {
	var qs []domain.Question
	if err := c.ShouldBindJSON(&qs); err != nil {
		c.Error(bindError(err))
		return
	}

	ids, err := h.questionUC.ReplaceQuestions(c.Request.Context(), c.Param("id"), qs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Questions replaced", gin.H{"ids": ids})
}
