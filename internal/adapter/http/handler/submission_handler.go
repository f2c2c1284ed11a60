package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/phishguard/internal/usecase"
)

// SubmitInput is the JSON body of POST /api/v1/submissions
type SubmitInput struct {
	URL string `json:"url"`
}

// SubmissionHandler handles the JSON API over the submission form
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionUC usecase.SubmissionUsecase) *SubmissionHandler {
	return &SubmissionHandler{submissionUC: submissionUC}
}

// GetState handles GET /api/v1/state
func (h *SubmissionHandler) GetState(c *gin.Context) {
	respondState(c, http.StatusOK, h.submissionUC.State())
}

// Submit handles POST /api/v1/submissions
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	state, done, err := h.submissionUC.Submit(detachedContext(c), input.URL)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	if !ParseWait(c) {
		respondState(c, http.StatusAccepted, state)
		return
	}

	settled, ok := AwaitSettled(c.Request.Context(), done, state)
	if !ok {
		respondState(c, http.StatusAccepted, settled)
		return
	}
	respondState(c, http.StatusOK, settled)
}

// Reset handles POST /api/v1/reset
func (h *SubmissionHandler) Reset(c *gin.Context) {
	respondState(c, http.StatusOK, h.submissionUC.Reset())
}

// ToggleDetails handles POST /api/v1/details/toggle
func (h *SubmissionHandler) ToggleDetails(c *gin.Context) {
	respondState(c, http.StatusOK, h.submissionUC.ToggleDetails())
}
