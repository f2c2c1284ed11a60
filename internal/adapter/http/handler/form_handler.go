package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/phishguard/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormTemplate is the name of the page template
const FormTemplate = "index.html"

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// FormHandler serves the server-rendered submission form
type FormHandler struct {
	submissionUC usecase.SubmissionUsecase
}

// NewFormHandler creates a new form handler
func NewFormHandler(submissionUC usecase.SubmissionUsecase) *FormHandler {
	return &FormHandler{submissionUC: submissionUC}
}

// Index handles GET /
func (h *FormHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, FormTemplate, h.submissionUC.State())
}

// Submit handles POST /submit.
// A valid submission is held until the classifier settles or the client goes away.
func (h *FormHandler) Submit(c *gin.Context) {
	state, done, err := h.submissionUC.Submit(detachedContext(c), c.PostForm("url"))
	if err == nil {
		AwaitSettled(c.Request.Context(), done, state)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Reset handles POST /reset
func (h *FormHandler) Reset(c *gin.Context) {
	h.submissionUC.Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleDetails handles POST /details/toggle
func (h *FormHandler) ToggleDetails(c *gin.Context) {
	h.submissionUC.ToggleDetails()
	c.Redirect(http.StatusSeeOther, "/")
}

// DismissAlert handles POST /alert/dismiss
func (h *FormHandler) DismissAlert(c *gin.Context) {
	h.submissionUC.DismissAlert()
	c.Redirect(http.StatusSeeOther, "/")
}
