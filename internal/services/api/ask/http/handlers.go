// Package http provides http transport for questions
package http

import (
	stdhttp "net/http"

	"legallens/internal/modkit/httpkit"
	"legallens/internal/services/api/ask/domain"
)

// Register mounts the ask handler at the router root
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/", h.ask)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /ask Ask ask
// @Summary Answer a question about a legal procedure
// @Tags Ask
// @Accept json
// @Produce json
// @Param payload body domain.AskInput true "Question"
// @Success 200 {object} domain.AnswerView "ok"
// @Failure 400 {object} httpkit.Envelope "invalid body"
// @Failure 503 {object} httpkit.Envelope "translation unavailable"
// @Router /ask [post]
func (h *handlers) ask(r *stdhttp.Request, in domain.AskInput) (any, error) {
	return h.svc.Ask(r.Context(), in)
}
