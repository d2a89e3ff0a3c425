package handler

import (
	"net/http"

	"github.com/chandraguptgosavi/codemore-backend/internal/api/middleware"
	"github.com/chandraguptgosavi/codemore-backend/internal/app/service"
	"github.com/chandraguptgosavi/codemore-backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(ss *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: ss}
}

// RegisterRoutes mounts the judge routes under the problems router. All of them require auth.
func (h *SubmissionHandler) RegisterRoutes(r chi.Router, authn func(http.Handler) http.Handler) {
	r.Group(func(authed chi.Router) {
		authed.Use(authn)
		authed.Post("/run", h.runCode)
		authed.Put("/{problemID}/submit", h.submit)
	})
}

func (h *SubmissionHandler) runCode(w http.ResponseWriter, r *http.Request) {
	var req service.RunCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	verdict, err := h.submissionService.RunCode(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, verdict)
}

func (h *SubmissionHandler) submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Not Authorized")
		return
	}

	var req service.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	verdict, err := h.submissionService.Submit(r.Context(), userID, chi.URLParam(r, "problemID"), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, verdict)
}
