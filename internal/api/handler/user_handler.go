package handler

import (
	"net/http"

	"github.com/chandraguptgosavi/codemore-backend/internal/app/service"
	"github.com/chandraguptgosavi/codemore-backend/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	authService       *service.AuthService
	submissionService *service.SubmissionService
}

func NewUserHandler(authService *service.AuthService, submissionService *service.SubmissionService) *UserHandler {
	return &UserHandler{authService: authService, submissionService: submissionService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/signin", h.signin)
	r.Get("/{username}/submissions", h.submissions)
}

func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	resp, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) signin(w http.ResponseWriter, r *http.Request) {
	var req service.SigninRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	resp, err := h.authService.Signin(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) submissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissionService.ListUserSubmissions(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, subs)
}
