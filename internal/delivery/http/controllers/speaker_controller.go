package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateSpeakerRequest is the request body for POST /speakers.
type CreateSpeakerRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateSpeakerRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// SpeakerSuccessResponse is the success envelope for POST /speakers.
type SpeakerSuccessResponse struct {
	Data  *domain.SpeakerForm `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SpeakerListSuccessResponse is the success envelope for GET /speakers.
type SpeakerListSuccessResponse struct {
	Data  []*domain.SpeakerForm `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Register a speaker
// @Description Registers a speaker by display name. Names are not unique; duplicates are allowed and resolved first-match-wins by name lookups.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speaker body CreateSpeakerRequest true "Speaker name"
// @Success 201 {object} controllers.SpeakerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	speaker, err := c.Service.CreateSpeaker(r.Context(), userID, req.Name)
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, domain.NewSpeakerForm(speaker))
}

// QuerySpeakers godoc
// @Summary List speakers
// @Description All speakers when no name is given, otherwise the speakers whose display name matches exactly.
// @Tags speakers
// @Produce json
// @Param name query string false "Exact display name"
// @Success 200 {object} controllers.SpeakerListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) QuerySpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.QuerySpeakers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSpeakerForms(speakers))
}
