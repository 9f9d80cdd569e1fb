package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateConferenceRequest is the request body for POST /conferences. Only name is accepted.
type CreateConferenceRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// ConferenceSuccessResponse is the success envelope for POST /conferences.
type ConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateConference godoc
// @Summary Create a conference
// @Description Creates a conference with the authenticated caller as organizer. Only the organizer may later add sessions to it.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conference body CreateConferenceRequest true "Conference name"
// @Success 201 {object} controllers.ConferenceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	conf, err := c.Service.CreateConference(r.Context(), userID, req.Name)
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}
