package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name          string `json:"name"`
	Highlights    string `json:"highlights"`
	Speaker       string `json:"speaker"`
	Duration      int    `json:"duration"`
	TypeOfSession string `json:"type_of_session"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
}

// Validate implements Validator. Field formats are checked by the service;
// only structural rules live here.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Duration < 0 {
		errs = append(errs, "duration must not be negative")
	}
	return errs
}

// SessionSuccessResponse is the success envelope for endpoints returning a single session form.
type SessionSuccessResponse struct {
	Data  *domain.SessionForm `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SessionListSuccessResponse is the success envelope for endpoints returning session form lists.
type SessionListSuccessResponse struct {
	Data  []*domain.SessionForm `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// FeaturedSpeakerSuccessResponse is the success envelope for GET /sessions/featured-speaker.
type FeaturedSpeakerSuccessResponse struct {
	Data  *domain.FeaturedSpeakerNotice `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Creates a session owned by the conference. Only the conference organizer may add sessions. An empty speaker falls back to the sentinel "Undefined" speaker; an unknown speaker name is rejected. Adding a second session for the same speaker publishes the featured speaker notice.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference key"
// @Param session body CreateSessionRequest true "Session fields; date is YYYY-MM-DD, start_time is HH:MM"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session form"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conferenceID := r.PathValue("conferenceID")
	userID, _ := middleware.UserIDFromContext(r.Context())

	draft := &domain.SessionDraft{
		Name:            req.Name,
		Highlights:      req.Highlights,
		SpeakerName:     req.Speaker,
		DurationMinutes: req.Duration,
		SessionType:     req.TypeOfSession,
		Date:            req.Date,
		StartTime:       req.StartTime,
	}
	sess, err := c.Service.CreateSession(r.Context(), userID, conferenceID, draft)
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, domain.NewSessionForm(sess))
}

// SessionsByConference godoc
// @Summary List all sessions of a conference
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference key"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) SessionsByConference(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.SessionsByConference(r.Context(), r.PathValue("conferenceID"))
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSessionForms(sessions))
}

// SessionsByType godoc
// @Summary List a conference's sessions of one type
// @Description Session type must be one of NOT_SPECIFIED, WORKSHOP, LECTURE; anything else is rejected before the store is queried.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference key"
// @Param sessionType path string true "Session type enumerant"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/types/{sessionType} [get]
func (c *SessionController) SessionsByType(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.SessionsByType(r.Context(), r.PathValue("conferenceID"), r.PathValue("sessionType"))
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSessionForms(sessions))
}

// SessionsBySpeaker godoc
// @Summary List sessions by speaker across all conferences
// @Description The speaker is resolved by display name first; when the name is absent or unknown and a key is given, the key is used.
// @Tags sessions
// @Produce json
// @Param name query string false "Speaker display name"
// @Param key query string false "Speaker key"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/by-speaker [get]
func (c *SessionController) SessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessions, err := c.Service.SessionsBySpeaker(r.Context(), q.Get("name"), q.Get("key"))
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSessionForms(sessions))
}

// NonWorkshopEveningSessions godoc
// @Summary List non-workshop sessions starting at 19:00 or later
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/non-workshop-evening [get]
func (c *SessionController) NonWorkshopEveningSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.NonWorkshopEveningSessions(r.Context())
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSessionForms(sessions))
}

// FeaturedSpeaker godoc
// @Summary Get the current featured speaker notice
// @Description Reads the ephemeral notice published by session creation. 404 when no notice is cached.
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.FeaturedSpeakerSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/featured-speaker [get]
func (c *SessionController) FeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	notice, err := c.Service.FeaturedSpeaker(r.Context())
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, notice)
}
