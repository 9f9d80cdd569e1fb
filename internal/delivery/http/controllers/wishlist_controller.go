package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// AddToWishlistRequest is the request body for POST /wishlist/sessions.
type AddToWishlistRequest struct {
	SessionKey string `json:"session_key"`
}

// Validate implements Validator. Key syntax is checked by the service.
func (a AddToWishlistRequest) Validate() []string {
	var errs []string
	if a.SessionKey == "" {
		errs = append(errs, "session_key is required")
	}
	return errs
}

type WishlistController struct {
	Logger  *slog.Logger
	Service domain.WishlistService
}

func NewWishlistController(logger *slog.Logger, svc domain.WishlistService) *WishlistController {
	return &WishlistController{
		Logger:  logger,
		Service: svc,
	}
}

// AddToWishlist godoc
// @Summary Add a session to the caller's wishlist
// @Description Appends the session key to the caller's favorites. Duplicates are allowed and the key is not checked for existence before the append; the response resolves the session and reports 404 for a dangling key. The caller's profile must already exist.
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddToWishlistRequest true "Session key"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the referenced session form"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/sessions [post]
func (c *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req AddToWishlistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	sess, err := c.Service.AddToWishlist(r.Context(), userID, req.SessionKey)
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, domain.NewSessionForm(sess))
}

// ListWishlist godoc
// @Summary List the caller's wishlist sessions
// @Description Returns the favorited sessions in insertion order. Sessions that no longer exist are omitted.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/sessions [get]
func (c *WishlistController) ListWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	sessions, err := c.Service.ListWishlist(r.Context(), userID)
	if err != nil {
		helpers.RespondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.NewSessionForms(sessions))
}
