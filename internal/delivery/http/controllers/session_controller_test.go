package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

type mockSessionService struct {
	session  *domain.Session
	sessions []*domain.Session
	notice   *domain.FeaturedSpeakerNotice
	err      error

	gotUserID       string
	gotConferenceID string
	gotDraft        *domain.SessionDraft
	gotSessionType  string
}

func (m *mockSessionService) CreateSession(ctx context.Context, userID, conferenceID string, draft *domain.SessionDraft) (*domain.Session, error) {
	m.gotUserID = userID
	m.gotConferenceID = conferenceID
	m.gotDraft = draft
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockSessionService) SessionsBySpeaker(ctx context.Context, speakerName, speakerKey string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) SessionsByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	m.gotConferenceID = conferenceID
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) SessionsByType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	m.gotConferenceID = conferenceID
	m.gotSessionType = sessionType
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) NonWorkshopEveningSessions(ctx context.Context) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) FeaturedSpeaker(ctx context.Context) (*domain.FeaturedSpeakerNotice, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.notice, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSessionController_CreateSession_Success(t *testing.T) {
	svc := &mockSessionService{
		session: &domain.Session{
			ID:          "sess-1",
			SpeakerName: "Alice",
			Name:        "Keynote",
			SessionType: domain.SessionTypeLecture,
		},
	}
	ctrl := NewSessionController(discardLogger(), svc)

	body := `{"name":"Keynote","speaker":"Alice","duration":45,"type_of_session":"LECTURE"}`
	req := httptest.NewRequest(http.MethodPost, "/conferences/conf-1/sessions", strings.NewReader(body))
	req.SetPathValue("conferenceID", "conf-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	ctrl.CreateSession(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	if svc.gotUserID != "user-1" || svc.gotConferenceID != "conf-1" {
		t.Fatalf("service got userID=%q conferenceID=%q", svc.gotUserID, svc.gotConferenceID)
	}
	if svc.gotDraft.SpeakerName != "Alice" || svc.gotDraft.DurationMinutes != 45 {
		t.Fatalf("unexpected draft: %+v", svc.gotDraft)
	}

	var resp SessionSuccessResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error in envelope: %+v", resp.Error)
	}
	if resp.Data.WebsafeKey != "sess-1" || resp.Data.Speaker != "Alice" {
		t.Fatalf("unexpected form: %+v", resp.Data)
	}
}

func TestSessionController_CreateSession_Unauthorized(t *testing.T) {
	svc := &mockSessionService{err: domain.ErrUnauthorized}
	ctrl := NewSessionController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/conferences/conf-1/sessions", strings.NewReader(`{"name":"Keynote"}`))
	req.SetPathValue("conferenceID", "conf-1")
	w := httptest.NewRecorder()

	ctrl.CreateSession(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeUnauthorized {
		t.Fatalf("expected error code %q, got %+v", helpers.ErrCodeUnauthorized, resp.Error)
	}
}

func TestSessionController_CreateSession_Forbidden(t *testing.T) {
	svc := &mockSessionService{err: domain.ErrForbidden}
	ctrl := NewSessionController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/conferences/conf-1/sessions", strings.NewReader(`{"name":"Keynote"}`))
	req.SetPathValue("conferenceID", "conf-1")
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-2"))
	w := httptest.NewRecorder()

	ctrl.CreateSession(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestSessionController_CreateSession_BadBody(t *testing.T) {
	svc := &mockSessionService{}
	ctrl := NewSessionController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/conferences/conf-1/sessions", strings.NewReader(`{"name":`))
	req.SetPathValue("conferenceID", "conf-1")
	w := httptest.NewRecorder()

	ctrl.CreateSession(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.gotDraft != nil {
		t.Fatal("service should not be reached on a malformed body")
	}
}

func TestSessionController_SessionsByType(t *testing.T) {
	svc := &mockSessionService{
		sessions: []*domain.Session{
			{ID: "sess-1", Name: "Hands-on Go", SpeakerName: "Alice", SessionType: domain.SessionTypeWorkshop},
		},
	}
	ctrl := NewSessionController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/conferences/conf-1/sessions/types/WORKSHOP", nil)
	req.SetPathValue("conferenceID", "conf-1")
	req.SetPathValue("sessionType", "WORKSHOP")
	w := httptest.NewRecorder()

	ctrl.SessionsByType(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotSessionType != "WORKSHOP" {
		t.Fatalf("service got sessionType=%q", svc.gotSessionType)
	}
	var resp SessionListSuccessResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Hands-on Go" {
		t.Fatalf("unexpected forms: %+v", resp.Data)
	}
}

func TestSessionController_SessionsByType_Invalid(t *testing.T) {
	svc := &mockSessionService{err: domain.ErrInvalidInput}
	ctrl := NewSessionController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/conferences/conf-1/sessions/types/KEYNOTE", nil)
	req.SetPathValue("conferenceID", "conf-1")
	req.SetPathValue("sessionType", "KEYNOTE")
	w := httptest.NewRecorder()

	ctrl.SessionsByType(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionController_FeaturedSpeaker(t *testing.T) {
	t.Run("notice present", func(t *testing.T) {
		svc := &mockSessionService{
			notice: &domain.FeaturedSpeakerNotice{
				SpeakerName:  "Alice",
				SessionNames: []string{"Keynote", "Panel"},
			},
		}
		ctrl := NewSessionController(discardLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/sessions/featured-speaker", nil)
		w := httptest.NewRecorder()

		ctrl.FeaturedSpeaker(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var resp FeaturedSpeakerSuccessResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.SpeakerName != "Alice" || len(resp.Data.SessionNames) != 2 {
			t.Fatalf("unexpected notice: %+v", resp.Data)
		}
	})

	t.Run("no notice", func(t *testing.T) {
		svc := &mockSessionService{err: domain.ErrNotFound}
		ctrl := NewSessionController(discardLogger(), svc)

		req := httptest.NewRequest(http.MethodGet, "/sessions/featured-speaker", nil)
		w := httptest.NewRecorder()

		ctrl.FeaturedSpeaker(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}
