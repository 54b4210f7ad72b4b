package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mww/league_dashboard/controller/mockcontroller"
	"github.com/mww/league_dashboard/model"
	"github.com/stretchr/testify/mock"
)

func TestLoginHandler(t *testing.T) {
	ctrl := &mockcontroller.MockController{}
	ctrl.On("LoginStart").Return("https://auth.example.com/auth?state=abc", nil)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	resp := serveRequest(ctrl, req)

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://auth.example.com/auth?state=abc" {
		t.Errorf("redirect location not expected: %s", loc)
	}
}

func TestLoginCallbackHandler(t *testing.T) {
	session := &model.Session{
		ID:     testSessionID,
		UserID: testUser.ID,
		Expire: time.Now().Add(7 * 24 * time.Hour),
	}

	ctrl := &mockcontroller.MockController{}
	ctrl.On("Login", mock.Anything, "abc", "code123").Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=abc&code=code123", nil)
	resp := serveRequest(ctrl, req)

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			sid = c
		}
	}
	if sid == nil {
		t.Fatal("no session cookie was set")
	}
	if sid.Value != testSessionID {
		t.Errorf("session cookie value not as expected: %s", sid.Value)
	}
	if !sid.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestLoginCallbackHandler_error(t *testing.T) {
	ctrl := &mockcontroller.MockController{}
	ctrl.On("Login", mock.Anything, "stale", "code123").Return(nil, fmt.Errorf("error exchanging auth code"))

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=stale&code=code123", nil)
	resp := serveRequest(ctrl, req)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := &mockcontroller.MockController{}
	ctrl.On("Logout", mock.Anything, testSessionID).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: testSessionID})
	resp := serveRequest(ctrl, req)

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			sid = c
		}
	}
	if sid == nil {
		t.Fatal("no session cookie was set")
	}
	if sid.Value != "" || sid.Expires.After(time.Now()) {
		t.Errorf("session cookie was not cleared: %v", sid)
	}

	ctrl.AssertExpectations(t)
}

func TestLinkHandler(t *testing.T) {
	ctrl := &mockcontroller.MockController{}
	ctrl.On("LinkStart", testUser.ID, model.PlatformYahoo).Return("https://auth.example.com/auth?state=xyz", nil)

	resp := serveRequest(ctrl, authedRequest(ctrl, http.MethodGet, "/api/connections/link/Yahoo", nil))
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://auth.example.com/auth?state=xyz" {
		t.Errorf("redirect location not expected: %s", loc)
	}
}

func TestLinkCallbackHandler(t *testing.T) {
	conn := &model.Connection{ID: 1, UserID: testUser.ID, Platform: model.PlatformYahoo, Active: true}

	ctrl := &mockcontroller.MockController{}
	ctrl.On("LinkComplete", mock.Anything, "xyz", "code456").Return(conn, nil)

	resp := serveRequest(ctrl, authedRequest(ctrl, http.MethodGet, "/api/connections/callback?state=xyz&code=code456", nil))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}
