// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path          string
		authenticated bool
		want          Decision
	}{
		{"/dashboard", false, RedirectToLogin},
		{"/dashboard", true, Allow},
		{"/dashboard/", false, RedirectToLogin},
		{"/data-entry", false, RedirectToLogin},
		{"/settings/profile", false, RedirectToLogin},
		{"/api/transactions", false, RedirectToLogin},
		{"/api/transactions/12", false, RedirectToLogin},
		{"/api/transactions/12", true, Allow},
		{"/api/dashboard/stats", false, RedirectToLogin},
		{"/api/user", false, RedirectToLogin},
		{"/api/user/password", true, Allow},

		{"/login", false, Allow},
		{"/login", true, RedirectToHome},
		{"/register", true, RedirectToHome},
		{"/register/", true, RedirectToHome},

		{"/", false, Allow},
		{"/", true, Allow},
		{"/api/version", false, Allow},
		{"/api/auth/login", false, Allow},
		{"/api/auth/login", true, Allow},
		{"/dashboards", false, Allow},
		{"/api/users", false, Allow},
		{"/about", true, Allow},
	}

	for _, tt := range tests {
		name := tt.path
		if tt.authenticated {
			name += " (session)"
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path, tt.authenticated))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect_to_login", RedirectToLogin.String())
	assert.Equal(t, "redirect_to_home", RedirectToHome.String())
	assert.Equal(t, "unknown", Decision(42).String())
}

// ─────────────────────────────────────────────
// gate middleware
// ─────────────────────────────────────────────

func runGate(t *testing.T, path string, decorate func(r *http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	h := newTestHandler(t, &service.Services{})
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	h.gate(next).ServeHTTP(rec, req)
	return rec, nextCalled
}

func withCookie(token string) func(r *http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	}
}

func withBearer(token string) func(r *http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestGate_APIWithoutSessionAnswers401(t *testing.T) {
	rec, nextCalled := runGate(t, "/api/transactions", nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
}

func TestGate_PageWithoutSessionRedirectsToLogin(t *testing.T) {
	rec, nextCalled := runGate(t, "/dashboard", nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestGate_ExpiredSessionIsNoSession(t *testing.T) {
	rec, nextCalled := runGate(t, "/settings", withCookie("expired-token"))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestGate_LoginWithSessionRedirectsHome(t *testing.T) {
	rec, nextCalled := runGate(t, "/login", withCookie(validToken))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, HomePath, rec.Header().Get("Location"))
}

func TestGate_Allows(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		decorate func(r *http.Request)
	}{
		{"protected page with cookie", "/dashboard", withCookie(validToken)},
		{"protected api with bearer", "/api/transactions", withBearer(validToken)},
		{"login without session", "/login", nil},
		{"public api", "/api/version", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, nextCalled := runGate(t, tt.path, tt.decorate)

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
