package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"classhub/internal/session"
)

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	sessions := session.NewManager("test-secret")

	called := false
	guarded := RequireAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest("GET", "/profile", nil))

	if called {
		t.Error("guarded handler ran without a session")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	sessions := session.NewManager("test-secret")

	loginRec := httptest.NewRecorder()
	if err := sessions.Login(loginRec, httptest.NewRequest("POST", "/login", nil), 3, false); err != nil {
		t.Fatalf("Login: %v", err)
	}

	called := false
	guarded := RequireAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/profile", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if !called {
		t.Fatal("guarded handler did not run for an authenticated request")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuthAfterLogout(t *testing.T) {
	sessions := session.NewManager("test-secret")

	loginRec := httptest.NewRecorder()
	if err := sessions.Login(loginRec, httptest.NewRequest("POST", "/login", nil), 3, false); err != nil {
		t.Fatalf("Login: %v", err)
	}

	logoutReq := httptest.NewRequest("GET", "/logout", nil)
	for _, c := range loginRec.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	logoutRec := httptest.NewRecorder()
	if err := sessions.Logout(logoutRec, logoutReq); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	// A browser drops the expired cookie, so the next request carries
	// none.
	guarded := RequireAuth(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("guarded handler ran after logout")
	}))

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest("GET", "/create", nil))

	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
