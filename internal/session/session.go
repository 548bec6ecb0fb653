package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "app-session"

	// rememberMaxAge keeps a "remember me" login alive for 30 days.
	// Without it the cookie is scoped to the browser session.
	rememberMaxAge = 30 * 24 * 60 * 60
)

// Manager owns the signed session cookie. It maps a request to a user
// id and nothing else; the user record itself always comes from the
// users table.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// Resolve returns the user id the request's session cookie denotes.
// An absent, expired or tampered cookie resolves to nothing.
func (m *Manager) Resolve(r *http.Request) (int, bool) {
	session, err := m.store.Get(r, cookieName)
	if err != nil {
		return 0, false
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return 0, false
	}

	return userID, true
}

// Login associates the session cookie with userID.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID int, remember bool) error {
	session, _ := m.store.Get(r, cookieName)
	session.Values["user_id"] = userID

	if remember {
		session.Options.MaxAge = rememberMaxAge
	} else {
		session.Options.MaxAge = 0
	}

	return session.Save(r, w)
}

// Logout drops the session association and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, cookieName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1

	return session.Save(r, w)
}

// Flash queues a one-time message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := m.store.Get(r, cookieName)
	session.AddFlash(message)
	session.Save(r, w)
}

// Flashes drains the queued messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, cookieName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}

	return messages
}
