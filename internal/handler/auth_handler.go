package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"classhub/internal/repository"
	"classhub/internal/session"
)

type AuthHandler struct {
	users    UserStore
	sessions *session.Manager

	signupTmpl  *template.Template
	loginTmpl   *template.Template
	profileTmpl *template.Template
	successTmpl *template.Template
}

func NewAuthHandler(users UserStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,

		signupTmpl:  parseTemplate("signup.html"),
		loginTmpl:   parseTemplate("login.html"),
		profileTmpl: parseTemplate("profile.html"),
		successTmpl: parseTemplate("success.html"),
	}
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Flashes": h.sessions.Flashes(w, r),
	}
	render(w, h.signupTmpl, data)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, "hash password", err)
		return
	}

	user, err := h.users.Create(name, email, string(hash))
	if errors.Is(err, repository.ErrDuplicateEmail) {
		h.sessions.Flash(w, r, "Email address already exists!")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "create user", err)
		return
	}

	slog.Info("user created", "id", user.ID, "email", user.Email)
	http.Redirect(w, r, "/account=added", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Flashes": h.sessions.Flashes(w, r),
	}
	render(w, h.loginTmpl, data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	remember := r.FormValue("remember") != ""

	if email == "" || password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		serverError(w, "look up user", err)
		return
	}

	// Same message whether the account is missing or the password is
	// wrong, so login attempts cannot probe for registered emails.
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		h.sessions.Flash(w, r, "Please check your login details and try again!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Login(w, r, user.ID, remember); err != nil {
		serverError(w, "establish session", err)
		return
	}

	slog.Info("user logged in", "id", user.ID, "remember", remember)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessions.Resolve(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.users.GetByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		// The session points at a user that no longer exists.
		h.sessions.Logout(w, r)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "load profile", err)
		return
	}

	data := map[string]interface{}{
		"Name":  user.Name,
		"Email": user.Email,
	}
	render(w, h.profileTmpl, data)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		serverError(w, "clear session", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) SignupSuccess(w http.ResponseWriter, r *http.Request) {
	render(w, h.successTmpl, nil)
}
