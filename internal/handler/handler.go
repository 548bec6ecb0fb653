package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"classhub/internal/entity"
	"classhub/internal/templates"
)

// Store interfaces the handlers depend on. The repositories satisfy
// them; tests use in-memory fakes.

type UserStore interface {
	Create(name, email, passwordHash string) (entity.User, error)
	GetByEmail(email string) (entity.User, error)
	GetByID(id int) (entity.User, error)
}

type ClassroomStore interface {
	Create(name, yearlevel, capacity string) (entity.Classroom, error)
	GetByID(id int) (entity.Classroom, error)
	List() ([]entity.Classroom, error)
}

type StudentStore interface {
	Create(classroomID int, firstname, lastname, email string, age *int, bio string) (entity.Student, error)
	List() ([]entity.Student, error)
}

func parseTemplate(name string) *template.Template {
	return template.Must(template.ParseFS(templates.FS, name))
}

func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("render template", "template", tmpl.Name(), "error", err)
	}
}

// serverError hides the cause from the client; the details go to the
// log only.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}
