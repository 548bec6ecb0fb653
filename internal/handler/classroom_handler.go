package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"classhub/internal/repository"
	"classhub/internal/session"
)

type ClassroomHandler struct {
	classrooms ClassroomStore
	sessions   *session.Manager

	createTmpl *template.Template
	listTmpl   *template.Template
}

func NewClassroomHandler(classrooms ClassroomStore, sessions *session.Manager) *ClassroomHandler {
	return &ClassroomHandler{
		classrooms: classrooms,
		sessions:   sessions,

		createTmpl: parseTemplate("create.html"),
		listTmpl:   parseTemplate("classroomlist.html"),
	}
}

func (h *ClassroomHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Flashes": h.sessions.Flashes(w, r),
	}
	render(w, h.createTmpl, data)
}

func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	yearlevel := r.FormValue("yearlevel")
	capacity := r.FormValue("capacity")

	if name == "" || yearlevel == "" || capacity == "" {
		http.Error(w, "Name, year level and capacity are required", http.StatusBadRequest)
		return
	}

	classroom, err := h.classrooms.Create(name, yearlevel, capacity)
	if errors.Is(err, repository.ErrDuplicateName) {
		h.sessions.Flash(w, r, "A classroom with that name already exists!")
		http.Redirect(w, r, "/create", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "create classroom", err)
		return
	}

	slog.Info("classroom created", "id", classroom.ID, "name", classroom.Name)
	http.Redirect(w, r, "/viewanimals", http.StatusSeeOther)
}

func (h *ClassroomHandler) List(w http.ResponseWriter, r *http.Request) {
	classrooms, err := h.classrooms.List()
	if err != nil {
		serverError(w, "list classrooms", err)
		return
	}

	data := map[string]interface{}{
		"Classrooms": classrooms,
	}
	render(w, h.listTmpl, data)
}
