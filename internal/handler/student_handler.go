package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"classhub/internal/entity"
	"classhub/internal/repository"
	"classhub/internal/session"
)

type StudentHandler struct {
	classrooms ClassroomStore
	students   StudentStore
	sessions   *session.Manager

	addTmpl  *template.Template
	listTmpl *template.Template
}

func NewStudentHandler(classrooms ClassroomStore, students StudentStore, sessions *session.Manager) *StudentHandler {
	return &StudentHandler{
		classrooms: classrooms,
		students:   students,
		sessions:   sessions,

		addTmpl:  parseTemplate("studentadd.html"),
		listTmpl: parseTemplate("studentlist.html"),
	}
}

// resolveClassroom turns the URL parameter into a classroom, writing
// the 404 itself when the id is malformed or matches nothing.
func (h *StudentHandler) resolveClassroom(w http.ResponseWriter, r *http.Request) (entity.Classroom, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "classroomID"))
	if err != nil {
		http.NotFound(w, r)
		return entity.Classroom{}, false
	}

	classroom, err := h.classrooms.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return entity.Classroom{}, false
	}
	if err != nil {
		serverError(w, "look up classroom", err)
		return entity.Classroom{}, false
	}

	return classroom, true
}

func (h *StudentHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	classroom, ok := h.resolveClassroom(w, r)
	if !ok {
		return
	}

	data := map[string]interface{}{
		"Classroom": classroom,
		"Flashes":   h.sessions.Flashes(w, r),
	}
	render(w, h.addTmpl, data)
}

func (h *StudentHandler) Add(w http.ResponseWriter, r *http.Request) {
	classroom, ok := h.resolveClassroom(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	firstname := r.FormValue("firstname")
	lastname := r.FormValue("lastname")
	email := r.FormValue("email")
	bio := r.FormValue("bio")

	if firstname == "" || lastname == "" || email == "" {
		http.Error(w, "First name, last name and email are required", http.StatusBadRequest)
		return
	}

	var age *int
	if raw := r.FormValue("age"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Age must be a number", http.StatusBadRequest)
			return
		}
		age = &parsed
	}

	student, err := h.students.Create(classroom.ID, firstname, lastname, email, age, bio)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		h.sessions.Flash(w, r, "A student with that email already exists!")
		http.Redirect(w, r, fmt.Sprintf("/%d/addzookeeper", classroom.ID), http.StatusSeeOther)
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		// Classroom vanished between lookup and insert.
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, "create student", err)
		return
	}

	slog.Info("student created", "id", student.ID, "classroom", classroom.ID)
	http.Redirect(w, r, "/viewanimals", http.StatusSeeOther)
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.List()
	if err != nil {
		serverError(w, "list students", err)
		return
	}

	data := map[string]interface{}{
		"Students": students,
	}
	render(w, h.listTmpl, data)
}
