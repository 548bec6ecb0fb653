package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"classhub/internal/entity"
	"classhub/internal/repository"
)

type fakeUserStore struct {
	users  []entity.User
	nextID int
}

func (f *fakeUserStore) Create(name, email, passwordHash string) (entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return entity.User{}, repository.ErrDuplicateEmail
		}
	}

	f.nextID++
	user := entity.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) GetByEmail(email string) (entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(id int) (entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, repository.ErrNotFound
}

type fakeClassroomStore struct {
	classrooms []entity.Classroom
	nextID     int
}

func (f *fakeClassroomStore) Create(name, yearlevel, capacity string) (entity.Classroom, error) {
	for _, c := range f.classrooms {
		if c.Name == name {
			return entity.Classroom{}, repository.ErrDuplicateName
		}
	}

	f.nextID++
	classroom := entity.Classroom{
		ID:        f.nextID,
		Name:      name,
		YearLevel: yearlevel,
		Capacity:  capacity,
		CreatedAt: time.Now(),
	}
	f.classrooms = append(f.classrooms, classroom)
	return classroom, nil
}

func (f *fakeClassroomStore) GetByID(id int) (entity.Classroom, error) {
	for _, c := range f.classrooms {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Classroom{}, repository.ErrNotFound
}

func (f *fakeClassroomStore) List() ([]entity.Classroom, error) {
	return f.classrooms, nil
}

type fakeStudentStore struct {
	students []entity.Student
	nextID   int
}

func (f *fakeStudentStore) Create(classroomID int, firstname, lastname, email string, age *int, bio string) (entity.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return entity.Student{}, repository.ErrDuplicateEmail
		}
	}

	f.nextID++
	student := entity.Student{
		ID:          f.nextID,
		FirstName:   firstname,
		LastName:    lastname,
		Email:       email,
		Age:         age,
		Bio:         bio,
		CreatedAt:   time.Now(),
		ClassroomID: classroomID,
	}
	f.students = append(f.students, student)
	return student, nil
}

func (f *fakeStudentStore) List() ([]entity.Student, error) {
	return f.students, nil
}

// formRequest builds a POST with url-encoded fields, the way a browser
// submits the pages.
func formRequest(t *testing.T, target string, fields url.Values) *http.Request {
	t.Helper()

	req := httptest.NewRequest("POST", target, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func redirectTarget(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	return rec.Header().Get("Location")
}
