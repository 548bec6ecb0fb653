package repository

import (
	"database/sql"
	"fmt"

	"classhub/internal/entity"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student into an existing classroom. The handler has
// already resolved the classroom, but the foreign key still decides:
// a concurrent classroom removal surfaces as ErrNotFound, a duplicate
// email as ErrDuplicateEmail.
func (r *StudentRepository) Create(classroomID int, firstname, lastname, email string, age *int, bio string) (entity.Student, error) {
	student := entity.Student{
		FirstName:   firstname,
		LastName:    lastname,
		Email:       email,
		Age:         age,
		Bio:         bio,
		ClassroomID: classroomID,
	}

	var dbAge sql.NullInt64
	if age != nil {
		dbAge = sql.NullInt64{Int64: int64(*age), Valid: true}
	}

	err := r.db.QueryRow(`
		INSERT INTO students (firstname, lastname, email, age, bio, classroom_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at
	`, firstname, lastname, email, dbAge, bio, classroomID).Scan(&student.ID, &student.CreatedAt)

	if isUniqueViolation(err) {
		return entity.Student{}, ErrDuplicateEmail
	}
	if isForeignKeyViolation(err) {
		return entity.Student{}, ErrNotFound
	}
	if err != nil {
		return entity.Student{}, fmt.Errorf("create student: %w", err)
	}

	return student, nil
}

// List returns all students in insertion order with their classroom
// names resolved.
func (r *StudentRepository) List() ([]entity.Student, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.firstname, s.lastname, s.email, s.age, s.bio, s.created_at, s.classroom_id, c.name
		FROM students s
		JOIN classrooms c ON c.id = s.classroom_id
		ORDER BY s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]entity.Student, 0)

	for rows.Next() {
		var (
			student entity.Student
			age     sql.NullInt64
			bio     sql.NullString
		)

		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&age,
			&bio,
			&student.CreatedAt,
			&student.ClassroomID,
			&student.ClassroomName,
		); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}

		if age.Valid {
			v := int(age.Int64)
			student.Age = &v
		}
		student.Bio = bio.String

		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	return students, nil
}

// scanStudent reads one row of the bare students column set. Shared
// with ClassroomRepository.List.
func scanStudent(rows *sql.Rows) (entity.Student, error) {
	var (
		student entity.Student
		age     sql.NullInt64
		bio     sql.NullString
	)

	if err := rows.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&age,
		&bio,
		&student.CreatedAt,
		&student.ClassroomID,
	); err != nil {
		return entity.Student{}, fmt.Errorf("scan student: %w", err)
	}

	if age.Valid {
		v := int(age.Int64)
		student.Age = &v
	}
	student.Bio = bio.String

	return student, nil
}
