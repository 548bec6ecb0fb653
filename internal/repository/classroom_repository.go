package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"classhub/internal/entity"
)

type ClassroomRepository struct {
	db *sql.DB
}

func NewClassroomRepository(db *sql.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// Create inserts a new classroom. A name unique-constraint violation
// comes back as ErrDuplicateName.
func (r *ClassroomRepository) Create(name, yearlevel, capacity string) (entity.Classroom, error) {
	classroom := entity.Classroom{
		Name:      name,
		YearLevel: yearlevel,
		Capacity:  capacity,
	}

	err := r.db.QueryRow(`
		INSERT INTO classrooms (name, yearlevel, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, name, yearlevel, capacity).Scan(&classroom.ID, &classroom.CreatedAt)

	if isUniqueViolation(err) {
		return entity.Classroom{}, ErrDuplicateName
	}
	if err != nil {
		return entity.Classroom{}, fmt.Errorf("create classroom: %w", err)
	}

	return classroom, nil
}

func (r *ClassroomRepository) GetByID(id int) (entity.Classroom, error) {
	var classroom entity.Classroom

	err := r.db.QueryRow(`
		SELECT id, name, yearlevel, capacity, created_at
		FROM classrooms
		WHERE id = $1
	`, id).Scan(
		&classroom.ID,
		&classroom.Name,
		&classroom.YearLevel,
		&classroom.Capacity,
		&classroom.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Classroom{}, ErrNotFound
	}
	if err != nil {
		return entity.Classroom{}, fmt.Errorf("get classroom by id: %w", err)
	}

	return classroom, nil
}

// List returns all classrooms in insertion order, each with its
// students attached.
func (r *ClassroomRepository) List() ([]entity.Classroom, error) {
	rows, err := r.db.Query(`
		SELECT id, name, yearlevel, capacity, created_at
		FROM classrooms
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := make([]entity.Classroom, 0)
	index := make(map[int]int)

	for rows.Next() {
		var classroom entity.Classroom

		if err := rows.Scan(
			&classroom.ID,
			&classroom.Name,
			&classroom.YearLevel,
			&classroom.Capacity,
			&classroom.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan classroom: %w", err)
		}

		index[classroom.ID] = len(classrooms)
		classrooms = append(classrooms, classroom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}

	if len(classrooms) == 0 {
		return classrooms, nil
	}

	studentRows, err := r.db.Query(`
		SELECT id, firstname, lastname, email, age, bio, created_at, classroom_id
		FROM students
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list classroom students: %w", err)
	}
	defer studentRows.Close()

	for studentRows.Next() {
		student, err := scanStudent(studentRows)
		if err != nil {
			return nil, err
		}

		if i, ok := index[student.ClassroomID]; ok {
			student.ClassroomName = classrooms[i].Name
			classrooms[i].Students = append(classrooms[i].Students, student)
		}
	}
	if err := studentRows.Err(); err != nil {
		return nil, fmt.Errorf("list classroom students: %w", err)
	}

	return classrooms, nil
}
