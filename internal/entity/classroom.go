package entity

import "time"

type Classroom struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	YearLevel string    `json:"yearlevel"`
	Capacity  string    `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	Students  []Student `json:"students,omitempty"`
}
