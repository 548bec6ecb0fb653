package entity

import "time"

type Student struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstname"`
	LastName    string    `json:"lastname"`
	Email       string    `json:"email"`
	Age         *int      `json:"age,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ClassroomID int       `json:"classroom_id"`

	// ClassroomName is filled on joined reads, it is not a column of
	// the students table.
	ClassroomName string `json:"classroom_name,omitempty"`
}
