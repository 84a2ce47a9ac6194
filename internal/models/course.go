package models

import (
	"time"

	"github.com/google/uuid"
)

// Course — записанный курс (метаданные; доставка контента — вне системы).
type Course struct {
	ID             uuid.UUID
	CourseName     string
	Description    string
	VideoLink      string
	InstructorName string
	Duration       string
	Category       string
	RecordingDate  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LiveCourse — живое занятие со ссылкой на встречу.
type LiveCourse struct {
	ID             uuid.UUID
	CourseName     string
	Description    string
	MeetingLink    string
	InstructorName string
	Date           string
	Time           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
