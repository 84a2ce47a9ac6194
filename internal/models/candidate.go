package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidateStatus — статус заявки кандидата.
// Заявка создаётся в статусе pending; дальнейший workflow рассмотрения
// лежит вне этого сервиса.
type CandidateStatus string

const (
	CandidatePending CandidateStatus = "pending"
)

// Candidate — заявка кандидата на обучение.
type Candidate struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Specialty   string
	Interest    string
	Status      CandidateStatus
	SubmittedAt time.Time
}

// FullName — отображаемое имя кандидата для писем.
func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
