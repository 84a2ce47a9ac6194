package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-edu-platform/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/курс/кандидат).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
// Уникальность email обеспечивает само хранилище: при гонке двух
// конкурентных регистраций проигравшая получает ErrAlreadyExists.
type UserStorage interface {
	// SaveUser создает нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UpdateUser сохраняет изменённого пользователя целиком (last-write-wins).
	UpdateUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по нормализованному email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UsersByRole возвращает пользователей с указанной ролью.
	UsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	// StudentsByAccess возвращает студентов по признаку подтверждённого доступа.
	StudentsByAccess(ctx context.Context, validated bool) ([]models.User, error)
	// ClearExpiredResetTokens сбрасывает просроченные reset-челленджи.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) error
}

// CourseStorage выполняет операции над записанными курсами.
type CourseStorage interface {
	SaveCourse(ctx context.Context, course *models.Course) error
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Courses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// LiveCourseStorage выполняет операции над живыми занятиями.
type LiveCourseStorage interface {
	SaveLiveCourse(ctx context.Context, course *models.LiveCourse) error
	LiveCourseByID(ctx context.Context, id uuid.UUID) (*models.LiveCourse, error)
	LiveCourses(ctx context.Context) ([]models.LiveCourse, error)
	UpdateLiveCourse(ctx context.Context, course *models.LiveCourse) error
	DeleteLiveCourse(ctx context.Context, id uuid.UUID) error
}

// CandidateStorage выполняет операции над заявками кандидатов.
type CandidateStorage interface {
	// SaveCandidate создает заявку; email кандидата уникален.
	SaveCandidate(ctx context.Context, candidate *models.Candidate) error
	CandidateByEmail(ctx context.Context, email string) (*models.Candidate, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	CourseStorage
	LiveCourseStorage
	CandidateStorage
	Close()
}
