// memory — потокобезопасное in-memory хранилище.
// Используется в локальном режиме (пустой DATABASE_URL) и в тестах
// HTTP-слоя; семантика ошибок совпадает с postgres-бэкендом.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

type Storage struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]models.User
	usersByMail map[string]uuid.UUID
	courses     map[uuid.UUID]models.Course
	liveCourses map[uuid.UUID]models.LiveCourse
	candidates  map[string]models.Candidate
}

// New создает пустое in-memory хранилище.
func New() *Storage {
	return &Storage{
		users:       make(map[uuid.UUID]models.User),
		usersByMail: make(map[string]uuid.UUID),
		courses:     make(map[uuid.UUID]models.Course),
		liveCourses: make(map[uuid.UUID]models.LiveCourse),
		candidates:  make(map[string]models.Candidate),
	}
}

// Close — no-op для in-memory хранилища.
func (s *Storage) Close() {}

// SaveUser создает нового пользователя; уникальность email
// арбитрируется под мьютексом, проигравший получает ErrAlreadyExists.
func (s *Storage) SaveUser(_ context.Context, user *models.User) error {
	const op = "storage.memory.SaveUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersByMail[user.Email]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.users[user.ID] = *user
	s.usersByMail[user.Email] = user.ID

	return nil
}

// UpdateUser сохраняет изменённого пользователя целиком.
func (s *Storage) UpdateUser(_ context.Context, user *models.User) error {
	const op = "storage.memory.UpdateUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.users[user.ID]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if prev.Email != user.Email {
		if _, taken := s.usersByMail[user.Email]; taken {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		delete(s.usersByMail, prev.Email)
		s.usersByMail[user.Email] = user.ID
	}

	s.users[user.ID] = *user

	return nil
}

// UserByEmail находит пользователя по email.
func (s *Storage) UserByEmail(_ context.Context, email string) (*models.User, error) {
	const op = "storage.memory.UserByEmail"

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByMail[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	user := s.users[id]
	return &user, nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.memory.UserByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &user, nil
}

// UsersByRole возвращает пользователей с указанной ролью.
func (s *Storage) UsersByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, u)
		}
	}

	return users, nil
}

// StudentsByAccess возвращает студентов по признаку подтверждённого доступа.
func (s *Storage) StudentsByAccess(_ context.Context, validated bool) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, u := range s.users {
		if u.Role == models.RoleStudent && u.AccessValidated == validated {
			users = append(users, u)
		}
	}

	return users, nil
}

// ClearExpiredResetTokens сбрасывает просроченные reset-челленджи.
func (s *Storage) ClearExpiredResetTokens(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.users {
		if u.PasswordResetTokenHash != "" && !u.PasswordResetExpiresAt.After(now) {
			u.PasswordResetTokenHash = ""
			u.PasswordResetExpiresAt = time.Time{}
			s.users[id] = u
		}
	}

	return nil
}

// SaveCourse создает новый курс.
func (s *Storage) SaveCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses[course.ID] = *course
	return nil
}

// CourseByID находит курс по ID.
func (s *Storage) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	const op = "storage.memory.CourseByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &course, nil
}

// Courses возвращает все курсы.
func (s *Storage) Courses(_ context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []models.Course
	for _, c := range s.courses {
		courses = append(courses, c)
	}

	return courses, nil
}

// UpdateCourse сохраняет изменённый курс целиком.
func (s *Storage) UpdateCourse(_ context.Context, course *models.Course) error {
	const op = "storage.memory.UpdateCourse"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.ID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	s.courses[course.ID] = *course
	return nil
}

// DeleteCourse удаляет курс по ID.
func (s *Storage) DeleteCourse(_ context.Context, id uuid.UUID) error {
	const op = "storage.memory.DeleteCourse"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	delete(s.courses, id)
	return nil
}

// SaveLiveCourse создает новое живое занятие.
func (s *Storage) SaveLiveCourse(_ context.Context, course *models.LiveCourse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.liveCourses[course.ID] = *course
	return nil
}

// LiveCourseByID находит живое занятие по ID.
func (s *Storage) LiveCourseByID(_ context.Context, id uuid.UUID) (*models.LiveCourse, error) {
	const op = "storage.memory.LiveCourseByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.liveCourses[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &course, nil
}

// LiveCourses возвращает все живые занятия.
func (s *Storage) LiveCourses(_ context.Context) ([]models.LiveCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []models.LiveCourse
	for _, c := range s.liveCourses {
		courses = append(courses, c)
	}

	return courses, nil
}

// UpdateLiveCourse сохраняет изменённое занятие целиком.
func (s *Storage) UpdateLiveCourse(_ context.Context, course *models.LiveCourse) error {
	const op = "storage.memory.UpdateLiveCourse"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.liveCourses[course.ID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	s.liveCourses[course.ID] = *course
	return nil
}

// DeleteLiveCourse удаляет живое занятие по ID.
func (s *Storage) DeleteLiveCourse(_ context.Context, id uuid.UUID) error {
	const op = "storage.memory.DeleteLiveCourse"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.liveCourses[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	delete(s.liveCourses, id)
	return nil
}

// SaveCandidate создает заявку кандидата; email уникален.
func (s *Storage) SaveCandidate(_ context.Context, candidate *models.Candidate) error {
	const op = "storage.memory.SaveCandidate"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.candidates[candidate.Email]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.candidates[candidate.Email] = *candidate
	return nil
}

// CandidateByEmail находит заявку по email кандидата.
func (s *Storage) CandidateByEmail(_ context.Context, email string) (*models.Candidate, error) {
	const op = "storage.memory.CandidateByEmail"

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate, ok := s.candidates[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &candidate, nil
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
