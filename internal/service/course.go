package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// CourseInput — поля курса, приходящие от клиента.
type CourseInput struct {
	CourseName     string
	Description    string
	VideoLink      string
	InstructorName string
	Duration       string
	Category       string
	RecordingDate  string
}

// LiveCourseInput — поля живого занятия, приходящие от клиента.
type LiveCourseInput struct {
	CourseName     string
	Description    string
	MeetingLink    string
	InstructorName string
	Date           string
	Time           string
}

// CreateCourse создает новый курс.
func (s *Service) CreateCourse(ctx context.Context, in CourseInput) (*models.Course, error) {
	const op = "service.course.CreateCourse"

	if strings.TrimSpace(in.CourseName) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	now := s.now().UTC()
	course := &models.Course{
		ID:             uuid.New(),
		CourseName:     in.CourseName,
		Description:    in.Description,
		VideoLink:      in.VideoLink,
		InstructorName: in.InstructorName,
		Duration:       in.Duration,
		Category:       in.Category,
		RecordingDate:  in.RecordingDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.SaveCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// CourseByID возвращает курс по ID.
func (s *Service) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	const op = "service.course.CourseByID"

	course, err := s.storage.CourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// Courses возвращает все курсы.
func (s *Service) Courses(ctx context.Context) ([]models.Course, error) {
	const op = "service.course.Courses"

	courses, err := s.storage.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return courses, nil
}

// UpdateCourse обновляет существующий курс.
func (s *Service) UpdateCourse(ctx context.Context, id uuid.UUID, in CourseInput) (*models.Course, error) {
	const op = "service.course.UpdateCourse"

	course, err := s.storage.CourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applyCourseInput(course, in)
	course.UpdatedAt = s.now().UTC()

	if err := s.storage.UpdateCourse(ctx, course); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// DeleteCourse удаляет курс по ID.
func (s *Service) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	const op = "service.course.DeleteCourse"

	if err := s.storage.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateLiveCourse создает новое живое занятие.
func (s *Service) CreateLiveCourse(ctx context.Context, in LiveCourseInput) (*models.LiveCourse, error) {
	const op = "service.course.CreateLiveCourse"

	if strings.TrimSpace(in.CourseName) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	now := s.now().UTC()
	course := &models.LiveCourse{
		ID:             uuid.New(),
		CourseName:     in.CourseName,
		Description:    in.Description,
		MeetingLink:    in.MeetingLink,
		InstructorName: in.InstructorName,
		Date:           in.Date,
		Time:           in.Time,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.SaveLiveCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// LiveCourseByID возвращает живое занятие по ID.
func (s *Service) LiveCourseByID(ctx context.Context, id uuid.UUID) (*models.LiveCourse, error) {
	const op = "service.course.LiveCourseByID"

	course, err := s.storage.LiveCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// LiveCourses возвращает все живые занятия.
func (s *Service) LiveCourses(ctx context.Context) ([]models.LiveCourse, error) {
	const op = "service.course.LiveCourses"

	courses, err := s.storage.LiveCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return courses, nil
}

// UpdateLiveCourse обновляет существующее занятие.
func (s *Service) UpdateLiveCourse(ctx context.Context, id uuid.UUID, in LiveCourseInput) (*models.LiveCourse, error) {
	const op = "service.course.UpdateLiveCourse"

	course, err := s.storage.LiveCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applyLiveCourseInput(course, in)
	course.UpdatedAt = s.now().UTC()

	if err := s.storage.UpdateLiveCourse(ctx, course); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return course, nil
}

// DeleteLiveCourse удаляет живое занятие по ID.
func (s *Service) DeleteLiveCourse(ctx context.Context, id uuid.UUID) error {
	const op = "service.course.DeleteLiveCourse"

	if err := s.storage.DeleteLiveCourse(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// applyCourseInput переносит непустые поля ввода в курс (PATCH-семантика).
func applyCourseInput(course *models.Course, in CourseInput) {
	if in.CourseName != "" {
		course.CourseName = in.CourseName
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.VideoLink != "" {
		course.VideoLink = in.VideoLink
	}
	if in.InstructorName != "" {
		course.InstructorName = in.InstructorName
	}
	if in.Duration != "" {
		course.Duration = in.Duration
	}
	if in.Category != "" {
		course.Category = in.Category
	}
	if in.RecordingDate != "" {
		course.RecordingDate = in.RecordingDate
	}
}

// applyLiveCourseInput переносит непустые поля ввода в занятие (PATCH-семантика).
func applyLiveCourseInput(course *models.LiveCourse, in LiveCourseInput) {
	if in.CourseName != "" {
		course.CourseName = in.CourseName
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.MeetingLink != "" {
		course.MeetingLink = in.MeetingLink
	}
	if in.InstructorName != "" {
		course.InstructorName = in.InstructorName
	}
	if in.Date != "" {
		course.Date = in.Date
	}
	if in.Time != "" {
		course.Time = in.Time
	}
}
