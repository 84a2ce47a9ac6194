package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// SaveCourse создает новый курс в БД.
func (s *Storage) SaveCourse(ctx context.Context, course *models.Course) error {
	const op = "storage.postgres.SaveCourse"

	query := `
		INSERT INTO courses(
			id, course_name, description, video_link, instructor_name,
			duration, category, recording_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		course.ID,
		course.CourseName,
		course.Description,
		course.VideoLink,
		course.InstructorName,
		course.Duration,
		course.Category,
		course.RecordingDate,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CourseByID находит курс по ID.
func (s *Storage) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	const op = "storage.postgres.CourseByID"

	query := `
		SELECT id, course_name, description, video_link, instructor_name,
			duration, category, recording_date, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := s.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CourseName,
		&course.Description,
		&course.VideoLink,
		&course.InstructorName,
		&course.Duration,
		&course.Category,
		&course.RecordingDate,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &course, nil
}

// Courses возвращает все курсы.
func (s *Storage) Courses(ctx context.Context) ([]models.Course, error) {
	const op = "storage.postgres.Courses"

	query := `
		SELECT id, course_name, description, video_link, instructor_name,
			duration, category, recording_date, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID,
			&course.CourseName,
			&course.Description,
			&course.VideoLink,
			&course.InstructorName,
			&course.Duration,
			&course.Category,
			&course.RecordingDate,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return courses, nil
}

// UpdateCourse сохраняет изменённый курс целиком.
func (s *Storage) UpdateCourse(ctx context.Context, course *models.Course) error {
	const op = "storage.postgres.UpdateCourse"

	query := `
		UPDATE courses
		SET course_name = $2,
			description = $3,
			video_link = $4,
			instructor_name = $5,
			duration = $6,
			category = $7,
			recording_date = $8,
			updated_at = $9
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query,
		course.ID,
		course.CourseName,
		course.Description,
		course.VideoLink,
		course.InstructorName,
		course.Duration,
		course.Category,
		course.RecordingDate,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteCourse удаляет курс по ID.
func (s *Storage) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteCourse"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
