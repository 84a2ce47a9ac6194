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

// SaveLiveCourse создает новое живое занятие в БД.
func (s *Storage) SaveLiveCourse(ctx context.Context, course *models.LiveCourse) error {
	const op = "storage.postgres.SaveLiveCourse"

	query := `
		INSERT INTO live_courses(
			id, course_name, description, meeting_link, instructor_name,
			date, time, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		course.ID,
		course.CourseName,
		course.Description,
		course.MeetingLink,
		course.InstructorName,
		course.Date,
		course.Time,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LiveCourseByID находит живое занятие по ID.
func (s *Storage) LiveCourseByID(ctx context.Context, id uuid.UUID) (*models.LiveCourse, error) {
	const op = "storage.postgres.LiveCourseByID"

	query := `
		SELECT id, course_name, description, meeting_link, instructor_name,
			date, time, created_at, updated_at
		FROM live_courses
		WHERE id = $1
	`

	var course models.LiveCourse
	err := s.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CourseName,
		&course.Description,
		&course.MeetingLink,
		&course.InstructorName,
		&course.Date,
		&course.Time,
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

// LiveCourses возвращает все живые занятия.
func (s *Storage) LiveCourses(ctx context.Context) ([]models.LiveCourse, error) {
	const op = "storage.postgres.LiveCourses"

	query := `
		SELECT id, course_name, description, meeting_link, instructor_name,
			date, time, created_at, updated_at
		FROM live_courses
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var courses []models.LiveCourse
	for rows.Next() {
		var course models.LiveCourse
		err := rows.Scan(
			&course.ID,
			&course.CourseName,
			&course.Description,
			&course.MeetingLink,
			&course.InstructorName,
			&course.Date,
			&course.Time,
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

// UpdateLiveCourse сохраняет изменённое занятие целиком.
func (s *Storage) UpdateLiveCourse(ctx context.Context, course *models.LiveCourse) error {
	const op = "storage.postgres.UpdateLiveCourse"

	query := `
		UPDATE live_courses
		SET course_name = $2,
			description = $3,
			meeting_link = $4,
			instructor_name = $5,
			date = $6,
			time = $7,
			updated_at = $8
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query,
		course.ID,
		course.CourseName,
		course.Description,
		course.MeetingLink,
		course.InstructorName,
		course.Date,
		course.Time,
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

// DeleteLiveCourse удаляет живое занятие по ID.
func (s *Storage) DeleteLiveCourse(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteLiveCourse"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM live_courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
