package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
)

// Интеграционные тесты репозиториев course.go / live_course.go.
// Контейнерная обвязка (startPostgres) — в user_test.go.

func newDBCourse(name string) *models.Course {
	now := time.Now().UTC()
	return &models.Course{
		ID:             uuid.New(),
		CourseName:     name,
		Description:    "course description",
		VideoLink:      "https://video.example.com/1",
		InstructorName: "Jane Doe",
		Duration:       "2h",
		Category:       "backend",
		RecordingDate:  "2026-08-01",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newDBLiveCourse(name string) *models.LiveCourse {
	now := time.Now().UTC()
	return &models.LiveCourse{
		ID:             uuid.New(),
		CourseName:     name,
		Description:    "live description",
		MeetingLink:    "https://meet.example.com/1",
		InstructorName: "John Doe",
		Date:           "2026-09-01",
		Time:           "18:00",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TestIntegration_Course_CRUD_OK — полный цикл: создание, чтение по ID,
// листинг, обновление, удаление.
func TestIntegration_Course_CRUD_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	c := newDBCourse("Go Basics")
	require.NoError(t, st.SaveCourse(context.Background(), c))

	got, err := st.CourseByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, c.CourseName, got.CourseName)
	require.Equal(t, c.VideoLink, got.VideoLink)
	require.WithinDuration(t, c.CreatedAt, got.CreatedAt, time.Second)

	list, err := st.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	c.CourseName = "Go Basics, 2nd edition"
	c.Category = "golang"
	c.UpdatedAt = time.Now().UTC()
	require.NoError(t, st.UpdateCourse(context.Background(), c))

	got, err = st.CourseByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, "Go Basics, 2nd edition", got.CourseName)
	require.Equal(t, "golang", got.Category)

	require.NoError(t, st.DeleteCourse(context.Background(), c.ID))

	_, err = st.CourseByID(context.Background(), c.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_Course_MissingRows_NotFound — чтение/обновление/удаление
// отсутствующего курса возвращают storage.ErrNotFound.
func TestIntegration_Course_MissingRows_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CourseByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.UpdateCourse(context.Background(), newDBCourse("ghost"))
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.DeleteCourse(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_LiveCourse_CRUD_OK — тот же цикл для живых занятий.
func TestIntegration_LiveCourse_CRUD_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	lc := newDBLiveCourse("Live Q&A")
	require.NoError(t, st.SaveLiveCourse(context.Background(), lc))

	got, err := st.LiveCourseByID(context.Background(), lc.ID)
	require.NoError(t, err)
	require.Equal(t, lc.MeetingLink, got.MeetingLink)
	require.Equal(t, lc.Date, got.Date)
	require.Equal(t, lc.Time, got.Time)

	list, err := st.LiveCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	lc.MeetingLink = "https://meet.example.com/2"
	lc.UpdatedAt = time.Now().UTC()
	require.NoError(t, st.UpdateLiveCourse(context.Background(), lc))

	got, err = st.LiveCourseByID(context.Background(), lc.ID)
	require.NoError(t, err)
	require.Equal(t, "https://meet.example.com/2", got.MeetingLink)

	require.NoError(t, st.DeleteLiveCourse(context.Background(), lc.ID))

	_, err = st.LiveCourseByID(context.Background(), lc.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
