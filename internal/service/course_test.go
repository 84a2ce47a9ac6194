package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-edu-platform/internal/storage/memory"
)

// Курсы тестируются на in-memory хранилище: интересна сквозная
// семантика CRUD, а не хореография вызовов.

func newCourseSvc(t *testing.T) *Service {
	t.Helper()
	return New(memory.New(), testCfg(), newFakeMailer())
}

func TestCreateCourse_And_Get(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, CourseInput{
		CourseName:     "Go Basics",
		Description:    "intro",
		Category:       "programming",
		InstructorName: "I. Ivanova",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.CourseByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Go Basics", got.CourseName)

	list, err := svc.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateCourse_MissingName(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)

	_, err := svc.CreateCourse(context.Background(), CourseInput{Description: "no name"})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateCourse_PatchSemantics(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, CourseInput{
		CourseName:  "Go Basics",
		Description: "intro",
		Category:    "programming",
	})
	require.NoError(t, err)

	// Непустые поля замещают, пустые не трогают.
	updated, err := svc.UpdateCourse(ctx, created.ID, CourseInput{Description: "deep dive"})
	require.NoError(t, err)
	require.Equal(t, "Go Basics", updated.CourseName)
	require.Equal(t, "deep dive", updated.Description)
	require.Equal(t, "programming", updated.Category)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)

	_, err := svc.UpdateCourse(context.Background(), uuid.New(), CourseInput{CourseName: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCourse_OK_ThenGone(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, CourseInput{CourseName: "Go Basics"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, created.ID))

	_, err = svc.CourseByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteCourse(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLiveCourse_CRUD(t *testing.T) {
	t.Parallel()

	svc := newCourseSvc(t)
	ctx := context.Background()

	created, err := svc.CreateLiveCourse(ctx, LiveCourseInput{
		CourseName:  "Live Q&A",
		MeetingLink: "https://meet.example.com/qa",
		Date:        "2026-09-01",
		Time:        "18:00",
	})
	require.NoError(t, err)

	got, err := svc.LiveCourseByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "https://meet.example.com/qa", got.MeetingLink)

	updated, err := svc.UpdateLiveCourse(ctx, created.ID, LiveCourseInput{Time: "19:00"})
	require.NoError(t, err)
	require.Equal(t, "19:00", updated.Time)
	require.Equal(t, "2026-09-01", updated.Date)

	list, err := svc.LiveCourses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteLiveCourse(ctx, created.ID))
	_, err = svc.LiveCourseByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
