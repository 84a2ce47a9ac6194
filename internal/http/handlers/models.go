// Входные/выходные модели под REST. Наружу уходит только санитайзерское
// представление пользователя: хэш пароля и поля reset-челленджа отсутствуют
// в типе, а не просто скрыты тегами.
package handlers

import (
	"time"

	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/service"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type InviteRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	FormValidated   bool      `json:"formValidated"`
	AccessValidated bool      `json:"accessValidated"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AuthResponse — ответ флоу, выдающих пару токенов. Refresh-токен в теле
// не фигурирует: он уходит только в httpOnly-cookie.
type AuthResponse struct {
	User            UserResponse `json:"user"`
	AccessToken     string       `json:"accessToken"`
	AccessExpiresAt int64        `json:"accessExpiresAt"` // Unix UTC
}

type RefreshResponse struct {
	AccessToken     string `json:"accessToken"`
	AccessExpiresAt int64  `json:"accessExpiresAt"` // Unix UTC
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CourseRequest struct {
	CourseName     string `json:"courseName"`
	Description    string `json:"description"`
	VideoLink      string `json:"videoLink"`
	InstructorName string `json:"instructorName"`
	Duration       string `json:"duration"`
	Category       string `json:"category"`
	RecordingDate  string `json:"recordingDate"`
}

type CourseResponse struct {
	ID             string    `json:"id"`
	CourseName     string    `json:"courseName"`
	Description    string    `json:"description"`
	VideoLink      string    `json:"videoLink"`
	InstructorName string    `json:"instructorName"`
	Duration       string    `json:"duration"`
	Category       string    `json:"category"`
	RecordingDate  string    `json:"recordingDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type LiveCourseRequest struct {
	CourseName     string `json:"courseName"`
	Description    string `json:"description"`
	MeetingLink    string `json:"meetingLink"`
	InstructorName string `json:"instructorName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

type LiveCourseResponse struct {
	ID             string    `json:"id"`
	CourseName     string    `json:"courseName"`
	Description    string    `json:"description"`
	MeetingLink    string    `json:"meetingLink"`
	InstructorName string    `json:"instructorName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CandidateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Interest  string `json:"interest,omitempty"`
}

type CandidateResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Specialty   string    `json:"specialty"`
	Interest    string    `json:"interest"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func userToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:              u.ID.String(),
		Email:           u.Email,
		Name:            u.Name,
		Role:            string(u.Role),
		FormValidated:   u.FormValidated,
		AccessValidated: u.AccessValidated,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func usersToResponse(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}

	return out
}

func authToResponse(u *models.User, pair *models.TokenPair) AuthResponse {
	return AuthResponse{
		User:            userToResponse(u),
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}
}

func courseToResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:             c.ID.String(),
		CourseName:     c.CourseName,
		Description:    c.Description,
		VideoLink:      c.VideoLink,
		InstructorName: c.InstructorName,
		Duration:       c.Duration,
		Category:       c.Category,
		RecordingDate:  c.RecordingDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func coursesToResponse(cs []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(cs))
	for i := range cs {
		out = append(out, courseToResponse(&cs[i]))
	}

	return out
}

func liveCourseToResponse(c *models.LiveCourse) LiveCourseResponse {
	return LiveCourseResponse{
		ID:             c.ID.String(),
		CourseName:     c.CourseName,
		Description:    c.Description,
		MeetingLink:    c.MeetingLink,
		InstructorName: c.InstructorName,
		Date:           c.Date,
		Time:           c.Time,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func liveCoursesToResponse(cs []models.LiveCourse) []LiveCourseResponse {
	out := make([]LiveCourseResponse, 0, len(cs))
	for i := range cs {
		out = append(out, liveCourseToResponse(&cs[i]))
	}

	return out
}

func candidateToResponse(c *models.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID.String(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Specialty:   c.Specialty,
		Interest:    c.Interest,
		Status:      string(c.Status),
		SubmittedAt: c.SubmittedAt,
	}
}

func (r CourseRequest) toInput() service.CourseInput {
	return service.CourseInput{
		CourseName:     r.CourseName,
		Description:    r.Description,
		VideoLink:      r.VideoLink,
		InstructorName: r.InstructorName,
		Duration:       r.Duration,
		Category:       r.Category,
		RecordingDate:  r.RecordingDate,
	}
}

func (r LiveCourseRequest) toInput() service.LiveCourseInput {
	return service.LiveCourseInput{
		CourseName:     r.CourseName,
		Description:    r.Description,
		MeetingLink:    r.MeetingLink,
		InstructorName: r.InstructorName,
		Date:           r.Date,
		Time:           r.Time,
	}
}

func (r CandidateRequest) toInput() service.CandidateInput {
	return service.CandidateInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Specialty: r.Specialty,
		Interest:  r.Interest,
	}
}
