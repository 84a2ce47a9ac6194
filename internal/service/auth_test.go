package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-edu-platform/internal/config"
	mailpkg "github.com/pribylovaa/go-edu-platform/internal/mail"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/storage"
	"github.com/pribylovaa/go-edu-platform/mocks"
)

func testCfg() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			AccessSecret:    "unit-access-secret",
			RefreshSecret:   "unit-refresh-secret",
			AccessTokenTTL:  30 * time.Second,
			RefreshTokenTTL: 24 * time.Hour,
			ResetTokenTTL:   10 * time.Minute,
			Issuer:          "edu-platform",
			FrontendURL:     "http://localhost:3000",
		},
		SMTP: config.SMTPConfig{
			AdminEmail: "admin@example.com",
		},
	}
}

// fakeMailer собирает письма в канал: sendAsync шлёт из горутины,
// тест дожидается доставки через waitMail.
type fakeMailer struct {
	ch chan mailpkg.Message
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{ch: make(chan mailpkg.Message, 8)}
}

func (f *fakeMailer) Send(_ context.Context, msg mailpkg.Message) error {
	f.ch <- msg
	return nil
}

func waitMail(t *testing.T, f *fakeMailer) mailpkg.Message {
	t.Helper()
	select {
	case msg := <-f.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("mail was not sent")
		return mailpkg.Message{}
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *fakeMailer, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	fm := newFakeMailer()
	svc := New(st, testCfg(), fm)
	return svc, st, fm, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	email := "User@Example.com"
	norm := "user@example.com"

	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, norm, u.Email)
			require.Equal(t, models.RoleStudent, u.Role)
			require.False(t, u.FormValidated)
			require.False(t, u.AccessValidated)
			require.NotEqual(t, "secret123", u.PasswordHash)
			return nil
		})

	user, pair, err := svc.RegisterUser(ctx, "A", email, "secret123", "")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.Auth.AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)
}

func TestRegisterUser_PrivilegedRole_AutoValidated(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "t@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.True(t, u.FormValidated)
			require.True(t, u.AccessValidated)
			return nil
		})

	user, _, err := svc.RegisterUser(context.Background(), "T", "t@example.com", "secret123", "teacher")
	require.NoError(t, err)
	require.Equal(t, models.RoleTeacher, user.Role)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RegisterUser(context.Background(), "A", "not-an-email", "secret123", "")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterUser_InvalidRole(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RegisterUser(context.Background(), "A", "a@example.com", "secret123", "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RegisterUser(context.Background(), "A", "a@example.com", "short", "")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.RegisterUser(context.Background(), "", "a@example.com", "secret123", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "a@example.com").
		Return(&models.User{ID: uuid.New(), Email: "a@example.com"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "A", "A@Example.com", "secret123", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_RaceLoser_EmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Проверка на занятость прошла, но к моменту вставки email занял конкурент.
	st.EXPECT().UserByEmail(gomock.Any(), "a@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, _, err := svc.RegisterUser(context.Background(), "A", "a@example.com", "secret123", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUser_OK_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)

	got, pair, err := svc.LoginUser(context.Background(), "User@Example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	// Выданный access-токен резолвится в того же пользователя.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	authed, err := svc.AuthenticateAccess(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, authed.ID)
}

func TestLoginUser_WrongPassword_Uniform(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)
	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "wrong-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Отсутствующий пользователь — та же ошибка.
	st.EXPECT().UserByEmail(gomock.Any(), "absent@example.com").Return(nil, storage.ErrNotFound)
	_, _, err = svc.LoginUser(context.Background(), "absent@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens_OK_OldTokenStillValid(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, pair, err := svc.LoginUser(context.Background(), user.Email, "secret123")
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	rotated, err := svc.RefreshTokens(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// Без hardened-реестра старый refresh-токен криптографически валиден
	// до своего истечения: повторная ротация по нему проходит.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	_, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshTokens_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.RefreshTokens(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, pair, err := svc.LoginUser(context.Background(), user.Email, "secret123")
	require.NoError(t, err)

	// Access-токен подписан другим секретом и в refresh-флоу не годится.
	_, err = svc.RefreshTokens(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_UserGone(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, pair, err := svc.LoginUser(context.Background(), user.Email, "secret123")
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(nil, storage.ErrNotFound)
	_, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, ErrUserGone)
}

func TestAuthenticateAccess_StalePassword(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, pair, err := svc.LoginUser(context.Background(), user.Email, "secret123")
	require.NoError(t, err)

	// Пароль сменили после выпуска токена.
	stale := *user
	stale.PasswordChangedAt = time.Now().UTC().Add(time.Minute)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&stale, nil)
	_, err = svc.AuthenticateAccess(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, ErrStalePassword)
}

func TestUpdatePassword_OK_InvalidatesOldTokens(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// PasswordChangedAt отодвигается на epsilon (1s) в прошлое, а iat в JWT
	// усечён до секунды: между выпуском старого токена и сменой пароля должно
	// пройти больше секунды. Часы сервиса управляются явно, чтобы тест
	// не зависел от реального времени.
	base := time.Now().UTC()
	svc.now = func() time.Time { return base }

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "old-secret-1"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, oldPair, err := svc.LoginUser(context.Background(), user.Email, "old-secret-1")
	require.NoError(t, err)

	// Пароль меняется через две секунды после входа.
	base = base.Add(2 * time.Second)

	var saved models.User
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = *u
			return nil
		})

	_, newPair, err := svc.UpdatePassword(context.Background(), user.ID, "old-secret-1", "new-secret-1")
	require.NoError(t, err)
	require.NotEmpty(t, newPair.AccessToken)
	require.True(t, checkPassword(saved.PasswordHash, "new-secret-1"))
	require.False(t, saved.PasswordChangedAt.IsZero())

	// Токен, выпущенный до смены пароля, протухает.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&saved, nil)
	_, err = svc.AuthenticateAccess(context.Background(), oldPair.AccessToken)
	require.ErrorIs(t, err, ErrStalePassword)

	// Свежая пара, выпущенная вместе со сменой, остаётся валидной.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(&saved, nil)
	_, err = svc.AuthenticateAccess(context.Background(), newPair.AccessToken)
	require.NoError(t, err)
}

func TestUpdatePassword_WrongCurrent(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	_, _, err := svc.UpdatePassword(context.Background(), user.ID, "wrong-pass", "new-secret-1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdatePassword_UserNotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, _, err := svc.UpdatePassword(context.Background(), id, "secret123", "new-secret-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestForgotPassword_UnknownEmail_NoError(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Ни ошибки, ни записи в хранилище: наружу ничего не раскрывается.
	st.EXPECT().UserByEmail(gomock.Any(), "absent@example.com").Return(nil, storage.ErrNotFound)
	require.NoError(t, svc.ForgotPassword(context.Background(), "absent@example.com"))

	// Невалидный формат email — тот же исход.
	require.NoError(t, svc.ForgotPassword(context.Background(), "not-an-email"))
}

func TestForgotPassword_OK_CommitsHashAndMails(t *testing.T) {
	t.Parallel()

	svc, st, fm, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
	}

	var saved models.User
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = *u
			return nil
		})

	require.NoError(t, svc.ForgotPassword(context.Background(), user.Email))

	require.NotEmpty(t, saved.PasswordResetTokenHash)
	require.WithinDuration(t, time.Now().Add(svc.cfg.Auth.ResetTokenTTL), saved.PasswordResetExpiresAt, 2*time.Second)

	msg := waitMail(t, fm)
	require.Equal(t, user.Email, msg.To)
	// В письме сырой токен, в хранилище — только его хэш.
	require.NotContains(t, msg.Text, saved.PasswordResetTokenHash)
}

func TestResetPassword_OK_SingleUse(t *testing.T) {
	t.Parallel()

	svc, st, fm, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			*user = *u
			return nil
		})
	require.NoError(t, svc.ForgotPassword(context.Background(), user.Email))

	rawToken := resetTokenFromMail(t, waitMail(t, fm))
	require.Equal(t, user.PasswordResetTokenHash, hashResetToken(rawToken))

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			*user = *u
			return nil
		})

	_, pair, err := svc.ResetPassword(context.Background(), rawToken, user.Email, "new-secret-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.True(t, checkPassword(user.PasswordHash, "new-secret-1"))

	// Челлендж погашен: повтор с тем же токеном отбивается.
	require.Empty(t, user.PasswordResetTokenHash)
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, _, err = svc.ResetPassword(context.Background(), rawToken, user.Email, "other-secret-1")
	require.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_WrongToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:                     uuid.New(),
		Email:                  "user@example.com",
		PasswordResetTokenHash: hashResetToken("the-right-token"),
		PasswordResetExpiresAt: time.Now().UTC().Add(10 * time.Minute),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, _, err := svc.ResetPassword(context.Background(), "the-wrong-token", user.Email, "new-secret-1")
	require.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:                     uuid.New(),
		Email:                  "user@example.com",
		PasswordResetTokenHash: hashResetToken("the-token"),
		PasswordResetExpiresAt: time.Now().UTC().Add(-time.Minute),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, _, err := svc.ResetPassword(context.Background(), "the-token", user.Email, "new-secret-1")
	require.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestLogout_NeverFails(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Без реестра и с мусорным токеном — просто no-op.
	svc.Logout(context.Background(), "")
	svc.Logout(context.Background(), "garbage")
}

// fakeRegister — in-memory реализация cache.RefreshRegister для unit-тестов.
type fakeRegister struct {
	entries map[string]uuid.UUID
	revoked []string
}

func newFakeRegister() *fakeRegister {
	return &fakeRegister{entries: make(map[string]uuid.UUID)}
}

func (f *fakeRegister) Put(_ context.Context, jti string, userID uuid.UUID, _ time.Duration) error {
	f.entries[jti] = userID
	return nil
}

func (f *fakeRegister) Consume(_ context.Context, jti string) (bool, error) {
	_, ok := f.entries[jti]
	delete(f.entries, jti)
	return ok, nil
}

func (f *fakeRegister) Revoke(_ context.Context, jti string) error {
	delete(f.entries, jti)
	f.revoked = append(f.revoked, jti)
	return nil
}

func (f *fakeRegister) Close() error { return nil }

func TestLogout_RevokesRegisteredRefreshToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	reg := newFakeRegister()
	svc.SetRefreshRegister(reg)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "secret123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, pair, err := svc.LoginUser(context.Background(), user.Email, "secret123")
	require.NoError(t, err)
	require.Len(t, reg.entries, 1, "выданный jti должен попасть в реестр")

	svc.Logout(context.Background(), pair.RefreshToken)
	require.Empty(t, reg.entries)
	require.Len(t, reg.revoked, 1)

	// Отозванный refresh-токен больше не обменивается.
	_, err = svc.RefreshTokens(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

// resetTokenFromMail достаёт сырой reset-токен из текста письма
// (ссылка вида .../reset-password?token=<raw>&email=...).
func resetTokenFromMail(t *testing.T, msg mailpkg.Message) string {
	t.Helper()

	i := strings.Index(msg.Text, "token=")
	require.NotEqual(t, -1, i, "mail text has no reset token: %q", msg.Text)

	token := msg.Text[i+len("token="):]
	if j := strings.IndexAny(token, "& \n"); j != -1 {
		token = token[:j]
	}

	require.NotEmpty(t, token)
	return token
}
