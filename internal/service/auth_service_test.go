package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

func TestLoginAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Login(ctx, LoginRequest{Role: "admin", Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Session.Username)
	assert.Equal(t, model.RoleAdmin, resp.Session.Role)
	assert.Empty(t, resp.Session.StudentID)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	assert.Equal(t, "Admin logged in", env.lastAuditAction(t))
}

func TestLoginAdminWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), LoginRequest{Role: "admin", Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStudentResolvesRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "Yes", "No")
	creds := created.Credentials

	resp, err := env.auth.Login(ctx, LoginRequest{Role: "student", Username: creds.Username, Password: creds.Password})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, resp.Session.Role)
	assert.Equal(t, created.Student.StudentID, resp.Session.StudentID)

	assert.Equal(t, "Student logged in", env.lastAuditAction(t))
}

// Resolution strips every "student" occurrence from the username and
// matches the remainder as a substring of student_id, first row wins.
func TestLoginStudentFragmentFirstMatchWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := &model.Student{
		StudentID:    "abcd1234-first",
		Name:         "First",
		Class:        "Class 10",
		HostelStatus: "No",
		BusStatus:    "No",
		CreatedAt:    utils.Timestamp(),
	}
	second := &model.Student{
		StudentID:    "xx-abcd1234-second",
		Name:         "Second",
		Class:        "Class 10",
		HostelStatus: "No",
		BusStatus:    "No",
		CreatedAt:    utils.Timestamp(),
	}
	require.NoError(t, env.studentRepo.Create(ctx, first))
	require.NoError(t, env.studentRepo.Create(ctx, second))
	require.NoError(t, env.userRepo.Create(ctx, &model.User{
		Username: "studentabcd1234",
		Password: "abcd1234",
		Role:     model.RoleStudent,
	}))

	resp, err := env.auth.Login(ctx, LoginRequest{Role: "student", Username: "studentabcd1234", Password: "abcd1234"})
	require.NoError(t, err)
	assert.Equal(t, first.StudentID, resp.Session.StudentID)
}

func TestLoginStudentCredentialWithoutRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.userRepo.Create(ctx, &model.User{
		Username: "studentdeadbeef",
		Password: "deadbeef",
		Role:     model.RoleStudent,
	}))

	_, err := env.auth.Login(ctx, LoginRequest{Role: "student", Username: "studentdeadbeef", Password: "deadbeef"})
	assert.ErrorIs(t, err, ErrStudentRecordNotFound)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Login(ctx, LoginRequest{Role: "admin", Username: "admin", Password: "admin"})
	require.NoError(t, err)

	pair, err := env.auth.RefreshToken(ctx, resp.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = env.auth.RefreshToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.auth.ChangePassword(ctx, "admin", model.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "secret",
		ConfirmPassword: "secret",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	err = env.auth.ChangePassword(ctx, "admin", model.ChangePasswordRequest{
		CurrentPassword: "admin",
		NewPassword:     "secret",
		ConfirmPassword: "other",
	})
	assert.ErrorIs(t, err, ErrPasswordConfirm)

	err = env.auth.ChangePassword(ctx, "admin", model.ChangePasswordRequest{
		CurrentPassword: "admin",
		NewPassword:     "secret",
		ConfirmPassword: "secret",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, LoginRequest{Role: "admin", Username: "admin", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, LoginRequest{Role: "admin", Username: "admin", Password: "secret"})
	assert.NoError(t, err)
}
