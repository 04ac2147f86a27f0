package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
)

func TestCreateStudentDerivesCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "Yes", "No")

	fragment := created.Student.StudentID[:8]
	assert.Equal(t, "student"+fragment, created.Credentials.Username)
	assert.Equal(t, fragment, created.Credentials.Password)

	// The credential row is written in the same call as the record.
	user, err := env.userRepo.FindByUsername(ctx, created.Credentials.Username)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.Equal(t, created.Credentials.Password, user.Password)

	stored, err := env.studentRepo.FindByID(ctx, created.Student.StudentID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Asha Rao", stored.Name)
	assert.NotEmpty(t, stored.CreatedAt)

	assert.Equal(t, "Added student: Asha Rao", env.lastAuditAction(t))
}

func TestCreateStudentRejectsBadStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.students.Create(ctx, "admin", model.CreateStudentRequest{
		Name:         "Asha Rao",
		Class:        "Class 10",
		HostelStatus: "maybe",
		BusStatus:    "No",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	all, err := env.students.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.students.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestSearchStudentsMatchesNameAndClass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createStudent(t, "Asha Rao", "Class 10", "No", "No")
	env.createStudent(t, "Bilal Khan", "Class 11", "No", "No")
	env.createStudent(t, "Chitra Nair", "Class 11", "No", "No")

	// Class substring.
	results, err := env.students.Search(ctx, "admin", "10")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Asha Rao", results[0].Name)

	// Name substring, case-insensitive LIKE.
	results, err = env.students.Search(ctx, "admin", "khan")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bilal Khan", results[0].Name)

	results, err = env.students.Search(ctx, "admin", "Class 11")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchStudentsAuditsEvenWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	results, err := env.students.Search(ctx, "admin", "nobody")
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, "Searched students with term: nobody", env.lastAuditAction(t))
}

func TestStudentResults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")

	_, err := env.reports.Add(ctx, "admin", model.CreateReportCardRequest{
		StudentID: created.Student.StudentID,
		Subject:   "Maths",
		Marks:     "91",
	})
	require.NoError(t, err)

	cards, err := env.students.Results(ctx, created.Student.StudentID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Maths", cards[0].Subject)
	assert.Equal(t, 91, cards[0].Marks)
}
