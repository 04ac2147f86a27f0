package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
)

func TestAddReportCardMarksBoundaries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")

	for _, marks := range []string{"0", "100"} {
		card, err := env.reports.Add(ctx, "admin", model.CreateReportCardRequest{
			StudentID: created.Student.StudentID,
			Subject:   "Maths",
			Marks:     marks,
		})
		require.NoError(t, err, "marks %s should be accepted", marks)
		assert.NotEmpty(t, card.ReportID)
	}

	for _, marks := range []string{"-1", "101", "ninety"} {
		_, err := env.reports.Add(ctx, "admin", model.CreateReportCardRequest{
			StudentID: created.Student.StudentID,
			Subject:   "Maths",
			Marks:     marks,
		})
		assert.ErrorIs(t, err, ErrInvalidMarks, "marks %s should be rejected", marks)
	}

	cards, err := env.reports.ListByStudent(ctx, created.Student.StudentID)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestAddReportCardUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.Add(context.Background(), "admin", model.CreateReportCardRequest{
		StudentID: "missing-id",
		Subject:   "Maths",
		Marks:     "80",
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}
