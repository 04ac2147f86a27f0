package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
)

func TestRecordPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")

	txn, err := env.fees.RecordPayment(ctx, "admin", model.CreateFeeTransactionRequest{
		StudentID: created.Student.StudentID,
		FeeType:   "Class",
		Amount:    "2500.50",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.TransactionID)
	assert.Equal(t, 2500.50, txn.Amount)
	assert.NotEmpty(t, txn.PaymentDate)

	payments, err := env.fees.Payments(ctx, created.Student.StudentID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	assert.Equal(t, "Recorded payment for student: "+created.Student.StudentID, env.lastAuditAction(t))
}

func TestRecordPaymentRejectsBadAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")

	_, err := env.fees.RecordPayment(ctx, "admin", model.CreateFeeTransactionRequest{
		StudentID: created.Student.StudentID,
		FeeType:   "Class",
		Amount:    "lots",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPaymentUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.fees.RecordPayment(context.Background(), "admin", model.CreateFeeTransactionRequest{
		StudentID: "missing-id",
		FeeType:   "Class",
		Amount:    "100",
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestTuitionFee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tenth := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")
	other := env.createStudent(t, "Bilal Khan", "Class 12", "No", "No")

	fee, err := env.fees.TuitionFee(ctx, tenth.Student.StudentID)
	require.NoError(t, err)
	assert.True(t, fee.Found)
	assert.Equal(t, 5000.0, fee.Amount)

	// No scheduled amount for Class 12.
	fee, err = env.fees.TuitionFee(ctx, other.Student.StudentID)
	require.NoError(t, err)
	assert.False(t, fee.Found)

	_, err = env.fees.TuitionFee(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

// The certificate gate is the fixed threshold, not the fee schedule:
// one cent short is refused, exactly at the line passes.
func TestGenerateNoDuesThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")
	id := created.Student.StudentID
	dest := filepath.Join(t.TempDir(), "cert")

	env.recordPayment(t, id, "5000")
	env.recordPayment(t, id, "4999.75")

	_, err := env.fees.GenerateNoDues(ctx, "admin", id, dest)
	assert.ErrorIs(t, err, ErrPendingDues)

	env.recordPayment(t, id, "0.25")

	cert, err := env.fees.GenerateNoDues(ctx, "admin", id, dest)
	require.NoError(t, err)

	// The default extension is appended when none was given.
	assert.Equal(t, dest+".txt", cert.Path)

	expected := fmt.Sprintf(
		"No Dues Certificate\nStudent ID: %s\nName: %s\nDate: %s\nThis certifies that the student has no pending dues.",
		id, "Asha Rao", cert.Date,
	)
	assert.Equal(t, expected, cert.Content)

	written, err := os.ReadFile(cert.Path)
	require.NoError(t, err)
	assert.Equal(t, expected, string(written))

	assert.Equal(t, "Generated no dues for student: "+id, env.lastAuditAction(t))
}

func TestGenerateNoDuesUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.fees.GenerateNoDues(context.Background(), "admin", "missing-id", "cert.txt")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestNoDuesPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "No", "No")
	id := created.Student.StudentID

	env.recordPayment(t, id, "10000")

	data, name, err := env.fees.NoDuesPDF(ctx, "admin", id)
	require.NoError(t, err)
	assert.Equal(t, "no-dues-"+id[:8]+".pdf", name)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}
