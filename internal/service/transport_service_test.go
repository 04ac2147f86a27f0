package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadqo/school-management-system/internal/model"
)

func TestAddHosteler(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Asha Rao", "Class 10", "Yes", "No")

	hosteler, err := env.transport.AddHosteler(ctx, "admin", model.CreateHostelerRequest{
		StudentID:   created.Student.StudentID,
		RoomNumber:  "B-204",
		JoiningDate: "2026-06-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hosteler.HostelerID)
	assert.Equal(t, "B-204", hosteler.RoomNumber)

	count, err := env.hostelerRepo.CountByStudent(ctx, created.Student.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, "Added hosteler: "+created.Student.StudentID, env.lastAuditAction(t))
}

func TestAddHostelerRefusedWhenFlagIsNo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Bilal Khan", "Class 11", "No", "Yes")

	_, err := env.transport.AddHosteler(ctx, "admin", model.CreateHostelerRequest{
		StudentID:   created.Student.StudentID,
		RoomNumber:  "B-204",
		JoiningDate: "2026-06-01",
	})
	assert.ErrorIs(t, err, ErrNotHosteler)

	// Refusal leaves no row behind.
	count, err := env.hostelerRepo.CountByStudent(ctx, created.Student.StudentID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddHostelerUnknownStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.transport.AddHosteler(context.Background(), "admin", model.CreateHostelerRequest{
		StudentID:   "missing-id",
		RoomNumber:  "B-204",
		JoiningDate: "2026-06-01",
	})
	assert.ErrorIs(t, err, ErrNotHosteler)
}

func TestAddBusHolder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Chitra Nair", "Class 10", "No", "Yes")

	holder, err := env.transport.AddBusHolder(ctx, "admin", model.CreateBusHolderRequest{
		StudentID:   created.Student.StudentID,
		RouteNumber: "7",
		PickupPoint: "Market Square",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, holder.BusHolderID)
	assert.Equal(t, "Market Square", holder.PickupPoint)

	assert.Equal(t, "Added bus holder: "+created.Student.StudentID, env.lastAuditAction(t))
}

func TestAddBusHolderRefusedWhenFlagIsNo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createStudent(t, "Chitra Nair", "Class 10", "Yes", "No")

	_, err := env.transport.AddBusHolder(ctx, "admin", model.CreateBusHolderRequest{
		StudentID:   created.Student.StudentID,
		RouteNumber: "7",
		PickupPoint: "Market Square",
	})
	assert.ErrorIs(t, err, ErrNotBusHolder)

	count, err := env.busHolderRepo.CountByStudent(ctx, created.Student.StudentID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
