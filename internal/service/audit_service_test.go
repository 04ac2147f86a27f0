package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, "first action", "admin")
	env.audit.Record(ctx, "second action", "admin")

	entries, err := env.audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "second action", entries[0].Action)
	assert.Equal(t, "first action", entries[1].Action)
	assert.Equal(t, "admin", entries[0].Username)
	assert.NotEmpty(t, entries[0].LogID)
	assert.NotEmpty(t, entries[0].Timestamp)
}
