package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupServiceRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dir := t.TempDir()
	livePath := filepath.Join(dir, "live.db")
	require.NoError(t, os.WriteFile(livePath, []byte("live-bytes"), 0o644))

	svc := NewBackupService(livePath, env.audit, nil)

	result, err := svc.Backup(ctx, "admin", filepath.Join(dir, "snapshot"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "snapshot.db"), result.Path)
	assert.Empty(t, result.ArchiveURL)
	assert.Equal(t, "Database backed up", env.lastAuditAction(t))

	require.NoError(t, os.WriteFile(livePath, []byte("changed"), 0o644))
	require.NoError(t, svc.Restore(ctx, "admin", result.Path))

	restored, err := os.ReadFile(livePath)
	require.NoError(t, err)
	assert.Equal(t, "live-bytes", string(restored))
	assert.Equal(t, "Database restored", env.lastAuditAction(t))
}

func TestRestoreMissingSnapshot(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()

	svc := NewBackupService(filepath.Join(dir, "live.db"), env.audit, nil)
	err := svc.Restore(context.Background(), "admin", filepath.Join(dir, "missing.db"))
	assert.Error(t, err)
}
