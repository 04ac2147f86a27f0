package service

import (
	"context"
	"log"
	"os"

	"github.com/ahmadqo/school-management-system/internal/database"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// BackupResult reports where the snapshot landed on disk and, when the
// archive is configured, the uploaded object URL.
type BackupResult struct {
	Path       string `json:"path"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

type BackupService interface {
	Backup(ctx context.Context, actor, destinationPath string) (*BackupResult, error)
	Restore(ctx context.Context, actor, sourcePath string) error
}

type backupService struct {
	livePath string
	audit    AuditService
	archive  *utils.ArchiveService // nil when archiving is not configured
}

func NewBackupService(livePath string, audit AuditService, archive *utils.ArchiveService) BackupService {
	return &backupService{livePath: livePath, audit: audit, archive: archive}
}

func (s *backupService) Backup(ctx context.Context, actor, destinationPath string) (*BackupResult, error) {
	dest, err := database.Backup(s.livePath, destinationPath)
	if err != nil {
		return nil, err
	}

	result := &BackupResult{Path: dest}
	if s.archive != nil {
		data, err := os.ReadFile(dest)
		if err == nil {
			url, uploadErr := s.archive.UploadBackup(ctx, data)
			if uploadErr != nil {
				log.Printf("backup archive upload failed: %v", uploadErr)
			} else {
				result.ArchiveURL = url
			}
		}
	}

	s.audit.Record(ctx, "Database backed up", actor)
	return result, nil
}

// Restore overwrites the live database file in place. The copy
// truncates the existing file rather than replacing it so the open
// connection keeps pointing at the same inode; there is no guard
// against writes racing the copy.
func (s *backupService) Restore(ctx context.Context, actor, sourcePath string) error {
	if err := database.Restore(sourcePath, s.livePath); err != nil {
		return err
	}

	s.audit.Record(ctx, "Database restored", actor)
	return nil
}
