package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// AuditService appends system_logs rows. It is a pure write sink for
// the record services; only the admin log listing reads it back.
type AuditService interface {
	// Record appends one row. Failures are logged and swallowed: an
	// audit miss never fails the operation that already committed.
	Record(ctx context.Context, action, actor string)
	List(ctx context.Context) ([]*model.SystemLog, error)
}

type auditService struct {
	repo repository.SystemLogRepository
}

func NewAuditService(repo repository.SystemLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, action, actor string) {
	entry := &model.SystemLog{
		LogID:     uuid.New().String(),
		Action:    action,
		Username:  actor,
		Timestamp: utils.Timestamp(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("audit write failed (%s): %v", action, err)
	}
}

func (s *auditService) List(ctx context.Context) ([]*model.SystemLog, error) {
	return s.repo.FindAll(ctx)
}
