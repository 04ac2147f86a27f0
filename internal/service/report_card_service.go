package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

var ErrInvalidMarks = errors.New("marks must be a number between 0 and 100")

type ReportCardService interface {
	Add(ctx context.Context, actor string, req model.CreateReportCardRequest) (*model.ReportCard, error)
	ListByStudent(ctx context.Context, studentID string) ([]*model.ReportCard, error)
}

type reportCardService struct {
	repo        repository.ReportCardRepository
	studentRepo repository.StudentRepository
	audit       AuditService
}

func NewReportCardService(
	repo repository.ReportCardRepository,
	studentRepo repository.StudentRepository,
	audit AuditService,
) ReportCardService {
	return &reportCardService{repo: repo, studentRepo: studentRepo, audit: audit}
}

func (s *reportCardService) Add(ctx context.Context, actor string, req model.CreateReportCardRequest) (*model.ReportCard, error) {
	marks, ok := utils.ParseMarks(req.Marks)
	if !ok {
		return nil, ErrInvalidMarks
	}

	student, err := s.studentRepo.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	card := &model.ReportCard{
		ReportID:  uuid.New().String(),
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Marks:     marks,
		CreatedAt: utils.Timestamp(),
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Added report card for student: %s", req.StudentID), actor)
	return card, nil
}

func (s *reportCardService) ListByStudent(ctx context.Context, studentID string) ([]*model.ReportCard, error) {
	return s.repo.FindByStudent(ctx, studentID)
}
