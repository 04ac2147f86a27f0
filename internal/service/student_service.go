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

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidStatus   = errors.New("hostel and bus status must be Yes or No")
)

// credentialFragmentLen is how much of the generated student id seeds
// the paired login: username "student"+fragment, password the fragment
// itself. Changing it invalidates every credential already issued.
const credentialFragmentLen = 8

type StudentService interface {
	Create(ctx context.Context, actor string, req model.CreateStudentRequest) (*model.CreatedStudent, error)
	GetAll(ctx context.Context) ([]*model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Search(ctx context.Context, actor, term string) ([]*model.Student, error)
	Results(ctx context.Context, studentID string) ([]*model.ReportCard, error)
}

type studentService struct {
	repo       repository.StudentRepository
	userRepo   repository.UserRepository
	reportRepo repository.ReportCardRepository
	audit      AuditService
}

func NewStudentService(
	repo repository.StudentRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportCardRepository,
	audit AuditService,
) StudentService {
	return &studentService{
		repo:       repo,
		userRepo:   userRepo,
		reportRepo: reportRepo,
		audit:      audit,
	}
}

// Create inserts the student row and its paired login credential. The
// credential is returned exactly once, in the creation response.
func (s *studentService) Create(ctx context.Context, actor string, req model.CreateStudentRequest) (*model.CreatedStudent, error) {
	if !utils.IsYesNo(req.HostelStatus) || !utils.IsYesNo(req.BusStatus) {
		return nil, ErrInvalidStatus
	}

	student := &model.Student{
		StudentID:    uuid.New().String(),
		Name:         req.Name,
		Class:        req.Class,
		HostelStatus: req.HostelStatus,
		BusStatus:    req.BusStatus,
		CreatedAt:    utils.Timestamp(),
	}

	fragment := student.StudentID[:credentialFragmentLen]
	credentials := model.StudentCredentials{
		Username: "student" + fragment,
		Password: fragment,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	user := &model.User{
		Username: credentials.Username,
		Password: credentials.Password,
		Role:     model.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("student created but credential insert failed: %w", err)
	}

	s.audit.Record(ctx, fmt.Sprintf("Added student: %s", student.Name), actor)

	return &model.CreatedStudent{Student: *student, Credentials: credentials}, nil
}

func (s *studentService) GetAll(ctx context.Context) ([]*model.Student, error) {
	return s.repo.FindAll(ctx)
}

func (s *studentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// Search logs the term to the audit trail whether or not anything
// matched.
func (s *studentService) Search(ctx context.Context, actor, term string) ([]*model.Student, error) {
	students, err := s.repo.Search(ctx, model.StudentFilter{Search: term})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Searched students with term: %s", term), actor)
	return students, nil
}

// Results is the student-dashboard report card listing.
func (s *studentService) Results(ctx context.Context, studentID string) ([]*model.ReportCard, error) {
	return s.reportRepo.FindByStudent(ctx, studentID)
}
