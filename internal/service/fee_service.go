package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// NoDuesThreshold is the cumulative payment total at or above which a
// student is considered clear of dues. It is a fixed constant and is
// deliberately not derived from the per-class fee schedule; the two
// have never been connected in this system's data.
const NoDuesThreshold = 10000.0

var ErrPendingDues = errors.New("student has pending dues")

type FeeService interface {
	RecordPayment(ctx context.Context, actor string, req model.CreateFeeTransactionRequest) (*model.FeeTransaction, error)
	Payments(ctx context.Context, studentID string) ([]*model.FeeTransaction, error)
	TuitionFee(ctx context.Context, studentID string) (*model.TuitionFee, error)
	GenerateNoDues(ctx context.Context, actor, studentID, destinationPath string) (*model.NoDuesCertificate, error)
	NoDuesPDF(ctx context.Context, actor, studentID string) ([]byte, string, error)
}

type feeService struct {
	repo        repository.FeeRepository
	studentRepo repository.StudentRepository
	audit       AuditService
	archive     *utils.ArchiveService // nil when archiving is not configured
}

func NewFeeService(
	repo repository.FeeRepository,
	studentRepo repository.StudentRepository,
	audit AuditService,
	archive *utils.ArchiveService,
) FeeService {
	return &feeService{
		repo:        repo,
		studentRepo: studentRepo,
		audit:       audit,
		archive:     archive,
	}
}

func (s *feeService) RecordPayment(ctx context.Context, actor string, req model.CreateFeeTransactionRequest) (*model.FeeTransaction, error) {
	amount, ok := utils.ParseAmount(req.Amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	student, err := s.studentRepo.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	txn := &model.FeeTransaction{
		TransactionID: uuid.New().String(),
		StudentID:     req.StudentID,
		FeeType:       req.FeeType,
		Amount:        amount,
		PaymentDate:   utils.Timestamp(),
	}
	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Recorded payment for student: %s", req.StudentID), actor)
	return txn, nil
}

func (s *feeService) Payments(ctx context.Context, studentID string) ([]*model.FeeTransaction, error) {
	return s.repo.FindByStudent(ctx, studentID)
}

// TuitionFee resolves the student's class against the fee schedule.
// A class with no schedule row reports Found=false rather than an
// error; a missing student is a real error.
func (s *feeService) TuitionFee(ctx context.Context, studentID string) (*model.TuitionFee, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	schedule, err := s.repo.FindScheduleByClass(ctx, student.Class)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return &model.TuitionFee{Class: student.Class, Found: false}, nil
	}

	return &model.TuitionFee{Class: schedule.Class, Amount: schedule.Amount, Found: true}, nil
}

// GenerateNoDues writes the plain-text certificate to destinationPath.
// Generation is refused while the summed payments are strictly below
// the threshold.
func (s *feeService) GenerateNoDues(ctx context.Context, actor, studentID, destinationPath string) (*model.NoDuesCertificate, error) {
	student, total, err := s.checkDues(ctx, studentID)
	if err != nil {
		return nil, err
	}

	cert := &model.NoDuesCertificate{
		StudentID: student.StudentID,
		Name:      student.Name,
		Date:      utils.DateStamp(),
	}
	cert.Content = utils.RenderNoDuesText(utils.NoDuesData{
		StudentID: cert.StudentID,
		Name:      cert.Name,
		Date:      cert.Date,
		TotalPaid: total,
	})

	if filepath.Ext(destinationPath) == "" {
		destinationPath += ".txt"
	}
	if err := os.WriteFile(destinationPath, []byte(cert.Content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write certificate: %w", err)
	}
	cert.Path = destinationPath

	s.audit.Record(ctx, fmt.Sprintf("Generated no dues for student: %s", studentID), actor)
	return cert, nil
}

// NoDuesPDF renders the printable certificate and returns the bytes
// plus a download file name. The dues gate is identical to the text
// version.
func (s *feeService) NoDuesPDF(ctx context.Context, actor, studentID string) ([]byte, string, error) {
	student, total, err := s.checkDues(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateQRToken()
	if err != nil {
		return nil, "", err
	}
	qrPNG, err := utils.GenerateQRCodePNG(token, 256)
	if err != nil {
		return nil, "", err
	}

	data := utils.NoDuesData{
		StudentID: student.StudentID,
		Name:      student.Name,
		Class:     student.Class,
		Date:      utils.DateStamp(),
		TotalPaid: total,
		QRToken:   token,
	}
	pdfBytes, err := utils.RenderNoDuesPDF(data, qrPNG)
	if err != nil {
		return nil, "", err
	}

	if s.archive != nil {
		if _, err := s.archive.UploadPDF(ctx, "no-dues-"+student.Name, pdfBytes); err != nil {
			// Archiving is best effort; the caller still gets the PDF.
			log.Printf("archive upload failed: %v", err)
		}
	}

	s.audit.Record(ctx, fmt.Sprintf("Generated no dues for student: %s", studentID), actor)

	fileName := fmt.Sprintf("no-dues-%s.pdf", student.StudentID[:8])
	return pdfBytes, fileName, nil
}

func (s *feeService) checkDues(ctx context.Context, studentID string) (*model.Student, float64, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	if student == nil {
		return nil, 0, ErrStudentNotFound
	}

	total, err := s.repo.SumAmountByStudent(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	if total < NoDuesThreshold {
		return nil, 0, ErrPendingDues
	}
	return student, total, nil
}
