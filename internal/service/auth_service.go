package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmadqo/school-management-system/internal/config"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

// Request & response DTOs
type LoginRequest struct {
	Role     string `json:"role"` // admin | student
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Session model.Session   `json:"session"`
	Token   utils.TokenPair `json:"token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrStudentRecordNotFound = errors.New("student record not found")
	ErrPasswordIncorrect     = errors.New("current password is incorrect")
	ErrPasswordConfirm       = errors.New("new passwords do not match")
	ErrUserNotFound          = errors.New("user not found")
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error)
	ChangePassword(ctx context.Context, username string, req model.ChangePasswordRequest) error
}

type authService struct {
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
	audit       AuditService
	cfg         *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	audit AuditService,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		audit:       audit,
		cfg:         cfg,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	switch model.Role(req.Role) {
	case model.RoleStudent:
		return s.studentLogin(ctx, req)
	default:
		return s.adminLogin(ctx, req)
	}
}

func (s *authService) adminLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	s.audit.Record(ctx, "Admin logged in", user.Username)
	return s.issueSession(model.Session{Username: user.Username, Role: model.RoleAdmin})
}

func (s *authService) studentLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Derive the student-id fragment by stripping the literal
	// "student" from the username, then resolve by substring match,
	// first row in storage order. Generated ids that overlap as
	// substrings collide here; the behavior is load-bearing for
	// credentials issued by student creation and is kept verbatim.
	fragment := strings.ReplaceAll(user.Username, "student", "")
	student, err := s.studentRepo.FindByIDFragment(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentRecordNotFound
	}

	s.audit.Record(ctx, "Student logged in", user.Username)
	return s.issueSession(model.Session{
		Username:  user.Username,
		Role:      model.RoleStudent,
		StudentID: student.StudentID,
	})
}

func (s *authService) issueSession(session model.Session) (*LoginResponse, error) {
	claims := model.JWTClaims{
		Username:  session.Username,
		Role:      string(session.Role),
		StudentID: session.StudentID,
	}

	tokenPair, err := utils.GenerateTokenPair(
		claims,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpireHours,
		s.cfg.JWT.RefreshExpHours,
	)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Session: session, Token: *tokenPair}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ValidateToken(refreshToken, s.cfg.JWT.Secret)
	if err != nil {
		return nil, errors.New("refresh token invalid or expired")
	}

	user, err := s.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return utils.GenerateTokenPair(
		*claims,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpireHours,
		s.cfg.JWT.RefreshExpHours,
	)
}

// ChangePassword is the single update the credential table supports.
func (s *authService) ChangePassword(ctx context.Context, username string, req model.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordConfirm
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password != req.CurrentPassword {
		return ErrPasswordIncorrect
	}

	if err := s.userRepo.UpdatePassword(ctx, username, req.NewPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.audit.Record(ctx, "Changed password", username)
	return nil
}
