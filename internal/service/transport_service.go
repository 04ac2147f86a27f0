package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/repository"
)

// The prechecks fold "no such student" and "wrong status flag" into a
// single failure, matching the stored-data contract: a row may only
// exist for a student whose flag is Yes, and nothing is written when
// the check fails.
var (
	ErrNotHosteler  = errors.New("student not found or not a hosteler")
	ErrNotBusHolder = errors.New("student not found or not a bus holder")
)

type TransportService interface {
	AddHosteler(ctx context.Context, actor string, req model.CreateHostelerRequest) (*model.Hosteler, error)
	AddBusHolder(ctx context.Context, actor string, req model.CreateBusHolderRequest) (*model.BusHolder, error)
}

type transportService struct {
	studentRepo   repository.StudentRepository
	hostelerRepo  repository.HostelerRepository
	busHolderRepo repository.BusHolderRepository
	audit         AuditService
}

func NewTransportService(
	studentRepo repository.StudentRepository,
	hostelerRepo repository.HostelerRepository,
	busHolderRepo repository.BusHolderRepository,
	audit AuditService,
) TransportService {
	return &transportService{
		studentRepo:   studentRepo,
		hostelerRepo:  hostelerRepo,
		busHolderRepo: busHolderRepo,
		audit:         audit,
	}
}

func (s *transportService) AddHosteler(ctx context.Context, actor string, req model.CreateHostelerRequest) (*model.Hosteler, error) {
	student, err := s.studentRepo.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil || student.HostelStatus != "Yes" {
		return nil, ErrNotHosteler
	}

	hosteler := &model.Hosteler{
		HostelerID:  uuid.New().String(),
		StudentID:   req.StudentID,
		RoomNumber:  req.RoomNumber,
		JoiningDate: req.JoiningDate,
	}
	if err := s.hostelerRepo.Create(ctx, hosteler); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Added hosteler: %s", req.StudentID), actor)
	return hosteler, nil
}

func (s *transportService) AddBusHolder(ctx context.Context, actor string, req model.CreateBusHolderRequest) (*model.BusHolder, error) {
	student, err := s.studentRepo.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil || student.BusStatus != "Yes" {
		return nil, ErrNotBusHolder
	}

	holder := &model.BusHolder{
		BusHolderID: uuid.New().String(),
		StudentID:   req.StudentID,
		RouteNumber: req.RouteNumber,
		PickupPoint: req.PickupPoint,
	}
	if err := s.busHolderRepo.Create(ctx, holder); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, fmt.Sprintf("Added bus holder: %s", req.StudentID), actor)
	return holder, nil
}
