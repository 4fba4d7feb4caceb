package service

import (
	"errors"
	"time"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvalidAppointmentDay = errors.New("invalid appointment date")
)

type SchedulingService interface {
	ListServices() ([]models.Service, error)
	GetService(id int64) (*models.Service, error)
	ListServiceTypes() ([]models.ServiceType, error)
	CreateAppointment(userID *string, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	ListMyAppointments(userID string) ([]models.Appointment, error)
	ListAllAppointments() ([]models.Appointment, error)
	UpdateAppointmentStatus(id int64, status string) (*models.Appointment, error)
}

type schedulingService struct {
	repo repository.SchedulingRepository
}

func NewSchedulingService(repo repository.SchedulingRepository) SchedulingService {
	return &schedulingService{repo: repo}
}

func (s *schedulingService) ListServices() ([]models.Service, error) {
	return s.repo.FindActiveServices()
}

func (s *schedulingService) GetService(id int64) (*models.Service, error) {
	service, err := s.repo.FindServiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return service, nil
}

func (s *schedulingService) ListServiceTypes() ([]models.ServiceType, error) {
	return s.repo.FindServiceTypes()
}

func (s *schedulingService) CreateAppointment(userID *string, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	// The booked service must exist and be active
	if _, err := s.GetService(req.ServiceID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDay
	}

	appointment := &models.Appointment{
		ServiceID: req.ServiceID,
		UserID:    userID,
		Date:      date,
		Time:      req.Time,
		Phone:     req.Phone,
		Vehicle:   req.Vehicle,
		Notes:     req.Notes,
		Status:    models.AppointmentStatusPending,
	}

	if err := s.repo.CreateAppointment(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *schedulingService) ListMyAppointments(userID string) ([]models.Appointment, error) {
	return s.repo.FindAppointmentsByUser(userID)
}

func (s *schedulingService) ListAllAppointments() ([]models.Appointment, error) {
	return s.repo.FindAllAppointments()
}

func (s *schedulingService) UpdateAppointmentStatus(id int64, status string) (*models.Appointment, error) {
	appointment, err := s.repo.FindAppointmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	appointment.Status = status
	if err := s.repo.UpdateAppointment(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}
