package service

import (
	"testing"

	"booster/internal/api/dto"
	"booster/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSchedulingRepository mocks the SchedulingRepository interface
type MockSchedulingRepository struct {
	mock.Mock
}

func (m *MockSchedulingRepository) FindActiveServices() ([]models.Service, error) {
	args := m.Called()
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockSchedulingRepository) FindServiceByID(id int64) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockSchedulingRepository) FindServiceTypes() ([]models.ServiceType, error) {
	args := m.Called()
	return args.Get(0).([]models.ServiceType), args.Error(1)
}

func (m *MockSchedulingRepository) CreateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockSchedulingRepository) UpdateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockSchedulingRepository) FindAppointmentByID(id int64) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockSchedulingRepository) FindAppointmentsByUser(userID string) ([]models.Appointment, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockSchedulingRepository) FindAllAppointments() ([]models.Appointment, error) {
	args := m.Called()
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := new(MockSchedulingRepository)
	svc := NewSchedulingService(repo)

	repo.On("FindServiceByID", int64(1)).
		Return(&models.Service{ID: 1, Name: "Troca de óleo", Active: true}, nil)
	repo.On("CreateAppointment", mock.MatchedBy(func(appointment *models.Appointment) bool {
		return appointment.ServiceID == 1 &&
			appointment.Status == models.AppointmentStatusPending &&
			appointment.UserID == nil
	})).Return(nil)

	appointment, err := svc.CreateAppointment(nil, &dto.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		Time:      "14:30",
		Phone:     "11999990000",
		Vehicle:   "Gol 1.6 2019",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	repo.AssertExpectations(t)
}

func TestCreateAppointment_BadDate(t *testing.T) {
	repo := new(MockSchedulingRepository)
	svc := NewSchedulingService(repo)

	repo.On("FindServiceByID", int64(1)).
		Return(&models.Service{ID: 1, Active: true}, nil)

	_, err := svc.CreateAppointment(nil, &dto.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "15/09/2026",
		Time:      "14:30",
		Phone:     "11999990000",
		Vehicle:   "Gol 1.6 2019",
	})

	assert.ErrorIs(t, err, ErrInvalidAppointmentDay)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	repo := new(MockSchedulingRepository)
	svc := NewSchedulingService(repo)

	repo.On("FindServiceByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateAppointment(nil, &dto.CreateAppointmentRequest{
		ServiceID: 9,
		Date:      "2026-09-15",
		Time:      "14:30",
		Phone:     "11999990000",
		Vehicle:   "Gol 1.6 2019",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
