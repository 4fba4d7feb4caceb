package repository

import (
	"booster/internal/api/models"

	"gorm.io/gorm"
)

type SchedulingRepository interface {
	FindActiveServices() ([]models.Service, error)
	FindServiceByID(id int64) (*models.Service, error)
	FindServiceTypes() ([]models.ServiceType, error)
	CreateAppointment(appointment *models.Appointment) error
	UpdateAppointment(appointment *models.Appointment) error
	FindAppointmentByID(id int64) (*models.Appointment, error)
	FindAppointmentsByUser(userID string) ([]models.Appointment, error)
	FindAllAppointments() ([]models.Appointment, error)
}

type schedulingRepository struct {
	db *gorm.DB
}

func NewSchedulingRepository(db *gorm.DB) SchedulingRepository {
	return &schedulingRepository{db: db}
}

func (r *schedulingRepository) FindActiveServices() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("active = true").
		Preload("ServiceType").
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *schedulingRepository) FindServiceByID(id int64) (*models.Service, error) {
	var service models.Service
	err := r.db.Where("id = ?", id).
		Preload("ServiceType").
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *schedulingRepository) FindServiceTypes() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := r.db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *schedulingRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *schedulingRepository) UpdateAppointment(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *schedulingRepository) FindAppointmentByID(id int64) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where("id = ?", id).
		Preload("Service").
		Preload("Service.ServiceType").
		First(&appointment).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *schedulingRepository) FindAppointmentsByUser(userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("user_id = ?", userID).
		Preload("Service").
		Preload("Service.ServiceType").
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *schedulingRepository) FindAllAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("Service").
		Preload("User").
		Order("created_at DESC").
		Find(&appointments).Error
	return appointments, err
}
