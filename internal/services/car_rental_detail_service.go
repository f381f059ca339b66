package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// ICarRentalDetailService defines the interface for car rental enquiry operations.
type ICarRentalDetailService interface {
	Create(ctx context.Context, d *models.CarRentalDetail) (*models.CarRentalDetail, error)
	List(ctx context.Context, p ListParams) ([]models.CarRentalDetail, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.CarRentalDetail, error)
	Update(ctx context.Context, id uint, in *models.CarRentalDetail) (*models.CarRentalDetail, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type carRentalDetailService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewCarRentalDetailService creates a new CarRentalDetailService.
func NewCarRentalDetailService(db *gorm.DB, mailer email.Mailer) ICarRentalDetailService {
	return &carRentalDetailService{db: db, mailer: mailer}
}

func (s *carRentalDetailService) Create(ctx context.Context, d *models.CarRentalDetail) (*models.CarRentalDetail, error) {
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.CarRentalDetailAdmin(d))
	s.mailer.SendBestEffort(ctx, email.CarRentalDetailConfirmation(d))

	return d, nil
}

func (s *carRentalDetailService) List(ctx context.Context, p ListParams) ([]models.CarRentalDetail, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.CarRentalDetail{})
	tx = applyStatus(tx, p.Status)
	tx = applySearch(tx, p.Search, "name", "email", "phone", "car_name", "pickup_location", "return_location")

	var details []models.CarRentalDetail
	pg, err := paginate(tx, p, &details)
	if err != nil {
		return nil, nil, err
	}
	return details, pg, nil
}

func (s *carRentalDetailService) FindByID(ctx context.Context, id uint) (*models.CarRentalDetail, error) {
	var d models.CarRentalDetail
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *carRentalDetailService) Update(ctx context.Context, id uint, in *models.CarRentalDetail) (*models.CarRentalDetail, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" && !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	statusChanged := in.Status != "" && in.Status != existing.Status

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	setIfPresent(&existing.CarID, in.CarID)
	setIfPresent(&existing.CarName, in.CarName)
	setIfPresent(&existing.PickupLocation, in.PickupLocation)
	setIfPresent(&existing.ReturnLocation, in.ReturnLocation)
	setIfPresent(&existing.PickupDate, in.PickupDate)
	setIfPresent(&existing.ReturnDate, in.ReturnDate)
	setIfPresent(&existing.Message, in.Message)
	if in.Status != "" {
		existing.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.mailer.SendBestEffort(ctx, email.StatusChange(existing.Email, existing.Name, "car rental enquiry", existing.Status))
	}
	return existing, nil
}

func (s *carRentalDetailService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.CarRentalDetail{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *carRentalDetailService) Chart(ctx context.Context) (*ChartData, error) {
	model := s.db.WithContext(ctx).Model(&models.CarRentalDetail{})

	chart, err := chartSeries(model.Session(&gorm.Session{}), "Car Rental Bookings", "rgba(156, 39, 176, 0.5)", "rgba(156, 39, 176, 1)")
	if err != nil {
		return nil, err
	}
	chart.StatusCounts = statusCounts(model.Session(&gorm.Session{}))
	return chart, nil
}
