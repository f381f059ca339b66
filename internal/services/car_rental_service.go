package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// ICarRentalService defines the interface for car rental listing operations.
type ICarRentalService interface {
	Create(ctx context.Context, c *models.CarRental) (*models.CarRental, error)
	List(ctx context.Context, p ListParams) ([]models.CarRental, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.CarRental, error)
	Update(ctx context.Context, id uint, in *models.CarRental) (*models.CarRental, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type carRentalService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewCarRentalService creates a new CarRentalService.
func NewCarRentalService(db *gorm.DB, mailer email.Mailer) ICarRentalService {
	return &carRentalService{db: db, mailer: mailer}
}

// Create stores a provider-submitted car listing and notifies the admin and
// the provider.
func (s *carRentalService) Create(ctx context.Context, c *models.CarRental) (*models.CarRental, error) {
	if c.PriceUnit == "" {
		c.PriceUnit = "per day"
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.CarRentalListingAdmin(c))
	if c.ProviderEmail != "" {
		s.mailer.SendBestEffort(ctx, email.CarRentalListingConfirmation(c))
	}

	return c, nil
}

func (s *carRentalService) List(ctx context.Context, p ListParams) ([]models.CarRental, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.CarRental{})
	tx = applySearch(tx, p.Search, "title", "car_type", "provider_name", "provider_email")

	var cars []models.CarRental
	pg, err := paginate(tx, p, &cars)
	if err != nil {
		return nil, nil, err
	}
	return cars, pg, nil
}

func (s *carRentalService) FindByID(ctx context.Context, id uint) (*models.CarRental, error) {
	var c models.CarRental
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update merges the incoming fields into the stored listing. Images are
// replaced wholesale when provided, since the caller already merged retained
// and freshly uploaded images.
func (s *carRentalService) Update(ctx context.Context, id uint, in *models.CarRental) (*models.CarRental, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&existing.Title, in.Title)
	setIfPresent(&existing.CarType, in.CarType)
	if in.Price > 0 {
		existing.Price = in.Price
	}
	setIfPresent(&existing.PriceUnit, in.PriceUnit)
	setIfPresent(&existing.Seating, in.Seating)
	if in.AC != nil {
		existing.AC = in.AC
	}
	setIfPresent(&existing.Transmission, in.Transmission)
	setIfPresent(&existing.Fuel, in.Fuel)
	setIfPresent(&existing.Description, in.Description)
	if in.Features != nil {
		existing.Features = in.Features
	}
	if in.Specifications != nil {
		existing.Specifications = in.Specifications
	}
	if in.Images != nil {
		existing.Images = in.Images
	}
	setIfPresent(&existing.ProviderName, in.ProviderName)
	setIfPresent(&existing.ProviderEmail, in.ProviderEmail)
	setIfPresent(&existing.ProviderPhone, in.ProviderPhone)

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *carRentalService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.CarRental{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *carRentalService) Chart(ctx context.Context) (*ChartData, error) {
	tx := s.db.WithContext(ctx).Model(&models.CarRental{})
	return chartSeries(tx, "Car Listings", "rgba(54, 162, 235, 0.5)", "rgba(54, 162, 235, 1)")
}
