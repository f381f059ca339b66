package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// IHotelService defines the interface for hotel listing operations.
type IHotelService interface {
	Create(ctx context.Context, h *models.Hotel) (*models.Hotel, error)
	List(ctx context.Context, p ListParams) ([]models.Hotel, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.Hotel, error)
	Update(ctx context.Context, id uint, in *models.Hotel) (*models.Hotel, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type hotelService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewHotelService creates a new HotelService.
func NewHotelService(db *gorm.DB, mailer email.Mailer) IHotelService {
	return &hotelService{db: db, mailer: mailer}
}

func (s *hotelService) Create(ctx context.Context, h *models.Hotel) (*models.Hotel, error) {
	if err := s.db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.HotelListingAdmin(h))
	if h.ProviderEmail != "" {
		s.mailer.SendBestEffort(ctx, email.HotelListingConfirmation(h))
	}

	return h, nil
}

func (s *hotelService) List(ctx context.Context, p ListParams) ([]models.Hotel, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.Hotel{})
	tx = applySearch(tx, p.Search, "name", "location", "type", "provider_name", "provider_email")

	var hotels []models.Hotel
	pg, err := paginate(tx, p, &hotels)
	if err != nil {
		return nil, nil, err
	}
	return hotels, pg, nil
}

func (s *hotelService) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var h models.Hotel
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (s *hotelService) Update(ctx context.Context, id uint, in *models.Hotel) (*models.Hotel, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&existing.Name, in.Name)
	setIfPresent(&existing.Location, in.Location)
	if in.Price > 0 {
		existing.Price = in.Price
	}
	if in.Rating > 0 {
		existing.Rating = in.Rating
	}
	setIfPresent(&existing.Type, in.Type)
	setIfPresent(&existing.Description, in.Description)
	if in.Images != nil {
		existing.Images = in.Images
	}
	if in.Amenities != nil {
		existing.Amenities = in.Amenities
	}
	setIfPresent(&existing.ProviderName, in.ProviderName)
	setIfPresent(&existing.ProviderEmail, in.ProviderEmail)
	setIfPresent(&existing.ProviderPhone, in.ProviderPhone)

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *hotelService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *hotelService) Chart(ctx context.Context) (*ChartData, error) {
	tx := s.db.WithContext(ctx).Model(&models.Hotel{})
	return chartSeries(tx, "Hotel Listings", "rgba(75, 192, 192, 0.5)", "rgba(75, 192, 192, 1)")
}
