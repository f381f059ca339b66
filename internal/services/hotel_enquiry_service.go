package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// IHotelEnquiryService defines the interface for hotel booking enquiry operations.
type IHotelEnquiryService interface {
	Create(ctx context.Context, e *models.HotelEnquiry) (*models.HotelEnquiry, error)
	List(ctx context.Context, p ListParams) ([]models.HotelEnquiry, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.HotelEnquiry, error)
	Update(ctx context.Context, id uint, in *models.HotelEnquiry) (*models.HotelEnquiry, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type hotelEnquiryService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewHotelEnquiryService creates a new HotelEnquiryService.
func NewHotelEnquiryService(db *gorm.DB, mailer email.Mailer) IHotelEnquiryService {
	return &hotelEnquiryService{db: db, mailer: mailer}
}

// Create looks up the target hotel, stores the enquiry and notifies the
// admin, the hotel provider and the customer.
func (s *hotelEnquiryService) Create(ctx context.Context, e *models.HotelEnquiry) (*models.HotelEnquiry, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, e.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if e.HotelName == "" {
		e.HotelName = hotel.Name
	}
	if e.Guests == 0 {
		e.Guests = 1
	}
	if e.Rooms == 0 {
		e.Rooms = 1
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.HotelEnquiryAdmin(e, &hotel))
	if hotel.ProviderEmail != "" {
		s.mailer.SendBestEffort(ctx, email.HotelEnquiryProvider(e, &hotel))
	}
	s.mailer.SendBestEffort(ctx, email.HotelEnquiryConfirmation(e, &hotel))

	return e, nil
}

func (s *hotelEnquiryService) List(ctx context.Context, p ListParams) ([]models.HotelEnquiry, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.HotelEnquiry{})
	tx = applyStatus(tx, p.Status)
	tx = applySearch(tx, p.Search, "name", "email", "phone", "hotel_name")

	var enquiries []models.HotelEnquiry
	pg, err := paginate(tx, p, &enquiries)
	if err != nil {
		return nil, nil, err
	}
	return enquiries, pg, nil
}

func (s *hotelEnquiryService) FindByID(ctx context.Context, id uint) (*models.HotelEnquiry, error) {
	var e models.HotelEnquiry
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *hotelEnquiryService) Update(ctx context.Context, id uint, in *models.HotelEnquiry) (*models.HotelEnquiry, error) {
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
	if in.HotelID != 0 {
		existing.HotelID = in.HotelID
	}
	setIfPresent(&existing.HotelName, in.HotelName)
	setIfPresent(&existing.CheckInDate, in.CheckInDate)
	setIfPresent(&existing.CheckOutDate, in.CheckOutDate)
	setIfPositive(&existing.Guests, in.Guests)
	setIfPositive(&existing.Rooms, in.Rooms)
	setIfPresent(&existing.Message, in.Message)
	if in.Status != "" {
		existing.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.mailer.SendBestEffort(ctx, email.StatusChange(existing.Email, existing.Name, "hotel booking enquiry", existing.Status))
	}
	return existing, nil
}

func (s *hotelEnquiryService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.HotelEnquiry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *hotelEnquiryService) Chart(ctx context.Context) (*ChartData, error) {
	model := s.db.WithContext(ctx).Model(&models.HotelEnquiry{})

	chart, err := chartSeries(model.Session(&gorm.Session{}), "Hotel Enquiries", "rgba(75, 192, 192, 0.5)", "rgba(75, 192, 192, 1)")
	if err != nil {
		return nil, err
	}
	chart.StatusCounts = statusCounts(model.Session(&gorm.Session{}))
	return chart, nil
}
