package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// IHomeEnquiryService defines the interface for home page enquiry operations.
type IHomeEnquiryService interface {
	Create(ctx context.Context, e *models.HomeEnquiry) (*models.HomeEnquiry, error)
	List(ctx context.Context, formType string, p ListParams) ([]models.HomeEnquiry, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.HomeEnquiry, error)
	Update(ctx context.Context, id uint, in *models.HomeEnquiry) (*models.HomeEnquiry, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context, formType string) (*ChartData, error)
}

type homeEnquiryService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewHomeEnquiryService creates a new HomeEnquiryService.
func NewHomeEnquiryService(db *gorm.DB, mailer email.Mailer) IHomeEnquiryService {
	return &homeEnquiryService{db: db, mailer: mailer}
}

// variantFields checks the fields each form variant requires on top of the
// common name/email/phone set.
func variantFields(e *models.HomeEnquiry) bool {
	switch e.FormType {
	case models.FormTypeCars:
		return e.FromLocation != "" && e.ToLocation != "" && e.PickupDate != ""
	case models.FormTypeTourPackages:
		return e.PackageType != "" && e.TravelDate != ""
	case models.FormTypeHotels:
		return e.Destination != "" && e.CheckIn != "" && e.CheckOut != ""
	}
	return false
}

func (s *homeEnquiryService) Create(ctx context.Context, e *models.HomeEnquiry) (*models.HomeEnquiry, error) {
	if !e.FormType.Valid() {
		return nil, ErrInvalidFormType
	}
	if !variantFields(e) {
		return nil, ErrMissingFields
	}

	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.HomeEnquiryAdmin(e))
	s.mailer.SendBestEffort(ctx, email.HomeEnquiryConfirmation(e))

	return e, nil
}

func (s *homeEnquiryService) List(ctx context.Context, formType string, p ListParams) ([]models.HomeEnquiry, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.HomeEnquiry{})
	if formType != "" && formType != "all" {
		if !models.FormType(formType).Valid() {
			return nil, nil, ErrInvalidFormType
		}
		tx = tx.Where("form_type = ?", formType)
	}
	tx = applyStatus(tx, p.Status)
	tx = applySearch(tx, p.Search, "name", "email", "phone", "from_location", "to_location", "destination", "package_type")

	var enquiries []models.HomeEnquiry
	pg, err := paginate(tx, p, &enquiries)
	if err != nil {
		return nil, nil, err
	}
	return enquiries, pg, nil
}

func (s *homeEnquiryService) FindByID(ctx context.Context, id uint) (*models.HomeEnquiry, error) {
	var e models.HomeEnquiry
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *homeEnquiryService) Update(ctx context.Context, id uint, in *models.HomeEnquiry) (*models.HomeEnquiry, error) {
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
	setIfPresent(&existing.FromLocation, in.FromLocation)
	setIfPresent(&existing.ToLocation, in.ToLocation)
	setIfPresent(&existing.PickupDate, in.PickupDate)
	setIfPresent(&existing.CarType, in.CarType)
	setIfPresent(&existing.PackageType, in.PackageType)
	setIfPresent(&existing.TravelDate, in.TravelDate)
	setIfPresent(&existing.Duration, in.Duration)
	setIfPresent(&existing.Travelers, in.Travelers)
	setIfPresent(&existing.Destination, in.Destination)
	setIfPresent(&existing.CheckIn, in.CheckIn)
	setIfPresent(&existing.CheckOut, in.CheckOut)
	setIfPresent(&existing.Rooms, in.Rooms)
	if in.Status != "" {
		existing.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.mailer.SendBestEffort(ctx, email.StatusChange(existing.Email, existing.Name, "enquiry", existing.Status))
	}
	return existing, nil
}

func (s *homeEnquiryService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.HomeEnquiry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *homeEnquiryService) Chart(ctx context.Context, formType string) (*ChartData, error) {
	tx := s.db.WithContext(ctx).Model(&models.HomeEnquiry{})
	label := "All Enquiries"
	if formType != "" && formType != "all" {
		if !models.FormType(formType).Valid() {
			return nil, ErrInvalidFormType
		}
		tx = tx.Where("form_type = ?", formType)
		label = formType + " Enquiries"
	}

	chart, err := chartSeries(tx.Session(&gorm.Session{}), label, "rgba(63, 81, 181, 0.5)", "rgba(63, 81, 181, 1)")
	if err != nil {
		return nil, err
	}
	chart.StatusCounts = statusCounts(tx.Session(&gorm.Session{}))
	return chart, nil
}
