package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// ITourPackageDetailService defines the interface for tour package enquiry operations.
type ITourPackageDetailService interface {
	Create(ctx context.Context, d *models.TourPackageDetail) (*models.TourPackageDetail, error)
	List(ctx context.Context, p ListParams) ([]models.TourPackageDetail, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.TourPackageDetail, error)
	Update(ctx context.Context, id uint, in *models.TourPackageDetail) (*models.TourPackageDetail, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type tourPackageDetailService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewTourPackageDetailService creates a new TourPackageDetailService.
func NewTourPackageDetailService(db *gorm.DB, mailer email.Mailer) ITourPackageDetailService {
	return &tourPackageDetailService{db: db, mailer: mailer}
}

func (s *tourPackageDetailService) Create(ctx context.Context, d *models.TourPackageDetail) (*models.TourPackageDetail, error) {
	if d.Adults == 0 {
		d.Adults = 1
	}
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.TourPackageDetailAdmin(d))
	s.mailer.SendBestEffort(ctx, email.TourPackageDetailConfirmation(d))

	return d, nil
}

func (s *tourPackageDetailService) List(ctx context.Context, p ListParams) ([]models.TourPackageDetail, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.TourPackageDetail{})
	tx = applyStatus(tx, p.Status)
	tx = applySearch(tx, p.Search, "name", "email", "phone", "package_name")

	var details []models.TourPackageDetail
	pg, err := paginate(tx, p, &details)
	if err != nil {
		return nil, nil, err
	}
	return details, pg, nil
}

func (s *tourPackageDetailService) FindByID(ctx context.Context, id uint) (*models.TourPackageDetail, error) {
	var d models.TourPackageDetail
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *tourPackageDetailService) Update(ctx context.Context, id uint, in *models.TourPackageDetail) (*models.TourPackageDetail, error) {
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
	setIfPresent(&existing.PackageID, in.PackageID)
	setIfPresent(&existing.PackageName, in.PackageName)
	setIfPresent(&existing.SelectedDate, in.SelectedDate)
	setIfPositive(&existing.Adults, in.Adults)
	setIfPositive(&existing.Children, in.Children)
	setIfPresent(&existing.Message, in.Message)
	if in.Status != "" {
		existing.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.mailer.SendBestEffort(ctx, email.StatusChange(existing.Email, existing.Name, "tour package enquiry", existing.Status))
	}
	return existing, nil
}

func (s *tourPackageDetailService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.TourPackageDetail{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *tourPackageDetailService) Chart(ctx context.Context) (*ChartData, error) {
	model := s.db.WithContext(ctx).Model(&models.TourPackageDetail{})

	chart, err := chartSeries(model.Session(&gorm.Session{}), "Tour Package Bookings", "rgba(255, 152, 0, 0.5)", "rgba(255, 152, 0, 1)")
	if err != nil {
		return nil, err
	}
	chart.StatusCounts = statusCounts(model.Session(&gorm.Session{}))
	return chart, nil
}
