package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/email"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// IContactFormService defines the interface for contact form operations.
type IContactFormService interface {
	Create(ctx context.Context, f *models.ContactForm) (*models.ContactForm, error)
	List(ctx context.Context, p ListParams) ([]models.ContactForm, *Pagination, error)
	FindByID(ctx context.Context, id uint) (*models.ContactForm, error)
	Update(ctx context.Context, id uint, in *models.ContactForm) (*models.ContactForm, error)
	Delete(ctx context.Context, id uint) error
	Chart(ctx context.Context) (*ChartData, error)
}

type contactFormService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewContactFormService creates a new ContactFormService.
func NewContactFormService(db *gorm.DB, mailer email.Mailer) IContactFormService {
	return &contactFormService{db: db, mailer: mailer}
}

func (s *contactFormService) Create(ctx context.Context, f *models.ContactForm) (*models.ContactForm, error) {
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}

	s.mailer.SendBestEffort(ctx, email.ContactFormAdmin(f))
	s.mailer.SendBestEffort(ctx, email.ContactFormConfirmation(f))

	return f, nil
}

func (s *contactFormService) List(ctx context.Context, p ListParams) ([]models.ContactForm, *Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.ContactForm{})
	tx = applyStatus(tx, p.Status)
	tx = applySearch(tx, p.Search, "name", "email", "phone", "subject", "message")

	var forms []models.ContactForm
	pg, err := paginate(tx, p, &forms)
	if err != nil {
		return nil, nil, err
	}
	return forms, pg, nil
}

func (s *contactFormService) FindByID(ctx context.Context, id uint) (*models.ContactForm, error) {
	var f models.ContactForm
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *contactFormService) Update(ctx context.Context, id uint, in *models.ContactForm) (*models.ContactForm, error) {
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
	existing.Message = in.Message
	setIfPresent(&existing.Subject, in.Subject)
	if in.Status != "" {
		existing.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}

	if statusChanged {
		s.mailer.SendBestEffort(ctx, email.StatusChange(existing.Email, existing.Name, "message", existing.Status))
	}
	return existing, nil
}

func (s *contactFormService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.ContactForm{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *contactFormService) Chart(ctx context.Context) (*ChartData, error) {
	model := s.db.WithContext(ctx).Model(&models.ContactForm{})

	chart, err := chartSeries(model.Session(&gorm.Session{}), "Contact Form Submissions", "rgba(230, 57, 70, 0.5)", "rgba(230, 57, 70, 1)")
	if err != nil {
		return nil, err
	}
	chart.StatusCounts = statusCounts(model.Session(&gorm.Session{}))
	return chart, nil
}
