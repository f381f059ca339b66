package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/models"
)

// Stats holds the per-entity submission totals shown on the dashboard.
type Stats struct {
	TourPackageDetails int64 `json:"tourPackageDetails"`
	CarRentalDetails   int64 `json:"carRentalDetails"`
	HotelEnquiries     int64 `json:"hotelEnquiries"`
	ContactForms       int64 `json:"contactForms"`
}

// DashboardCharts holds one day-bucketed series per enquiry entity.
type DashboardCharts struct {
	TourPackageDetails *ChartData `json:"tourPackageDetails"`
	CarRentalDetails   *ChartData `json:"carRentalDetails"`
	HotelEnquiries     *ChartData `json:"hotelEnquiries"`
	ContactForms       *ChartData `json:"contactForms"`
}

// Activity is one entry in the recent activity feed.
type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// QuickStats summarises submission volume over the common reporting windows.
type QuickStats struct {
	Today          int64 `json:"today"`
	Week           int64 `json:"week"`
	Month          int64 `json:"month"`
	ConversionRate int   `json:"conversionRate"`
}

// IDashboardService defines the interface for admin dashboard aggregations.
type IDashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	ChartData(ctx context.Context) (*DashboardCharts, error)
	RecentActivity(ctx context.Context) ([]Activity, error)
	QuickStats(ctx context.Context) (*QuickStats, error)
}

type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *gorm.DB) IDashboardService {
	return &dashboardService{db: db}
}

func (s *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.TourPackageDetail{}, &stats.TourPackageDetails},
		{&models.CarRentalDetail{}, &stats.CarRentalDetails},
		{&models.HotelEnquiry{}, &stats.HotelEnquiries},
		{&models.ContactForm{}, &stats.ContactForms},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

// ChartData builds the trailing-window series for each enquiry entity. The
// datasets carry only the counts; the admin panel supplies its own styling.
func (s *dashboardService) ChartData(ctx context.Context) (*DashboardCharts, error) {
	series := func(model interface{}) (*ChartData, error) {
		tx := s.db.WithContext(ctx).Model(model)
		chart, err := chartSeries(tx, "", "", "")
		if err != nil {
			return nil, err
		}
		return chart, nil
	}

	var charts DashboardCharts
	var err error
	if charts.TourPackageDetails, err = series(&models.TourPackageDetail{}); err != nil {
		return nil, err
	}
	if charts.CarRentalDetails, err = series(&models.CarRentalDetail{}); err != nil {
		return nil, err
	}
	if charts.HotelEnquiries, err = series(&models.HotelEnquiry{}); err != nil {
		return nil, err
	}
	if charts.ContactForms, err = series(&models.ContactForm{}); err != nil {
		return nil, err
	}
	return &charts, nil
}

// RecentActivity merges the five newest submissions of each enquiry entity
// into a single feed, newest first, capped at ten entries.
func (s *dashboardService) RecentActivity(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	var tours []models.TourPackageDetail
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(5).Find(&tours).Error; err != nil {
		return nil, err
	}
	for _, t := range tours {
		activities = append(activities, Activity{
			Type:      "tourPackage",
			Message:   "New tour package enquiry from " + orAnonymous(t.Name),
			Timestamp: t.CreatedAt,
		})
	}

	var cars []models.CarRentalDetail
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(5).Find(&cars).Error; err != nil {
		return nil, err
	}
	for _, c := range cars {
		activities = append(activities, Activity{
			Type:      "carRental",
			Message:   "New car rental enquiry from " + orAnonymous(c.Name),
			Timestamp: c.CreatedAt,
		})
	}

	var hotels []models.HotelEnquiry
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(5).Find(&hotels).Error; err != nil {
		return nil, err
	}
	for _, h := range hotels {
		activities = append(activities, Activity{
			Type:      "hotel",
			Message:   "New hotel booking enquiry from " + orAnonymous(h.Name),
			Timestamp: h.CreatedAt,
		})
	}

	var contacts []models.ContactForm
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(5).Find(&contacts).Error; err != nil {
		return nil, err
	}
	for _, f := range contacts {
		activities = append(activities, Activity{
			Type:      "contact",
			Message:   "New contact form submission from " + orAnonymous(f.Name),
			Timestamp: f.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}
	return activities, nil
}

func (s *dashboardService) QuickStats(ctx context.Context) (*QuickStats, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Weeks start on Sunday.
	startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	enquiryModels := []interface{}{
		&models.TourPackageDetail{},
		&models.CarRentalDetail{},
		&models.HotelEnquiry{},
		&models.ContactForm{},
	}

	countSince := func(model interface{}, since time.Time) (int64, error) {
		var n int64
		err := s.db.WithContext(ctx).Model(model).Where("created_at >= ?", since).Count(&n).Error
		return n, err
	}

	var qs QuickStats
	for _, m := range enquiryModels {
		n, err := countSince(m, today)
		if err != nil {
			return nil, err
		}
		qs.Today += n
		if n, err = countSince(m, startOfWeek); err != nil {
			return nil, err
		}
		qs.Week += n
		if n, err = countSince(m, startOfMonth); err != nil {
			return nil, err
		}
		qs.Month += n
	}

	qs.ConversionRate = s.conversionRate(ctx)
	return &qs, nil
}

// conversionRate is the percentage of bookable enquiries that reached the
// confirmed status. Aggregation failures degrade to zero instead of failing
// the whole endpoint.
func (s *dashboardService) conversionRate(ctx context.Context) int {
	statusModels := []interface{}{
		&models.TourPackageDetail{},
		&models.CarRentalDetail{},
		&models.HotelEnquiry{},
	}

	var confirmed, total int64
	for _, m := range statusModels {
		var n int64
		if err := s.db.WithContext(ctx).Model(m).Where("status = ?", models.StatusConfirmed).Count(&n).Error; err != nil {
			return 0
		}
		confirmed += n
		if err := s.db.WithContext(ctx).Model(m).Count(&n).Error; err != nil {
			return 0
		}
		total += n
	}

	if total == 0 {
		return 0
	}
	return int(float64(confirmed)/float64(total)*100 + 0.5)
}

func orAnonymous(name string) string {
	if name == "" {
		return "Anonymous"
	}
	return name
}
