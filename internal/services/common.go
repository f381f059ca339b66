package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/models"
)

const chartWindowDays = 30

// ListParams are the query parameters shared by every listing endpoint.
type ListParams struct {
	Page   int
	Limit  int
	Status string // exact match; "" or "all" means no filter
	Search string // case-insensitive substring, OR-ed across entity fields
}

// Normalize applies the page/limit defaults.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Pagination is the paging envelope returned alongside list data.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// ChartDataset is one Chart.js dataset.
type ChartDataset struct {
	Label           string  `json:"label,omitempty"`
	Data            []int64 `json:"data"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderWidth     int     `json:"borderWidth,omitempty"`
}

// ChartData is the day-bucketed series returned by chart endpoints, with an
// optional status breakdown for enquiry entities.
type ChartData struct {
	Labels       []string         `json:"labels"`
	Datasets     []ChartDataset   `json:"datasets"`
	StatusCounts map[string]int64 `json:"statusCounts,omitempty"`
}

// applySearch adds a case-insensitive substring filter OR-ed over fields.
func applySearch(tx *gorm.DB, search string, fields ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" {
		return tx
	}
	pattern := "%" + strings.ToLower(search) + "%"
	clauses := make([]string, len(fields))
	args := make([]interface{}, len(fields))
	for i, f := range fields {
		clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", f)
		args[i] = pattern
	}
	return tx.Where(strings.Join(clauses, " OR "), args...)
}

// applyStatus adds an exact status filter unless status is empty or "all".
func applyStatus(tx *gorm.DB, status string) *gorm.DB {
	if status == "" || status == "all" {
		return tx
	}
	return tx.Where("status = ?", status)
}

// paginate counts the filtered rows, fetches the requested page newest-first
// into dest, and returns the paging envelope.
func paginate(tx *gorm.DB, p ListParams, dest interface{}) (*Pagination, error) {
	p.Normalize()

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (p.Page - 1) * p.Limit
	if err := tx.Order("created_at DESC").Limit(p.Limit).Offset(offset).Find(dest).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: p.Page,
		Limit:       p.Limit,
	}, nil
}

// chartWindow returns the start of the trailing window (midnight UTC,
// chartWindowDays days ago) and the day labels for the window, inclusive of
// both endpoints (chartWindowDays+1 labels).
func chartWindow(now time.Time) (time.Time, []string) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -chartWindowDays)

	labels := make([]string, 0, chartWindowDays+1)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		labels = append(labels, d.Format("2006-01-02"))
	}
	return start, labels
}

// dayCounts buckets rows of the filtered query by creation day. Bucketing
// happens on the application side so it behaves identically on Postgres and
// SQLite.
func dayCounts(tx *gorm.DB, since time.Time) (map[string]int64, error) {
	var timestamps []time.Time
	if err := tx.Where("created_at >= ?", since).Pluck("created_at", &timestamps).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, ts := range timestamps {
		counts[ts.UTC().Format("2006-01-02")]++
	}
	return counts, nil
}

// chartSeries builds the zero-filled day series for the filtered query.
func chartSeries(tx *gorm.DB, label, background, border string) (*ChartData, error) {
	start, labels := chartWindow(time.Now())

	counts, err := dayCounts(tx, start)
	if err != nil {
		return nil, err
	}

	data := make([]int64, len(labels))
	for i, day := range labels {
		data[i] = counts[day]
	}

	return &ChartData{
		Labels: labels,
		Datasets: []ChartDataset{{
			Label:           label,
			Data:            data,
			BackgroundColor: background,
			BorderColor:     border,
			BorderWidth:     1,
		}},
	}, nil
}

// setIfPresent overwrites dst only when the incoming value is non-empty,
// preserving stored values on partial updates.
func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// setIfPositive is setIfPresent for numeric fields.
func setIfPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// statusCounts aggregates row counts per status. When the query fails it
// falls back to zeroed pending/confirmed/cancelled buckets rather than
// failing the chart.
func statusCounts(tx *gorm.DB) map[string]int64 {
	var rows []struct {
		Status string
		Count  int64
	}
	err := tx.Select("status, COUNT(id) as count").Group("status").Scan(&rows).Error
	if err != nil {
		return map[string]int64{
			string(models.StatusPending):   0,
			string(models.StatusConfirmed): 0,
			string(models.StatusCancelled): 0,
		}
	}

	counts := make(map[string]int64, len(models.Statuses()))
	for _, s := range models.Statuses() {
		counts[string(s)] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts
}
