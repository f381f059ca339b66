package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/models"
)

func TestHomeEnquiryService_VariantValidation(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	svc := NewHomeEnquiryService(db, mailer)
	ctx := context.Background()

	base := models.HomeEnquiry{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"}

	// cars needs from/to locations and a pickup date.
	cars := base
	cars.FormType = models.FormTypeCars
	cars.FromLocation = "Chennai"
	cars.ToLocation = "Pondicherry"
	_, err := svc.Create(ctx, &cars)
	assert.ErrorIs(t, err, ErrMissingFields)

	cars.PickupDate = "2023-06-15"
	created, err := svc.Create(ctx, &cars)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Len(t, mailer.sent, 2)

	// tourPackages needs a package type and travel date.
	tour := base
	tour.FormType = models.FormTypeTourPackages
	tour.PackageType = "honeymoon"
	_, err = svc.Create(ctx, &tour)
	assert.ErrorIs(t, err, ErrMissingFields)

	tour.TravelDate = "2023-09-01"
	_, err = svc.Create(ctx, &tour)
	require.NoError(t, err)

	// hotels needs destination and both stay dates.
	hotels := base
	hotels.FormType = models.FormTypeHotels
	hotels.Destination = "Ooty"
	hotels.CheckIn = "2023-10-01"
	_, err = svc.Create(ctx, &hotels)
	assert.ErrorIs(t, err, ErrMissingFields)

	hotels.CheckOut = "2023-10-04"
	_, err = svc.Create(ctx, &hotels)
	require.NoError(t, err)

	unknown := base
	unknown.FormType = "flights"
	_, err = svc.Create(ctx, &unknown)
	assert.ErrorIs(t, err, ErrInvalidFormType)
}

func TestHomeEnquiryService_ListByType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHomeEnquiryService(db, &recordingMailer{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &models.HomeEnquiry{
			FormType: models.FormTypeCars, Name: "Car Customer", Email: "cars@example.com", Phone: "1",
			FromLocation: "A", ToLocation: "B", PickupDate: "2023-06-15",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, &models.HomeEnquiry{
		FormType: models.FormTypeHotels, Name: "Hotel Customer", Email: "hotels@example.com", Phone: "2",
		Destination: "Ooty", CheckIn: "2023-10-01", CheckOut: "2023-10-04",
	})
	require.NoError(t, err)

	rows, pg, err := svc.List(ctx, "cars", ListParams{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, int64(3), pg.Total)

	rows, pg, err = svc.List(ctx, "all", ListParams{})
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, int64(4), pg.Total)

	_, _, err = svc.List(ctx, "flights", ListParams{})
	assert.ErrorIs(t, err, ErrInvalidFormType)

	chart, err := svc.Chart(ctx, "hotels")
	require.NoError(t, err)
	var total int64
	for _, n := range chart.Datasets[0].Data {
		total += n
	}
	assert.Equal(t, int64(1), total)

	_, err = svc.Chart(ctx, "flights")
	assert.ErrorIs(t, err, ErrInvalidFormType)
}
