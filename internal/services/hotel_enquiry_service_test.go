package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumora-KR/rps-server/internal/models"
)

func seedHotel(t *testing.T, svc IHotelService, providerEmail string) *models.Hotel {
	t.Helper()
	hotel, err := svc.Create(context.Background(), &models.Hotel{
		Name:          "Grand Palace",
		Location:      "Jaipur",
		Price:         4500,
		Type:          "luxury",
		ProviderName:  "Palace Group",
		ProviderEmail: providerEmail,
		ProviderPhone: "9123456780",
	})
	require.NoError(t, err)
	return hotel
}

func TestHotelEnquiryService_Create(t *testing.T) {
	db := setupTestDB(t)
	hotelSvc := NewHotelService(db, &recordingMailer{})
	hotel := seedHotel(t, hotelSvc, "palace@example.com")

	mailer := &recordingMailer{}
	svc := NewHotelEnquiryService(db, mailer)
	ctx := context.Background()

	enquiry, err := svc.Create(ctx, &models.HotelEnquiry{
		HotelID:      hotel.ID,
		Name:         "Asha",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		CheckInDate:  "2023-07-01",
		CheckOutDate: "2023-07-03",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, enquiry.Status)
	// The hotel name is resolved from the listing.
	assert.Equal(t, "Grand Palace", enquiry.HotelName)
	assert.Equal(t, 1, enquiry.Guests)
	assert.Equal(t, 1, enquiry.Rooms)
	// Admin, provider and customer each get an email.
	assert.Len(t, mailer.sent, 3)
}

func TestHotelEnquiryService_CreateUnknownHotel(t *testing.T) {
	db := setupTestDB(t)
	mailer := &recordingMailer{}
	svc := NewHotelEnquiryService(db, mailer)

	_, err := svc.Create(context.Background(), &models.HotelEnquiry{
		HotelID:      999,
		Name:         "Asha",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		CheckInDate:  "2023-07-01",
		CheckOutDate: "2023-07-03",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	// Nothing stored, nothing sent.
	var count int64
	require.NoError(t, db.Model(&models.HotelEnquiry{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, mailer.sent)
}

func TestHotelEnquiryService_CreateWithoutProviderEmail(t *testing.T) {
	db := setupTestDB(t)

	hotel := &models.Hotel{
		Name:          "No Mail Inn",
		Location:      "Goa",
		Price:         2000,
		Type:          "budget",
		ProviderName:  "Anon",
		ProviderPhone: "9000000000",
	}
	require.NoError(t, db.Create(hotel).Error)

	mailer := &recordingMailer{}
	svc := NewHotelEnquiryService(db, mailer)

	_, err := svc.Create(context.Background(), &models.HotelEnquiry{
		HotelID:      hotel.ID,
		Name:         "Ravi",
		Email:        "ravi@example.com",
		Phone:        "9876500000",
		CheckInDate:  "2023-08-10",
		CheckOutDate: "2023-08-12",
	})
	require.NoError(t, err)
	// Provider notification is skipped without an address.
	assert.Len(t, mailer.sent, 2)
}

func TestHotelEnquiryService_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	hotelSvc := NewHotelService(db, &recordingMailer{})
	hotel := seedHotel(t, hotelSvc, "palace@example.com")

	mailer := &recordingMailer{}
	svc := NewHotelEnquiryService(db, mailer)
	ctx := context.Background()

	enquiry, err := svc.Create(ctx, &models.HotelEnquiry{
		HotelID:      hotel.ID,
		Name:         "Asha",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		CheckInDate:  "2023-07-01",
		CheckOutDate: "2023-07-03",
	})
	require.NoError(t, err)
	sentBefore := len(mailer.sent)

	updated, err := svc.Update(ctx, enquiry.ID, &models.HotelEnquiry{
		Name:   enquiry.Name,
		Email:  enquiry.Email,
		Phone:  enquiry.Phone,
		Status: models.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Len(t, mailer.sent, sentBefore+1)
}
