package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lumora-KR/rps-server/internal/models"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "June 15, 2023", FormatDate("2023-06-15"))
	assert.Equal(t, "Not specified", FormatDate(""))
	assert.Equal(t, "sometime next week", FormatDate("sometime next week"))
}

func TestCarRentalDetailTemplates(t *testing.T) {
	d := &models.CarRentalDetail{
		CarID: "swift-dzire", CarName: "Swift Dzire",
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210",
		PickupDate: "2023-06-15", ReturnDate: "2023-06-18",
		PickupLocation: "Chennai Airport",
	}

	admin := CarRentalDetailAdmin(d)
	assert.Empty(t, admin.To)
	assert.Equal(t, "Car Rental Booking: Swift Dzire", admin.Subject)
	assert.Contains(t, admin.HTML, "June 15, 2023")
	assert.Contains(t, admin.HTML, "Same as pickup location")

	confirmation := CarRentalDetailConfirmation(d)
	assert.Equal(t, "asha@example.com", confirmation.To)
	assert.Contains(t, confirmation.HTML, "Dear Asha")
}

func TestStatusChangeTemplate(t *testing.T) {
	msg := StatusChange("asha@example.com", "Asha", "car rental enquiry", models.StatusConfirmed)
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Status Update")
	assert.Contains(t, msg.HTML, "car rental enquiry")
	assert.Contains(t, msg.HTML, "confirmed")
}
