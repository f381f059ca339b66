package email

import (
	"fmt"
	"time"

	"github.com/Lumora-KR/rps-server/internal/models"
)

// FormatDate renders a yyyy-mm-dd form date for email bodies. Unparsable
// values pass through unchanged; empty values become "Not specified".
func FormatDate(dateString string) string {
	if dateString == "" {
		return "Not specified"
	}
	d, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return dateString
	}
	return d.Format("January 2, 2006")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// CarRentalDetailAdmin is the staff notification for a car booking request.
func CarRentalDetailAdmin(d *models.CarRentalDetail) Message {
	return Message{
		Subject: fmt.Sprintf("Car Rental Booking: %s", orDefault(d.CarName, d.CarID)),
		HTML: fmt.Sprintf(`
        <h2>New Car Rental Booking Request</h2>
        <p><strong>Car Model:</strong> %s</p>
        <p><strong>Car ID:</strong> %s</p>
        <hr>
        <h3>Customer Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <h3>Rental Details:</h3>
        <p><strong>Pickup Date:</strong> %s</p>
        <p><strong>Return Date:</strong> %s</p>
        <p><strong>Pickup Location:</strong> %s</p>
        <p><strong>Return Location:</strong> %s</p>
        <h3>Special Requirements:</h3>
        <p>%s</p>
        <hr>
        <p><em>This booking request was submitted from the Car Rental detail page (ID: %s) on the RPS Tours website.</em></p>`,
			orDefault(d.CarName, "Not specified"), d.CarID,
			d.Name, d.Email, d.Phone,
			FormatDate(d.PickupDate), FormatDate(d.ReturnDate),
			orDefault(d.PickupLocation, "Not specified"),
			orDefault(d.ReturnLocation, "Same as pickup location"),
			orDefault(d.Message, "No special requirements provided"),
			d.CarID),
	}
}

// CarRentalDetailConfirmation is the customer acknowledgement for a car
// booking request.
func CarRentalDetailConfirmation(d *models.CarRentalDetail) Message {
	return Message{
		To:      d.Email,
		Subject: "Car Rental Booking Confirmation - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Your Car Rental Booking Request</h2>
        <p>Dear %s,</p>
        <p>We have received your car rental booking request for %s and our team will get back to you shortly to confirm your reservation.</p>
        <p>Your booking details:</p>
        <ul>
          <li><strong>Pickup Date:</strong> %s</li>
          <li><strong>Return Date:</strong> %s</li>
          <li><strong>Pickup Location:</strong> %s</li>
        </ul>
        <p>If you have any questions, please feel free to contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			d.Name, orDefault(d.CarName, d.CarID),
			FormatDate(d.PickupDate), FormatDate(d.ReturnDate),
			orDefault(d.PickupLocation, "Not specified")),
	}
}

// TourPackageDetailAdmin is the staff notification for a tour package enquiry.
func TourPackageDetailAdmin(d *models.TourPackageDetail) Message {
	return Message{
		Subject: fmt.Sprintf("Tour Package Enquiry: %s", orDefault(d.PackageName, d.PackageID)),
		HTML: fmt.Sprintf(`
        <h2>New Tour Package Enquiry</h2>
        <p><strong>Package:</strong> %s</p>
        <p><strong>Package ID:</strong> %s</p>
        <hr>
        <h3>Customer Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <h3>Travel Details:</h3>
        <p><strong>Selected Date:</strong> %s</p>
        <p><strong>Adults:</strong> %d</p>
        <p><strong>Children:</strong> %d</p>
        <h3>Additional Requirements:</h3>
        <p>%s</p>
        <hr>
        <p><em>This enquiry was submitted from the Tour Package detail page (ID: %s) on the RPS Tours website.</em></p>`,
			orDefault(d.PackageName, "Not specified"), d.PackageID,
			d.Name, d.Email, d.Phone,
			FormatDate(d.SelectedDate), d.Adults, d.Children,
			orDefault(d.Message, "No additional requirements provided"),
			d.PackageID),
	}
}

// TourPackageDetailConfirmation is the customer acknowledgement for a tour
// package enquiry.
func TourPackageDetailConfirmation(d *models.TourPackageDetail) Message {
	return Message{
		To:      d.Email,
		Subject: "Tour Package Enquiry Confirmation - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Your Tour Package Enquiry</h2>
        <p>Dear %s,</p>
        <p>We have received your enquiry for %s and our team will get back to you shortly with a detailed itinerary and pricing.</p>
        <p>Your enquiry details:</p>
        <ul>
          <li><strong>Selected Date:</strong> %s</li>
          <li><strong>Adults:</strong> %d</li>
          <li><strong>Children:</strong> %d</li>
        </ul>
        <p>If you have any questions, please feel free to contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			d.Name, orDefault(d.PackageName, d.PackageID),
			FormatDate(d.SelectedDate), d.Adults, d.Children),
	}
}

// HotelEnquiryAdmin is the staff notification for a hotel booking enquiry.
func HotelEnquiryAdmin(e *models.HotelEnquiry, hotel *models.Hotel) Message {
	return Message{
		Subject: fmt.Sprintf("New Hotel Booking Enquiry: %s", hotel.Name),
		HTML: fmt.Sprintf(`
        <h2>New Hotel Booking Enquiry</h2>
        <p><strong>Hotel:</strong> %s</p>
        <p><strong>Location:</strong> %s</p>
        <hr>
        <h3>Customer Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <h3>Booking Details:</h3>
        <p><strong>Check-in Date:</strong> %s</p>
        <p><strong>Check-out Date:</strong> %s</p>
        <p><strong>Guests:</strong> %d</p>
        <p><strong>Rooms:</strong> %d</p>
        <h3>Special Requirements:</h3>
        <p>%s</p>
        <hr>
        <p><em>This booking enquiry was submitted from the Hotel Enquiry page on the RPS Tours website.</em></p>`,
			hotel.Name, hotel.Location,
			e.Name, e.Email, e.Phone,
			FormatDate(e.CheckInDate), FormatDate(e.CheckOutDate),
			e.Guests, e.Rooms,
			orDefault(e.Message, "No special requirements provided")),
	}
}

// HotelEnquiryProvider notifies the hotel provider about an enquiry so they
// can contact the customer directly.
func HotelEnquiryProvider(e *models.HotelEnquiry, hotel *models.Hotel) Message {
	return Message{
		To:      hotel.ProviderEmail,
		Subject: fmt.Sprintf("New Booking Enquiry for %s", hotel.Name),
		HTML: fmt.Sprintf(`
        <h2>New Booking Enquiry for Your Hotel</h2>
        <p>Dear %s,</p>
        <p>You have received a new booking enquiry for %s.</p>
        <hr>
        <h3>Customer Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <h3>Booking Details:</h3>
        <p><strong>Check-in Date:</strong> %s</p>
        <p><strong>Check-out Date:</strong> %s</p>
        <p><strong>Guests:</strong> %d</p>
        <p><strong>Rooms:</strong> %d</p>
        <h3>Special Requirements:</h3>
        <p>%s</p>
        <hr>
        <p>Please contact the customer directly to confirm the booking.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			hotel.ProviderName, hotel.Name,
			e.Name, e.Email, e.Phone,
			FormatDate(e.CheckInDate), FormatDate(e.CheckOutDate),
			e.Guests, e.Rooms,
			orDefault(e.Message, "No special requirements provided")),
	}
}

// HotelEnquiryConfirmation is the customer acknowledgement for a hotel
// booking enquiry.
func HotelEnquiryConfirmation(e *models.HotelEnquiry, hotel *models.Hotel) Message {
	return Message{
		To:      e.Email,
		Subject: "Hotel Booking Enquiry Confirmation - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Your Hotel Booking Enquiry</h2>
        <p>Dear %s,</p>
        <p>We have received your booking enquiry for %s and have forwarded it to the hotel. They will contact you shortly to confirm your reservation.</p>
        <p>Your booking details:</p>
        <ul>
          <li><strong>Hotel:</strong> %s</li>
          <li><strong>Location:</strong> %s</li>
          <li><strong>Check-in Date:</strong> %s</li>
          <li><strong>Check-out Date:</strong> %s</li>
          <li><strong>Guests:</strong> %d</li>
          <li><strong>Rooms:</strong> %d</li>
        </ul>
        <p>If you have any questions, please feel free to contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			e.Name, hotel.Name, hotel.Name, hotel.Location,
			FormatDate(e.CheckInDate), FormatDate(e.CheckOutDate),
			e.Guests, e.Rooms),
	}
}

// ContactFormAdmin is the staff notification for a contact message.
func ContactFormAdmin(f *models.ContactForm) Message {
	return Message{
		Subject: fmt.Sprintf("Contact Form: %s", orDefault(f.Subject, "New Message")),
		HTML: fmt.Sprintf(`
        <h2>New Contact Form Submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Subject:</strong> %s</p>
        <h3>Message:</h3>
        <p>%s</p>
        <hr>
        <p><em>This message was submitted from the Contact form on the RPS Tours website.</em></p>`,
			f.Name, f.Email, f.Phone, orDefault(f.Subject, "Not specified"), f.Message),
	}
}

// ContactFormConfirmation is the customer acknowledgement for a contact
// message.
func ContactFormConfirmation(f *models.ContactForm) Message {
	return Message{
		To:      f.Email,
		Subject: "Thank you for contacting us - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Contacting Us</h2>
        <p>Dear %s,</p>
        <p>We have received your message and our team will get back to you shortly.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`, f.Name),
	}
}

// HomeEnquiryAdmin is the staff notification for a home page enquiry. The
// rendered body depends on the enquiry's form type.
func HomeEnquiryAdmin(e *models.HomeEnquiry) Message {
	switch e.FormType {
	case models.FormTypeCars:
		return Message{
			Subject: fmt.Sprintf("Car Rental Enquiry: %s to %s", e.FromLocation, e.ToLocation),
			HTML: fmt.Sprintf(`
        <h2>New Car Rental Enquiry</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>From Location:</strong> %s</p>
        <p><strong>To Location:</strong> %s</p>
        <p><strong>Pickup Date:</strong> %s</p>
        <p><strong>Car Type:</strong> %s</p>
        <hr>
        <p><em>This enquiry was submitted from the Car Rental form on the RPS Tours website.</em></p>`,
				e.Name, e.Email, e.Phone, e.FromLocation, e.ToLocation,
				FormatDate(e.PickupDate), orDefault(e.CarType, "Not specified")),
		}
	case models.FormTypeTourPackages:
		return Message{
			Subject: fmt.Sprintf("Tour Package Enquiry: %s", e.PackageType),
			HTML: fmt.Sprintf(`
        <h2>New Tour Package Enquiry</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Package Type:</strong> %s</p>
        <p><strong>Travel Date:</strong> %s</p>
        <p><strong>Duration:</strong> %s</p>
        <p><strong>Number of Travelers:</strong> %s</p>
        <hr>
        <p><em>This enquiry was submitted from the Tour Packages form on the RPS Tours website.</em></p>`,
				e.Name, e.Email, e.Phone, e.PackageType,
				FormatDate(e.TravelDate), orDefault(e.Duration, "Not specified"),
				orDefault(e.Travelers, "Not specified")),
		}
	default: // hotels
		return Message{
			Subject: fmt.Sprintf("Hotel Booking Enquiry: %s", e.Destination),
			HTML: fmt.Sprintf(`
        <h2>New Hotel Booking Enquiry</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Destination:</strong> %s</p>
        <p><strong>Check-in Date:</strong> %s</p>
        <p><strong>Check-out Date:</strong> %s</p>
        <p><strong>Number of Rooms:</strong> %s</p>
        <hr>
        <p><em>This enquiry was submitted from the Hotels form on the RPS Tours website.</em></p>`,
				e.Name, e.Email, e.Phone, e.Destination,
				FormatDate(e.CheckIn), FormatDate(e.CheckOut),
				orDefault(e.Rooms, "1")),
		}
	}
}

// HomeEnquiryConfirmation is the customer acknowledgement for a home page
// enquiry.
func HomeEnquiryConfirmation(e *models.HomeEnquiry) Message {
	return Message{
		To:      e.Email,
		Subject: "Thank you for your enquiry - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Your Enquiry</h2>
        <p>Dear %s,</p>
        <p>We have received your enquiry and our team will get back to you shortly.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`, e.Name),
	}
}

// CarRentalListingAdmin is the staff notification for a new car listing.
func CarRentalListingAdmin(c *models.CarRental) Message {
	return Message{
		Subject: fmt.Sprintf("New Car Rental Added: %s", c.Title),
		HTML: fmt.Sprintf(`
        <h2>New Car Rental Added</h2>
        <p><strong>Car Model:</strong> %s</p>
        <p><strong>Car Type:</strong> %s</p>
        <p><strong>Price:</strong> ₹%.2f %s</p>
        <hr>
        <h3>Provider Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <p><em>This car rental was added through the Add Car Rental page on the RPS Tours website.</em></p>`,
			c.Title, c.CarType, c.Price, c.PriceUnit,
			c.ProviderName, c.ProviderEmail, c.ProviderPhone),
	}
}

// CarRentalListingConfirmation acknowledges a provider's new car listing.
func CarRentalListingConfirmation(c *models.CarRental) Message {
	return Message{
		To:      c.ProviderEmail,
		Subject: "Car Rental Listing Confirmation - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Adding Your Car Rental</h2>
        <p>Dear %s,</p>
        <p>Your car rental listing for %s has been successfully added to our platform. Our team will review the details and make it available for booking soon.</p>
        <p>Listing details:</p>
        <ul>
          <li><strong>Car Model:</strong> %s</li>
          <li><strong>Car Type:</strong> %s</li>
          <li><strong>Price:</strong> ₹%.2f %s</li>
        </ul>
        <p>If you need to make any changes to your listing, please contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			c.ProviderName, c.Title, c.Title, c.CarType, c.Price, c.PriceUnit),
	}
}

// HotelListingAdmin is the staff notification for a new hotel listing.
func HotelListingAdmin(h *models.Hotel) Message {
	return Message{
		Subject: fmt.Sprintf("New Hotel Added: %s", h.Name),
		HTML: fmt.Sprintf(`
        <h2>New Hotel Added</h2>
        <p><strong>Hotel:</strong> %s</p>
        <p><strong>Location:</strong> %s</p>
        <p><strong>Type:</strong> %s</p>
        <p><strong>Price:</strong> ₹%.2f per night</p>
        <hr>
        <h3>Provider Information:</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <hr>
        <p><em>This hotel was added through the Add Hotel page on the RPS Tours website.</em></p>`,
			h.Name, h.Location, h.Type, h.Price,
			h.ProviderName, h.ProviderEmail, h.ProviderPhone),
	}
}

// HotelListingConfirmation acknowledges a provider's new hotel listing.
func HotelListingConfirmation(h *models.Hotel) Message {
	return Message{
		To:      h.ProviderEmail,
		Subject: "Hotel Listing Confirmation - RPS Tours",
		HTML: fmt.Sprintf(`
        <h2>Thank You for Adding Your Hotel</h2>
        <p>Dear %s,</p>
        <p>Your hotel listing for %s has been successfully added to our platform. Our team will review the details and make it available for booking soon.</p>
        <p>Listing details:</p>
        <ul>
          <li><strong>Hotel:</strong> %s</li>
          <li><strong>Location:</strong> %s</li>
          <li><strong>Price:</strong> ₹%.2f per night</li>
        </ul>
        <p>If you need to make any changes to your listing, please contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			h.ProviderName, h.Name, h.Name, h.Location, h.Price),
	}
}

// TourPackagesForm carries the mail-only tour packages enquiry, which is
// never persisted.
type TourPackagesForm struct {
	Name        string
	Email       string
	Phone       string
	Destination string
	TravelDate  string
	Adults      string
	Children    string
	Budget      string
	Message     string
}

// TourPackagesFormAdmin is the staff notification for the mail-only tour
// packages form.
func TourPackagesFormAdmin(f TourPackagesForm) Message {
	return Message{
		Subject: fmt.Sprintf("Tour Package Enquiry: %s", orDefault(f.Destination, "General Inquiry")),
		HTML: fmt.Sprintf(`
        <h2>New Tour Package Enquiry</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Destination:</strong> %s</p>
        <p><strong>Travel Date:</strong> %s</p>
        <p><strong>Number of Adults:</strong> %s</p>
        <p><strong>Number of Children:</strong> %s</p>
        <p><strong>Budget:</strong> ₹%s</p>
        <h3>Additional Requirements:</h3>
        <p>%s</p>
        <hr>
        <p><em>This enquiry was submitted from the Tour Packages page on the RPS Tours website.</em></p>`,
			f.Name, f.Email, f.Phone,
			orDefault(f.Destination, "Not specified"),
			orDefault(f.TravelDate, "Not specified"),
			orDefault(f.Adults, "1"), orDefault(f.Children, "0"),
			orDefault(f.Budget, "Not specified"),
			orDefault(f.Message, "No additional requirements provided")),
	}
}

// StatusChange notifies a submitter that the status of their enquiry changed.
func StatusChange(toEmail, name, entityLabel string, status models.Status) Message {
	return Message{
		To:      toEmail,
		Subject: fmt.Sprintf("%s Status Update - RPS Tours", entityLabel),
		HTML: fmt.Sprintf(`
        <h2>Booking Status Update</h2>
        <p>Dear %s,</p>
        <p>The status of your %s has been updated to <strong>%s</strong>.</p>
        <p>If you have any questions, please feel free to contact us.</p>
        <p>Best Regards,<br>RPS Tours Team</p>`,
			name, entityLabel, status),
	}
}
