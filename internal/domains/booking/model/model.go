package model

import (
	"time"

	"buslink/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUsername      = "username"
	FieldBusName       = "bus_name"
	FieldSource        = "source"
	FieldDestination   = "destination"
	FieldTravelDate    = "travel_date"
	FieldBookingDate   = "booking_date"
	FieldPassengers    = "passengers"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldAdminNotes    = "admin_notes"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusPending   = "PENDING"

	PaymentStatusPaid   = "PAID"
	PaymentStatusUnpaid = "UNPAID"
)

// Booking is a confirmed reservation. It carries its own copy of the bus
// name, endpoints and price, so it stays valid even after the route that
// produced it is edited or deleted.
type Booking struct {
	ID            string    `db:"id"`
	Username      string    `db:"username"`
	BusName       string    `db:"bus_name"`
	Source        string    `db:"source"`
	Destination   string    `db:"destination"`
	TravelDate    time.Time `db:"travel_date"`
	BookingDate   time.Time `db:"booking_date"`
	Passengers    int       `db:"passengers"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	AdminNotes    string    `db:"admin_notes"`
	model.Metadata
}
