package dto

import (
	"time"

	"buslink/internal/domains/booking/model"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	gModel "buslink/shared/model"
	"buslink/shared/timezone"

	"github.com/google/uuid"
)

type AppendBookingRequest struct {
	Username      string    `json:"username"       validate:"required,max=100"`
	BusName       string    `json:"bus_name"       validate:"required,max=100"`
	Source        string    `json:"source"         validate:"required,max=100"`
	Destination   string    `json:"destination"    validate:"required,max=100"`
	TravelDate    time.Time `json:"travel_date"    validate:"required"`
	Passengers    int       `json:"passengers"     validate:"required,min=1"`
	TotalPrice    float64   `json:"total_price"    validate:"gte=0"`
	Status        string    `json:"status"         validate:"omitempty,oneof=CONFIRMED CANCELLED PENDING"`
	PaymentStatus string    `json:"payment_status" validate:"omitempty,oneof=PAID UNPAID"`
}

// ToModel assigns the ledger-owned fields: a fresh id, the booking timestamp,
// and the confirmed/paid defaults when the caller left them blank.
func (r *AppendBookingRequest) ToModel() model.Booking {
	status := r.Status
	if status == "" {
		status = model.StatusConfirmed
	}

	paymentStatus := r.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusPaid
	}

	return model.Booking{
		ID:            uuid.NewString(),
		Username:      r.Username,
		BusName:       r.BusName,
		Source:        r.Source,
		Destination:   r.Destination,
		TravelDate:    r.TravelDate,
		BookingDate:   timezone.Now(),
		Passengers:    r.Passengers,
		TotalPrice:    r.TotalPrice,
		Status:        status,
		PaymentStatus: paymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Username,
			ModifiedBy: r.Username,
		},
	}
}

type UpdateBookingRequest struct {
	RouteID       string `json:"route_id"       validate:"omitempty,uuid"`
	TravelDate    string `json:"travel_date"    validate:"omitempty"`
	Passengers    int    `json:"passengers"     validate:"omitempty,min=1"`
	Status        string `json:"status"         validate:"omitempty,oneof=CONFIRMED CANCELLED PENDING"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=PAID UNPAID"`
	AdminNotes    string `json:"admin_notes"    validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	BusName       string  `json:"bus_name"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	TravelDate    string  `json:"travel_date"`
	BookingDate   string  `json:"booking_date"`
	Passengers    int     `json:"passengers"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AdminNotes    string  `json:"admin_notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Username = model.Username
	r.BusName = model.BusName
	r.Source = model.Source
	r.Destination = model.Destination
	r.TravelDate = model.TravelDate.Format(constant.DateOnlyFormat)
	r.BookingDate = model.BookingDate.Format(constant.DateFormat)
	r.Passengers = model.Passengers
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.AdminNotes = model.AdminNotes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
