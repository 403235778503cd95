package dto

import (
	bookingDto "buslink/internal/domains/booking/model/dto"
)

type CheckoutRequest struct {
	Total         float64 `json:"total"          validate:"gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
}

// SkippedItem reports a cart line that produced no booking, with the reason
// it was passed over.
type SkippedItem struct {
	CartItemID string `json:"cart_item_id"`
	BusName    string `json:"bus_name"`
	TravelDate string `json:"travel_date"`
	Reason     string `json:"reason"`
}

// CheckoutResponse is the outcome of a checkout run. Total and PaymentMethod
// echo what the customer declared at the payment step; they are recorded, not
// recomputed from the cart.
type CheckoutResponse struct {
	Username      string                       `json:"username"`
	Total         float64                      `json:"total"`
	PaymentMethod string                       `json:"payment_method"`
	BookingCount  int                          `json:"booking_count"`
	Bookings      []bookingDto.BookingResponse `json:"bookings"`
	Skipped       []SkippedItem                `json:"skipped,omitempty"`
}
