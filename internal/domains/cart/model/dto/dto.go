package dto

import (
	"buslink/internal/domains/cart/model"
	gDto "buslink/shared/dto"
)

type AddCartItemRequest struct {
	RouteID    string `json:"route_id"    validate:"required,uuid"`
	TravelDate string `json:"travel_date" validate:"required"`
	Passengers int    `json:"passengers"  validate:"required,min=1"`
}

type CartItemResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	RouteID     string  `json:"route_id"`
	BusName     string  `json:"bus_name"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	TravelDate  string  `json:"travel_date"`
	Passengers  int     `json:"passengers"`
	TotalPrice  float64 `json:"total_price"`
	gDto.Metadata
}

func (r *CartItemResponse) FromModel(model model.CartItem) {
	r.ID = model.ID
	r.Username = model.Username
	r.RouteID = model.RouteID
	r.BusName = model.BusName
	r.Source = model.Source
	r.Destination = model.Destination
	r.TravelDate = model.TravelDate
	r.Passengers = model.Passengers
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetCartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func (r *GetCartResponse) FromModels(models []model.CartItem) {
	r.Items = make([]CartItemResponse, len(models))
	r.Total = 0

	for i, mod := range models {
		r.Items[i].FromModel(mod)
		r.Total += mod.TotalPrice
	}
}
