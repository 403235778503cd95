package model

import (
	"buslink/shared/model"
)

const (
	TableName  = "cart_items"
	EntityName = "cart item"

	FieldID          = "id"
	FieldUsername    = "username"
	FieldRouteID     = "route_id"
	FieldBusName     = "bus_name"
	FieldSource      = "source"
	FieldDestination = "destination"
	FieldTravelDate  = "travel_date"
	FieldPassengers  = "passengers"
	FieldTotalPrice  = "total_price"
)

// CartItem is a pending reservation line. Bus name, endpoints and price are
// copied from the route at the moment it is added, so later catalog edits do
// not change what the customer agreed to pay.
type CartItem struct {
	ID          string  `db:"id"`
	Username    string  `db:"username"`
	RouteID     string  `db:"route_id"`
	BusName     string  `db:"bus_name"`
	Source      string  `db:"source"`
	Destination string  `db:"destination"`
	TravelDate  string  `db:"travel_date"`
	Passengers  int     `db:"passengers"`
	TotalPrice  float64 `db:"total_price"`
	model.Metadata
}
