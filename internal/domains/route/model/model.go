package model

import (
	"time"

	"buslink/shared/model"
)

const (
	TableName  = "routes"
	EntityName = "route"

	FieldID            = "id"
	FieldName          = "name"
	FieldSource        = "source"
	FieldDestination   = "destination"
	FieldDepartureTime = "departure_time"
	FieldArrivalTime   = "arrival_time"
	FieldSeats         = "seats"
	FieldPrice         = "price"
	FieldCategory      = "category"
	FieldActive        = "active"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldOperatingDays = "operating_days"
)

const (
	CategoryStandard = "STANDARD"
	CategoryExpress  = "EXPRESS"
	CategoryPremium  = "PREMIUM"
)

// AllOperatingDays is the default schedule for a route that runs daily.
const AllOperatingDays = "MON,TUE,WED,THU,FRI,SAT,SUN"

type Route struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Source        string    `db:"source"`
	Destination   string    `db:"destination"`
	DepartureTime string    `db:"departure_time"`
	ArrivalTime   string    `db:"arrival_time"`
	Seats         int       `db:"seats"`
	Price         float64   `db:"price"`
	Category      string    `db:"category"`
	Active        bool      `db:"active"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	OperatingDays string    `db:"operating_days"`
	model.Metadata
}
