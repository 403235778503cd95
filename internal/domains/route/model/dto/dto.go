package dto

import (
	"strings"

	"buslink/internal/domains/route/model"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	gModel "buslink/shared/model"
	"buslink/shared/timezone"

	"github.com/google/uuid"
)

type SaveRouteRequest struct {
	ID            string   `json:"id"             validate:"omitempty,uuid"`
	Name          string   `json:"name"           validate:"required,max=100"`
	Source        string   `json:"source"         validate:"required,max=100"`
	Destination   string   `json:"destination"    validate:"required,max=100"`
	DepartureTime string   `json:"departure_time" validate:"required"`
	ArrivalTime   string   `json:"arrival_time"   validate:"required"`
	Seats         int      `json:"seats"          validate:"required,min=1"`
	Price         float64  `json:"price"          validate:"gte=0"`
	Category      string   `json:"category"       validate:"omitempty,oneof=STANDARD EXPRESS PREMIUM"`
	Active        *bool    `json:"active"         validate:"omitempty"`
	StartDate     string   `json:"start_date"     validate:"required"`
	EndDate       string   `json:"end_date"       validate:"required"`
	OperatingDays []string `json:"operating_days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
}

func (r *SaveRouteRequest) ToModel(user string) (model.Route, error) {
	if _, err := timezone.Parse(constant.TimeOnlyFormat, r.DepartureTime); err != nil {
		return model.Route{}, err
	}

	if _, err := timezone.Parse(constant.TimeOnlyFormat, r.ArrivalTime); err != nil {
		return model.Route{}, err
	}

	startDate, err := timezone.Parse(constant.DateOnlyFormat, r.StartDate)
	if err != nil {
		return model.Route{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, r.EndDate)
	if err != nil {
		return model.Route{}, err
	}

	category := r.Category
	if category == "" {
		category = model.CategoryStandard
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	operatingDays := model.AllOperatingDays
	if len(r.OperatingDays) > 0 {
		operatingDays = strings.Join(r.OperatingDays, ",")
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	return model.Route{
		ID:            id,
		Name:          r.Name,
		Source:        r.Source,
		Destination:   r.Destination,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Seats:         r.Seats,
		Price:         r.Price,
		Category:      category,
		Active:        active,
		StartDate:     startDate,
		EndDate:       endDate,
		OperatingDays: operatingDays,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type SearchRoutesRequest struct {
	Source      string `json:"source"      validate:"omitempty,max=100"`
	Destination string `json:"destination" validate:"omitempty,max=100"`
	Date        string `json:"date"        validate:"omitempty"`
}

type RouteResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Seats         int     `json:"seats"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Active        bool    `json:"active"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	OperatingDays string  `json:"operating_days"`
	gDto.Metadata
}

func (r *RouteResponse) FromModel(model model.Route) {
	r.ID = model.ID
	r.Name = model.Name
	r.Source = model.Source
	r.Destination = model.Destination
	r.DepartureTime = model.DepartureTime
	r.ArrivalTime = model.ArrivalTime
	r.Seats = model.Seats
	r.Price = model.Price
	r.Category = model.Category
	r.Active = model.Active
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.OperatingDays = model.OperatingDays
	r.Metadata.FromModel(model.Metadata)
}

type GetRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

func (r *GetRoutesResponse) FromModels(models []model.Route) {
	r.Routes = make([]RouteResponse, len(models))
	for i, mod := range models {
		r.Routes[i].FromModel(mod)
	}
}
