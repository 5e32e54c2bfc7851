package models

import (
	"time"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
)

// Request модели

// CreateTravelOptionRequest запрос на создание варианта поездки
type CreateTravelOptionRequest struct {
	UserID        int64     `json:"userId"`
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	PricePerSeat  float64   `json:"pricePerSeat"`
	TotalSeats    int       `json:"totalSeats"`
}

// UpdateTravelOptionRequest запрос на обновление варианта поездки
// Счётчик мест не редактируется: им управляют операции бронирования и отмены
type UpdateTravelOptionRequest struct {
	UserID        int64      `json:"userId"`
	Type          *string    `json:"type,omitempty"`
	Source        *string    `json:"source,omitempty"`
	Destination   *string    `json:"destination,omitempty"`
	DepartureTime *time.Time `json:"departureTime,omitempty"`
	PricePerSeat  *float64   `json:"pricePerSeat,omitempty"`
}

// ListTravelOptionsRequest запрос на получение вариантов поездок с фильтрацией
type ListTravelOptionsRequest struct {
	Type        *string    `json:"type,omitempty"`
	Source      *string    `json:"source,omitempty"`
	Destination *string    `json:"destination,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTravelOptionsRequest) ToDomainFilter() domain.TravelOptionFilter {
	filter := domain.TravelOptionFilter{
		Source:      r.Source,
		Destination: r.Destination,
		Date:        r.Date,
	}

	if r.Type != nil {
		t := domain.TravelType(*r.Type)
		filter.Type = &t
	}

	return filter
}

// Response модели

// TravelOptionResponse ответ с данными варианта поездки
type TravelOptionResponse struct {
	ID             int64   `json:"id"`
	Type           string  `json:"type"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departureTime"` // ISO 8601
	PricePerSeat   float64 `json:"pricePerSeat"`
	TotalSeats     int     `json:"totalSeats"`
	AvailableSeats int     `json:"availableSeats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TravelOptionListResponse ответ со списком вариантов поездок
type TravelOptionListResponse struct {
	TravelOptions []TravelOptionResponse `json:"travelOptions"`
}

// Методы конвертации

// FromDomainTravelOption конвертирует domain модель в DTO
func FromDomainTravelOption(t *domain.TravelOption) *TravelOptionResponse {
	if t == nil {
		return nil
	}

	return &TravelOptionResponse{
		ID:             t.ID,
		Type:           string(t.Type),
		Source:         t.Source,
		Destination:    t.Destination,
		DepartureTime:  t.DepartureTime.Format(time.RFC3339),
		PricePerSeat:   t.PricePerSeat,
		TotalSeats:     t.TotalSeats,
		AvailableSeats: t.AvailableSeats,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// FromDomainTravelOptionList конвертирует список domain моделей в DTO
func FromDomainTravelOptionList(options []*domain.TravelOption) *TravelOptionListResponse {
	if options == nil {
		return &TravelOptionListResponse{
			TravelOptions: []TravelOptionResponse{},
		}
	}

	resp := &TravelOptionListResponse{
		TravelOptions: make([]TravelOptionResponse, len(options)),
	}

	for i, option := range options {
		if optionResp := FromDomainTravelOption(option); optionResp != nil {
			resp.TravelOptions[i] = *optionResp
		}
	}

	return resp
}
