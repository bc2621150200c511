// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The human-shareable PH- token is the primary key; order lines are kept as
// a JSON document since they are only ever read back as a whole.
type OrderDTO struct {
	ID             string `gorm:"primaryKey"`
	CustomerPhone  string `gorm:"index"`
	CustomerName   string
	Lines          string `gorm:"type:json"`
	Subtotal       int
	DeliveryFee    int
	Total          int
	Address        string
	Lat            *float64
	Lng            *float64
	ZoneName       string
	PaymentMethod  string
	PaymentStatus  string
	ScreenshotPath string
	Status         string    `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
	VerifiedAt     *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineDTO is one order line inside the JSON lines document. The field names
// match the rider- and admin-facing export format.
type lineDTO struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price int    `json:"price"`
	Qty   int    `json:"qty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, lineDTO{
			Name:  line.Name(),
			Size:  line.Size().String(),
			Price: line.UnitPrice(),
			Qty:   line.Qty(),
		})
	}

	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, err
	}

	var lat, lng *float64
	if coords := aggregate.Coords(); coords != nil {
		latVal, lngVal := coords.Lat(), coords.Lng()
		lat, lng = &latVal, &lngVal
	}

	return OrderDTO{
		ID:             aggregate.ID().String(),
		CustomerPhone:  aggregate.CustomerPhone(),
		CustomerName:   aggregate.CustomerName(),
		Lines:          string(linesJSON),
		Subtotal:       aggregate.Subtotal(),
		DeliveryFee:    aggregate.DeliveryFee(),
		Total:          aggregate.Total(),
		Address:        aggregate.Address(),
		Lat:            lat,
		Lng:            lng,
		ZoneName:       aggregate.ZoneName(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		ScreenshotPath: aggregate.ScreenshotPath(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		VerifiedAt:     aggregate.VerifiedAt(),
	}, nil
}

// toDomain converts a database DTO back to an order domain aggregate using
// RestoreOrder, which re-checks the monetary invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var lineDTOs []lineDTO
	if err = json.Unmarshal([]byte(dto.Lines), &lineDTOs); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		line, lineErr := order.NewLine(l.Name, menu.Size(l.Size), l.Price, l.Qty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var coords *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, coordsErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if coordsErr != nil {
			return nil, coordsErr
		}
		coords = &point
	}

	return order.RestoreOrder(
		id,
		dto.CustomerPhone,
		dto.CustomerName,
		lines,
		dto.Subtotal,
		dto.DeliveryFee,
		dto.Total,
		dto.Address,
		coords,
		dto.ZoneName,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.ScreenshotPath,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.VerifiedAt,
	)
}
