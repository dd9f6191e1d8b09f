package http

import (
	"time"

	"warehouse/internal/core/domain/model/layout"
	"warehouse/internal/core/domain/model/order"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShelfLocationDTO is the (x, y) grid position of an order line's shelf.
type ShelfLocationDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemDTO is the wire representation of one order line.
type ItemDTO struct {
	ItemID        string           `json:"item_id"`
	ShelfLocation ShelfLocationDTO `json:"shelf_location"`
	Zone          string           `json:"zone"`
	ItemType      string           `json:"item_type"`
	Priority      int              `json:"priority"`
	Quantity      int              `json:"quantity"`
}

// OrderDTO is the wire representation of a generated order.
type OrderDTO struct {
	OrderID           string    `json:"order_id"`
	Items             []ItemDTO `json:"items"`
	CreatedAt         time.Time `json:"created_at"`
	Status            string    `json:"status"`
	TotalItems        int       `json:"total_items"`
	EstimatedPickTime float64   `json:"estimated_pick_time"`
}

// GenerateOrdersResponse is the body of a successful generation request.
type GenerateOrdersResponse struct {
	Orders      []OrderDTO `json:"orders"`
	Timestamp   time.Time  `json:"timestamp"`
	TotalOrders int        `json:"total_orders"`
}

// OrderHistoryResponse is the body of a history request. TotalOrders is the
// full retained history size; Showing is the number of orders in this page.
type OrderHistoryResponse struct {
	Orders      []OrderDTO `json:"orders"`
	TotalOrders int        `json:"total_orders"`
	Showing     int        `json:"showing"`
}

// LayoutsResponse lists the catalog contents and the active selection.
type LayoutsResponse struct {
	Layouts       []string `json:"layouts"`
	CurrentLayout string   `json:"current_layout"`
}

// RangeDTO is an inclusive integer bound pair.
type RangeDTO struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ZoneDTO is the wire representation of one layout zone.
type ZoneDTO struct {
	Name        string   `json:"name"`
	ItemTypes   []string `json:"item_types"`
	ShelfXRange RangeDTO `json:"shelf_x_range"`
	ShelfYRange RangeDTO `json:"shelf_y_range"`
}

// LayoutDTO is the wire representation of a full layout definition.
type LayoutDTO struct {
	Name  string    `json:"name"`
	Zones []ZoneDTO `json:"zones"`
}

// SetLayoutResponse confirms a layout swap.
type SetLayoutResponse struct {
	Message string `json:"message"`
}

// StatsResponse is the body of a stats request. LastOrderTime is null until
// the first order has been generated.
type StatsResponse struct {
	TotalOrdersGenerated int64      `json:"total_orders_generated"`
	CurrentLayout        string     `json:"current_layout"`
	OrdersInHistory      int        `json:"orders_in_history"`
	LastOrderTime        *time.Time `json:"last_order_time"`
}

func toOrderDTO(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			ItemID: item.ItemID(),
			ShelfLocation: ShelfLocationDTO{
				X: item.ShelfLocation().X(),
				Y: item.ShelfLocation().Y(),
			},
			Zone:     item.Zone(),
			ItemType: item.ItemType(),
			Priority: int(item.Priority()),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		OrderID:           o.ID().String(),
		Items:             items,
		CreatedAt:         o.CreatedAt(),
		Status:            o.Status().String(),
		TotalItems:        o.TotalItems(),
		EstimatedPickTime: o.EstimatedPickTime(),
	}
}

func toOrderDTOs(orders []*order.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDTO(o))
	}
	return dtos
}

func toLayoutDTO(l layout.Layout) LayoutDTO {
	zones := make([]ZoneDTO, 0, l.ZoneCount())
	for _, zone := range l.Zones() {
		zones = append(zones, ZoneDTO{
			Name:      zone.Name(),
			ItemTypes: zone.ItemTypes(),
			ShelfXRange: RangeDTO{
				Min: zone.XRange().Min(),
				Max: zone.XRange().Max(),
			},
			ShelfYRange: RangeDTO{
				Min: zone.YRange().Min(),
				Max: zone.YRange().Max(),
			},
		})
	}

	return LayoutDTO{
		Name:  l.Name(),
		Zones: zones,
	}
}
