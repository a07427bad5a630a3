package http

import (
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for the admin API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acknowledges a mutation with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// OrderItemResponse is one order line in an API response.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse is one order in the admin order list.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CreatedAt    time.Time           `json:"created_at"`
	MobileNumber string              `json:"mobile_number"`
	TotalAmount  float64             `json:"total_amount"`
	OrderStatus  string              `json:"order_status"`
	Items        []OrderItemResponse `json:"items"`
}

// toOrderResponse flattens an order into the API shape shared by the list
// and status-update endpoints.
func toOrderResponse(
	id int64,
	createdAt time.Time,
	mobileNumber string,
	totalAmount float64,
	status order.Status,
	items []order.Item,
) OrderResponse {
	itemResponses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = OrderItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
		}
	}

	return OrderResponse{
		ID:           id,
		CreatedAt:    createdAt,
		MobileNumber: mobileNumber,
		TotalAmount:  totalAmount,
		OrderStatus:  status.String(),
		Items:        itemResponses,
	}
}

// OrderStatusUpdateRequest carries the new fulfillment status for an order.
type OrderStatusUpdateRequest struct {
	OrderStatus string `json:"order_status"`
}

// DashboardSummaryResponse holds the aggregated dashboard numbers.
type DashboardSummaryResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int64   `json:"total_orders"`
	TotalCustomers int64   `json:"total_customers"`
}

// RevenuePointResponse is one bucket of the revenue chart.
type RevenuePointResponse struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// TopProductResponse is one ranked product on the dashboard.
type TopProductResponse struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// VariantResponse is one derived (packing, price) pair.
type VariantResponse struct {
	Packing string  `json:"packing"`
	Price   float64 `json:"price"`
}

// ProductStateResponse is one product in the flattened admin view.
type ProductStateResponse struct {
	ID            int64             `json:"id"`
	ItemName      string            `json:"item_name"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"image_url"`
	Variants      []VariantResponse `json:"variants"`
	MaxPrice      float64           `json:"max_price"`
	ShelfLifeDays int               `json:"shelf_life_days"`
	LeadTimeDays  int               `json:"lead_time_days"`
	IsEnabled     bool              `json:"is_enabled"`
}

// ToggleProductResponse reports a single product toggle.
type ToggleProductResponse struct {
	ProductID int64 `json:"product_id"`
	NewStatus bool  `json:"new_status"`
}

// ToggleAllProductsResponse reports a bulk toggle.
type ToggleAllProductsResponse struct {
	AffectedCount int64 `json:"affected_count"`
}

// AddProductResponse reports a successful product creation.
type AddProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductCreateRequest is the creation payload for a new product.
type ProductCreateRequest struct {
	ItemName      string  `json:"item_name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	Price01       float64 `json:"price_01"`
	Packing01     string  `json:"packing_01"`
	Price02       float64 `json:"price_02"`
	Packing02     string  `json:"packing_02"`
	Price03       float64 `json:"price_03"`
	Packing03     string  `json:"packing_03"`
	Price04       float64 `json:"price_04"`
	Packing04     string  `json:"packing_04"`
	ShelfLifeDays int     `json:"shelf_life_days"`
	LeadTimeDays  int     `json:"lead_time_days"`
}

// slots converts the four flat price/packing pairs to domain slots.
func (r ProductCreateRequest) slots() [product.SlotCount]product.Slot {
	return [product.SlotCount]product.Slot{
		{Price: decimal.NewFromFloat(r.Price01), Packing: r.Packing01},
		{Price: decimal.NewFromFloat(r.Price02), Packing: r.Packing02},
		{Price: decimal.NewFromFloat(r.Price03), Packing: r.Packing03},
		{Price: decimal.NewFromFloat(r.Price04), Packing: r.Packing04},
	}
}

// ProductPatchRequest is the partial-update payload. Only the fields present
// in the body are applied; JSON keys outside this allow-list are ignored by
// decoding and alter nothing.
type ProductPatchRequest struct {
	ItemName      *string  `json:"item_name"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"image_url"`
	Price01       *float64 `json:"price_01"`
	Packing01     *string  `json:"packing_01"`
	Price02       *float64 `json:"price_02"`
	Packing02     *string  `json:"packing_02"`
	Price03       *float64 `json:"price_03"`
	Packing03     *string  `json:"packing_03"`
	Price04       *float64 `json:"price_04"`
	Packing04     *string  `json:"packing_04"`
	ShelfLifeDays *int     `json:"shelf_life_days"`
	LeadTimeDays  *int     `json:"lead_time_days"`
	IsEnabled     *bool    `json:"is_enabled"`
}

// toPatch converts the request to the domain's typed patch.
func (r ProductPatchRequest) toPatch() product.Patch {
	patch := product.Patch{
		ItemName:      r.ItemName,
		Category:      r.Category,
		Description:   r.Description,
		ImageSrc:      r.ImageURL,
		ShelfLifeDays: r.ShelfLifeDays,
		LeadTimeDays:  r.LeadTimeDays,
		IsEnabled:     r.IsEnabled,
	}

	prices := [product.SlotCount]*float64{r.Price01, r.Price02, r.Price03, r.Price04}
	packings := [product.SlotCount]*string{r.Packing01, r.Packing02, r.Packing03, r.Packing04}

	for i := range product.SlotCount {
		if prices[i] != nil {
			price := decimal.NewFromFloat(*prices[i])
			patch.Prices[i] = &price
		}
		patch.Packings[i] = packings[i]
	}

	return patch
}

// CategoryResponse is one category with its product count.
type CategoryResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
