package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Server implements the admin HTTP endpoints. It coordinates between HTTP
// handlers and application use cases; every route it registers sits behind
// the admin JWT middleware.
type Server struct {
	// Command handlers
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	toggleProductHandler     commands.ToggleProductCommandHandler
	toggleAllProductsHandler commands.ToggleAllProductsCommandHandler
	addProductHandler        commands.AddProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	dashboardSummaryHandler  queries.DashboardSummaryQueryHandler
	revenueSeriesHandler     queries.RevenueSeriesQueryHandler
	topProductsHandler       queries.TopProductsQueryHandler
	productsStateHandler     queries.ProductsStateQueryHandler
	categoryBreakdownHandler queries.CategoryBreakdownQueryHandler
}

// NewServer creates the admin HTTP server with the required command and
// query handlers.
func NewServer(
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	toggleProductHandler commands.ToggleProductCommandHandler,
	toggleAllProductsHandler commands.ToggleAllProductsCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	dashboardSummaryHandler queries.DashboardSummaryQueryHandler,
	revenueSeriesHandler queries.RevenueSeriesQueryHandler,
	topProductsHandler queries.TopProductsQueryHandler,
	productsStateHandler queries.ProductsStateQueryHandler,
	categoryBreakdownHandler queries.CategoryBreakdownQueryHandler,
) *Server {
	return &Server{
		updateOrderStatusHandler: updateOrderStatusHandler,
		toggleProductHandler:     toggleProductHandler,
		toggleAllProductsHandler: toggleAllProductsHandler,
		addProductHandler:        addProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		listOrdersHandler:        listOrdersHandler,
		dashboardSummaryHandler:  dashboardSummaryHandler,
		revenueSeriesHandler:     revenueSeriesHandler,
		topProductsHandler:       topProductsHandler,
		productsStateHandler:     productsStateHandler,
		categoryBreakdownHandler: categoryBreakdownHandler,
	}
}

// RegisterRoutes attaches every admin endpoint to the given group. The group
// is expected to carry the AdminAuth middleware.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", s.GetOrders)
	g.PATCH("/orders/:id", s.UpdateOrderStatus)
	g.GET("/dashboard/summary", s.DashboardSummary)
	g.GET("/dashboard/revenue", s.DashboardRevenue)
	g.GET("/dashboard/top-products", s.TopProducts)
	g.GET("/products-state", s.ProductsState)
	g.PATCH("/products/:id/toggle", s.ToggleProduct)
	g.PATCH("/products/toggle-all", s.ToggleAllProducts)
	g.POST("/products/add", s.AddProduct)
	g.PUT("/products/:id", s.UpdateProduct)
	g.DELETE("/products/:id", s.DeleteProduct)
	g.GET("/dashboard/categories", s.DashboardCategories)
}

// GetOrders handles GET /orders - the 500 newest orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o.ID, o.CreatedAt, o.MobileNumber, o.TotalAmount.InexactFloat64(), o.Status, o.Items)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /orders/:id - overwrites an order's
// fulfillment status and returns the updated order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var payload OrderStatusUpdateRequest
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(payload.OrderStatus)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+payload.OrderStatus)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to update order status")
	}

	response := toOrderResponse(
		updated.ID(),
		updated.CreatedAt(),
		updated.MobileNumber(),
		updated.TotalAmount().InexactFloat64(),
		updated.Status(),
		updated.Items(),
	)

	return ctx.JSON(http.StatusOK, response)
}

// DashboardSummary handles GET /dashboard/summary - period-filtered totals.
func (s *Server) DashboardSummary(ctx echo.Context) error {
	query := queries.NewDashboardSummaryQuery(ctx.QueryParam("period"))

	summary, err := s.dashboardSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute dashboard summary")
	}

	return ctx.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalRevenue:   summary.TotalRevenue.InexactFloat64(),
		TotalOrders:    summary.TotalOrders,
		TotalCustomers: summary.TotalCustomers,
	})
}

// DashboardRevenue handles GET /dashboard/revenue - the bucketed revenue
// series over all orders.
func (s *Server) DashboardRevenue(ctx echo.Context) error {
	query := queries.NewRevenueSeriesQuery(ctx.QueryParam("period"))

	series, err := s.revenueSeriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute revenue series")
	}

	response := make([]RevenuePointResponse, len(series))
	for i, bucket := range series {
		response[i] = RevenuePointResponse{Name: bucket.Name, Revenue: bucket.Revenue}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TopProducts handles GET /dashboard/top-products - the top 5 products by
// units sold over all orders.
func (s *Server) TopProducts(ctx echo.Context) error {
	query := queries.NewTopProductsQuery()

	ranking, err := s.topProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute top products")
	}

	response := make([]TopProductResponse, len(ranking))
	for i, entry := range ranking {
		response[i] = TopProductResponse{Name: entry.Name, Sales: entry.Sales, Revenue: entry.Revenue}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProductsState handles GET /products-state - every product with derived
// variants and max price.
func (s *Server) ProductsState(ctx echo.Context) error {
	query := queries.NewProductsStateQuery()

	products, err := s.productsStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]ProductStateResponse, len(products))
	for i, p := range products {
		variants := make([]VariantResponse, len(p.Variants))
		for j, v := range p.Variants {
			variants[j] = VariantResponse{Packing: v.Packing, Price: v.Price.InexactFloat64()}
		}

		response[i] = ProductStateResponse{
			ID:            p.ID,
			ItemName:      p.ItemName,
			Category:      p.Category,
			Description:   p.Description,
			ImageURL:      p.ImageSrc,
			Variants:      variants,
			MaxPrice:      p.MaxPrice.InexactFloat64(),
			ShelfLifeDays: p.ShelfLifeDays,
			LeadTimeDays:  p.LeadTimeDays,
			IsEnabled:     p.IsEnabled,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ToggleProduct handles PATCH /products/:id/toggle - flips the enabled flag.
func (s *Server) ToggleProduct(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewToggleProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	newStatus, err := s.toggleProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Product not found")
		}
		return internalError(ctx, "Failed to toggle product")
	}

	return ctx.JSON(http.StatusOK, ToggleProductResponse{
		ProductID: productID,
		NewStatus: newStatus,
	})
}

// ToggleAllProducts handles PATCH /products/toggle-all - bulk enable or
// disable, selected by ?action=0|1.
func (s *Server) ToggleAllProducts(ctx echo.Context) error {
	cmd, err := commands.NewToggleAllProductsCommand(ctx.QueryParam("action"))
	if err != nil {
		return badRequest(ctx, "Invalid action: must be \"0\" or \"1\"")
	}

	affected, err := s.toggleAllProductsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to toggle products")
	}

	return ctx.JSON(http.StatusOK, ToggleAllProductsResponse{AffectedCount: affected})
}

// AddProduct handles POST /products/add - creates a new enabled product.
// Persistence failures are logged with full detail server-side and surfaced
// to the caller as an opaque 500.
func (s *Server) AddProduct(ctx echo.Context) error {
	var payload ProductCreateRequest
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProductCommand(
		payload.ItemName,
		payload.Category,
		payload.Description,
		payload.ImageURL,
		payload.slots(),
		payload.ShelfLifeDays,
		payload.LeadTimeDays,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	productID, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		log.Errorf("add product failed: %v", err)
		return internalError(ctx, "Failed to add product")
	}

	return ctx.JSON(http.StatusOK, AddProductResponse{
		Message:   "Product added",
		ProductID: productID,
	})
}

// UpdateProduct handles PUT /products/:id - applies a typed partial patch.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var payload ProductPatchRequest
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(productID, payload.toPatch())
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Product not found")
		}
		if errors.Is(err, errs.ErrValueIsRequired) {
			return badRequest(ctx, "Invalid product data: "+err.Error())
		}
		return internalError(ctx, "Failed to update product")
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Product updated"})
}

// DeleteProduct handles DELETE /products/:id - permanently removes a product
// and its kitchen-prep variants.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Product not found")
		}
		return internalError(ctx, "Failed to delete product")
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Product deleted"})
}

// DashboardCategories handles GET /dashboard/categories - product counts per
// non-empty category.
func (s *Server) DashboardCategories(ctx echo.Context) error {
	query := queries.NewCategoryBreakdownQuery()

	breakdown, err := s.categoryBreakdownHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute category breakdown")
	}

	response := make([]CategoryResponse, len(breakdown))
	for i, entry := range breakdown {
		response[i] = CategoryResponse{Name: entry.Name, Value: entry.Value}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathID parses the :id path parameter as a positive integer identity.
func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
