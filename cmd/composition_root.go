package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the database connection, unit-of-work factory and
// use-case handlers together. Each Create* method hands out a handler with
// its dependencies satisfied; queries share the GORM connection, commands
// get a fresh unit of work per invocation.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleProductCommandHandler() commands.ToggleProductCommandHandler {
	return commands.NewToggleProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateToggleAllProductsCommandHandler() commands.ToggleAllProductsCommandHandler {
	return commands.NewToggleAllProductsCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardSummaryQueryHandler() queries.DashboardSummaryQueryHandler {
	return queries.NewDashboardSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRevenueSeriesQueryHandler() queries.RevenueSeriesQueryHandler {
	return queries.NewRevenueSeriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTopProductsQueryHandler() queries.TopProductsQueryHandler {
	return queries.NewTopProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductsStateQueryHandler() queries.ProductsStateQueryHandler {
	return queries.NewProductsStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCategoryBreakdownQueryHandler() queries.CategoryBreakdownQueryHandler {
	return queries.NewCategoryBreakdownQueryHandler(c.gormDB)
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
