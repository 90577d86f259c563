package cmd

import (
	"epicerie/internal/adapters/out/marketapi"
	"epicerie/internal/adapters/out/postgres"
	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/application/usecases/queries"
	"epicerie/internal/core/ports"
	"epicerie/internal/pkg/inflight"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	orderGateway   ports.OrderGateway
	livreurGateway ports.LivreurGateway
	inflightGuard  *inflight.Guard
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	client := marketapi.NewClient(configs.MarketAPIBaseURL)

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderGateway:   marketapi.NewOrderGateway(client),
		livreurGateway: marketapi.NewLivreurGateway(client),
		inflightGuard:  inflight.NewGuard(),
	}
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(c.orderGateway, f, c.inflightGuard)
}

func (c *CompositionRoot) CreateAssignLivreurCommandHandler() commands.AssignLivreurCommandHandler {
	var f commands.LivreurUoWFactory = FuncLivreurUoWFactory(func() commands.LivreurUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLivreurCommandHandler(c.livreurGateway, f)
}

func (c *CompositionRoot) CreateUnassignLivreurCommandHandler() commands.UnassignLivreurCommandHandler {
	var f commands.LivreurUoWFactory = FuncLivreurUoWFactory(func() commands.LivreurUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignLivreurCommandHandler(c.livreurGateway, f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(c.orderGateway, c.livreurGateway, f, c.inflightGuard)
}

func (c *CompositionRoot) CreateRefreshSnapshotsCommandHandler() commands.RefreshSnapshotsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshSnapshotsCommandHandler(c.orderGateway, c.livreurGateway, f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderGateway, c.uowFactory.Create().OrderSnapshotRepository())
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.orderGateway, c.uowFactory.Create().OrderSnapshotRepository())
}

func (c *CompositionRoot) CreateListUnassignedLivreursQueryHandler() queries.ListUnassignedLivreursQueryHandler {
	return queries.NewListUnassignedLivreursQueryHandler(c.livreurGateway)
}

func (c *CompositionRoot) CreateListAssignedLivreursQueryHandler() queries.ListAssignedLivreursQueryHandler {
	return queries.NewListAssignedLivreursQueryHandler(
		c.livreurGateway, c.uowFactory.Create().LivreurSnapshotRepository())
}

func (c *CompositionRoot) CreateGetCachedOrderSummariesQueryHandler() queries.GetCachedOrderSummariesQueryHandler {
	return queries.NewGetCachedOrderSummariesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLivreurUoWFactory func() commands.LivreurUoW

func (f FuncLivreurUoWFactory) Create() commands.LivreurUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
