package cmd

import (
	"netondemand/internal/adapters/out/postgres"
	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/application/usecases/queries"
	"netondemand/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	fulfiller  services.OrderFulfiller
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		fulfiller:  services.NewOrderFulfiller(),
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	var f commands.FulfilmentUoWFactory = FuncFulfilmentUoWFactory(func() commands.FulfilmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrdersCommandHandler(f, c.fulfiller)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.FulfilmentUoWFactory = FuncFulfilmentUoWFactory(func() commands.FulfilmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.fulfiller)
}

func (c *CompositionRoot) CreateProvisionInstanceCommandHandler() commands.ProvisionInstanceCommandHandler {
	var f commands.InstanceUoWFactory = FuncInstanceUoWFactory(func() commands.InstanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProvisionInstanceCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestBandwidthChangeCommandHandler() commands.RequestBandwidthChangeCommandHandler {
	var f commands.ChangeUoWFactory = FuncChangeUoWFactory(func() commands.ChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestBandwidthChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleBandwidthChangeCommandHandler() commands.ScheduleBandwidthChangeCommandHandler {
	var f commands.ChangeUoWFactory = FuncChangeUoWFactory(func() commands.ChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleBandwidthChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyBandwidthChangeCommandHandler() commands.ApplyBandwidthChangeCommandHandler {
	var f commands.ChangeUoWFactory = FuncChangeUoWFactory(func() commands.ChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyBandwidthChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelBandwidthChangeCommandHandler() commands.CancelBandwidthChangeCommandHandler {
	var f commands.ChangeUoWFactory = FuncChangeUoWFactory(func() commands.ChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelBandwidthChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyScheduledChangesCommandHandler() commands.ApplyScheduledChangesCommandHandler {
	var f commands.ChangeUoWFactory = FuncChangeUoWFactory(func() commands.ChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyScheduledChangesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableServicesQueryHandler() queries.GetAvailableServicesQueryHandler {
	return queries.NewGetAvailableServicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyOrdersQueryHandler() queries.GetCompanyOrdersQueryHandler {
	return queries.NewGetCompanyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyInstancesQueryHandler() queries.GetCompanyInstancesQueryHandler {
	return queries.NewGetCompanyInstancesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInstanceUoWFactory func() commands.InstanceUoW

func (f FuncInstanceUoWFactory) Create() commands.InstanceUoW {
	return f()
}

type FuncChangeUoWFactory func() commands.ChangeUoW

func (f FuncChangeUoWFactory) Create() commands.ChangeUoW {
	return f()
}

type FuncFulfilmentUoWFactory func() commands.FulfilmentUoW

func (f FuncFulfilmentUoWFactory) Create() commands.FulfilmentUoW {
	return f()
}
