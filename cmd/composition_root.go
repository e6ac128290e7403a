package cmd

import (
	"ewaste/internal/adapters/out/postgres"
	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	routeSolver ports.RouteSolver
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, routeSolver ports.RouteSolver) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		routeSolver: routeSolver,
	}
}

func (c *CompositionRoot) CreateCreatePickupRequestCommandHandler() commands.CreatePickupRequestCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePickupRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAgentActivationCommandHandler() commands.SetAgentActivationCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAgentActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStalePickupsCommandHandler() commands.CancelStalePickupsCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStalePickupsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailablePickupsQueryHandler() queries.GetAvailablePickupsQueryHandler {
	return queries.NewGetAvailablePickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentPickupsQueryHandler() queries.GetAgentPickupsQueryHandler {
	return queries.NewGetAgentPickupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOptimizedRouteQueryHandler() queries.GetOptimizedRouteQueryHandler {
	return queries.NewGetOptimizedRouteQueryHandler(&c.uowFactory, c.routeSolver)
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
