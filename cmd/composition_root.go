package cmd

import (
	"context"
	"log/slog"

	"restaurant/internal/adapters/out/partner"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers and jobs together. All Create*
// methods hand out ready-to-use use case handlers sharing the same
// infrastructure instances.
type CompositionRoot struct {
	configs       Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	partnerClient *partner.Client
	watcherPool   *jobs.ConfirmationWatcherPool
	logger        *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and an open
// database connection.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		partnerClient: partner.NewClient(configs.PartnerBaseURL, nil),
		logger:        logger,
	}

	root.watcherPool = jobs.NewConfirmationWatcherPool(
		root.CreateConfirmOrderCommandHandler(),
		root.CreateExpireOrderCommandHandler(),
		root.partnerClient,
		configs.ConfirmationWindow,
		configs.DriverPollInterval,
		logger,
	)

	return root
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.watcherPool)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.partnerClient, c.configs.StrictStatusFlow)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOrderCommandHandler() commands.ExpireOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f, c.configs.ConfirmationWindow)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs, handing lifecycle ownership of
// the watcher pool to the manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireStaleOrdersCommandHandler(), c.watcherPool, c.logger)
}

// SeedMenu populates the menu catalog on first run. An already populated
// catalog is left untouched.
func (c *CompositionRoot) SeedMenu(ctx context.Context) error {
	seed := []struct {
		name      string
		price     float64
		available bool
	}{
		{"Burger", 8.99, true},
		{"Fries", 2.99, true},
		{"Pizza", 12.99, true},
		{"Salad", 5.49, false},
		{"Chicken Wings", 9.99, true},
		{"Pasta", 11.49, true},
		{"Soda", 1.99, true},
		{"Ice Cream", 3.99, false},
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	count, err := menuRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return uow.Rollback(ctx)
	}

	for _, entry := range seed {
		item, itemErr := menu.NewItem(entry.name, entry.price, entry.available)
		if itemErr != nil {
			return itemErr
		}

		if err = menuRepo.Add(ctx, item); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
