package cmd

import (
	"log/slog"
	"time"

	httpadapter "hmpaquetes/internal/adapters/in/http"
	"hmpaquetes/internal/adapters/out/postgres"
	"hmpaquetes/internal/core/application/usecases/commands"
	"hmpaquetes/internal/core/application/usecases/queries"
	"hmpaquetes/internal/core/ports"
	"hmpaquetes/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	location   *time.Location
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		location:   loc,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateReturnDispatchItemCommandHandler() commands.ReturnDispatchItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnDispatchItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateQuotationCommandHandler() commands.CreateQuotationCommandHandler {
	var f commands.QuotationUoWFactory = FuncQuotationUoWFactory(func() commands.QuotationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateQuotationCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveAddressCommandHandler() commands.SaveAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPendingTasksCommandHandler() commands.ProcessPendingTasksCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPendingTasksCommandHandler(f, c.location)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	var f queries.HistoryRepositoriesFactory = FuncHistoryRepositoriesFactory(func() queries.HistoryRepositories {
		return c.uowFactory.Create()
	})
	return queries.NewGetShipmentHistoryQueryHandler(f, c.logger, queries.HistoryOptions{
		Location: c.location,
		MediaURL: c.cfg.MediaURL,
	})
}

func (c *CompositionRoot) CreateListActiveServicesQueryHandler() queries.ListActiveServicesQueryHandler {
	return queries.NewListActiveServicesQueryHandler(c.gormDB)
}

// CreateRouter wires every use case into the HTTP API.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateGetShipmentHistoryQueryHandler(),
		c.CreateListActiveServicesQueryHandler(),
		c.CreateCreateQuotationCommandHandler(),
		c.CreateReturnDispatchItemCommandHandler(),
		c.CreateSaveAddressCommandHandler(),
		c.logger,
	)
	httpadapter.RegisterAPIDoc()
	return httpadapter.NewRouter(server, c.logger)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	pendingTasks, err := jobs.NewPendingTaskJob(
		c.CreateProcessPendingTasksCommandHandler(),
		c.cfg.PendingTasksSchedule,
		c.cfg.PendingTasksBatchSize,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(pendingTasks), nil
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncQuotationUoWFactory func() commands.QuotationUoW

func (f FuncQuotationUoWFactory) Create() commands.QuotationUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncHistoryRepositoriesFactory func() queries.HistoryRepositories

func (f FuncHistoryRepositoriesFactory) Create() queries.HistoryRepositories {
	return f()
}
