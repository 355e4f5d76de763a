package cmd

import (
	"log/slog"

	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/catalog"
	"checkout/internal/adapters/out/passwordhash"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/receipt"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/services"
	"checkout/internal/jobs"
	"checkout/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *catalog.FileCatalog
	pricing    services.PricingEngine
	receipts   *receipt.PDFGenerator
	hasher     passwordhash.BcryptHasher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	fileCatalog := catalog.NewFileCatalog(catalog.Config{
		ProductsPath:     cfg.CatalogProductsPath,
		ShippingPath:     cfg.CatalogShippingPath,
		ShippingDefaults: cfg.ShippingDefaultsEnabled,
	})
	pricing, err := services.NewPricingEngine(fileCatalog)
	if err != nil {
		return nil, err
	}
	receipts, err := receipt.NewPDFGenerator(cfg.DocumentsRoot)
	if err != nil {
		return nil, err
	}
	hasher, err := passwordhash.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    fileCatalog,
		pricing:    pricing,
		receipts:   receipts,
		hasher:     hasher,
		metrics:    metrics.New(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) buyerUoW() commands.BuyerUoWFactory {
	return FuncBuyerUoWFactory(func() commands.BuyerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() (commands.CheckoutCommandHandler, error) {
	return commands.NewCheckoutCommandHandler(c.uow(), c.orderUoW(), c.pricing, c.receipts, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGenerateReceiptCommandHandler() (commands.GenerateReceiptCommandHandler, error) {
	return commands.NewGenerateReceiptCommandHandler(c.uow(), c.orderUoW(), c.receipts, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCreateDraftOrderCommandHandler() commands.CreateDraftOrderCommandHandler {
	return commands.NewCreateDraftOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.orderUoW(), c.pricing)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateUpdateBuyerProfileCommandHandler() commands.UpdateBuyerProfileCommandHandler {
	return commands.NewUpdateBuyerProfileCommandHandler(c.buyerUoW())
}

func (c *CompositionRoot) CreateRegisterBuyerCommandHandler() commands.RegisterBuyerCommandHandler {
	return commands.NewRegisterBuyerCommandHandler(c.buyerUoW(), c.hasher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersWithoutReceiptQueryHandler() queries.GetOrdersWithoutReceiptQueryHandler {
	return queries.NewGetOrdersWithoutReceiptQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	checkout, err := c.CreateCheckoutCommandHandler()
	if err != nil {
		return nil, err
	}
	generateReceipt, err := c.CreateGenerateReceiptCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(httpin.Handlers{
		Checkout:           checkout,
		CreateDraftOrder:   c.CreateCreateDraftOrderCommandHandler(),
		AddLineItem:        c.CreateAddLineItemCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		GenerateReceipt:    generateReceipt,
		UpdateBuyerProfile: c.CreateUpdateBuyerProfileCommandHandler(),
		RegisterBuyer:      c.CreateRegisterBuyerCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
	}, c.metrics.Handler(), c.logger)
}

// CreateJobManager returns the scheduler for the enabled jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var backfill *jobs.ReceiptBackfillJob
	if c.cfg.ReceiptBackfillSchedule != ScheduleDisabled {
		generateReceipt, err := c.CreateGenerateReceiptCommandHandler()
		if err != nil {
			return nil, err
		}
		backfill = jobs.NewReceiptBackfillJob(
			c.CreateGetOrdersWithoutReceiptQueryHandler(),
			generateReceipt,
			c.cfg.ReceiptBackfillSchedule,
			c.cfg.ReceiptBackfillBatch,
			c.logger,
		)
	}

	var refresh *jobs.CatalogRefreshJob
	if c.cfg.CatalogRefreshSchedule != ScheduleDisabled {
		refresh = jobs.NewCatalogRefreshJob(c.catalog, c.cfg.CatalogRefreshSchedule, c.logger)
	}

	return jobs.NewJobManager(backfill, refresh), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBuyerUoWFactory func() commands.BuyerUoW

func (f FuncBuyerUoWFactory) Create() commands.BuyerUoW {
	return f()
}
