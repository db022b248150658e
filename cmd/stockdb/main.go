package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/stockledger/internal/application/inventory"
	"github.com/jhoicas/stockledger/internal/application/seed"
	"github.com/jhoicas/stockledger/internal/application/usecase"
	"github.com/jhoicas/stockledger/internal/domain/repository"
	"github.com/jhoicas/stockledger/internal/infrastructure/memory"
	"github.com/jhoicas/stockledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stockledger/pkg/config"
	"github.com/jhoicas/stockledger/pkg/logger"
)

// storage repositorios y runner transaccional del driver elegido.
type storage struct {
	txRunner  inventory.TxRunner
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	ledger    repository.StockTransactionRepository
	sales     repository.SaleRepository
	reports   repository.ReportRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	supplierUC := usecase.NewSupplierUseCase(st.suppliers)
	productUC := usecase.NewProductUseCase(st.txRunner, st.products, st.suppliers, st.ledger, st.sales)
	registerSaleUC := inventory.NewRegisterSaleUseCase(st.txRunner)
	reportUC := usecase.NewReportUseCase(st.reports, cfg.Stock.LowStockThreshold, cfg.Stock.TopSellingLimit)

	if cfg.DB.Seed || cfg.DB.Driver == config.DriverMemory {
		seeder := seed.New(supplierUC, productUC, registerSaleUC, log.Component("seeder"))
		if _, err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	summary, err := reportUC.Summary(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("reportes")
	}

	reports := log.Component("reports")
	for _, item := range summary.Inventory {
		reports.Info().
			Str("product", item.Name).
			Int("quantity", item.Quantity).
			Str("value", item.Value.StringFixed(2)).
			Msg("inventario")
	}
	reports.Info().Str("total", summary.TotalRevenue.StringFixed(2)).Msg("ingresos totales")
	for _, top := range summary.TopSelling {
		reports.Info().
			Int("rank", top.Rank).
			Str("product", top.Name).
			Int("units_sold", top.UnitsSold).
			Str("revenue", top.Revenue.StringFixed(2)).
			Msg("más vendidos")
	}
	for _, item := range summary.LowStock.Items {
		reports.Warn().
			Str("product", item.Name).
			Int("quantity", item.Quantity).
			Int("threshold", summary.LowStock.Threshold).
			Msg("stock bajo")
	}
	log.Info().Msg("listo")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		store := memory.NewStore()
		return &storage{
			txRunner:  store,
			suppliers: store.Suppliers(),
			products:  store.Products(),
			ledger:    store.StockTransactions(),
			sales:     store.Sales(),
			reports:   store.Reports(),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, log.Component("migrator"))
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Int("applied", len(applied)).Msg("migraciones al día")
	}
	return &storage{
		txRunner:  postgres.NewTxRunner(pool),
		suppliers: postgres.NewSupplierRepository(pool),
		products:  postgres.NewProductRepository(pool),
		ledger:    postgres.NewStockTransactionRepository(pool),
		sales:     postgres.NewSaleRepository(pool),
		reports:   postgres.NewReportRepository(pool),
		close:     pool.Close,
	}, nil
}
