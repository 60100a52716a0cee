// Command migrate prepares the database source: it applies the SQL
// migrations, optionally runs the seed files and optionally imports the
// csv input tables.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/database"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

var (
	migrationsDir = flag.String("migrations", "db/migrations", "path to the migrations directory")
	seedsDir      = flag.String("seeds", "db/seeds", "path to the seed files directory")
	seed          = flag.Bool("seed", false, "run the seed files after migrating")
	importCSV     = flag.Bool("import-csv", false, "replace the database tables with the configured csv inputs")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Driver == config.DriverPostgres {
		if err := migratePostgres(ctx, &cfg.Database); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	if !*importCSV && cfg.Database.Driver == config.DriverPostgres {
		return
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatalf("AutoMigrate failed: %v", err)
		}
		log.Println("SQLite schema is up to date")
	}

	if *importCSV {
		if err := importTables(ctx, cfg, repositories.NewDatasetRepository(db.DB)); err != nil {
			log.Fatalf("CSV import failed: %v", err)
		}
	}
}

func migratePostgres(ctx context.Context, cfg *config.DatabaseConfig) error {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB,
		database.WithMigrationsPath(*migrationsDir),
		database.WithSeedsPath(*seedsDir),
		database.WithSeeds(*seed),
	)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	if _, err := runner.LoadSeeds(ctx); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return err
	}
	log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
	return nil
}

// importTables validates the csv inputs the same way the report pipeline does
// before replacing the database contents in one transaction
func importTables(ctx context.Context, cfg *config.Config, target repositories.DatasetRepositoryInterface) error {
	source := repositories.NewCSVSourceRepository(repositories.NewObjectStore(), repositories.CSVSourceConfig{
		ClientsPath:     cfg.Source.ClientsPath,
		ProductsPath:    cfg.Source.ProductsPath,
		InvestmentsPath: cfg.Source.InvestmentsPath,
		Delimiter:       cfg.Source.Delimiter,
	})

	var (
		clients     []models.Client
		products    []models.Product
		investments []models.Investment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = source.LoadClients(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = source.LoadProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		investments, err = source.LoadInvestments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if _, err := models.NewReferenceData(clients, products); err != nil {
		return err
	}

	if err := target.ReplaceAll(ctx, clients, products, investments); err != nil {
		return err
	}

	counts, err := target.Counts(ctx)
	if err != nil {
		return err
	}
	log.Printf("Imported %d clients, %d products and %d investments", counts.Clients, counts.Products, counts.Investments)
	return nil
}
