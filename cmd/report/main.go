// Command report loads the three input tables once and prints the monthly,
// product and client summaries.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/server"
	"investment-dashboard/internal/validation"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

type reportFlags struct {
	DateSystem string `json:"date_system" validate:"required,date_system"`
	Format     string `json:"format" validate:"oneof=table json"`
}

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg := config.Load()
	cfg.Source.Kind = config.SourceKindCSV

	fs := flag.NewFlagSet("report", flag.ExitOnError)
	fs.StringVar(&cfg.Source.ClientsPath, "clients", cfg.Source.ClientsPath, "client table (local path or gs://bucket/object)")
	fs.StringVar(&cfg.Source.ProductsPath, "products", cfg.Source.ProductsPath, "product table (local path or gs://bucket/object)")
	fs.StringVar(&cfg.Source.InvestmentsPath, "investments", cfg.Source.InvestmentsPath, "investment table (local path or gs://bucket/object)")
	dateSystem := fs.String("date-system", cfg.Report.DateSystem, "serial date system: epoch1900 or excel1900")
	format := fs.String("format", "table", "output format: table or json")
	timeout := fs.Duration("timeout", time.Minute, "overall time limit")
	_ = fs.Parse(os.Args[1:])

	flags := reportFlags{DateSystem: strings.ToLower(*dateSystem), Format: *format}
	if problems := validationProblems(flags); len(problems) > 0 {
		fmt.Fprintln(os.Stderr, "invalid flags:", strings.Join(problems, "; "))
		os.Exit(2)
	}
	cfg.Report.DateSystem = flags.DateSystem

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := run(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "report failed:", err)
		os.Exit(exitCode(err))
	}

	if flags.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(os.Stderr, "write report:", err)
			os.Exit(1)
		}
		return
	}
	if err := printTables(os.Stdout, report); err != nil {
		fmt.Fprintln(os.Stderr, "write report:", err)
		os.Exit(1)
	}
}

func validationProblems(flags reportFlags) []string {
	return validation.GetValidator().Struct(flags)
}

func run(ctx context.Context, cfg *config.Config) (*models.Report, error) {
	comps, err := server.BuildComponents(ctx, cfg, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	defer comps.Close()

	return comps.Reports.GenerateReport(ctx)
}

// exitCode is 3 for bad input data and 1 for everything else
func exitCode(err error) int {
	if errors.Is(err, models.ErrInputFormat) || errors.Is(err, models.ErrMissingKey) {
		return 3
	}
	return 1
}

func printTables(out io.Writer, report *models.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Monthly summary (%s)\t\t\t\t\n", report.DateSystem)
	fmt.Fprintln(w, "month\ttotal\tmean\tcount\t")
	for _, m := range report.Monthly {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t\n", m.Month, m.TotalAmount.StringFixed(2), m.MeanAmount.StringFixed(2), m.TransactionCount)
	}
	fmt.Fprintln(w, "\t\t\t\t")

	fmt.Fprintln(w, "Products\t\t")
	fmt.Fprintln(w, "product\ttotal\t")
	for _, p := range report.Products {
		fmt.Fprintf(w, "%s\t%s\t\n", p.Product, p.TotalAmount.StringFixed(2))
	}
	fmt.Fprintln(w, "\t\t")

	fmt.Fprintln(w, "Clients\t\t\t")
	fmt.Fprintln(w, "client\ttotal\ttier\t")
	for _, c := range report.Clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", c.Client, c.TotalAmount.StringFixed(2), c.Tier)
	}
	fmt.Fprintf(w, "\t\t\t\n%d investments\ttotal %s\t\t\n", report.InvestmentCount, report.GrandTotal.StringFixed(2))

	return w.Flush()
}
