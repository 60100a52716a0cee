// Command generate writes a synthetic set of input tables for demos and load
// tests.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"
	"investment-dashboard/internal/services"
)

func main() {
	out := flag.String("out", "data", "output directory or gs://bucket/prefix")
	clients := flag.Int("clients", 50, "number of clients")
	products := flag.Int("products", 10, "number of products")
	investments := flag.Int("investments", 1000, "number of investments")
	from := flag.String("from", "2023-01-01", "first investment date")
	to := flag.String("to", "2024-12-31", "last investment date")
	seed := flag.Uint64("seed", 1, "random seed, 0 for a random one")
	dateSystem := flag.String("date-system", string(models.DateSystemEpoch1900), "serial date system: epoch1900 or excel1900")
	flag.Parse()

	ds, err := models.ParseDateSystem(*dateSystem)
	if err != nil {
		log.Fatal(err)
	}
	fromDate, err := time.Parse(models.DateLayout, *from)
	if err != nil {
		log.Fatalf("invalid -from: %v", err)
	}
	toDate, err := time.Parse(models.DateLayout, *to)
	if err != nil {
		log.Fatalf("invalid -to: %v", err)
	}

	dataset, err := services.NewDatasetGenerator(*seed, ds).Generate(models.GenerateOptions{
		Clients:     *clients,
		Products:    *products,
		Investments: *investments,
		From:        fromDate,
		To:          toDate,
	})
	if err != nil {
		log.Fatalf("generate dataset: %v", err)
	}

	ctx := context.Background()
	store := repositories.NewObjectStore()

	if err := writeTable(ctx, store, joinPath(*out, "dim_cliente.csv"),
		[]string{"ID_Cliente", "Nome_Cliente", "Cidade"},
		len(dataset.Clients), func(i int) []string {
			c := dataset.Clients[i]
			return []string{strconv.Itoa(c.ID), c.Name, c.City}
		}); err != nil {
		log.Fatal(err)
	}

	if err := writeTable(ctx, store, joinPath(*out, "dim_produto.csv"),
		[]string{"ID_Produto", "Nome_Produto", "Categoria"},
		len(dataset.Products), func(i int) []string {
			p := dataset.Products[i]
			return []string{strconv.Itoa(p.ID), p.Name, p.Category}
		}); err != nil {
		log.Fatal(err)
	}

	if err := writeTable(ctx, store, joinPath(*out, "fato_investimento.csv"),
		[]string{"ID_Investimento", "ID_Cliente", "ID_Produto", "Valor_Investido", "Data_Investimento"},
		len(dataset.Investments), func(i int) []string {
			inv := dataset.Investments[i]
			return []string{
				strconv.Itoa(inv.ID),
				strconv.Itoa(inv.ClientID),
				strconv.Itoa(inv.ProductID),
				inv.Amount.StringFixed(2),
				strconv.Itoa(inv.SerialDate),
			}
		}); err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote %d clients, %d products and %d investments to %s",
		len(dataset.Clients), len(dataset.Products), len(dataset.Investments), *out)
}

func writeTable(ctx context.Context, store repositories.ObjectStoreInterface, path string, header []string, n int, row func(int) []string) (err error) {
	f, err := store.Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}
