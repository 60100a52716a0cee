package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Column aliases accepted for each logical column, matched case-insensitively.
var (
	clientIDColumn     = column{"client_id", "ID_Cliente"}
	clientNameColumn   = column{"client_name", "Nome_Cliente"}
	cityColumn         = column{"city", "Cidade"}
	productIDColumn    = column{"product_id", "ID_Produto"}
	productNameColumn  = column{"product_name", "Produto", "Nome_Produto"}
	categoryColumn     = column{"category", "Categoria"}
	amountColumn       = column{"amount", "Valor_Investido"}
	investedDateColumn = column{"invested_date", "Data_Investimento"}
)

// CSVSourceConfig locates the three delimited input files
type CSVSourceConfig struct {
	ClientsPath     string
	ProductsPath    string
	InvestmentsPath string
	Delimiter       rune
}

type csvSourceRepository struct {
	store  ObjectStoreInterface
	config CSVSourceConfig
}

// NewCSVSourceRepository creates a source reading delimited files with a header row
func NewCSVSourceRepository(store ObjectStoreInterface, config CSVSourceConfig) SourceRepositoryInterface {
	if config.Delimiter == 0 {
		config.Delimiter = ';'
	}
	return &csvSourceRepository{
		store:  store,
		config: config,
	}
}

// LoadClients reads the client table. The id is always the first column,
// whatever its header says.
func (r *csvSourceRepository) LoadClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client

	err := r.readTable(ctx, r.config.ClientsPath, models.TableClients, rowKeyRequired,
		[]column{clientNameColumn, cityColumn},
		func(row *csvRow) error {
			id, err := row.key()
			if err != nil {
				return err
			}
			clients = append(clients, models.Client{
				ID:   id,
				Name: row.text(clientNameColumn),
				City: row.text(cityColumn),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// LoadProducts reads the product table keyed by its first column
func (r *csvSourceRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	err := r.readTable(ctx, r.config.ProductsPath, models.TableProducts, rowKeyRequired,
		[]column{productNameColumn, categoryColumn},
		func(row *csvRow) error {
			id, err := row.key()
			if err != nil {
				return err
			}
			products = append(products, models.Product{
				ID:       id,
				Name:     row.text(productNameColumn),
				Category: row.text(categoryColumn),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// LoadInvestments reads the fact table. When the first column is not one of
// the known columns it is the row key, otherwise rows are numbered from 1.
func (r *csvSourceRepository) LoadInvestments(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	seen := make(map[int]int)

	err := r.readTable(ctx, r.config.InvestmentsPath, models.TableInvestments, rowKeyOptional,
		[]column{clientIDColumn, productIDColumn, amountColumn, investedDateColumn},
		func(row *csvRow) error {
			id := len(investments) + 1
			if row.hasRowKey {
				key, err := row.key()
				if err != nil {
					return err
				}
				if first, dup := seen[key]; dup {
					return row.formatError(row.header[0], strconv.Itoa(key),
						fmt.Errorf("%w: %d, first seen on row %d", models.ErrDuplicateKey, key, first))
				}
				seen[key] = row.line
				id = key
			}

			clientID, err := row.integer(clientIDColumn)
			if err != nil {
				return err
			}
			productID, err := row.integer(productIDColumn)
			if err != nil {
				return err
			}
			amount, err := row.decimalValue(amountColumn)
			if err != nil {
				return err
			}
			serial, err := row.integer(investedDateColumn)
			if err != nil {
				return err
			}

			investment := models.Investment{
				ID:         id,
				ClientID:   clientID,
				ProductID:  productID,
				Amount:     amount,
				SerialDate: serial,
				SourceRow:  row.line,
			}
			if err := investment.Validate(); err != nil {
				col, value := amountColumn, row.text(amountColumn)
				if errors.Is(err, models.ErrInvalidSerialDate) {
					col, value = investedDateColumn, row.text(investedDateColumn)
				}
				return row.formatError(row.header[row.index[col.key()]], value, err)
			}

			investments = append(investments, investment)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return investments, nil
}

// rowKey says how the first column of a table is treated
type rowKey int

const (
	// rowKeyRequired tables take their id from the first column by position
	rowKeyRequired rowKey = iota
	// rowKeyOptional tables have a key column only when its header is not a known column
	rowKeyOptional
)

// readTable streams the records of one table into fn after resolving the
// required columns against the header.
func (r *csvSourceRepository) readTable(ctx context.Context, path, table string, keyMode rowKey, required []column, fn func(*csvRow) error) error {
	rc, err := r.store.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open %s table: %w", table, err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.Comma = r.config.Delimiter
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &models.InputFormatError{Table: table, Row: 1, Err: errors.New("table is empty")}
		}
		return csvReadError(table, err)
	}
	header = normalizeHeader(header)
	hasRowKey := keyMode == rowKeyRequired || !isKnownColumn(header[0])

	first := 0
	if hasRowKey {
		first = 1
	}
	index, err := resolveColumns(table, header, first, required)
	if err != nil {
		return err
	}

	row := &csvRow{
		table:     table,
		header:    header,
		index:     index,
		hasRowKey: hasRowKey,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return csvReadError(table, err)
		}

		row.line, _ = reader.FieldPos(0)
		row.record = record
		if err := fn(row); err != nil {
			return err
		}
	}
}

func csvReadError(table string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &models.InputFormatError{Table: table, Row: parseErr.StartLine, Err: parseErr.Err}
	}
	return fmt.Errorf("failed to read %s table: %w", table, err)
}

// column lists the accepted header names of a logical column, canonical name first
type column []string

func (c column) key() string {
	return c[0]
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// resolveColumns finds each required column among header[first:]
func resolveColumns(table string, header []string, first int, required []column) (map[string]int, error) {
	index := make(map[string]int, len(required))
	for _, col := range required {
		pos := -1
		for i := first; i < len(header); i++ {
			if col.matches(header[i]) {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, &models.InputFormatError{
				Table:  table,
				Row:    1,
				Column: col.key(),
				Err:    fmt.Errorf("%w: expected one of %s", models.ErrMissingColumn, strings.Join(col, ", ")),
			}
		}
		index[col.key()] = pos
	}
	return index, nil
}

func (c column) matches(name string) bool {
	for _, alias := range c {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

func isKnownColumn(name string) bool {
	for _, col := range []column{
		clientIDColumn, clientNameColumn, cityColumn,
		productIDColumn, productNameColumn, categoryColumn,
		amountColumn, investedDateColumn,
	} {
		if col.matches(name) {
			return true
		}
	}
	return false
}

type csvRow struct {
	table     string
	header    []string
	index     map[string]int
	hasRowKey bool
	line      int
	record    []string
}

func (r *csvRow) text(col column) string {
	return strings.TrimSpace(r.record[r.index[col.key()]])
}

// key parses the first column as the row key
func (r *csvRow) key() (int, error) {
	return r.intAt(0, r.header[0])
}

func (r *csvRow) integer(col column) (int, error) {
	pos := r.index[col.key()]
	return r.intAt(pos, r.header[pos])
}

func (r *csvRow) intAt(pos int, name string) (int, error) {
	raw := strings.TrimSpace(r.record[pos])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, r.formatError(name, raw, models.ErrNotANumber)
	}
	return v, nil
}

func (r *csvRow) decimalValue(col column) (decimal.Decimal, error) {
	pos := r.index[col.key()]
	raw := strings.TrimSpace(r.record[pos])
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, r.formatError(r.header[pos], raw, models.ErrNotANumber)
	}
	return d, nil
}

func (r *csvRow) formatError(columnName, value string, err error) error {
	return &models.InputFormatError{
		Table:  r.table,
		Row:    r.line,
		Column: columnName,
		Value:  value,
		Err:    err,
	}
}
