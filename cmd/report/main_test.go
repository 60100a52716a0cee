package main

import (
	"bytes"
	"fmt"
	"testing"

	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTables(t *testing.T) {
	report := &models.Report{
		DateSystem:      models.DateSystemEpoch1900,
		InvestmentCount: 1,
		GrandTotal:      decimal.NewFromInt(12000),
		Monthly: []models.MonthlySummary{
			{Month: "1900-01", TotalAmount: decimal.NewFromInt(12000), MeanAmount: decimal.NewFromInt(12000), TransactionCount: 1},
		},
		Products: []models.ProductSummary{{Product: "CDB", TotalAmount: decimal.NewFromInt(12000)}},
		Clients:  []models.ClientSummary{{Client: "Ana", TotalAmount: decimal.NewFromInt(12000), Tier: models.TierPrata}},
	}

	var buf bytes.Buffer
	require.NoError(t, printTables(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "Monthly summary (epoch1900)")
	assert.Contains(t, out, "1900-01")
	assert.Contains(t, out, "12000.00")
	assert.Contains(t, out, "CDB")
	assert.Contains(t, out, "Prata")
	assert.Contains(t, out, "1 investments")
}

func TestExitCode(t *testing.T) {
	formatErr := &models.InputFormatError{Table: models.TableClients, Row: 2, Column: "client_id", Err: models.ErrNotANumber}
	missingErr := &models.MissingKeyError{Table: models.TableProducts, Key: 9, InvestmentID: 1}

	assert.Equal(t, 3, exitCode(formatErr))
	assert.Equal(t, 3, exitCode(fmt.Errorf("report: %w", missingErr)))
	assert.Equal(t, 1, exitCode(fmt.Errorf("boom")))
}

func TestReportFlagsValidation(t *testing.T) {
	assert.Empty(t, validationProblems(reportFlags{DateSystem: "excel1900", Format: "json"}))
	assert.NotEmpty(t, validationProblems(reportFlags{DateSystem: "mac1904", Format: "table"}))
	assert.NotEmpty(t, validationProblems(reportFlags{DateSystem: "epoch1900", Format: "xml"}))
}
