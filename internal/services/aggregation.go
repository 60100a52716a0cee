package services

import (
	"sort"

	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Reductions over enriched investments. None of them modifies its input, so
// they may run concurrently over the same slice.

const amountPlaces = 2

var hundred = decimal.NewFromInt(100)

// SummarizeByMonth totals, averages and counts investments per month bucket,
// ascending by month.
func SummarizeByMonth(rows []models.EnrichedInvestment) []models.MonthlySummary {
	type bucket struct {
		total decimal.Decimal
		count int
	}
	buckets := make(map[string]*bucket)

	for i := range rows {
		b, ok := buckets[rows[i].Month]
		if !ok {
			b = &bucket{}
			buckets[rows[i].Month] = b
		}
		b.total = b.total.Add(rows[i].Amount)
		b.count++
	}

	summaries := make([]models.MonthlySummary, 0, len(buckets))
	for month, b := range buckets {
		summaries = append(summaries, models.MonthlySummary{
			Month:            month,
			TotalAmount:      b.total.Round(amountPlaces),
			MeanAmount:       b.total.Div(decimal.NewFromInt(int64(b.count))).Round(amountPlaces),
			TransactionCount: b.count,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})

	return summaries
}

// SummarizeByProduct totals investments per product name, descending by
// total. Equal totals keep the order in which products first appear.
func SummarizeByProduct(rows []models.EnrichedInvestment) []models.ProductSummary {
	names, totals := groupTotals(rows, func(inv *models.EnrichedInvestment) string {
		return inv.ProductName
	})

	summaries := make([]models.ProductSummary, len(names))
	for i, name := range names {
		summaries[i] = models.ProductSummary{
			Product:     name,
			TotalAmount: totals[name].Round(amountPlaces),
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
	})

	return summaries
}

// SummarizeByClient totals investments per client name and classifies each
// rounded total, descending by total with first-seen tie order.
func SummarizeByClient(rows []models.EnrichedInvestment, thresholds models.TierThresholds) []models.ClientSummary {
	names, totals := groupTotals(rows, func(inv *models.EnrichedInvestment) string {
		return inv.ClientName
	})

	summaries := make([]models.ClientSummary, len(names))
	for i, name := range names {
		total := totals[name].Round(amountPlaces)
		summaries[i] = models.ClientSummary{
			Client:      name,
			TotalAmount: total,
			Tier:        thresholds.Classify(total),
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAmount.GreaterThan(summaries[j].TotalAmount)
	})

	return summaries
}

// TotalAmount sums the raw amounts, rounded like every other total
func TotalAmount(rows []models.EnrichedInvestment) decimal.Decimal {
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Amount)
	}
	return total.Round(amountPlaces)
}

// MonthlyEvolution adds the percent change over the previous month to each
// monthly total. The first month, and any month following a zero total, has
// a change of zero.
func MonthlyEvolution(monthly []models.MonthlySummary) []models.MonthlyEvolutionPoint {
	points := make([]models.MonthlyEvolutionPoint, len(monthly))
	for i, m := range monthly {
		change := decimal.Zero
		if i > 0 && !monthly[i-1].TotalAmount.IsZero() {
			prev := monthly[i-1].TotalAmount
			change = m.TotalAmount.Sub(prev).Div(prev).Mul(hundred).Round(amountPlaces)
		}
		points[i] = models.MonthlyEvolutionPoint{
			Month:         m.Month,
			TotalAmount:   m.TotalAmount,
			ChangePercent: change,
		}
	}
	return points
}

// TierConcentration sums client totals per tier, lowest tier first, listing
// only tiers that have at least one client.
func TierConcentration(clients []models.ClientSummary) []models.TierShare {
	shares := make(map[models.Tier]*models.TierShare)
	for _, c := range clients {
		share, ok := shares[c.Tier]
		if !ok {
			share = &models.TierShare{Tier: c.Tier}
			shares[c.Tier] = share
		}
		share.TotalAmount = share.TotalAmount.Add(c.TotalAmount)
		share.ClientCount++
	}

	result := make([]models.TierShare, 0, len(shares))
	for _, tier := range models.AllTiers() {
		if share, ok := shares[tier]; ok {
			share.TotalAmount = share.TotalAmount.Round(amountPlaces)
			result = append(result, *share)
		}
	}
	return result
}

func CategoryProductTotals(rows []models.EnrichedInvestment) []models.CategoryProductTotal {
	totals := pairTotals(rows, func(inv *models.EnrichedInvestment) [2]string {
		return [2]string{inv.ProductCategory, inv.ProductName}
	})

	result := make([]models.CategoryProductTotal, len(totals))
	for i, t := range totals {
		result[i] = models.CategoryProductTotal{Category: t.key[0], Product: t.key[1], TotalAmount: t.total}
	}
	return result
}

func CityCategoryTotals(rows []models.EnrichedInvestment) []models.CityCategoryTotal {
	totals := pairTotals(rows, func(inv *models.EnrichedInvestment) [2]string {
		return [2]string{inv.ClientCity, inv.ProductCategory}
	})

	result := make([]models.CityCategoryTotal, len(totals))
	for i, t := range totals {
		result[i] = models.CityCategoryTotal{City: t.key[0], Category: t.key[1], TotalAmount: t.total}
	}
	return result
}

func ProductMonthTotals(rows []models.EnrichedInvestment) []models.ProductMonthTotal {
	totals := pairTotals(rows, func(inv *models.EnrichedInvestment) [2]string {
		return [2]string{inv.ProductName, inv.Month}
	})

	result := make([]models.ProductMonthTotal, len(totals))
	for i, t := range totals {
		result[i] = models.ProductMonthTotal{Product: t.key[0], Month: t.key[1], TotalAmount: t.total}
	}
	return result
}

// groupTotals sums amounts per key and returns the keys in first-seen order
func groupTotals(rows []models.EnrichedInvestment, keyOf func(*models.EnrichedInvestment) string) ([]string, map[string]decimal.Decimal) {
	var names []string
	totals := make(map[string]decimal.Decimal)

	for i := range rows {
		key := keyOf(&rows[i])
		total, seen := totals[key]
		if !seen {
			names = append(names, key)
		}
		totals[key] = total.Add(rows[i].Amount)
	}

	return names, totals
}

type pairTotal struct {
	key   [2]string
	total decimal.Decimal
}

// pairTotals sums amounts per two-part key, sorted by the first part then the second
func pairTotals(rows []models.EnrichedInvestment, keyOf func(*models.EnrichedInvestment) [2]string) []pairTotal {
	totals := make(map[[2]string]decimal.Decimal)
	for i := range rows {
		key := keyOf(&rows[i])
		totals[key] = totals[key].Add(rows[i].Amount)
	}

	result := make([]pairTotal, 0, len(totals))
	for key, total := range totals {
		result = append(result, pairTotal{key: key, total: total.Round(amountPlaces)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].key[0] != result[j].key[0] {
			return result[i].key[0] < result[j].key[0]
		}
		return result[i].key[1] < result[j].key[1]
	})

	return result
}
