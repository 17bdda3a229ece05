package aggregating

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// DefaultCatalogue retorna as visões publicadas pelo dashboard
func DefaultCatalogue() []domain.ViewDefinition {
	return []domain.ViewDefinition{
		{
			Name:     domain.ViewMonthlyTotals,
			Title:    "Monthly Gross Revenue and Number of Orders",
			GroupBy:  []domain.Dimension{domain.DimensionMonth},
			Measures: []domain.Measure{domain.MeasureRevenue, domain.MeasureOrders},
			Sort:     domain.SortChronological,
		},
		{
			Name:     domain.ViewYearlyTotals,
			Title:    "Annual Gross Revenue and Number of Orders",
			GroupBy:  []domain.Dimension{domain.DimensionYear},
			Measures: []domain.Measure{domain.MeasureRevenue, domain.MeasureOrders},
			Sort:     domain.SortChronological,
		},
		{
			Name:     domain.ViewMonthlyByYear,
			Title:    "Monthly Revenue, Orders and Average Order Value Over the Years",
			GroupBy:  []domain.Dimension{domain.DimensionYear, domain.DimensionMonth},
			Measures: []domain.Measure{domain.MeasureRevenue, domain.MeasureOrders, domain.MeasureAverageOrderValue},
			Sort:     domain.SortChronological,
		},
		{
			Name:     domain.ViewCategoryTotals,
			Title:    "Top 20 Categories by Gross Revenue",
			GroupBy:  []domain.Dimension{domain.DimensionCategory},
			Measures: []domain.Measure{domain.MeasureRevenue},
			Sort:     domain.SortRevenueDesc,
			Limit:    20,
		},
		{
			Name:     domain.ViewSecondaryCategoryTotals,
			Title:    "Gross Revenue by Secondary Category",
			GroupBy:  []domain.Dimension{domain.DimensionSecondaryCategory},
			Measures: []domain.Measure{domain.MeasureRevenue},
			Sort:     domain.SortRevenueDesc,
		},
		{
			Name:     domain.ViewProductTotals,
			Title:    "Top 20 Products by Gross Revenue",
			GroupBy:  []domain.Dimension{domain.DimensionProduct},
			Measures: []domain.Measure{domain.MeasureRevenue},
			Sort:     domain.SortRevenueDesc,
			Limit:    20,
		},
		{
			Name:     domain.ViewCountyTotals,
			Title:    "Gross Revenue by County",
			GroupBy:  []domain.Dimension{domain.DimensionCounty},
			Measures: []domain.Measure{domain.MeasureRevenue},
			Sort:     domain.SortRevenueDesc,
		},
		{
			Name:         domain.ViewAnnualCategoryTrend,
			Title:        "Annual Revenue Trend by Secondary Category",
			GroupBy:      []domain.Dimension{domain.DimensionSecondaryCategory, domain.DimensionYear},
			Measures:     []domain.Measure{domain.MeasureRevenue},
			Sort:         domain.SortChronological,
			FullYearOnly: true,
		},
		{
			Name:         domain.ViewMonthlyCategoryTrend,
			Title:        "Monthly Revenue Trend by Secondary Category",
			GroupBy:      []domain.Dimension{domain.DimensionSecondaryCategory, domain.DimensionMonth},
			Measures:     []domain.Measure{domain.MeasureRevenue},
			Sort:         domain.SortChronological,
			FullYearOnly: true,
		},
	}
}
