package aggregating

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ParseMonth aceita nome completo em inglês, abreviação de três letras ou número (1-12)
func ParseMonth(value string) (time.Month, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, NewAggregationError(ErrSelection, "month", "mês não informado")
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, NewAggregationError(ErrSelection, value, "mês fora do intervalo 1-12")
		}
		return time.Month(n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(value, name) || strings.EqualFold(value, name[:3]) {
			return m, nil
		}
	}

	return 0, NewAggregationError(ErrSelection, value, "nome de mês inválido")
}

// ComparePeriods compara receita pontual do mês e acumulada no ano (YTD) entre duas seleções
func ComparePeriods(records []domain.SaleRecord, current, baseline domain.Selection) (*domain.PeriodComparison, error) {
	years := make(map[int]struct{})
	for _, record := range records {
		years[record.Year] = struct{}{}
	}

	currentFigures, err := periodFigures(records, years, current)
	if err != nil {
		return nil, err
	}

	baselineFigures, err := periodFigures(records, years, baseline)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodComparison{
		Current:       currentFigures,
		Baseline:      baselineFigures,
		RevenueChange: PercentChange(baselineFigures.Revenue, currentFigures.Revenue),
		YTDChange:     PercentChange(baselineFigures.YTDRevenue, currentFigures.YTDRevenue),
	}, nil
}

func periodFigures(records []domain.SaleRecord, years map[int]struct{}, selection domain.Selection) (domain.PeriodFigures, error) {
	month, err := ParseMonth(selection.Month)
	if err != nil {
		return domain.PeriodFigures{}, err
	}

	if _, ok := years[selection.Year]; !ok {
		return domain.PeriodFigures{}, NewAggregationError(ErrSelection, formatSelection(selection), "ano ausente no dataset")
	}

	figures := domain.PeriodFigures{
		Year:      selection.Year,
		Month:     month,
		MonthName: month.String(),
	}

	for _, record := range records {
		if record.Year != selection.Year {
			continue
		}

		recordMonth := record.Month.Month()
		if recordMonth == month {
			figures.Revenue += record.GrossRevenue
		}
		if recordMonth <= month {
			figures.YTDRevenue += record.GrossRevenue
		}
	}

	return figures, nil
}
