package aggregating

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestAverageOrderValue(t *testing.T) {
	value, err := AverageOrderValue([]domain.SaleRecord{
		sale("1", 2023, time.January, 600),
		sale("1", 2023, time.January, 200),
		sale("2", 2023, time.February, 200),
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, value)

	_, err = AverageOrderValue(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionUndefined))
}

func TestReturningCustomerRatio(t *testing.T) {
	records := make([]domain.SaleRecord, 0)
	for i := 0; i < 10; i++ {
		customer := fmt.Sprintf("cliente-%d", i)

		first := sale(fmt.Sprintf("%d-a", i), 2023, time.January, 10)
		first.CustomerHash = customer
		records = append(records, first)

		// Mesma ordem repetida não torna o cliente recorrente
		repeated := first
		records = append(records, repeated)

		if i < 3 {
			second := sale(fmt.Sprintf("%d-b", i), 2023, time.February, 10)
			second.CustomerHash = customer
			records = append(records, second)
		}
	}

	ratio, err := ReturningCustomerRatio(records)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, ratio, 1e-9)
}

func TestReturningCustomerRatio_NoCustomers(t *testing.T) {
	anonymous := sale("1", 2023, time.January, 10)
	anonymous.CustomerHash = ""

	_, err := ReturningCustomerRatio([]domain.SaleRecord{anonymous})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionUndefined))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		baseline float64
		current  float64
		expected float64
	}{
		{name: "Baseline zero vira zero", baseline: 0, current: 500, expected: 0},
		{name: "Queda de 25%", baseline: 200, current: 150, expected: -25},
		{name: "Alta de 50%", baseline: 200, current: 300, expected: 50},
		{name: "Baseline negativo usa a fórmula comum", baseline: -100, current: 50, expected: -150},
		{name: "Sem variação", baseline: 80, current: 80, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentChange(tt.baseline, tt.current), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	dataset := &domain.Dataset{
		Records: []domain.SaleRecord{
			sale("1", 2023, time.January, 100),
			sale("2", 2023, time.March, 300),
		},
		Rejected: []domain.RejectedRow{{Line: 4}},
	}

	summary := Summarize(dataset)
	assert.Equal(t, 400.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.Orders)
	assert.Equal(t, 2, summary.Customers)
	assert.Equal(t, 1, summary.Rejected)
	require.NotNil(t, summary.AverageOrderValue.Value)
	assert.Equal(t, 200.0, *summary.AverageOrderValue.Value)
	require.NotNil(t, summary.ReturningCustomerRatio.Value)
	assert.Equal(t, 0.0, *summary.ReturningCustomerRatio.Value)
	assert.Equal(t, time.January, summary.From.Month())
	assert.Equal(t, time.March, summary.To.Month())
}

func TestSummarize_EmptyDataset(t *testing.T) {
	summary := Summarize(&domain.Dataset{})

	assert.Nil(t, summary.AverageOrderValue.Value)
	assert.NotEmpty(t, summary.AverageOrderValue.Reason)
	assert.Nil(t, summary.ReturningCustomerRatio.Value)
	assert.Nil(t, summary.From)
}

func TestAvailablePeriods(t *testing.T) {
	periods := AvailablePeriods([]domain.SaleRecord{
		sale("1", 2023, time.March, 1),
		sale("2", 2022, time.December, 1),
		sale("3", 2023, time.March, 1),
	})

	assert.Equal(t, []string{"12-2022", "03-2023"}, periods.Periods)
	assert.Equal(t, []int{2022, 2023}, periods.Years)
	assert.Equal(t, []string{"March", "December"}, periods.Months)
}
