package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Dataset: domain.DatasetStatus{Loaded: true, Source: domain.SourceFile, Records: 2},
		Summary: &domain.Summary{TotalRevenue: 150, Orders: 2, Customers: 1},
		Views: []*domain.AggregateTable{
			{
				View:    domain.ViewCategoryTotals,
				Title:   "Receita por categoria",
				Columns: []string{"category", "revenue"},
				Rows: []domain.AggregateRow{
					{Label: "Acessórios", Revenue: 100},
					{Label: "Roupas", Revenue: 50},
				},
			},
		},
	}
}

func TestBuildReport(t *testing.T) {
	t.Run("Sem visões informadas inclui o catálogo inteiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := mocks.NewMockDashboard(ctrl)

		catalogue := aggregating.DefaultCatalogue()
		dashboard.EXPECT().ListViews().Return(catalogue)
		dashboard.EXPECT().GetSummary(gomock.Any()).Return(&domain.Summary{Orders: 1}, nil)
		dashboard.EXPECT().GetStatus().Return(domain.DatasetStatus{Loaded: true})
		dashboard.EXPECT().GetView(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name string) (*domain.AggregateTable, error) {
				return &domain.AggregateTable{View: name}, nil
			}).
			Times(len(catalogue))

		report, err := BuildReport(context.Background(), dashboard, nil)
		require.NoError(t, err)
		require.Len(t, report.Views, len(catalogue))
		assert.Equal(t, catalogue[0].Name, report.Views[0].View)
		assert.True(t, report.Dataset.Loaded)
	})

	t.Run("Visão desconhecida interrompe o relatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := mocks.NewMockDashboard(ctrl)

		dashboard.EXPECT().GetSummary(gomock.Any()).Return(&domain.Summary{}, nil)
		dashboard.EXPECT().GetStatus().Return(domain.DatasetStatus{Loaded: true})
		dashboard.EXPECT().GetView(gomock.Any(), "inexistente").Return(nil, errors.New("visão desconhecida"))

		report, err := BuildReport(context.Background(), dashboard, []string{"inexistente"})
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Falha na carga do dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := mocks.NewMockDashboard(ctrl)

		dashboard.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("dataset indisponível"))

		_, err := BuildReport(context.Background(), dashboard, []string{domain.ViewCategoryTotals})
		assert.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	t.Run("JSON com as chaves da API", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, sampleReport(), FormatJSON))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Contains(t, decoded, "summary")
		assert.Contains(t, decoded, "views")
	})

	t.Run("YAML em estilo bloco com as mesmas chaves", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, sampleReport(), FormatYAML))

		out := buf.String()
		assert.Contains(t, out, "total_revenue: 150")
		assert.Contains(t, out, "view: category-totals")
		assert.NotContains(t, out, "{")

		var decoded struct {
			Views []struct {
				View string `yaml:"view"`
				Rows []struct {
					Category string  `yaml:"category"`
					Revenue  float64 `yaml:"revenue"`
				} `yaml:"rows"`
			} `yaml:"views"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Views, 1)
		assert.Equal(t, "Acessórios", decoded.Views[0].Rows[0].Category)
		assert.Equal(t, 50.0, decoded.Views[0].Rows[1].Revenue)
	})

	t.Run("Formato desconhecido", func(t *testing.T) {
		var buf bytes.Buffer
		err := Render(&buf, sampleReport(), "xml")
		assert.ErrorContains(t, err, "formato desconhecido")
	})
}
