package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Report struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Dataset     domain.DatasetStatus     `json:"dataset"`
	Summary     *domain.Summary          `json:"summary"`
	Views       []*domain.AggregateTable `json:"views"`
}

// viewList acumula as ocorrências de -view
type viewList []string

func (v *viewList) String() string {
	return strings.Join(*v, ",")
}

func (v *viewList) Set(value string) error {
	*v = append(*v, value)
	return nil
}

// BuildReport carrega o dataset uma vez e calcula as visões pedidas (todas, se nenhuma)
func BuildReport(ctx context.Context, dashboard dashboarding.Dashboard, views []string) (*Report, error) {
	if len(views) == 0 {
		for _, view := range dashboard.ListViews() {
			views = append(views, view.Name)
		}
	}

	summary, err := dashboard.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		GeneratedAt: time.Now().UTC(),
		Dataset:     dashboard.GetStatus(),
		Summary:     summary,
		Views:       make([]*domain.AggregateTable, 0, len(views)),
	}

	for _, name := range views {
		table, err := dashboard.GetView(ctx, name)
		if err != nil {
			return nil, err
		}
		report.Views = append(report.Views, table)
	}

	return report, nil
}

// Render escreve o relatório. O YAML usa as mesmas chaves do JSON da API.
func Render(w io.Writer, report *Report, format string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		// JSON é YAML válido; o nó preserva a ordem das chaves
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return err
		}
		blockStyle(&node)

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(&node); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("formato desconhecido: %q (use json ou yaml)", format)
	}
}

func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
