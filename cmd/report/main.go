// Comando report calcula todas as visões uma vez e imprime em JSON ou YAML
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/source"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	format := flag.String("format", FormatJSON, "formato de saída: json ou yaml")
	salesFile := flag.String("sales", "", "arquivo de vendas (padrão: SALES_FILE)")
	output := flag.String("out", "", "arquivo de saída (padrão: stdout)")
	var views viewList
	flag.Var(&views, "view", "visão a incluir (repetível; padrão: todas)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	// Logs vão para stderr para não misturar com o relatório
	log.Setup(log.Options{Level: cfg.App.LogLevel, OutputFile: cfg.App.LogFile, Console: os.Stderr})

	datasetCfg := cfg.Dataset
	if *salesFile != "" {
		datasetCfg.SalesFile = *salesFile
	}

	engine, err := aggregating.NewEngine()
	if err != nil {
		log.L.Fatal(err)
	}

	dashboard := dashboarding.NewService(datasetCfg, source.NewFileSource(datasetCfg), engine)

	report, err := BuildReport(context.Background(), dashboard, views)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gerar relatório")
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao criar arquivo de saída")
		}
		defer f.Close()
		out = f
	}

	if err := Render(out, report, *format); err != nil {
		log.L.WithError(err).Fatal("Erro ao escrever relatório")
	}
}
