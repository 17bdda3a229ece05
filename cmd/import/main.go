// Comando import grava o export de vendas (e a tabela postal) no PostgreSQL,
// para uso com SALES_SOURCE=postgres.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/source"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func main() {
	salesFile := flag.String("sales", "", "arquivo de vendas (padrão: SALES_FILE)")
	postalFile := flag.String("postal", "", "tabela postal (padrão: POSTAL_FILE)")
	replace := flag.Bool("replace", false, "apaga as importações anteriores antes de gravar")
	validate := flag.Bool("validate", true, "normaliza as linhas antes de gravar e aborta em erro de formato")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(log.Options{Level: cfg.App.LogLevel, OutputFile: cfg.App.LogFile})

	datasetCfg := cfg.Dataset
	if *salesFile != "" {
		datasetCfg.SalesFile = *salesFile
	}
	if *postalFile != "" {
		datasetCfg.PostalFile = *postalFile
	}

	if datasetCfg.SalesFile == "" {
		log.L.Fatal("Informe o arquivo de vendas com -sales ou SALES_FILE")
	}

	ctx := context.Background()
	startTime := time.Now()

	input, err := source.NewFileSource(datasetCfg).Load(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao ler arquivos de origem")
	}

	if *validate {
		_, rejected, err := ingesting.NewNormalizer(datasetCfg).Normalize(input.Sales)
		if err != nil {
			log.L.WithError(err).Fatal("Arquivo de vendas inválido, nada foi gravado")
		}
		log.L.WithField("rejected", len(rejected)).Info("Validação concluída")
	}

	batchID, err := utils.GenerateBatchID(startTime)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gerar id da importação")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("Erro ao preparar tabelas")
	}

	saleRecordRepo := repository.NewSaleRecordRepository(conn)
	postalCodeRepo := repository.NewPostalCodeRepository(conn)

	if *replace {
		deleted, err := saleRecordRepo.DeleteAll(ctx)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao apagar importações anteriores")
		}
		log.L.WithField("records", deleted).Info("Importações anteriores apagadas")
	}

	inserted, err := saleRecordRepo.InsertBatch(ctx, batchID, input.Sales)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao gravar registros de venda")
	}

	if len(input.Postal) > 0 {
		upserted, err := postalCodeRepo.Upsert(ctx, input.Postal)
		if err != nil {
			log.L.WithError(err).Fatal("Erro ao gravar tabela postal")
		}
		log.L.WithField("dataset_postal_codes", upserted).Info("Tabela postal gravada")
	}

	log.L.WithFields(log.Fields{
		"dataset_batch_id": batchID,
		"records":          inserted,
		"duration_ms":      time.Since(startTime).Milliseconds(),
	}).Info("Importação concluída")
}
