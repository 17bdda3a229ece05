// Package source contém as origens do dataset de vendas (arquivos delimitados ou PostgreSQL)
package source

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// FileSource lê o export de vendas e, opcionalmente, a tabela postal do disco
type FileSource struct {
	salesFile       string
	salesDelimiter  rune
	postalFile      string
	postalDelimiter rune
}

// NewFileSource cria a origem a partir da configuração do dataset
func NewFileSource(cfg config.Dataset) *FileSource {
	return &FileSource{
		salesFile:       cfg.SalesFile,
		salesDelimiter:  firstRune(cfg.SalesDelimiter),
		postalFile:      cfg.PostalFile,
		postalDelimiter: firstRune(cfg.PostalDelimiter),
	}
}

func (s *FileSource) Kind() string {
	return domain.SourceFile
}

// Load lê os dois arquivos em paralelo. Qualquer erro cancela a carga inteira.
func (s *FileSource) Load(ctx context.Context) (*domain.RawInput, error) {
	input := &domain.RawInput{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := readFile(ctx, s.salesFile, func(f *os.File) ([]domain.RawSaleRow, error) {
			return ingesting.ReadSalesRows(f, s.salesDelimiter)
		})
		if err != nil {
			return errors.Wrapf(err, "erro ao ler arquivo de vendas %s", s.salesFile)
		}
		input.Sales = rows
		return nil
	})

	if s.postalFile != "" {
		g.Go(func() error {
			codes, err := readFile(ctx, s.postalFile, func(f *os.File) ([]domain.PostalCode, error) {
				return ingesting.ReadPostalCodes(f, s.postalDelimiter)
			})
			if err != nil {
				return errors.Wrapf(err, "erro ao ler tabela postal %s", s.postalFile)
			}
			input.Postal = codes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"source":               domain.SourceFile,
		"records":              len(input.Sales),
		"dataset_postal_codes": len(input.Postal),
	}).Info("file-source: arquivos lidos")

	return input, nil
}

func readFile[T any](ctx context.Context, path string, read func(*os.File) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return read(f)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
