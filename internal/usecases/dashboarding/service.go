// Package dashboarding é dono do snapshot normalizado do dataset de vendas
package dashboarding

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

const (
	firstLoadKey = "first-load"
	reloadKey    = "reload"
)

var _ Dashboard = (*Service)(nil)

// Service publica o dataset como um ponteiro atômico para um snapshot imutável.
// Leitores nunca se bloqueiam; cargas concorrentes são compartilhadas via singleflight.
type Service struct {
	source     SalesSource
	normalizer *ingesting.Normalizer
	engine     *aggregating.Engine
	now        func() time.Time

	current   atomic.Pointer[domain.Dataset]
	loads     singleflight.Group
	reloading atomic.Bool

	errMutex  sync.RWMutex
	lastError string
}

// NewService cria o serviço. Nenhuma leitura acontece até o primeiro uso ou Reload.
func NewService(cfg config.Dataset, source SalesSource, engine *aggregating.Engine) *Service {
	return &Service{
		source:     source,
		normalizer: ingesting.NewNormalizer(cfg),
		engine:     engine,
		now:        time.Now,
	}
}

func (s *Service) ListViews() []domain.ViewDefinition {
	return s.engine.Views()
}

func (s *Service) GetView(ctx context.Context, name string) (*domain.AggregateTable, error) {
	if _, err := s.engine.View(name); err != nil {
		return nil, err
	}

	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.Compute(name, dataset.Records)
}

func (s *Service) GetSummary(ctx context.Context) (*domain.Summary, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregating.Summarize(dataset)
	return &summary, nil
}

func (s *Service) GetAverageOrderValue(ctx context.Context) (float64, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return 0, err
	}
	return aggregating.AverageOrderValue(dataset.Records)
}

func (s *Service) GetReturningCustomerRatio(ctx context.Context) (float64, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return 0, err
	}
	return aggregating.ReturningCustomerRatio(dataset.Records)
}

func (s *Service) ComparePeriods(ctx context.Context, current, baseline domain.Selection) (*domain.PeriodComparison, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return aggregating.ComparePeriods(dataset.Records, current, baseline)
}

func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return aggregating.AvailablePeriods(dataset.Records), nil
}

func (s *Service) GetStatus() domain.DatasetStatus {
	status := domain.DatasetStatus{
		Reloading: s.reloading.Load(),
	}

	s.errMutex.RLock()
	status.LastError = s.lastError
	s.errMutex.RUnlock()

	dataset := s.current.Load()
	if dataset == nil {
		return status
	}

	loadedAt := dataset.LoadedAt
	status.Loaded = true
	status.Source = dataset.Source
	status.LoadedAt = &loadedAt
	status.Records = len(dataset.Records)
	status.RejectedCount = len(dataset.Rejected)
	status.Rejected = dataset.Rejected

	return status
}

// Reload constrói um snapshot novo e só troca o ponteiro se a carga inteira der certo
func (s *Service) Reload(ctx context.Context) (domain.DatasetStatus, error) {
	if _, err := s.load(ctx, reloadKey); err != nil {
		return s.GetStatus(), err
	}
	return s.GetStatus(), nil
}

// dataset retorna o snapshot publicado, carregando-o no primeiro uso
func (s *Service) dataset(ctx context.Context) (*domain.Dataset, error) {
	if dataset := s.current.Load(); dataset != nil {
		return dataset, nil
	}
	return s.load(ctx, firstLoadKey)
}

func (s *Service) load(ctx context.Context, key string) (*domain.Dataset, error) {
	result, err, shared := s.loads.Do(key, func() (interface{}, error) {
		// Quem perdeu a corrida da primeira carga encontra o snapshot já publicado
		if key == firstLoadKey {
			if dataset := s.current.Load(); dataset != nil {
				return dataset, nil
			}
		}

		s.reloading.Store(true)
		defer s.reloading.Store(false)

		// Carga compartilhada: não depende do contexto de quem chegou primeiro
		dataset, err := s.build(context.WithoutCancel(ctx))
		if err != nil {
			s.setLastError(err)
			log.L.WithFields(log.Fields{
				"source": s.source.Kind(),
				"error":  err.Error(),
			}).Error("dashboard: falha ao carregar dataset, snapshot anterior mantido")
			return nil, err
		}

		s.current.Store(dataset)
		s.setLastError(nil)

		log.L.WithFields(log.Fields{
			"source":   dataset.Source,
			"records":  len(dataset.Records),
			"rejected": len(dataset.Rejected),
		}).Info("dashboard: snapshot publicado")

		return dataset, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}

	if shared {
		log.L.Debug("dashboard: carga compartilhada entre chamadas concorrentes")
	}

	return result.(*domain.Dataset), nil
}

func (s *Service) build(ctx context.Context) (*domain.Dataset, error) {
	input, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	records, rejected, err := s.normalizer.Normalize(input.Sales)
	if err != nil {
		return nil, err
	}

	records = ingesting.JoinPostal(records, ingesting.NewPostalIndex(input.Postal))

	return &domain.Dataset{
		Records:  records,
		Rejected: rejected,
		Source:   s.source.Kind(),
		LoadedAt: s.now().UTC(),
	}, nil
}

func (s *Service) setLastError(err error) {
	s.errMutex.Lock()
	defer s.errMutex.Unlock()

	if err == nil {
		s.lastError = ""
		return
	}
	s.lastError = err.Error()
}
