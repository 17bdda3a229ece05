package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestDatasetRefreshService_refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		setup         func(dashboard *mocks.MockDashboard)
		expectedError string
	}{
		{
			name: "Recarga bem sucedida limpa o último erro",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					Reload(gomock.Any()).
					Return(domain.DatasetStatus{Loaded: true, Records: 10, Source: domain.SourceFile}, nil)
			},
		},
		{
			name: "Falha na recarga fica registrada no status",
			setup: func(dashboard *mocks.MockDashboard) {
				dashboard.EXPECT().
					Reload(gomock.Any()).
					Return(domain.DatasetStatus{}, errors.New("arquivo ilegível"))
			},
			expectedError: "arquivo ilegível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard := mocks.NewMockDashboard(ctrl)
			tt.setup(dashboard)

			service := NewDatasetRefreshService(dashboard, newRefreshConfig(true, "0 2 * * *"))
			service.refresh(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.expectedError, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestDatasetRefreshService_IgnoraRecargaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboard := mocks.NewMockDashboard(ctrl)
	dashboard.EXPECT().Reload(gomock.Any()).Times(0)

	service := NewDatasetRefreshService(dashboard, newRefreshConfig(true, "0 2 * * *"))
	service.syncRunning = true

	service.refresh(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	dashboard := mocks.NewMockDashboard(ctrl)
	dashboard.EXPECT().
		Reload(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (domain.DatasetStatus, error) {
			defer close(done)
			return domain.DatasetStatus{Loaded: true}, nil
		})

	service := NewDatasetRefreshService(dashboard, newRefreshConfig(false, ""))
	assert.True(t, service.TriggerManualSync(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}
}

func TestDatasetRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name: "Desabilitado não agenda nada",
			cfg:  newRefreshConfig(false, ""),
		},
		{
			name: "Expressão cron válida",
			cfg:  newRefreshConfig(true, "0 2 * * *"),
		},
		{
			name:    "Expressão cron inválida",
			cfg:     newRefreshConfig(true, "todo dia"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewDatasetRefreshService(mocks.NewMockDashboard(ctrl), tt.cfg)
			err := service.Start(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
