// Package scheduler contém os serviços de agendamento de jobs em background
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/config"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
	"github.com/vfg2006/exchange-analytics-api/internal/period"
	"github.com/vfg2006/exchange-analytics-api/internal/usecases/aggregating"
)

type OfficeRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OfficeRankingService mantém o snapshot diário do ranking de escritórios por
// visualizações de perfil no último mês. Usa a agregação em lote: uma única
// query agrupada para todos os escritórios ativos, nunca uma por escritório.
type OfficeRankingService struct {
	scheduler           *gocron.Scheduler
	officeRepo          repository.OfficeRepository
	rankingRepo         repository.OfficeRankingRepository
	aggregator          aggregating.Aggregator
	config              OfficeRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOfficeRankingService(
	officeRepo repository.OfficeRepository,
	rankingRepo repository.OfficeRankingRepository,
	aggregator aggregating.Aggregator,
	cfg *config.Config,
) *OfficeRankingService {
	rankingConfig := OfficeRankingConfig{
		CronSchedule: cfg.OfficeRanking.CronSchedule,
		SyncEnabled:  cfg.OfficeRanking.SyncEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de escritórios carregada")

	return &OfficeRankingService{
		scheduler:   scheduler,
		officeRepo:  officeRepo,
		rankingRepo: rankingRepo,
		aggregator:  aggregator,
		config:      rankingConfig,
	}
}

func (s *OfficeRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do ranking de escritórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de escritórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateOfficeRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de escritórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de escritórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de escritórios")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateOfficeRanking recalcula o snapshot do ranking do mês corrente
func (s *OfficeRankingService) UpdateOfficeRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização do ranking de escritórios já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do ranking de escritórios")

	offices, err := s.officeRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar escritórios ativos para o ranking")
		return err
	}

	rankings, err := s.computeRanking(ctx, offices)
	if err != nil {
		return err
	}

	if err := s.rankingRepo.SaveOrUpdateRanking(ctx, rankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot do ranking de escritórios")
		return err
	}

	logrus.WithField("offices", len(rankings)).Info("Atualização do ranking de escritórios concluída")

	return nil
}

// computeRanking conta as visualizações de perfil do último mês de todos os
// escritórios em uma query agrupada, ordena e calcula a mudança de posição em
// relação ao snapshot anterior
func (s *OfficeRankingService) computeRanking(ctx context.Context, offices []*domain.Office) ([]*domain.OfficeRankingItem, error) {
	if len(offices) == 0 {
		return []*domain.OfficeRankingItem{}, nil
	}

	window, err := period.Resolve(string(period.LastOneMonth), time.Now())
	if err != nil {
		return nil, err
	}

	officeIDs := make([]string, 0, len(offices))
	for _, office := range offices {
		officeIDs = append(officeIDs, office.ID)
	}

	counts, err := s.aggregator.CountMany(ctx, domain.EventProfileView, officeIDs, window.CurrentStart, window.CurrentEnd)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar visualizações de perfil para o ranking")
		return nil, err
	}

	month := time.Now().AddDate(0, 0, -1).Format("01-2006")

	rankings := make([]*domain.OfficeRankingItem, 0, len(offices))
	for _, office := range offices {
		rankings = append(rankings, &domain.OfficeRankingItem{
			OfficeID:     office.ID,
			Month:        month,
			OfficeName:   office.Name,
			ProfileViews: counts[office.ID], // chave ausente significa zero
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].ProfileViews > rankings[j].ProfileViews
	})

	for i, item := range rankings {
		item.Position = i + 1

		previous, err := s.rankingRepo.GetByOfficeID(ctx, item.OfficeID, month)
		if err != nil {
			logrus.WithError(err).WithField("office_id", item.OfficeID).
				Warn("Erro ao buscar posição anterior no ranking; mantendo como novo")
			continue
		}

		if previous != nil {
			item.PreviousPosition = previous.Position
			item.PositionChange = previous.Position - item.Position
		}
	}

	return rankings, nil
}

// TriggerManualSync dispara uma atualização fora do horário agendado
func (s *OfficeRankingService) TriggerManualSync() {
	go func() {
		if err := s.UpdateOfficeRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de escritórios")
		}
	}()
}

// IsSyncRunning informa se há uma atualização em andamento
func (s *OfficeRankingService) IsSyncRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// LastSync retorna os horários da última execução
func (s *OfficeRankingService) LastSync() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
