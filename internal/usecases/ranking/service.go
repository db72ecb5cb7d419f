package ranking

import (
	"context"

	"github.com/vfg2006/exchange-analytics-api/infrastructure/repository"
	"github.com/vfg2006/exchange-analytics-api/internal/domain"
)

type RankingService interface {
	GetOfficeRanking(ctx context.Context) (*domain.OfficeRankingResponse, error)
}

type OfficeRankingService struct {
	rankingRepo repository.OfficeRankingRepository
}

func NewOfficeRankingService(rankingRepo repository.OfficeRankingRepository) RankingService {
	return &OfficeRankingService{
		rankingRepo: rankingRepo,
	}
}

func (s *OfficeRankingService) GetOfficeRanking(ctx context.Context) (*domain.OfficeRankingResponse, error) {
	ranking, err := s.rankingRepo.GetRanking(ctx)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
