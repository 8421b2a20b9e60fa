package funnel

import (
	"context"
	"sort"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/pkg/errors"
)

// CloserRanking ordena os closers pelo faturamento do mês e compara com a posição do mês anterior.
// O faturamento já considera o registro de vendas quando o closer não informou vendas.
func (s *Service) CloserRanking(ctx context.Context, period domain.Period) (*domain.CloserRankingResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidPeriod, err.Error())
	}

	previous := period.Previous()

	input, err := s.load(ctx, previous, period, false)
	if err != nil {
		return nil, err
	}

	current, err := rankClosers(period, input)
	if err != nil {
		return nil, err
	}

	before, err := rankClosers(previous, input)
	if err != nil {
		return nil, err
	}

	rankingsBeforeUpdate := make(map[string]*domain.CloserRankingItem, len(before))
	for _, item := range before {
		rankingsBeforeUpdate[item.Actor] = item
	}

	updatePositions(current, rankingsBeforeUpdate)

	log.ForContext(ctx).WithFields(log.Fields{
		"period":  period.String(),
		"closers": len(current),
	}).Info("Ranking de closers gerado")

	response := &domain.CloserRankingResponse{
		Period:  period,
		Ranking: make([]domain.CloserRankingItem, 0, len(current)),
	}
	for _, item := range current {
		response.Ranking = append(response.Ranking, *item)
	}

	return response, nil
}

func rankClosers(period domain.Period, input FunnelInput) ([]*domain.CloserRankingItem, error) {
	report, err := Aggregate(period, domain.GroupingActor, input)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CloserRankingItem, 0, len(report.Rows))
	for _, row := range report.Rows {
		items = append(items, &domain.CloserRankingItem{
			Actor:   row.Key,
			Revenue: row.Revenue,
			Sales:   row.Sales,
		})
	}

	updatePositions(items, nil)

	return items, nil
}

func updatePositions(
	updatedRankings []*domain.CloserRankingItem,
	rankingsBeforeUpdate map[string]*domain.CloserRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		if updatedRankings[i].Revenue != updatedRankings[j].Revenue {
			return updatedRankings[i].Revenue > updatedRankings[j].Revenue
		}
		return updatedRankings[i].Actor < updatedRankings[j].Actor
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.Actor]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}
