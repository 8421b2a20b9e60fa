package handler

import (
	"net/http"
	"testing"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	funnelMocks "github.com/medgm/analytics-api/internal/usecases/funnel/mocks"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFunnelRoutes(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(m *funnelMocks.MockFunnelService)
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:   "Funil geral quando group_by não é informado",
			target: "/v1/funnel?month=3&year=2024",
			setupMock: func(m *funnelMocks.MockFunnelService) {
				m.EXPECT().Report(gomock.Any(), march, domain.GroupingNone).
					Return(&domain.FunnelReport{Period: march, GroupBy: domain.GroupingNone}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"group_by": "none"},
		},
		{
			name:   "Funil agrupado por ator",
			target: "/v1/funnel?month=3&year=2024&group_by=actor",
			setupMock: func(m *funnelMocks.MockFunnelService) {
				m.EXPECT().Report(gomock.Any(), march, domain.GroupingActor).
					Return(&domain.FunnelReport{Period: march, GroupBy: domain.GroupingActor}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"group_by": "actor"},
		},
		{
			name:           "Agrupamento desconhecido responde 400",
			target:         "/v1/funnel?month=3&year=2024&group_by=bogus",
			setupMock:      func(m *funnelMocks.MockFunnelService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"code": apiErrors.ErrInvalidRequest},
		},
		{
			name:   "Métrica armazenada inválida responde 422",
			target: "/v1/funnel?month=3&year=2024",
			setupMock: func(m *funnelMocks.MockFunnelService) {
				m.EXPECT().Report(gomock.Any(), march, domain.GroupingNone).Return(nil, funnel.ErrInvalidMetric)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   map[string]any{"code": apiErrors.ErrInvalidData},
		},
		{
			name:   "Histórico do ano",
			target: "/v1/funnel/history?year=2024",
			setupMock: func(m *funnelMocks.MockFunnelService) {
				m.EXPECT().History(gomock.Any(), 2024).Return(&domain.FunnelHistory{Year: 2024}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"year": float64(2024)},
		},
		{
			name:   "Ranking de closers",
			target: "/v1/rankings/closers?month=3&year=2024",
			setupMock: func(m *funnelMocks.MockFunnelService) {
				m.EXPECT().CloserRanking(gomock.Any(), march).Return(&domain.CloserRankingResponse{
					Period:  march,
					Ranking: []domain.CloserRankingItem{{Actor: "Ana", Revenue: 5000, Sales: 2, Position: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := funnelMocks.NewMockFunnelService(ctrl)
			tt.setupMock(service)

			rec := serve(t, Funnel(service), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			for key, value := range tt.expectedBody {
				assert.Equal(t, value, body[key], key)
			}
		})
	}
}
