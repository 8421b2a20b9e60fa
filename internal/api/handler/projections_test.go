package handler

import (
	"net/http"
	"testing"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/goals"
	goalMocks "github.com/medgm/analytics-api/internal/usecases/goals/mocks"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProjectionRoutes(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(m *goalMocks.MockProjectionService)
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:   "Runway",
			target: "/v1/projections/runway?month=3&year=2024",
			setupMock: func(m *goalMocks.MockProjectionService) {
				m.EXPECT().Runway(gomock.Any(), march).Return(&domain.Runway{
					Period:       march,
					CashBalance:  60000,
					MonthlyBurn:  10000,
					RunwayMonths: 6,
					Status:       domain.RunwayHealthy,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"runway_months": float64(6), "status": string(domain.RunwayHealthy)},
		},
		{
			name:   "Ponto de equilíbrio",
			target: "/v1/projections/break-even?month=3&year=2024",
			setupMock: func(m *goalMocks.MockProjectionService) {
				m.EXPECT().BreakEven(gomock.Any(), march).Return(&domain.BreakEven{Period: march, SalesNeeded: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"sales_needed": float64(3)},
		},
		{
			name:   "Projeção de caixa sem months usa o horizonte padrão do serviço",
			target: "/v1/projections/cash?month=3&year=2024",
			setupMock: func(m *goalMocks.MockProjectionService) {
				m.EXPECT().CashProjection(gomock.Any(), march, 0).Return(&domain.CashProjection{Period: march}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Projeção de caixa com months",
			target: "/v1/projections/cash?month=3&year=2024&months=6",
			setupMock: func(m *goalMocks.MockProjectionService) {
				m.EXPECT().CashProjection(gomock.Any(), march, 6).Return(&domain.CashProjection{Period: march}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "months não numérico responde 400",
			target:         "/v1/projections/cash?month=3&year=2024&months=seis",
			setupMock:      func(m *goalMocks.MockProjectionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"code": apiErrors.ErrInvalidFormat},
		},
		{
			name:   "Horizonte acima do máximo responde 400",
			target: "/v1/projections/cash?month=3&year=2024&months=99",
			setupMock: func(m *goalMocks.MockProjectionService) {
				m.EXPECT().CashProjection(gomock.Any(), march, 99).
					Return(nil, goals.NewGoalError(goals.ErrInvalidProjectionWindow, apiErrors.ErrInvalidRequest, "months=99"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"code": apiErrors.ErrInvalidRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := goalMocks.NewMockProjectionService(ctrl)
			tt.setupMock(service)

			rec := serve(t, Projections(service), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			for key, value := range tt.expectedBody {
				assert.Equal(t, value, body[key], key)
			}
		})
	}
}
