// Package selling registra vendas e deriva o lançamento de entrada correspondente em um segundo passo
package selling

import (
	"context"
	"errors"
	"fmt"

	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// SaleCategory é a categoria dos lançamentos derivados de vendas
const SaleCategory = "Venda"

type SaleService interface {
	CreateSale(ctx context.Context, input domain.NewSale) (*domain.Sale, error)
	RecordLedgerEntry(ctx context.Context, saleID string) (*domain.FinancialRecord, bool, error)
}

type Service struct {
	saleRepository   repository.SaleRepository
	recordRepository repository.FinancialRecordRepository
}

func NewService(saleRepository repository.SaleRepository, recordRepository repository.FinancialRecordRepository) SaleService {
	return &Service{
		saleRepository:   saleRepository,
		recordRepository: recordRepository,
	}
}

// CreateSale grava só a venda. O lançamento no livro-caixa é criado depois por RecordLedgerEntry.
func (s *Service) CreateSale(ctx context.Context, input domain.NewSale) (*domain.Sale, error) {
	sale := domain.Sale{
		Period:      input.Period,
		OccurredOn:  input.OccurredOn,
		Client:      input.Client,
		Channel:     input.Channel,
		Actor:       input.Actor,
		RevenueType: input.RevenueType,
		Product:     input.Product,
		GrossAmount: GrossAmount(input),
		NetAmount:   input.NetAmount,
	}

	if sale.Period == (domain.Period{}) && sale.OccurredOn != nil {
		sale.Period = domain.PeriodOf(*sale.OccurredOn)
	}

	if err := sale.Validate(); err != nil {
		return nil, NewSaleError(ErrInvalidSale, apiErrors.ErrInvalidRequest, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSaleError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	sale.ID = id

	if err := s.saleRepository.Create(ctx, &sale); err != nil {
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id": sale.ID,
		"period":  sale.Period.String(),
		"actor":   sale.Actor,
	}).Info("Venda registrada")

	return &sale, nil
}

// RecordLedgerEntry cria o lançamento de entrada da venda. Quando ele já existe, retorna o existente e false.
func (s *Service) RecordLedgerEntry(ctx context.Context, saleID string) (*domain.FinancialRecord, bool, error) {
	sale, err := s.saleRepository.GetByID(ctx, saleID)
	if err != nil {
		return nil, false, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, saleID, err.Error())
	}
	if sale == nil {
		return nil, false, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
	}

	existing, err := s.existingEntry(ctx, saleID)
	if err != nil || existing != nil {
		return existing, false, err
	}

	record := DeriveLedgerEntry(*sale)
	id, err := utils.GenerateID()
	if err != nil {
		return nil, false, NewSaleErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, saleID, err.Error())
	}
	record.ID = id

	if err := s.recordRepository.Create(ctx, &record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Outra requisição gravou o lançamento primeiro
			existing, err := s.existingEntry(ctx, saleID)
			return existing, false, err
		}
		return nil, false, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, saleID, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id":   saleID,
		"record_id": record.ID,
	}).Info("Lançamento da venda registrado")

	return &record, true, nil
}

func (s *Service) existingEntry(ctx context.Context, saleID string) (*domain.FinancialRecord, error) {
	record, err := s.recordRepository.GetBySaleID(ctx, saleID)
	if err != nil {
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, saleID, err.Error())
	}
	return record, nil
}

// GrossAmount usa o booking, depois o previsto e por fim o valor pago
func GrossAmount(input domain.NewSale) decimal.Decimal {
	for _, value := range []*decimal.Decimal{input.Booking, input.Forecast, input.Paid} {
		if value != nil && !value.IsZero() {
			return *value
		}
	}
	return decimal.Zero
}

// DeriveLedgerEntry monta a entrada realizada correspondente à venda, pelo valor líquido
func DeriveLedgerEntry(sale domain.Sale) domain.FinancialRecord {
	saleID := sale.ID
	record := domain.FinancialRecord{
		Kind:        domain.RecordKindInflow,
		Amount:      sale.NetAmount,
		Period:      sale.Period,
		OccurredOn:  sale.OccurredOn,
		Status:      domain.RecordStatusRealized,
		Category:    utils.StringPtr(SaleCategory),
		Description: utils.StringPtr(fmt.Sprintf("%s - %s", SaleCategory, sale.Client)),
		SaleID:      &saleID,
	}

	if sale.Product != "" {
		record.Product = utils.StringPtr(sale.Product)
	}
	if sale.Channel != "" {
		record.CostCenter = utils.StringPtr(sale.Channel)
	}

	return record
}
