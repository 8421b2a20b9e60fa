package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

const (
	financialRecordTable = "financial_records fr"
)

var financialRecordColumns = []string{
	"fr.id",
	"fr.kind",
	"fr.amount",
	"fr.month",
	"fr.year",
	"fr.occurred_on",
	"fr.status",
	"fr.category",
	"fr.cost_label",
	"fr.cost_type",
	"fr.cost_center",
	"fr.product",
	"fr.description",
	"fr.sale_id",
	"fr.created_at",
}

type FinancialRecordRepository interface {
	ListByPeriodRange(ctx context.Context, filters domain.FinancialRecordFilters) ([]domain.FinancialRecord, error)
	GetBySaleID(ctx context.Context, saleID string) (*domain.FinancialRecord, error)
	Create(ctx context.Context, record *domain.FinancialRecord) error
	ListAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

type financialRecordRepository struct {
	conn *postgres.Connection
}

func NewFinancialRecordRepository(conn *postgres.Connection) FinancialRecordRepository {
	return &financialRecordRepository{
		conn: conn,
	}
}

func (r *financialRecordRepository) ListByPeriodRange(ctx context.Context, filters domain.FinancialRecordFilters) ([]domain.FinancialRecord, error) {
	queryBuilder := squirrel.
		Select(financialRecordColumns...).
		From(financialRecordTable).
		Where(periodRange("fr.", filters.From, filters.To)).
		OrderBy("fr.year ASC", "fr.month ASC", "fr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"fr.status": string(*filters.Status)})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.FinancialRecord, 0)
	for rows.Next() {
		record, err := scanFinancialRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *financialRecordRepository) GetBySaleID(ctx context.Context, saleID string) (*domain.FinancialRecord, error) {
	query, args, err := squirrel.
		Select(financialRecordColumns...).
		From(financialRecordTable).
		Where(squirrel.Eq{"fr.sale_id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	record, err := scanFinancialRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return record, nil
}

func (r *financialRecordRepository) Create(ctx context.Context, record *domain.FinancialRecord) error {
	query, args, err := squirrel.
		Insert("financial_records").
		Columns(
			"id",
			"kind",
			"amount",
			"month",
			"year",
			"occurred_on",
			"status",
			"category",
			"cost_label",
			"cost_type",
			"cost_center",
			"product",
			"description",
			"sale_id",
		).
		Values(
			record.ID,
			string(record.Kind),
			record.Amount,
			record.Period.Month,
			record.Period.Year,
			record.OccurredOn,
			string(record.Status),
			record.Category,
			record.CostLabel,
			record.CostType,
			record.CostCenter,
			record.Product,
			record.Description,
			record.SaleID,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}

func (r *financialRecordRepository) ListAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	query, args, err := squirrel.
		Select("DISTINCT fr.month", "fr.year").
		From(financialRecordTable).
		OrderBy("fr.year DESC", "fr.month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := &domain.AvailablePeriods{
		Periods: []string{},
		Years:   []string{},
		Months:  []string{},
	}
	years := make(map[int]bool)
	months := make(map[int]bool)

	for rows.Next() {
		var p domain.Period
		if err := rows.Scan(&p.Month, &p.Year); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		result.Periods = append(result.Periods, p.String())
		years[p.Year] = true
		months[p.Month] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	result.Years = sortedKeys(years, true, func(v int) string { return strconv.Itoa(v) })
	result.Months = sortedKeys(months, false, func(v int) string { return fmt.Sprintf("%02d", v) })

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFinancialRecord(row scanner) (*domain.FinancialRecord, error) {
	record := &domain.FinancialRecord{}
	var kind, status string

	err := row.Scan(
		&record.ID,
		&kind,
		&record.Amount,
		&record.Period.Month,
		&record.Period.Year,
		&record.OccurredOn,
		&status,
		&record.Category,
		&record.CostLabel,
		&record.CostType,
		&record.CostCenter,
		&record.Product,
		&record.Description,
		&record.SaleID,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = domain.RecordKind(kind)
	record.Status = domain.RecordStatus(status)

	return record, nil
}

func sortedKeys(set map[int]bool, desc bool, format func(int) string) []string {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if desc {
			return keys[i] > keys[j]
		}
		return keys[i] < keys[j]
	})

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, format(k))
	}
	return out
}
