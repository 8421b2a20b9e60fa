package statements

import (
	"sort"
	"strings"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Chave das categorias em branco
const UncategorizedKey = "nao_informado"

type categoryAmounts struct {
	current  decimal.Decimal
	previous decimal.Decimal
}

type flowTally struct {
	current    decimal.Decimal
	previous   decimal.Decimal
	categories map[string]*categoryAmounts
}

func newFlowTally() *flowTally {
	return &flowTally{categories: make(map[string]*categoryAmounts)}
}

func (f *flowTally) add(category string, amount decimal.Decimal, current bool) {
	c, ok := f.categories[category]
	if !ok {
		c = &categoryAmounts{}
		f.categories[category] = c
	}
	if current {
		c.current = c.current.Add(amount)
		f.current = f.current.Add(amount)
		return
	}
	c.previous = c.previous.Add(amount)
	f.previous = f.previous.Add(amount)
}

// BuildCategoryBreakdown soma os lançamentos realizados por categoria no período e no anterior.
// Categorias que só existem no mês anterior aparecem com valor zero no mês atual.
func BuildCategoryBreakdown(period domain.Period, records []domain.FinancialRecord) domain.CategoryBreakdown {
	previous := period.Previous()
	inflows, outflows := newFlowTally(), newFlowTally()

	for _, r := range records {
		if !r.IsRealized() {
			continue
		}
		current := r.Period.Equal(period)
		if !current && !r.Period.Equal(previous) {
			continue
		}

		category := UncategorizedKey
		if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
			category = strings.TrimSpace(*r.Category)
		}

		if r.IsInflow() {
			inflows.add(category, r.Amount, current)
		} else {
			outflows.add(category, r.Amount, current)
		}
	}

	result := inflows.current.Sub(outflows.current)
	previousResult := inflows.previous.Sub(outflows.previous)

	return domain.CategoryBreakdown{
		Period:         period,
		PreviousPeriod: previous,
		Inflows:        inflows.toBreakdown(),
		Outflows:       outflows.toBreakdown(),
		Result:         utils.Money(result),
		PreviousResult: utils.Money(previousResult),
	}
}

func (f *flowTally) toBreakdown() domain.FlowBreakdown {
	type keyed struct {
		total   domain.CategoryTotal
		current decimal.Decimal
	}

	rows := make([]keyed, 0, len(f.categories))
	for name, c := range f.categories {
		change := c.current.Sub(c.previous)
		rows = append(rows, keyed{
			current: c.current,
			total: domain.CategoryTotal{
				Category:       name,
				Amount:         utils.Money(c.current),
				PreviousAmount: utils.Money(c.previous),
				Change:         utils.Money(change),
				ChangePct:      utils.Percentage(change, c.previous),
				SharePct:       utils.Percentage(c.current, f.current),
			},
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].current.Equal(rows[j].current) {
			return rows[i].current.GreaterThan(rows[j].current)
		}
		return rows[i].total.Category < rows[j].total.Category
	})

	categories := make([]domain.CategoryTotal, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.total)
	}

	return domain.FlowBreakdown{
		Total:         utils.Money(f.current),
		PreviousTotal: utils.Money(f.previous),
		ChangePct:     utils.Percentage(f.current.Sub(f.previous), f.previous),
		Categories:    categories,
	}
}
