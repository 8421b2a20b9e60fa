package goals

import (
	"context"
	"errors"
	"sort"

	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Meses anteriores exibidos no scorecard
const scorecardHistoryMonths = 3

// Settings guarda os valores padrão vindos da configuração
type Settings struct {
	DefaultAnnualRevenue decimal.Decimal
	DefaultAnnualCash    decimal.Decimal
	DefaultHorizonMonths int
	MaxHorizonMonths     int
}

type GoalService interface {
	CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, id string, targets domain.GoalTargets) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context, period domain.Period) ([]domain.Goal, error)
	ReplicateGoals(ctx context.Context, from, to domain.Period) ([]domain.Goal, error)
	PeriodProgress(ctx context.Context, period domain.Period) ([]domain.GoalProgress, error)
	Scorecard(ctx context.Context, period domain.Period) (*domain.Scorecard, error)
	GoalProjection(ctx context.Context, id string) (*domain.GoalProjection, error)
	PersonHistory(ctx context.Context, personID string) (*domain.PersonGoalHistory, error)
	GetCompanyGoal(ctx context.Context, year int) (*domain.CompanyGoal, error)
	SaveCompanyGoal(ctx context.Context, goal domain.CompanyGoal) (*domain.CompanyGoal, error)
	CompanyProgress(ctx context.Context, year int) (*domain.CompanyGoalProgress, error)
}

type Service struct {
	goalRepository        repository.GoalRepository
	companyGoalRepository repository.CompanyGoalRepository
	personRepository      repository.PersonRepository
	funnelService         funnel.FunnelService
	statementService      statements.StatementService
	clock                 utils.Clock
	settings              Settings
}

func NewService(
	goalRepository repository.GoalRepository,
	companyGoalRepository repository.CompanyGoalRepository,
	personRepository repository.PersonRepository,
	funnelService funnel.FunnelService,
	statementService statements.StatementService,
	clock utils.Clock,
	settings Settings,
) GoalService {
	return &Service{
		goalRepository:        goalRepository,
		companyGoalRepository: companyGoalRepository,
		personRepository:      personRepository,
		funnelService:         funnelService,
		statementService:      statementService,
		clock:                 clock,
		settings:              settings,
	}
}

func (s *Service) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	if err := validatePeriod(goal.Period); err != nil {
		return nil, err
	}
	if err := validateTargets(goal.Targets); err != nil {
		return nil, err
	}

	subject, err := s.resolveSubject(ctx, goal.Subject)
	if err != nil {
		return nil, err
	}
	goal.Subject = subject

	existing, err := s.goalRepository.GetBySubject(ctx, goal.Subject, goal.Period)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewGoalErrorWithID(ErrGoalConflict, apiErrors.ErrGoalConflict, existing.ID, goal.Period.String())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewGoalError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	goal.ID = id

	if err := s.goalRepository.Create(ctx, &goal); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewGoalError(ErrGoalConflict, apiErrors.ErrGoalConflict, goal.Period.String())
		}
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"goal_id": goal.ID,
		"subject": goal.Subject.Key(),
		"period":  goal.Period.String(),
	}).Info("Meta criada")

	return &goal, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id string, targets domain.GoalTargets) (*domain.Goal, error) {
	if err := validateTargets(targets); err != nil {
		return nil, err
	}

	goal, err := s.getGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.Targets = targets
	goal.UpdatedAt = s.clock.Now()

	if err := s.goalRepository.Update(ctx, goal); err != nil {
		return nil, NewGoalErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	if _, err := s.getGoal(ctx, id); err != nil {
		return err
	}

	if err := s.goalRepository.Delete(ctx, id); err != nil {
		return NewGoalErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	log.ForContext(ctx).WithField("goal_id", id).Info("Meta removida")

	return nil
}

func (s *Service) ListGoals(ctx context.Context, period domain.Period) ([]domain.Goal, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	goals, err := s.goalRepository.ListByPeriod(ctx, period)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return goals, nil
}

// ReplicateGoals copia as metas de um mês para outro. Sujeitos que já têm meta no destino são ignorados.
func (s *Service) ReplicateGoals(ctx context.Context, from, to domain.Period) ([]domain.Goal, error) {
	if err := validatePeriod(from); err != nil {
		return nil, err
	}
	if err := validatePeriod(to); err != nil {
		return nil, err
	}
	if from.Equal(to) {
		return nil, NewGoalError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, "origem e destino iguais")
	}

	source, err := s.goalRepository.ListByPeriod(ctx, from)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"from": from.String(),
		"to":   to.String(),
	})

	created := make([]domain.Goal, 0, len(source))
	for _, goal := range source {
		existing, err := s.goalRepository.GetBySubject(ctx, goal.Subject, to)
		if err != nil {
			return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if existing != nil {
			logger.Debugf("Meta de %s já existe no destino", goal.Subject.Key())
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewGoalError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}

		replica := domain.Goal{
			ID:      id,
			Period:  to,
			Subject: goal.Subject,
			Targets: goal.Targets,
		}

		if err := s.goalRepository.Create(ctx, &replica); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		created = append(created, replica)
	}

	logger.Infof("%d metas replicadas", len(created))

	return created, nil
}

func (s *Service) PeriodProgress(ctx context.Context, period domain.Period) ([]domain.GoalProgress, error) {
	goals, err := s.ListGoals(ctx, period)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.GoalProgress, 0, len(goals))
	if len(goals) == 0 {
		return progress, nil
	}

	lookup, err := s.loadRealized(ctx, period)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for _, goal := range goals {
		realized, err := s.realizedFor(ctx, goal.Subject, lookup, names)
		if err != nil {
			return nil, err
		}
		progress = append(progress, Progress(goal, realized))
	}

	return progress, nil
}

// Scorecard é o placar individual do mês: progresso, projeção pelo ritmo e atingimento dos meses anteriores.
// Metas da empresa ficam de fora; as entradas saem do maior para o menor atingimento.
func (s *Service) Scorecard(ctx context.Context, period domain.Period) (*domain.Scorecard, error) {
	goals, err := s.ListGoals(ctx, period)
	if err != nil {
		return nil, err
	}

	scorecard := &domain.Scorecard{Period: period, Entries: make([]domain.ScorecardEntry, 0, len(goals))}

	personGoals := make([]domain.Goal, 0, len(goals))
	wanted := make(map[string]bool)
	for _, goal := range goals {
		if goal.Subject.Kind == domain.SubjectPerson {
			personGoals = append(personGoals, goal)
			wanted[goal.Subject.PersonID] = true
		}
	}
	if len(personGoals) == 0 {
		return scorecard, nil
	}

	lookup, err := s.loadRealized(ctx, period)
	if err != nil {
		return nil, err
	}

	past, err := s.loadPastGoals(ctx, period, wanted)
	if err != nil {
		return nil, err
	}

	elapsed, total := DaysElapsed(period, s.clock.Now()), period.Days()
	names := make(map[string]string)
	attainment := make(map[string]decimal.Decimal, len(personGoals))

	for _, goal := range personGoals {
		realized, err := s.realizedFor(ctx, goal.Subject, lookup, names)
		if err != nil {
			return nil, err
		}

		progress := Progress(goal, realized)
		projection, err := Project(goal, realized, elapsed, total)
		if err != nil {
			return nil, NewGoalErrorWithID(err, apiErrors.ErrInvalidRequest, goal.ID, "")
		}

		target, actual := priorityFigures(goal, realized)
		if target.IsPositive() {
			attainment[goal.ID] = actual.Div(target)
		}

		entry := domain.ScorecardEntry{
			GoalID:                 goal.ID,
			PersonID:               goal.Subject.PersonID,
			Name:                   names[goal.Subject.PersonID],
			Role:                   goal.Subject.Role,
			Metric:                 progress.PriorityMetric,
			Target:                 progress.Target,
			Realized:               progress.Realized,
			AttainmentPct:          progress.AttainmentPct,
			Remaining:              utils.Money(utils.FloorZero(target.Sub(actual))),
			DaysElapsed:            projection.DaysElapsed,
			DaysTotal:              projection.DaysTotal,
			DailyRate:              projection.DailyRate,
			ProjectedTotal:         projection.ProjectedTotal,
			ProjectedAttainmentPct: projection.ProjectedAttainmentPct,
			Tendency:               projection.Tendency,
			History:                make([]domain.ScorecardHistory, 0, len(past)),
		}

		for _, month := range past {
			previous, ok := month.byPerson[goal.Subject.PersonID]
			if !ok {
				continue
			}
			previousRealized, err := s.realizedFor(ctx, previous.Subject, month.lookup, names)
			if err != nil {
				return nil, err
			}
			p := Progress(previous, previousRealized)
			entry.History = append(entry.History, domain.ScorecardHistory{
				Period:        month.period,
				Target:        p.Target,
				Realized:      p.Realized,
				AttainmentPct: p.AttainmentPct,
			})
		}

		scorecard.Entries = append(scorecard.Entries, entry)
	}

	sort.SliceStable(scorecard.Entries, func(i, j int) bool {
		a, b := attainment[scorecard.Entries[i].GoalID], attainment[scorecard.Entries[j].GoalID]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return scorecard.Entries[i].Name < scorecard.Entries[j].Name
	})

	return scorecard, nil
}

type pastGoals struct {
	period   domain.Period
	byPerson map[string]domain.Goal
	lookup   *realizedLookup
}

// loadPastGoals busca as metas dos meses anteriores, do mais recente ao mais antigo,
// e só consulta o funil dos meses em que alguma das pessoas tinha meta
func (s *Service) loadPastGoals(ctx context.Context, period domain.Period, wanted map[string]bool) ([]pastGoals, error) {
	months := make([]pastGoals, 0, scorecardHistoryMonths)

	previous := period
	for i := 0; i < scorecardHistoryMonths; i++ {
		previous = previous.Previous()

		goals, err := s.goalRepository.ListByPeriod(ctx, previous)
		if err != nil {
			return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		month := pastGoals{period: previous, byPerson: make(map[string]domain.Goal)}
		for _, goal := range goals {
			if goal.Subject.Kind == domain.SubjectPerson && wanted[goal.Subject.PersonID] {
				month.byPerson[goal.Subject.PersonID] = goal
			}
		}
		if len(month.byPerson) == 0 {
			continue
		}

		month.lookup, err = s.loadRealized(ctx, previous)
		if err != nil {
			return nil, err
		}
		months = append(months, month)
	}

	return months, nil
}

func (s *Service) GoalProjection(ctx context.Context, id string) (*domain.GoalProjection, error) {
	goal, err := s.getGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	lookup, err := s.loadRealized(ctx, goal.Period)
	if err != nil {
		return nil, err
	}

	realized, err := s.realizedFor(ctx, goal.Subject, lookup, make(map[string]string))
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	projection, err := Project(*goal, realized, DaysElapsed(goal.Period, now), goal.Period.Days())
	if err != nil {
		return nil, NewGoalErrorWithID(err, apiErrors.ErrInvalidRequest, id, "")
	}

	return &projection, nil
}

func (s *Service) PersonHistory(ctx context.Context, personID string) (*domain.PersonGoalHistory, error) {
	person, err := s.personRepository.GetByID(ctx, personID)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if person == nil {
		return nil, NewGoalError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, personID)
	}

	goals, err := s.goalRepository.ListByPerson(ctx, personID)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Period.Before(goals[j].Period)
	})

	history := &domain.PersonGoalHistory{
		PersonID: personID,
		Entries:  make([]domain.GoalProgress, 0, len(goals)),
	}

	names := map[string]string{personID: person.Name}
	for _, goal := range goals {
		lookup, err := s.loadRealized(ctx, goal.Period)
		if err != nil {
			return nil, err
		}

		realized, err := s.realizedFor(ctx, goal.Subject, lookup, names)
		if err != nil {
			return nil, err
		}

		history.Entries = append(history.Entries, Progress(goal, realized))
	}

	return history, nil
}

// GetCompanyGoal retorna a meta anual salva ou os valores padrão da configuração
func (s *Service) GetCompanyGoal(ctx context.Context, year int) (*domain.CompanyGoal, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	goal, err := s.companyGoalRepository.GetByYear(ctx, year)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if goal == nil {
		return &domain.CompanyGoal{
			Year:          year,
			AnnualRevenue: s.settings.DefaultAnnualRevenue,
			AnnualCash:    s.settings.DefaultAnnualCash,
		}, nil
	}

	return goal, nil
}

func (s *Service) SaveCompanyGoal(ctx context.Context, goal domain.CompanyGoal) (*domain.CompanyGoal, error) {
	if err := validateYear(goal.Year); err != nil {
		return nil, err
	}
	if goal.AnnualRevenue.IsNegative() || goal.AnnualCash.IsNegative() {
		return nil, NewGoalError(ErrInvalidTargets, apiErrors.ErrInvalidRequest, "valores anuais negativos")
	}

	if err := s.companyGoalRepository.SaveOrUpdate(ctx, &goal); err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &goal, nil
}

// CompanyProgress compara a meta anual com a receita bruta realizada e o saldo final de caixa do ano
func (s *Service) CompanyProgress(ctx context.Context, year int) (*domain.CompanyGoalProgress, error) {
	goal, err := s.GetCompanyGoal(ctx, year)
	if err != nil {
		return nil, err
	}

	income, err := s.statementService.AnnualIncomeStatement(ctx, year)
	if err != nil {
		return nil, err
	}

	cashFlow, err := s.statementService.AnnualCashFlow(ctx, year)
	if err != nil {
		return nil, err
	}

	revenue := income.GrossRevenueAmount
	cash := cashFlow.ClosingBalanceAmount

	return &domain.CompanyGoalProgress{
		Year:             year,
		RevenueTarget:    utils.Money(goal.AnnualRevenue),
		RevenueRealized:  utils.Money(revenue),
		RevenuePct:       utils.Percentage(revenue, goal.AnnualRevenue),
		RevenueRemaining: utils.Money(utils.FloorZero(goal.AnnualRevenue.Sub(revenue))),
		CashTarget:       utils.Money(goal.AnnualCash),
		CashRealized:     utils.Money(cash),
		CashPct:          utils.Percentage(cash, goal.AnnualCash),
		CashRemaining:    utils.Money(utils.FloorZero(goal.AnnualCash.Sub(cash))),
	}, nil
}

func (s *Service) getGoal(ctx context.Context, id string) (*domain.Goal, error) {
	goal, err := s.goalRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewGoalErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if goal == nil {
		return nil, NewGoalErrorWithID(ErrGoalNotFound, apiErrors.ErrGoalNotFound, id, "")
	}
	return goal, nil
}

// resolveSubject confere a pessoa e completa o papel a partir do cadastro
func (s *Service) resolveSubject(ctx context.Context, subject domain.GoalSubject) (domain.GoalSubject, error) {
	switch subject.Kind {
	case domain.SubjectCompany:
		return domain.GoalSubject{Kind: domain.SubjectCompany}, nil
	case domain.SubjectPerson:
	default:
		return subject, NewGoalError(ErrInvalidSubject, apiErrors.ErrInvalidRequest, string(subject.Kind))
	}

	if subject.PersonID == "" {
		return subject, NewGoalError(ErrInvalidSubject, apiErrors.ErrMissingRequiredData, "person_id")
	}

	person, err := s.personRepository.GetByID(ctx, subject.PersonID)
	if err != nil {
		return subject, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if person == nil {
		return subject, NewGoalError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, subject.PersonID)
	}

	if subject.Role == "" {
		subject.Role = person.Role
	}
	if !subject.Role.Valid() {
		return subject, NewGoalError(ErrInvalidSubject, apiErrors.ErrInvalidRequest, string(subject.Role))
	}

	return subject, nil
}

type realizedLookup struct {
	total   domain.FunnelRow
	byActor map[string]domain.FunnelRow
}

// loadRealized busca o funil geral e por ator do período
func (s *Service) loadRealized(ctx context.Context, period domain.Period) (*realizedLookup, error) {
	total, err := s.funnelService.Report(ctx, period, domain.GroupingNone)
	if err != nil {
		return nil, err
	}

	byActor, err := s.funnelService.Report(ctx, period, domain.GroupingActor)
	if err != nil {
		return nil, err
	}

	lookup := &realizedLookup{byActor: make(map[string]domain.FunnelRow, len(byActor.Rows))}
	if len(total.Rows) > 0 {
		lookup.total = total.Rows[0]
	}
	for _, row := range byActor.Rows {
		lookup.byActor[row.Key] = row
	}

	return lookup, nil
}

func (s *Service) realizedFor(
	ctx context.Context,
	subject domain.GoalSubject,
	lookup *realizedLookup,
	names map[string]string,
) (domain.GoalRealized, error) {
	if subject.Kind == domain.SubjectCompany {
		return RealizedFromRow(lookup.total), nil
	}

	name, ok := names[subject.PersonID]
	if !ok {
		person, err := s.personRepository.GetByID(ctx, subject.PersonID)
		if err != nil {
			return domain.GoalRealized{}, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if person != nil {
			name = person.Name
		}
		names[subject.PersonID] = name
	}

	// Pessoa sem registro no funil tem realizado zero
	return RealizedFromRow(lookup.byActor[name]), nil
}

func validatePeriod(period domain.Period) error {
	if err := period.Validate(); err != nil {
		return NewGoalError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	return nil
}

func validateYear(year int) error {
	return validatePeriod(domain.Period{Month: 1, Year: year})
}

func validateTargets(targets domain.GoalTargets) error {
	for _, count := range []*int{targets.Activations, targets.Leads, targets.MeetingsScheduled, targets.MeetingsHeld, targets.Sales} {
		if count != nil && *count < 0 {
			return NewGoalError(ErrInvalidTargets, apiErrors.ErrInvalidRequest, "alvo negativo")
		}
	}
	if targets.Revenue != nil && targets.Revenue.IsNegative() {
		return NewGoalError(ErrInvalidTargets, apiErrors.ErrInvalidRequest, "faturamento negativo")
	}
	return nil
}
