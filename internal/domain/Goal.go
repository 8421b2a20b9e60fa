package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleSocialSelling Role = "social_selling"
	RoleSDR           Role = "sdr"
	RoleCloser        Role = "closer"
)

func (r Role) Valid() bool {
	return r == RoleSocialSelling || r == RoleSDR || r == RoleCloser
}

type SubjectKind string

const (
	SubjectPerson  SubjectKind = "person"
	SubjectCompany SubjectKind = "company"
)

// GoalSubject identifica a quem a meta pertence
type GoalSubject struct {
	Kind     SubjectKind `json:"kind"`
	PersonID string      `json:"person_id,omitempty"`
	Role     Role        `json:"role,omitempty"`
}

// Key identifica o sujeito de forma única para detecção de duplicidade
func (s GoalSubject) Key() string {
	if s.Kind == SubjectCompany {
		return string(SubjectCompany)
	}
	return s.PersonID
}

// GoalTargets guarda os alvos opcionais da meta
type GoalTargets struct {
	Activations       *int             `json:"activations,omitempty"`
	Leads             *int             `json:"leads,omitempty"`
	MeetingsScheduled *int             `json:"meetings_scheduled,omitempty"`
	MeetingsHeld      *int             `json:"meetings_held,omitempty"`
	Sales             *int             `json:"sales,omitempty"`
	Revenue           *decimal.Decimal `json:"revenue,omitempty"`
}

type Goal struct {
	ID        string      `json:"id"`
	Period    Period      `json:"period"`
	Subject   GoalSubject `json:"subject"`
	Targets   GoalTargets `json:"targets"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// GoalRealized são os valores realizados no período, na mesma forma dos alvos
type GoalRealized struct {
	Activations       int             `json:"activations"`
	Leads             int             `json:"leads"`
	MeetingsScheduled int             `json:"meetings_scheduled"`
	MeetingsHeld      int             `json:"meetings_held"`
	Sales             int             `json:"sales"`
	Revenue           decimal.Decimal `json:"revenue"`
}

// GoalMetric nomeia a métrica usada para o atingimento
type GoalMetric string

const (
	GoalMetricActivations       GoalMetric = "activations"
	GoalMetricLeads             GoalMetric = "leads"
	GoalMetricMeetingsScheduled GoalMetric = "meetings_scheduled"
	GoalMetricMeetingsHeld      GoalMetric = "meetings_held"
	GoalMetricSales             GoalMetric = "sales"
	GoalMetricRevenue           GoalMetric = "revenue"
)

type MetricDelta struct {
	Metric   GoalMetric `json:"metric"`
	Target   float64    `json:"target"`
	Realized float64    `json:"realized"`
	Delta    float64    `json:"delta"`
}

type GoalProgress struct {
	GoalID         string        `json:"goal_id"`
	Period         Period        `json:"period"`
	Subject        GoalSubject   `json:"subject"`
	PriorityMetric GoalMetric    `json:"priority_metric"`
	Target         float64       `json:"target"`
	Realized       float64       `json:"realized"`
	AttainmentPct  float64       `json:"attainment_pct"`
	Deltas         []MetricDelta `json:"deltas"`
}

type Tendency string

const (
	TendencyOnTrackToHit Tendency = "on_track_to_hit"
	TendencyOnPace       Tendency = "on_pace"
	TendencyAtRisk       Tendency = "at_risk"
)

type GoalProjection struct {
	GoalID                 string     `json:"goal_id"`
	Metric                 GoalMetric `json:"metric"`
	Target                 float64    `json:"target"`
	Realized               float64    `json:"realized"`
	DaysElapsed            int        `json:"days_elapsed"`
	DaysTotal              int        `json:"days_total"`
	DailyRate              float64    `json:"daily_rate"`
	ProjectedTotal         float64    `json:"projected_total"`
	ProjectedAttainmentPct float64    `json:"projected_attainment_pct"`
	Tendency               Tendency   `json:"tendency"`
}

// CompanyGoal é a meta anual de faturamento e caixa da empresa
type CompanyGoal struct {
	Year          int             `json:"year"`
	AnnualRevenue decimal.Decimal `json:"annual_revenue"`
	AnnualCash    decimal.Decimal `json:"annual_cash"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CompanyGoalProgress struct {
	Year             int     `json:"year"`
	RevenueTarget    float64 `json:"revenue_target"`
	RevenueRealized  float64 `json:"revenue_realized"`
	RevenuePct       float64 `json:"revenue_pct"`
	RevenueRemaining float64 `json:"revenue_remaining"`
	CashTarget       float64 `json:"cash_target"`
	CashRealized     float64 `json:"cash_realized"`
	CashPct          float64 `json:"cash_pct"`
	CashRemaining    float64 `json:"cash_remaining"`
}

// PersonGoalHistory lista o progresso de uma pessoa mês a mês
type PersonGoalHistory struct {
	PersonID string         `json:"person_id"`
	Entries  []GoalProgress `json:"entries"`
}

// ScorecardHistory é o atingimento da pessoa em um mês anterior
type ScorecardHistory struct {
	Period        Period  `json:"period"`
	Target        float64 `json:"target"`
	Realized      float64 `json:"realized"`
	AttainmentPct float64 `json:"attainment_pct"`
}

// ScorecardEntry junta progresso e projeção da meta de uma pessoa no mês
type ScorecardEntry struct {
	GoalID                 string             `json:"goal_id"`
	PersonID               string             `json:"person_id"`
	Name                   string             `json:"name"`
	Role                   Role               `json:"role"`
	Metric                 GoalMetric         `json:"metric"`
	Target                 float64            `json:"target"`
	Realized               float64            `json:"realized"`
	AttainmentPct          float64            `json:"attainment_pct"`
	Remaining              float64            `json:"remaining"`
	DaysElapsed            int                `json:"days_elapsed"`
	DaysTotal              int                `json:"days_total"`
	DailyRate              float64            `json:"daily_rate"`
	ProjectedTotal         float64            `json:"projected_total"`
	ProjectedAttainmentPct float64            `json:"projected_attainment_pct"`
	Tendency               Tendency           `json:"tendency"`
	History                []ScorecardHistory `json:"history"`
}

type Scorecard struct {
	Period  Period           `json:"period"`
	Entries []ScorecardEntry `json:"entries"`
}
