package domain

// AvailablePeriods lista os meses com lançamentos financeiros, do mais recente para o mais antigo
type AvailablePeriods struct {
	Periods []string `json:"periods"` // mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
