package domain

// CloserRankingResponse é o ranking de closers por faturamento no mês
type CloserRankingResponse struct {
	Period  Period              `json:"period"`
	Ranking []CloserRankingItem `json:"ranking"`
}

type CloserRankingItem struct {
	Actor            string  `json:"actor"`
	Revenue          float64 `json:"revenue"`
	Sales            int     `json:"sales"`
	Position         int     `json:"position"`
	PositionChange   int     `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int     `json:"previous_position"`
}
