package domain

import "time"

// Office é a referência mínima ao escritório de câmbio dono dos eventos.
// O ciclo de vida completo (CRUD, cascata de remoção) é de responsabilidade
// de outro serviço; aqui só precisamos de existência e identificação.
type Office struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CityID    *string   `json:"city_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// OfficeRankingItem representa a posição de um escritório no ranking diário de
// engajamento (visualizações de perfil nos últimos 30 dias)
type OfficeRankingItem struct {
	ID               string    `json:"id"`
	OfficeID         string    `json:"office_id"`
	Month            string    `json:"month"` // formato mm-yyyy
	OfficeName       string    `json:"office_name"`
	ProfileViews     int64     `json:"profile_views"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"`
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OfficeRankingResponse é a resposta do endpoint de ranking de escritórios
type OfficeRankingResponse struct {
	Ranking    []OfficeRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}
