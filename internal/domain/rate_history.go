package domain

import "time"

// RateHistoryEntry representa o registro de auditoria de uma alteração de taxa.
// Os campos Old* refletem o estado anterior à mutação e os campos New* o estado
// posterior; o par (TargetCurrencyID, BaseCurrencyID) identifica um par negociável
// do escritório.
type RateHistoryEntry struct {
	ID               string    `json:"id"`
	OfficeID         string    `json:"office_id"`
	TargetCurrencyID string    `json:"target_currency_id"`
	BaseCurrencyID   string    `json:"base_currency_id"`
	OldBuyRate       float64   `json:"old_buy_rate"`
	OldSellRate      float64   `json:"old_sell_rate"`
	NewBuyRate       float64   `json:"new_buy_rate"`
	NewSellRate      float64   `json:"new_sell_rate"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}
