package domain

// AggregateResult é o resultado de uma agregação de eventos com comparação ao
// período anterior de mesmo tamanho. Calculado sob demanda, nunca persistido.
type AggregateResult struct {
	Metric        EventKind `json:"metric"`
	CurrentCount  int64     `json:"current_count"`
	PreviousCount int64     `json:"previous_count"`
	// PercentageChange é nulo quando a comparação não faz sentido (ALL_HISTORY)
	PercentageChange *int64 `json:"percentage_change"`
	AbsoluteChange   int64  `json:"absolute_change"`
}

// DashboardStats agrega todas as métricas acompanhadas de um escritório em uma
// única resposta; todas calculadas sobre a mesma janela de tempo
type DashboardStats struct {
	OfficeID     string           `json:"office_id"`
	Period       string           `json:"period"`
	ProfileViews *AggregateResult `json:"profile_views"`
	PhoneCalls   *AggregateResult `json:"phone_calls"`
	GpsClicks    *AggregateResult `json:"gps_clicks"`
	RateAlerts   *AggregateResult `json:"rate_alerts"`
}

// OfficeMetricCounts carrega as contagens por métrica de um escritório nas
// tabelas administrativas de múltiplos escritórios
type OfficeMetricCounts struct {
	OfficeID     string `json:"office_id"`
	ProfileViews int64  `json:"profile_views"`
	PhoneCalls   int64  `json:"phone_calls"`
	GpsClicks    int64  `json:"gps_clicks"`
	RateAlerts   int64  `json:"rate_alerts"`
}
