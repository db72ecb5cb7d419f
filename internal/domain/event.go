package domain

import "time"

// EventKind identifica o tipo de evento de interação registrado para um escritório
type EventKind string

const (
	EventProfileView EventKind = "profile_view"
	EventPhoneCall   EventKind = "phone_call"
	EventGpsClick    EventKind = "gps_click"
	// EventRateChange cobre as entradas de auditoria de alteração de taxa,
	// contadas como métrica de "rate alerts" no dashboard
	EventRateChange EventKind = "rate_change"
)

// PhoneType identifica qual dos telefones cadastrados do escritório foi clicado
type PhoneType string

const (
	PhonePrimary   PhoneType = "PRIMARY"
	PhoneSecondary PhoneType = "SECONDARY"
	PhoneThird     PhoneType = "THIRD"
	PhoneWhatsApp  PhoneType = "WHATSAPP"
)

// ValidPhoneType verifica se o tipo de telefone informado é um dos suportados
func ValidPhoneType(t PhoneType) bool {
	switch t {
	case PhonePrimary, PhoneSecondary, PhoneThird, PhoneWhatsApp:
		return true
	}
	return false
}

// InteractionEvent representa um evento imutável de interação com um escritório.
// Uma vez criado nunca é atualizado; a remoção acontece apenas em cascata quando
// o escritório é removido.
type InteractionEvent struct {
	ID         string    `json:"id"`
	OfficeID   string    `json:"office_id"`
	ActorID    *string   `json:"actor_id,omitempty"` // nulo para visitantes anônimos
	OccurredAt time.Time `json:"occurred_at"`

	// Campos específicos de eventos de ligação telefônica
	PhoneNumber *string    `json:"phone_number,omitempty"`
	PhoneType   *PhoneType `json:"phone_type,omitempty"`
}
