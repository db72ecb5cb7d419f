// Package events implementa o canal de notificações interno do serviço.
// O componente que grava taxas publica RateMutated depois do commit; os
// consumidores (hoje só o gravador de histórico) rodam fora da transação de
// mutação, então uma falha de consumidor nunca bloqueia a ação do usuário.
package events

import (
	"sync"
	"time"

	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

// RateMutated é a notificação publicada após o commit de uma alteração de taxa
// de um par de moedas de um escritório
type RateMutated struct {
	OfficeID         string
	TargetCurrencyID string
	BaseCurrencyID   string
	OldBuyRate       float64
	OldSellRate      float64
	NewBuyRate       float64
	NewSellRate      float64
	IsActive         bool
	OccurredAt       time.Time
}

// RatePublisher é a interface exposta ao componente de gestão de taxas
type RatePublisher interface {
	PublishRateMutated(notification RateMutated)
}

// RateSubscriber é um consumidor de notificações de alteração de taxa.
// Erros são responsabilidade do próprio consumidor (logar, alertar); o
// publicador nunca fica sabendo deles.
type RateSubscriber func(notification RateMutated)

// Bus é um barramento de publicação/assinatura em processo. Entrega com
// semântica "pelo menos uma vez" do ponto de vista dos consumidores: quem
// precisar de histórico exatamente-uma-vez deve deduplicar na origem.
type Bus struct {
	mu          sync.RWMutex
	subscribers []RateSubscriber
}

func NewBus() *Bus {
	return &Bus{}
}

// SubscribeRateMutated registra um consumidor para notificações de taxa
func (b *Bus) SubscribeRateMutated(fn RateSubscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// PublishRateMutated entrega a notificação a todos os consumidores registrados,
// cada um em sua própria goroutine. Um panic em um consumidor é logado e não
// afeta os demais nem o publicador.
func (b *Bus) PublishRateMutated(notification RateMutated) {
	b.mu.RLock()
	subscribers := make([]RateSubscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.RUnlock()

	for _, fn := range subscribers {
		go func(fn RateSubscriber) {
			defer func() {
				if r := recover(); r != nil {
					log.L.WithFields(log.Fields{
						"office_id": notification.OfficeID,
						"panic":     r,
					}).Error("Panic em consumidor de notificação de taxa")
				}
			}()

			fn(notification)
		}(fn)
	}
}
