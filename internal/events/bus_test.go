package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/exchange-analytics-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var received []RateMutated
	wg := sync.WaitGroup{}
	wg.Add(2)

	subscriber := func(n RateMutated) {
		mu.Lock()
		received = append(received, n)
		mu.Unlock()
		wg.Done()
	}

	bus.SubscribeRateMutated(subscriber)
	bus.SubscribeRateMutated(subscriber)

	notification := RateMutated{
		OfficeID:         "office-1",
		TargetCurrencyID: "USD",
		BaseCurrencyID:   "BRL",
		OldBuyRate:       5.10,
		OldSellRate:      5.30,
		NewBuyRate:       5.15,
		NewSellRate:      5.35,
		IsActive:         true,
		OccurredAt:       time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	bus.PublishRateMutated(notification)

	wg.Wait()

	require.Len(t, received, 2)
	assert.Equal(t, notification, received[0])
	assert.Equal(t, notification, received[1])
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewBus()

	bus.PublishRateMutated(RateMutated{OfficeID: "office-1"})
}

func TestSubscriberPanicDoesNotAffectOthers(t *testing.T) {
	bus := NewBus()

	delivered := make(chan RateMutated, 1)

	bus.SubscribeRateMutated(func(RateMutated) {
		panic("consumidor quebrado")
	})
	bus.SubscribeRateMutated(func(n RateMutated) {
		delivered <- n
	})

	bus.PublishRateMutated(RateMutated{OfficeID: "office-1"})

	select {
	case n := <-delivered:
		assert.Equal(t, "office-1", n.OfficeID)
	case <-time.After(2 * time.Second):
		t.Fatal("consumidor saudável não recebeu a notificação")
	}
}

func TestSubscribeDuringPublishIsSafe(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			bus.SubscribeRateMutated(func(RateMutated) {})
		}
	}()

	for i := 0; i < 50; i++ {
		bus.PublishRateMutated(RateMutated{OfficeID: "office-1"})
	}

	<-done
}
