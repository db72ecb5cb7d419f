// Package period resolve tokens abstratos de período ("7days", "LAST_ONE_MONTH")
// em janelas de tempo com corte de calendário. Sem I/O: a mesma entrada sempre
// produz a mesma janela.
package period

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriodToken indica um token de período não reconhecido. O chamador
// deve falhar, nunca assumir um período padrão silenciosamente.
var ErrInvalidPeriodToken = errors.New("token de período inválido")

// Token identifica um período de relatório suportado
type Token string

const (
	LastSevenDays Token = "LAST_SEVEN_DAYS"
	LastOneMonth  Token = "LAST_ONE_MONTH"
	LastSixMonths Token = "LAST_SIX_MONTHS"
	LastOneYear   Token = "LAST_ONE_YEAR"
	AllHistory    Token = "ALL_HISTORY"
)

// aliases aceitos na query string, herdados do frontend antigo
var aliases = map[string]Token{
	"7days":  LastSevenDays,
	"30days": LastOneMonth,
	"90days": LastSixMonths,
}

// Window é a janela de agregação derivada de um token: período atual e período
// anterior contíguo de mesmo tamanho. Os limites seguem semântica semiaberta
// [start, end): CurrentEnd é sempre o "agora" do momento da consulta.
type Window struct {
	Token         Token
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// AllHistory indica que a janela cobre todo o histórico e portanto não existe
// período anterior comparável
func (w Window) AllHistory() bool {
	return w.Token == AllHistory
}

// Parse normaliza um token recebido, aceitando os aliases legados
func Parse(raw string) (Token, error) {
	if t, ok := aliases[raw]; ok {
		return t, nil
	}

	switch t := Token(raw); t {
	case LastSevenDays, LastOneMonth, LastSixMonths, LastOneYear, AllHistory:
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPeriodToken, raw)
}

// Resolve calcula a janela de agregação de um token a partir de "now".
// A subtração usa aritmética de calendário (AddDate), não múltiplos fixos de
// 24h, para que "31 de janeiro menos um mês" caia em uma data válida. O período
// anterior usa a mesma aritmética a partir de CurrentStart, evitando o desvio
// de um dia nas viradas de mês e ano.
func Resolve(raw string, now time.Time) (Window, error) {
	token, err := Parse(raw)
	if err != nil {
		return Window{}, err
	}

	if token == AllHistory {
		return Window{
			Token:        token,
			CurrentStart: time.Unix(0, 0).UTC(),
			CurrentEnd:   now,
		}, nil
	}

	years, months, days := tokenLength(token)

	currentStart := now.AddDate(-years, -months, -days)
	previousStart := currentStart.AddDate(-years, -months, -days)

	return Window{
		Token:         token,
		CurrentStart:  currentStart,
		CurrentEnd:    now,
		PreviousStart: previousStart,
		PreviousEnd:   currentStart,
	}, nil
}

func tokenLength(token Token) (years, months, days int) {
	switch token {
	case LastSevenDays:
		return 0, 0, 7
	case LastOneMonth:
		return 0, 1, 0
	case LastSixMonths:
		return 0, 6, 0
	case LastOneYear:
		return 1, 0, 0
	}
	return 0, 0, 0
}
