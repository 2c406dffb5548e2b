package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindows(t *testing.T) {
	// Quarta-feira, 15 de janeiro de 2025, 14h30
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.Local)

	windows := ResolveWindows(now)

	// Janela do dia: da meia-noite até o instante de referência
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local), windows.Day.Start)
	assert.Equal(t, now, windows.Day.End)

	// Janela da semana: começa no domingo (12 de janeiro)
	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.Local), windows.Week.Start)
	assert.Equal(t, now, windows.Week.End)

	// Janela do mês: começa no dia primeiro
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), windows.Month.Start)
	assert.Equal(t, now, windows.Month.End)
}

func TestResolveWindows_DomingoComecaNovaSemana(t *testing.T) {
	// Domingo, 19 de janeiro de 2025
	now := time.Date(2025, 1, 19, 10, 0, 0, 0, time.Local)

	windows := ResolveWindows(now)

	// No domingo a janela da semana coincide com a janela do dia
	assert.Equal(t, windows.Day.Start, windows.Week.Start)
}

func TestPreviousMonthWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	window := PreviousMonthWindow(now)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), window.Start)

	// A janela termina imediatamente antes do primeiro instante do mês corrente
	assert.True(t, window.End.Before(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, window.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.Local)))
	assert.False(t, window.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)))
}

func TestPreviousMonthWindow_ViradaDeAno(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local)

	window := PreviousMonthWindow(now)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), window.Start)
	assert.True(t, window.Contains(time.Date(2024, 12, 31, 18, 0, 0, 0, time.Local)))
}

func TestElapsedDaysInMonth(t *testing.T) {
	assert.Equal(t, 15, ElapsedDaysInMonth(time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)))
	assert.Equal(t, 1, ElapsedDaysInMonth(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)))
}
