package reporting

import (
	"time"

	"github.com/vhgravatas/pos-analytics-api/internal/domain"
)

// ResolveWindows calcula as janelas de dia, semana e mês ancoradas no instante
// de referência. A semana começa no domingo e toda a aritmética é em horário
// local, sem conversão de fuso.
func ResolveWindows(now time.Time) domain.ReportWindows {
	dayStart := startOfDay(now)
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return domain.ReportWindows{
		Day:   domain.TimeWindow{Start: dayStart, End: now},
		Week:  domain.TimeWindow{Start: weekStart, End: now},
		Month: domain.TimeWindow{Start: monthStart, End: now},
	}
}

// PreviousMonthWindow calcula a janela do mês anterior ao instante de
// referência, usada na comparação de crescimento mês a mês.
func PreviousMonthWindow(now time.Time) domain.TimeWindow {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := monthStart.AddDate(0, -1, 0)

	return domain.TimeWindow{
		Start: previousStart,
		End:   monthStart.Add(-time.Nanosecond),
	}
}

// ElapsedDaysInMonth retorna os dias corridos do mês até o instante de
// referência, com divisor mínimo de 1 para as médias diárias.
func ElapsedDaysInMonth(now time.Time) int {
	days := now.Day()
	if days < 1 {
		return 1
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
