package revenue

import (
	"time"

	"github.com/vfg2006/inventory-sales-api/internal/domain"
)

// Cálculo puro das janelas de calendário. Todas as janelas são intervalos
// semiabertos [start, end); a anual, que no sistema legado fechava em 31 de
// dezembro, foi unificada nessa convenção (ver DESIGN.md).

// DailyWindow cobre o dia de today: [today, today+1d).
func DailyWindow(today time.Time) domain.RevenueWindow {
	start := truncateToDate(today)
	return domain.RevenueWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// WeeklyWindow cobre a semana ISO de today: começa na segunda-feira mais
// recente (ou today, se today for segunda) e dura exatamente 7 dias.
func WeeklyWindow(today time.Time) domain.RevenueWindow {
	day := truncateToDate(today)

	// time.Weekday tem domingo = 0; deslocamos para segunda = 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	return domain.RevenueWindow{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

// MonthlyWindow cobre o mês civil (year, month): do dia 1 ao dia 1 do mês
// seguinte, com dezembro rolando para janeiro do ano seguinte.
func MonthlyWindow(year, month int, loc *time.Location) (domain.RevenueWindow, error) {
	if month < 1 || month > 12 {
		return domain.RevenueWindow{}, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return domain.RevenueWindow{}, ErrInvalidYear
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return domain.RevenueWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}

// AnnualWindow cobre o ano civil de today: [1º de janeiro, 1º de janeiro do
// ano seguinte).
func AnnualWindow(today time.Time) domain.RevenueWindow {
	start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	return domain.RevenueWindow{
		Start: start,
		End:   start.AddDate(1, 0, 0),
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
