package domain

import "time"

// RevenueWindow é um intervalo semiaberto [Start, End) de datas de calendário.
type RevenueWindow struct {
	Start time.Time
	End   time.Time
}

// Contains informa se a data pertence à janela.
func (w RevenueWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && date.Before(w.End)
}

type DailyRevenue struct {
	Date         time.Time
	TotalRevenue float64
}

type PeriodRevenue struct {
	StartDate    time.Time
	EndDate      time.Time
	TotalRevenue float64
}
