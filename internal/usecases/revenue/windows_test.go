package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDailyWindow(t *testing.T) {
	tests := []struct {
		name          string
		today         time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Dia comum",
			today:         date(2024, time.March, 15),
			expectedStart: date(2024, time.March, 15),
			expectedEnd:   date(2024, time.March, 16),
		},
		{
			name:          "Virada de ano",
			today:         date(2024, time.December, 31),
			expectedStart: date(2024, time.December, 31),
			expectedEnd:   date(2025, time.January, 1),
		},
		{
			name:          "Hora do dia é descartada",
			today:         time.Date(2024, time.March, 15, 23, 59, 58, 0, time.UTC),
			expectedStart: date(2024, time.March, 15),
			expectedEnd:   date(2024, time.March, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := DailyWindow(tt.today)

			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
		})
	}
}

func TestWeeklyWindow(t *testing.T) {
	// Semana de referência: segunda 2024-01-15 a domingo 2024-01-21
	monday := date(2024, time.January, 15)

	// Para qualquer dia da semana, o início é sempre a segunda-feira mais
	// recente e a janela dura exatamente 7 dias.
	for offset := 0; offset < 7; offset++ {
		today := monday.AddDate(0, 0, offset)

		t.Run(today.Weekday().String(), func(t *testing.T) {
			window := WeeklyWindow(today)

			assert.Equal(t, time.Monday, window.Start.Weekday())
			assert.Equal(t, monday, window.Start)
			assert.Equal(t, monday.AddDate(0, 0, 7), window.End)
			assert.Equal(t, 7*24*time.Hour, window.End.Sub(window.Start))
		})
	}
}

func TestWeeklyWindowCrossingMonthBoundary(t *testing.T) {
	// Quinta 2024-02-01 pertence à semana iniciada na segunda 2024-01-29
	window := WeeklyWindow(date(2024, time.February, 1))

	assert.Equal(t, date(2024, time.January, 29), window.Start)
	assert.Equal(t, date(2024, time.February, 5), window.End)
}

func TestMonthlyWindow(t *testing.T) {
	tests := []struct {
		name          string
		year          int
		month         int
		expectedStart time.Time
		expectedEnd   time.Time
		expectedErr   error
	}{
		{
			name:          "Janeiro de 2024",
			year:          2024,
			month:         1,
			expectedStart: date(2024, time.January, 1),
			expectedEnd:   date(2024, time.February, 1),
		},
		{
			name:          "Dezembro rola para janeiro do ano seguinte",
			year:          2024,
			month:         12,
			expectedStart: date(2024, time.December, 1),
			expectedEnd:   date(2025, time.January, 1),
		},
		{
			name:          "Fevereiro em ano bissexto",
			year:          2024,
			month:         2,
			expectedStart: date(2024, time.February, 1),
			expectedEnd:   date(2024, time.March, 1),
		},
		{
			name:        "Mês zero é rejeitado",
			year:        2024,
			month:       0,
			expectedErr: ErrInvalidMonth,
		},
		{
			name:        "Mês 13 é rejeitado",
			year:        2024,
			month:       13,
			expectedErr: ErrInvalidMonth,
		},
		{
			name:        "Ano fora do intervalo é rejeitado",
			year:        -5,
			month:       6,
			expectedErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := MonthlyWindow(tt.year, tt.month, time.UTC)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
		})
	}
}

func TestAnnualWindow(t *testing.T) {
	window := AnnualWindow(date(2024, time.July, 19))

	assert.Equal(t, date(2024, time.January, 1), window.Start)
	assert.Equal(t, date(2025, time.January, 1), window.End)
}

func TestWindowContains(t *testing.T) {
	window := DailyWindow(date(2024, time.March, 15))

	assert.True(t, window.Contains(date(2024, time.March, 15)))
	assert.False(t, window.Contains(date(2024, time.March, 16)), "limite superior é exclusivo")
	assert.False(t, window.Contains(date(2024, time.March, 14)))
}
