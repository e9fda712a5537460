package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/inventory-sales-api/internal/usecases/revenue"
	"github.com/vfg2006/inventory-sales-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-sales-api/pkg/log"
	"github.com/vfg2006/inventory-sales-api/pkg/utils"
)

type dailyRevenueResponse struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// As janelas semanais, mensais e anuais devolvem os limites calculados junto
// com o total, para o chamador conferir qual período foi agregado.
type periodRevenueResponse struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// GetDailyRevenue retorna a receita do dia corrente
func GetDailyRevenue(service revenue.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Daily(r.Context())
		if err != nil {
			logger.WithError(err).Error("revenue: erro ao calcular receita diária")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, dailyRevenueResponse{
			Date:         utils.FormatDate(report.Date),
			TotalRevenue: report.TotalRevenue,
		})
	})
}

// GetWeeklyRevenue retorna a receita da semana corrente (segunda a segunda)
func GetWeeklyRevenue(service revenue.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Weekly(r.Context())
		if err != nil {
			logger.WithError(err).Error("revenue: erro ao calcular receita semanal")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, newPeriodRevenueResponse(report.StartDate, report.EndDate, report.TotalRevenue))
	})
}

// GetMonthlyRevenue retorna a receita do mês informado em year/month
func GetMonthlyRevenue(service revenue.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		yearParam := r.URL.Query().Get("year")
		monthParam := r.URL.Query().Get("month")

		if yearParam == "" || monthParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros year e month são obrigatórios", nil)
			return
		}

		year, err := strconv.Atoi(yearParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "year deve ser um inteiro", nil)
			return
		}

		month, err := strconv.Atoi(monthParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "month deve ser um inteiro", nil)
			return
		}

		report, err := service.Monthly(r.Context(), year, month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year":  year,
				"month": month,
			}).Warn("revenue: erro ao calcular receita mensal")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, newPeriodRevenueResponse(report.StartDate, report.EndDate, report.TotalRevenue))
	})
}

// GetAnnualRevenue retorna a receita do ano corrente
func GetAnnualRevenue(service revenue.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Annual(r.Context())
		if err != nil {
			logger.WithError(err).Error("revenue: erro ao calcular receita anual")
			writeServiceError(w, err)
			return
		}

		respondJSON(w, r, newPeriodRevenueResponse(report.StartDate, report.EndDate, report.TotalRevenue))
	})
}

func newPeriodRevenueResponse(start, end time.Time, total float64) periodRevenueResponse {
	return periodRevenueResponse{
		StartDate:    utils.FormatDate(start),
		EndDate:      utils.FormatDate(end),
		TotalRevenue: total,
	}
}
