package domain

import "time"

// Sale é um registro imutável de venda. SaleDate é uma data de calendário
// (sem hora) e é a chave de particionamento de toda agregação de receita.
type Sale struct {
	SaleID       int       `json:"sale_id"`
	SaleDate     time.Time `json:"sale_date"`
	ProductID    int       `json:"product_id"`
	QuantitySold int       `json:"quantity_sold"`
	TotalPrice   float64   `json:"total_price"`
}
