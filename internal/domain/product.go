package domain

// Product representa um item do catálogo com estoque controlado.
// Description e Quantity são opcionais e persistem como NULL quando ausentes.
type Product struct {
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity"`
}
