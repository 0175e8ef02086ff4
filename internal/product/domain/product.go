package domain

type Product struct {
	ID          int64
	Name        string
	Image       string
	Description string
	WeightKg    float64
	PriceCents  int64
	StockQty    int
}
