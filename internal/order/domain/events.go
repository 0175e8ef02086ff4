package domain

type OrderPlaced struct {
	OrderID      int64
	CustomerID   int64
	Installments int
}
