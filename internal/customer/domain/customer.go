package domain

// Address is the delivery address registered for a customer.
type Address struct {
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	Country      string
	CEP          string
}

type Customer struct {
	ID        int64
	Name      string
	Email     string
	CPF       string
	BirthDate string
	Address   Address
}
