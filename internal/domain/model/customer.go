package model

// Customer is a row of sales.customers.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	City      string
}

// CustomerForm carries submitted customer fields prior to validation.
// Values are kept untrimmed so a rejected form can be re-displayed verbatim.
type CustomerForm struct {
	FirstName string
	LastName  string
	Email     string
	City      string
}
