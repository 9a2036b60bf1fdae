package supplier

import "time"

type Supplier struct {
	ID        string
	UserID    string
	Name      string
	Email     *string
	Phone     *string
	VATNumber *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
