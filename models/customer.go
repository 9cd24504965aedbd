package models

// Customer is a hotel guest record. IDs are assigned by the remote backend;
// a zero ID means the customer has not been created remotely yet.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

func (c Customer) EntityID() int64 { return c.ID }
