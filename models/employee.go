package models

// Employee is a staff record managed from the employees screen.
// IdentificationNumber is a string: upstream data carries both numeric and
// string forms, and a string holds either without loss.
type Employee struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name" validate:"required"`
	Position             string  `json:"position" validate:"required"`
	IdentificationNumber string  `json:"identificationNumber" validate:"required"`
	Salary               float64 `json:"salary" validate:"gte=0"`
	HireDate             string  `json:"hireDate" validate:"required,datetime=2006-01-02"`
}

func (e Employee) EntityID() int64 { return e.ID }
