// Package address is the postal address record and its similarity rules.
package address

import (
	"github.com/go-playground/validator/v10"
	"go.llib.dev/frameless/pkg/errorkit"

	"similarity/pkg/optional"
)

// Address is a personal postal address.
// Every field except BuildingName is required,
// and the zero value of a required field is a valid, comparable value.
type Address struct {
	BuildingNumber int                    `json:"buildingNumber" yaml:"buildingNumber" validate:"gte=0"`
	BuildingName   optional.Value[string] `json:"buildingName" yaml:"buildingName"`
	StreetName     string                 `json:"streetName" yaml:"streetName"`
	Landmark       string                 `json:"landmark" yaml:"landmark"`
	Area           string                 `json:"area" yaml:"area"`
	City           string                 `json:"city" yaml:"city" validate:"required"`
	Postcode       string                 `json:"postcode" yaml:"postcode"`
	State          string                 `json:"state" yaml:"state" validate:"required"`
	Country        string                 `json:"country" yaml:"country" validate:"required"`
}

const ErrInvalidAddress errorkit.Error = "address: invalid address"

var validate = validator.New()

// Validate checks the address at construction time.
// Classification never calls it, as it is defined for every Address value.
func (a Address) Validate() error {
	if err := validate.Struct(a); err != nil {
		return ErrInvalidAddress.Wrap(err)
	}
	return nil
}
