// Package addressfixture creates random addresses for tests.
package addressfixture

import (
	"fmt"
	"strconv"

	"github.com/Pallinder/go-randomdata"

	"similarity/domain/address"
	"similarity/pkg/optional"
)

// New returns a populated random address.
// The building name is present in about half of the addresses.
func New() address.Address {
	a := address.Address{
		BuildingNumber: randomdata.Number(1, 999),
		StreetName:     randomdata.Street(),
		Landmark:       "Next to " + randomdata.Noun(),
		Area:           randomdata.SillyName(),
		City:           randomdata.City(),
		Postcode:       strconv.Itoa(randomdata.Number(100000, 999999)),
		State:          randomdata.State(randomdata.Small),
		Country:        randomdata.Country(randomdata.FullCountry),
	}
	if randomdata.Boolean() {
		a.BuildingName = optional.Of(randomdata.SillyName())
	}
	return a
}

// Altered returns a copy of a where each named field holds a value different from the original.
// Unknown field names panic, as they are a mistake in the test itself.
func Altered(a address.Address, fields ...string) address.Address {
	for _, field := range fields {
		switch field {
		case address.FieldCountry:
			a.Country = differentString(a.Country)
		case address.FieldState:
			a.State = differentString(a.State)
		case address.FieldCity:
			a.City = differentString(a.City)
		case address.FieldPostcode:
			a.Postcode = differentString(a.Postcode)
		case address.FieldArea:
			a.Area = differentString(a.Area)
		case address.FieldLandmark:
			a.Landmark = differentString(a.Landmark)
		case address.FieldStreetName:
			a.StreetName = differentString(a.StreetName)
		case address.FieldBuildingName:
			a.BuildingName = differentName(a.BuildingName)
		case address.FieldBuildingNumber:
			a.BuildingNumber += randomdata.Number(1, 100)
		default:
			panic(fmt.Sprintf("addressfixture: unknown address field: %s", field))
		}
	}
	return a
}

// Fields lists every address field in classification order.
func Fields() []string {
	return []string{
		address.FieldCountry,
		address.FieldState,
		address.FieldCity,
		address.FieldPostcode,
		address.FieldArea,
		address.FieldLandmark,
		address.FieldStreetName,
		address.FieldBuildingName,
		address.FieldBuildingNumber,
	}
}

func differentString(v string) string {
	return v + " " + randomdata.SillyName()
}

func differentName(v optional.Value[string]) optional.Value[string] {
	name, ok := v.Get()
	if !ok {
		return optional.Of(randomdata.SillyName())
	}
	if randomdata.Boolean() {
		return optional.None[string]()
	}
	return optional.Of(differentString(name))
}
