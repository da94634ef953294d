package model

import "strings"

type AddressType string

const (
	AddressBilling  AddressType = "billing"
	AddressShipping AddressType = "shipping"
)

// 配送先・請求先住所
type Address struct {
	ID        string      `json:"id,omitempty"`
	Type      AddressType `json:"type"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Company   string      `json:"company,omitempty"`
	Street    string      `json:"street"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	ZipCode   string      `json:"zipCode"`
	Country   string      `json:"country"`
	IsDefault bool        `json:"isDefault"`
}

// 必須項目のうち空のものを返す
func (a Address) MissingFields() []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("firstName", a.FirstName)
	check("lastName", a.LastName)
	check("street", a.Street)
	check("city", a.City)
	check("state", a.State)
	check("zipCode", a.ZipCode)
	check("country", a.Country)
	return missing
}
