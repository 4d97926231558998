package models

type BankResponse struct {
	Name      string `json:"name"`
	SwiftCode string `json:"swiftCode"`
	Country   string `json:"country"`
}
