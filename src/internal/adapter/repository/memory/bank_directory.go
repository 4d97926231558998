package memory

import (
	"context"
	"sort"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

type BankDirectory struct {
	banks []domain.Bank
}

// NewBankDirectory returns the fixed correspondent list, or banks when given.
func NewBankDirectory(banks ...domain.Bank) *BankDirectory {
	if len(banks) == 0 {
		banks = []domain.Bank{
			{Name: "ABSA Bank", SwiftCode: "ABSAZAJJ", Country: "ZA"},
			{Name: "Barclays Bank", SwiftCode: "BARCGB22", Country: "GB"},
			{Name: "BNP Paribas", SwiftCode: "BNPAFRPP", Country: "FR"},
			{Name: "Citibank", SwiftCode: "CITIUS33", Country: "US"},
			{Name: "Deutsche Bank", SwiftCode: "DEUTDEFF", Country: "DE"},
			{Name: "First National Bank", SwiftCode: "FIRNZAJJ", Country: "ZA"},
			{Name: "HSBC Hong Kong", SwiftCode: "HSBCHKHH", Country: "HK"},
			{Name: "JPMorgan Chase Bank", SwiftCode: "CHASUS33", Country: "US"},
			{Name: "Nedbank", SwiftCode: "NEDSZAJJ", Country: "ZA"},
			{Name: "Standard Bank of South Africa", SwiftCode: "SBZAZAJJ", Country: "ZA"},
		}
	}

	sorted := append([]domain.Bank(nil), banks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &BankDirectory{banks: sorted}
}

func (d *BankDirectory) All(_ context.Context) ([]domain.Bank, error) {
	return append([]domain.Bank(nil), d.banks...), nil
}
