package domain

import "math/bits"

// CalculateLoanToValueRate returns loanAmount as a whole percentage of assetValue,
// truncated towards zero. The asset must be worth strictly more than the loan,
// otherwise no rate exists.
func CalculateLoanToValueRate(loanAmount LoanAmount, assetValue AssetValue) (LoanToValueRate, bool) {
	if assetValue == 0 || int64(assetValue) <= int64(loanAmount) || loanAmount < 0 {
		return 0, false
	}
	// 128-bit product: 100*loan overflows int64 for loans above MaxInt64/100.
	hi, lo := bits.Mul64(100, uint64(loanAmount))
	rate, _ := bits.Div64(hi, lo, uint64(assetValue))
	return LoanToValueRate(rate), true
}
