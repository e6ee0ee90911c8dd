package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsVoucher reports whether s is a well-formed top-up voucher code.
// Voucher codes carry a Luhn check digit.
func IsVoucher(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
