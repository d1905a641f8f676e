package service

import "context"

// CodeGenerator produces the identifiers handed out to partners and coupons.
type CodeGenerator interface {
	// GeneratePartnerCode returns a new unique partner code. Uniqueness is
	// checked against existing partners; on repeated collisions or lookup
	// failure the last candidate is returned unchecked.
	GeneratePartnerCode(ctx context.Context) (string, error)

	// GeneratePIN returns a random six digit PIN as a string.
	GeneratePIN() string

	// GenerateCouponCode returns a new coupon code of the form CPN-XXXX-tttt.
	GenerateCouponCode() string
}
