package booking

import (
	"fmt"

	"lumea/models"
)

// EvaluatePackage prices a multi-session package against the current
// per-session total. A FixedPrice above zero overrides the percentage
// computation entirely; zero means "use DiscountPercent". The returned
// DiscountAmount keeps its true value even when the fixed price exceeds the
// computed original; clamping for display is DisplayDiscount's job.
func EvaluatePackage(perSessionTotal float64, pkg models.PackageOption) (models.PackageQuote, error) {
	if pkg.SessionsCount <= 0 {
		return models.PackageQuote{}, fmt.Errorf("package %s has invalid sessions count %d", pkg.ID, pkg.SessionsCount)
	}
	if perSessionTotal < 0 {
		return models.PackageQuote{}, fmt.Errorf("per-session total must not be negative")
	}

	originalTotal := perSessionTotal * float64(pkg.SessionsCount)

	if pkg.FixedPrice > 0 {
		return models.PackageQuote{
			OriginalTotal:  originalTotal,
			DiscountAmount: originalTotal - pkg.FixedPrice,
			FinalTotal:     pkg.FixedPrice,
		}, nil
	}

	discountAmount := originalTotal * (pkg.DiscountPercent / 100)
	return models.PackageQuote{
		OriginalTotal:  originalTotal,
		DiscountAmount: discountAmount,
		FinalTotal:     originalTotal - discountAmount,
	}, nil
}

// DisplayDiscount is the discount amount clamped to zero for display. The
// stored quote keeps the real value; only what the user sees is clamped.
func DisplayDiscount(q models.PackageQuote) float64 {
	if q.DiscountAmount < 0 {
		return 0
	}
	return q.DiscountAmount
}
