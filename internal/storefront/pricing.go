package storefront

import (
	"math"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

// Catalog base prices are in the source currency; display prices are INR.
const INRPerUSD = 85

// Per-axis surcharges in INR. Unknown values contribute zero.
var (
	temperatureCosts = map[string]int64{
		domain.TemperatureHot:  0,
		domain.TemperatureCold: 10,
	}
	sweetnessCosts = map[string]int64{
		domain.SweetnessNone:  0,
		domain.SweetnessLess:  0,
		domain.SweetnessNorm:  0,
		domain.SweetnessExtra: 5,
	}
	milkCosts = map[string]int64{
		domain.MilkRegular: 0,
		domain.MilkAlmond:  20,
		domain.MilkOat:     25,
		domain.MilkSoy:     15,
	}
)

// AddonINR returns the total option surcharge: the sum of the three
// independent axis surcharges.
func AddonINR(opts *domain.OptionSelection) int64 {
	if opts == nil {
		return 0
	}
	return temperatureCosts[opts.Temperature] + sweetnessCosts[opts.Sweetness] + milkCosts[opts.Milk]
}

// SurchargeFor exposes a single axis lookup, for rendering option pickers.
func SurchargeFor(axis, value string) int64 {
	switch axis {
	case "temperature":
		return temperatureCosts[value]
	case "sweetness":
		return sweetnessCosts[value]
	case "milk":
		return milkCosts[value]
	}
	return 0
}

// BaseINR converts a catalog base price to a rounded INR amount.
func BaseINR(basePrice float64) int64 {
	return int64(math.Round(basePrice * INRPerUSD))
}

// PriceOf computes the unit price of an item with the given options. Pure and
// deterministic, so cart pricing and order-history repricing always agree.
func PriceOf(basePrice float64, opts *domain.OptionSelection) int64 {
	return BaseINR(basePrice) + AddonINR(opts)
}
