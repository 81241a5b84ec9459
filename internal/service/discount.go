package service

import (
	"github.com/shopspring/decimal"
)

const (
	MaxDiscountPercent = 20

	primeBonusPercent     = 8
	primeBonusThreshold   = 50000
	endsInFiveBonus       = 10
	endsInFiveThreshold   = 90000
	minorUnitsPerMajorExp = -2
)

type Discount struct {
	Percent     int64
	Amount      int64
	FinalAmount int64
}

type discountTier struct {
	min     int64
	max     int64
	percent int64
}

// Inclusive bounds in major units. Anything above the last max gets
// aboveTopTierPercent.
var discountTiers = []discountTier{
	{min: 200, max: 500, percent: 5},
	{min: 501, max: 800, percent: 7},
	{min: 801, max: 1200, percent: 10},
}

const aboveTopTierPercent = 15

// BaseDiscountPercent looks up the tier for totalAmount (minor units).
// Amounts that fall between tiers, such as 500.50, get no base discount.
func BaseDiscountPercent(totalAmount int64) int64 {
	major := decimal.New(totalAmount, minorUnitsPerMajorExp)

	for _, tier := range discountTiers {
		if major.GreaterThanOrEqual(decimal.NewFromInt(tier.min)) && major.LessThanOrEqual(decimal.NewFromInt(tier.max)) {
			return tier.percent
		}
	}

	top := discountTiers[len(discountTiers)-1].max
	if major.GreaterThan(decimal.NewFromInt(top)) {
		return aboveTopTierPercent
	}

	return 0
}

func ConditionalDiscountPercent(totalAmount int64) int64 {
	var percent int64

	if totalAmount > primeBonusThreshold && IsPrime(totalAmount) {
		percent += primeBonusPercent
	}

	if totalAmount > endsInFiveThreshold && totalAmount%10 == 5 {
		percent += endsInFiveBonus
	}

	return percent
}

func DiscountPercent(totalAmount int64) int64 {
	percent := BaseDiscountPercent(totalAmount) + ConditionalDiscountPercent(totalAmount)
	if percent > MaxDiscountPercent {
		percent = MaxDiscountPercent
	}

	return percent
}

// CalculateDiscount works in minor units throughout. The discount is
// floor(total * percent / 100), split so the product cannot overflow.
func CalculateDiscount(totalAmount int64) Discount {
	percent := DiscountPercent(totalAmount)

	var amount int64
	if totalAmount > 0 {
		amount = (totalAmount/100)*percent + (totalAmount%100)*percent/100
	}

	return Discount{
		Percent:     percent,
		Amount:      amount,
		FinalAmount: totalAmount - amount,
	}
}

// IsPrime uses trial division over 6k±1.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
