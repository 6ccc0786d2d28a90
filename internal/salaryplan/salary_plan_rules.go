package salaryplan

import (
	"go-salon/internal/adjustment"
)

type PlanType string

const (
	PlanTypeFixed      PlanType = "FIXED"
	PlanTypeCommission PlanType = "COMMISSION"
	PlanTypeTiered     PlanType = "TIERED"
)

// DefaultBasicSalary backs employees without a salary plan.
const DefaultBasicSalary = 3000

// Rules is a closed set of value types: FixedRules, CommissionRules or TieredRules.
type Rules interface {
	Type() PlanType
	isRules()
}

type FixedRules struct {
	BasicSalary float64
}

type CommissionRules struct {
	BasicSalary   float64
	Rate          float64
	TargetBonuses []BonusTier
}

type TieredRules struct {
	BasicSalary     float64
	CommissionTiers []CommissionTier
	TargetBonuses   []BonusTier
}

type BonusTier struct {
	MinSales float64 `json:"min_sales"`
	Amount   float64 `json:"amount"`
}

type CommissionTier struct {
	MinSales float64 `json:"min_sales"`
	Rate     float64 `json:"rate"`
}

func (FixedRules) Type() PlanType      { return PlanTypeFixed }
func (CommissionRules) Type() PlanType { return PlanTypeCommission }
func (TieredRules) Type() PlanType     { return PlanTypeTiered }

func (FixedRules) isRules()      {}
func (CommissionRules) isRules() {}
func (TieredRules) isRules()     {}

func DefaultRules() Rules {
	return FixedRules{BasicSalary: DefaultBasicSalary}
}

// Components are unrounded; rounding happens once when payroll nets them.
type Components struct {
	BasicSalary float64 `json:"basic_salary"`
	Commission  float64 `json:"commission"`
	TargetBonus float64 `json:"target_bonus"`
	Total       float64 `json:"total"`
}

// CalculateSalary evaluates rules against a month of sales. Deductions and
// bonuses are accepted for the caller's convenience but are not netted here.
// Inputs are assumed sanitized; negative sales yield meaningless but finite output.
func CalculateSalary(sales float64, deductions, bonuses []adjustment.DynamicField, rules Rules) Components {
	if rules == nil {
		rules = DefaultRules()
	}

	var c Components
	switch r := rules.(type) {
	case FixedRules:
		c.BasicSalary = r.BasicSalary
	case CommissionRules:
		c = commissionComponents(sales, r)
	case TieredRules:
		c = tieredComponents(sales, r)
	default:
		c.BasicSalary = DefaultBasicSalary
	}

	c.Total = c.BasicSalary + c.Commission + c.TargetBonus
	return c
}

func commissionComponents(sales float64, r CommissionRules) Components {
	return Components{
		BasicSalary: r.BasicSalary,
		Commission:  sales * r.Rate,
		TargetBonus: TargetBonus(sales, r.TargetBonuses),
	}
}

func tieredComponents(sales float64, r TieredRules) Components {
	return Components{
		BasicSalary: r.BasicSalary,
		Commission:  sales * CommissionRate(sales, r.CommissionTiers),
		TargetBonus: TargetBonus(sales, r.TargetBonuses),
	}
}

// TargetBonus picks the single tier with the highest MinSales not above sales.
// Thresholds are inclusive; no tier matched means no bonus.
func TargetBonus(sales float64, tiers []BonusTier) float64 {
	best := -1
	for i, t := range tiers {
		if sales < t.MinSales {
			continue
		}
		if best < 0 || t.MinSales > tiers[best].MinSales {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return tiers[best].Amount
}

// CommissionRate uses the same matching rule as TargetBonus; the rate applies
// to the whole sales figure, not marginally per bracket.
func CommissionRate(sales float64, tiers []CommissionTier) float64 {
	best := -1
	for i, t := range tiers {
		if sales < t.MinSales {
			continue
		}
		if best < 0 || t.MinSales > tiers[best].MinSales {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return tiers[best].Rate
}
