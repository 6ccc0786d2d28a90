package salaryplan

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	salaryplanerrors "go-salon/internal/salaryplan/errors"
)

// PlanConfig is the jsonb payload stored with a plan. Which fields apply
// depends on the plan type.
type PlanConfig struct {
	BasicSalary     float64          `json:"basic_salary"`
	CommissionRate  float64          `json:"commission_rate,omitempty"`
	CommissionTiers []CommissionTier `json:"commission_tiers,omitempty"`
	TargetBonuses   []BonusTier      `json:"target_bonuses,omitempty"`
}

func (c PlanConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *PlanConfig) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = PlanConfig{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("salary plan config: unsupported scan type")
	}
	return json.Unmarshal(raw, c)
}

func ParsePlanType(v string) (PlanType, error) {
	t := PlanType(strings.ToUpper(strings.TrimSpace(v)))
	switch t {
	case PlanTypeFixed, PlanTypeCommission, PlanTypeTiered:
		return t, nil
	}
	return "", salaryplanerrors.ErrInvalidPlanType
}

// BuildRules turns a stored type and config into the tagged rules variant.
func BuildRules(planType PlanType, cfg PlanConfig) (Rules, error) {
	if err := validateConfig(planType, cfg); err != nil {
		return nil, err
	}

	switch planType {
	case PlanTypeFixed:
		return FixedRules{BasicSalary: cfg.BasicSalary}, nil
	case PlanTypeCommission:
		return CommissionRules{
			BasicSalary:   cfg.BasicSalary,
			Rate:          cfg.CommissionRate,
			TargetBonuses: cfg.TargetBonuses,
		}, nil
	case PlanTypeTiered:
		return TieredRules{
			BasicSalary:     cfg.BasicSalary,
			CommissionTiers: cfg.CommissionTiers,
			TargetBonuses:   cfg.TargetBonuses,
		}, nil
	}
	return nil, salaryplanerrors.ErrInvalidPlanType
}

func validateConfig(planType PlanType, cfg PlanConfig) error {
	if cfg.BasicSalary < 0 {
		return salaryplanerrors.ErrInvalidPlanConfig
	}
	for _, t := range cfg.TargetBonuses {
		if t.MinSales < 0 || t.Amount < 0 {
			return salaryplanerrors.ErrInvalidPlanConfig
		}
	}

	switch planType {
	case PlanTypeCommission:
		if cfg.CommissionRate < 0 || cfg.CommissionRate > 1 {
			return salaryplanerrors.ErrInvalidPlanConfig
		}
	case PlanTypeTiered:
		if len(cfg.CommissionTiers) == 0 {
			return salaryplanerrors.ErrInvalidPlanConfig
		}
		for _, t := range cfg.CommissionTiers {
			if t.MinSales < 0 || t.Rate < 0 || t.Rate > 1 {
				return salaryplanerrors.ErrInvalidPlanConfig
			}
		}
	}
	return nil
}
