package salaryplan_test

import (
	"testing"

	"go-salon/internal/salaryplan"
	salaryplanerrors "go-salon/internal/salaryplan/errors"

	"github.com/stretchr/testify/assert"
)

func TestParsePlanType(t *testing.T) {
	pt, err := salaryplan.ParsePlanType(" commission ")
	assert.NoError(t, err)
	assert.Equal(t, salaryplan.PlanTypeCommission, pt)

	_, err = salaryplan.ParsePlanType("hourly")
	assert.ErrorIs(t, err, salaryplanerrors.ErrInvalidPlanType)
}

func TestBuildRules(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		rules, err := salaryplan.BuildRules(salaryplan.PlanTypeFixed, salaryplan.PlanConfig{BasicSalary: 2800})

		assert.NoError(t, err)
		assert.Equal(t, salaryplan.FixedRules{BasicSalary: 2800}, rules)
	})

	t.Run("commission", func(t *testing.T) {
		cfg := salaryplan.PlanConfig{
			BasicSalary:    3000,
			CommissionRate: 0.05,
			TargetBonuses:  []salaryplan.BonusTier{{MinSales: 10000, Amount: 200}},
		}

		rules, err := salaryplan.BuildRules(salaryplan.PlanTypeCommission, cfg)

		assert.NoError(t, err)
		assert.Equal(t, salaryplan.PlanTypeCommission, rules.Type())
	})

	t.Run("commission rate above one", func(t *testing.T) {
		_, err := salaryplan.BuildRules(salaryplan.PlanTypeCommission, salaryplan.PlanConfig{CommissionRate: 1.5})
		assert.ErrorIs(t, err, salaryplanerrors.ErrInvalidPlanConfig)
	})

	t.Run("tiered needs tiers", func(t *testing.T) {
		_, err := salaryplan.BuildRules(salaryplan.PlanTypeTiered, salaryplan.PlanConfig{BasicSalary: 1})
		assert.ErrorIs(t, err, salaryplanerrors.ErrInvalidPlanConfig)
	})

	t.Run("negative bonus", func(t *testing.T) {
		cfg := salaryplan.PlanConfig{TargetBonuses: []salaryplan.BonusTier{{MinSales: 1, Amount: -5}}}
		_, err := salaryplan.BuildRules(salaryplan.PlanTypeFixed, cfg)
		assert.ErrorIs(t, err, salaryplanerrors.ErrInvalidPlanConfig)
	})
}

func TestPlanConfig_ValueScan(t *testing.T) {
	cfg := salaryplan.PlanConfig{
		BasicSalary:     2000,
		CommissionTiers: []salaryplan.CommissionTier{{MinSales: 0, Rate: 0.1}},
	}

	v, err := cfg.Value()
	assert.NoError(t, err)

	var back salaryplan.PlanConfig
	assert.NoError(t, back.Scan(v))
	assert.Equal(t, cfg, back)

	assert.NoError(t, back.Scan(nil))
	assert.Equal(t, salaryplan.PlanConfig{}, back)
	assert.Error(t, back.Scan(42))
}

func TestSalaryPlan_RulesFallsBackToDefault(t *testing.T) {
	plan := salaryplan.SalaryPlan{Type: salaryplan.PlanTypeTiered}

	assert.Equal(t, salaryplan.DefaultRules(), plan.Rules())
}
