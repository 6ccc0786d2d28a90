package salaryplan

type CreateSalaryPlanRequest struct {
	Name   string     `json:"name" binding:"required,max=120"`
	Type   string     `json:"type" binding:"required,oneof=FIXED COMMISSION TIERED"`
	Config PlanConfig `json:"config"`
}

type UpdateSalaryPlanRequest struct {
	Name   string     `json:"name" binding:"required,max=120"`
	Type   string     `json:"type" binding:"required,oneof=FIXED COMMISSION TIERED"`
	Config PlanConfig `json:"config"`
}

type PreviewRequest struct {
	Sales float64 `json:"sales" binding:"min=0"`
}

type SalaryPlanResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Config    PlanConfig `json:"config"`
}

type SalaryPlanOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type PreviewResponse struct {
	PlanID   string     `json:"plan_id,omitempty"`
	PlanName string     `json:"plan_name"`
	Sales    float64    `json:"sales"`
	Result   Components `json:"result"`
}
