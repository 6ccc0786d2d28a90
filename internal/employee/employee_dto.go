package employee

type CreateEmployeeRequest struct {
	FullName         string   `json:"full_name" binding:"required,max=150"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Phone            string   `json:"phone" binding:"omitempty,max=30"`
	EmployeeNumber   string   `json:"employee_number" binding:"omitempty,max=30"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	SalaryPlanID     string   `json:"salary_plan_id" binding:"omitempty,uuid"`
	AnnualLeaveQuota *float64 `json:"annual_leave_quota" binding:"omitempty,min=0,max=365"`
}

type UpdateEmployeeRequest struct {
	FullName         string   `json:"full_name" binding:"required,max=150"`
	Email            string   `json:"email" binding:"omitempty,email"`
	Phone            string   `json:"phone" binding:"omitempty,max=30"`
	EmployeeNumber   string   `json:"employee_number" binding:"required,max=30"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	SalaryPlanID     string   `json:"salary_plan_id" binding:"omitempty,uuid"`
	AnnualLeaveQuota *float64 `json:"annual_leave_quota" binding:"omitempty,min=0,max=365"`
}

type EmployeeSalaryPlanResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	CompanyID        string                      `json:"company_id"`
	EmployeeNumber   string                      `json:"employee_number"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email,omitempty"`
	Phone            string                      `json:"phone,omitempty"`
	StartDate        string                      `json:"start_date,omitempty"`
	EndDate          string                      `json:"end_date,omitempty"`
	SalaryPlanID     string                      `json:"salary_plan_id,omitempty"`
	SalaryPlan       *EmployeeSalaryPlanResponse `json:"salary_plan,omitempty"`
	AnnualLeaveQuota *float64                    `json:"annual_leave_quota,omitempty"`
}

type EmployeeOptionResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
