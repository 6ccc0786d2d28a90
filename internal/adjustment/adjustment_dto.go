package adjustment

type BatchCreateRequest struct {
	EmployeeID string         `json:"employee_id" binding:"required,uuid"`
	Month      string         `json:"month" binding:"required"`
	Kind       string         `json:"kind" binding:"required,oneof=DEDUCTION BONUS LOAN"`
	Fields     []DynamicField `json:"fields" binding:"required,min=1"`
}

type ListAdjustmentsFilter struct {
	Month      string `form:"month"`
	Kind       string `form:"kind"`
	EmployeeID string `form:"employee_id"`
}

type AdjustmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Kind         string  `json:"kind"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	EntryDate    string  `json:"entry_date"`
}

type DraftKey struct {
	EmployeeID string `uri:"employee_id" binding:"required,uuid"`
	Kind       string `uri:"kind" binding:"required,oneof=DEDUCTION BONUS LOAN"`
}

type UpdateDraftFieldRequest struct {
	Index int    `json:"index" binding:"min=0"`
	Key   string `json:"key" binding:"required,oneof=description amount date"`
	Value string `json:"value"`
}

type RemoveDraftRowRequest struct {
	Index int `json:"index" binding:"min=0"`
}
