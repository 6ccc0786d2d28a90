package sales

type SaleEntry struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required"`
}

type UpsertSalesRequest struct {
	Month   string      `json:"month" binding:"required"`
	Entries []SaleEntry `json:"entries" binding:"required,min=1,dive"`
}

type ListSalesFilter struct {
	Month string `form:"month" binding:"required"`
}

type SaleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Month        string `json:"month"`
	Amount       string `json:"amount"`
}

type MonthlySalesResponse struct {
	Month string         `json:"month"`
	Total string         `json:"total"`
	Items []SaleResponse `json:"items"`
}
