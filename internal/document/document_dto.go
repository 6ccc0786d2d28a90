package document

type CreateDocumentRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	DocumentType   string `json:"document_type" binding:"required,max=50"`
	DocumentNumber string `json:"document_number" binding:"omitempty,max=100"`
	ExpiresAt      string `json:"expires_at"`
	Notes          string `json:"notes" binding:"max=1000"`
}

type UpdateDocumentRequest struct {
	DocumentType   string `json:"document_type" binding:"required,max=50"`
	DocumentNumber string `json:"document_number" binding:"omitempty,max=100"`
	ExpiresAt      string `json:"expires_at"`
	Notes          string `json:"notes" binding:"max=1000"`
}

const (
	BulkActionDelete = "DELETE"
	BulkActionRenew  = "RENEW"
)

type BulkActionRequest struct {
	Action    string   `json:"action" binding:"required,oneof=DELETE RENEW"`
	IDs       []string `json:"ids" binding:"required,min=1,max=200,dive,uuid"`
	ExpiresAt string   `json:"expires_at"`
}

type ListDocumentsFilter struct {
	EmployeeID   string `form:"employee_id" binding:"omitempty,uuid"`
	DocumentType string `form:"document_type" binding:"omitempty,max=50"`
	Status       string `form:"status" binding:"omitempty,oneof=EXPIRED EXPIRING_SOON VALID NO_EXPIRY"`
}

type DocumentResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	DocumentType    string `json:"document_type"`
	DocumentNumber  string `json:"document_number,omitempty"`
	ExpiresAt       string `json:"expires_at,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	DaysUntilExpiry *int   `json:"days_until_expiry,omitempty"`
}

type BulkActionResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

type DocumentSummaryResponse struct {
	Total        int `json:"total"`
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiring_soon"`
	Valid        int `json:"valid"`
	NoExpiry     int `json:"no_expiry"`
}
