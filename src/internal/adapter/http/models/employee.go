package models

type ReviewPaymentRequest struct {
	TransactionID     string  `json:"transactionId"`
	Verified          *bool   `json:"verified"`
	VerificationNotes *string `json:"verificationNotes,omitempty"`
}

type SubmitBatchRequest struct {
	TransactionIDs []string `json:"transactionIds"`
}

type SubmitBatchResponse struct {
	SubmittedCount int      `json:"submittedCount"`
	TransactionIDs []string `json:"transactionIds"`
	SubmittedAt    string   `json:"submittedAt"`
}

type PartialEligibilityDetails struct {
	Requested  int      `json:"requested"`
	Eligible   int      `json:"eligible"`
	Ineligible []string `json:"ineligible"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	Active     bool    `json:"active"`
	LastLogin  *string `json:"lastLogin,omitempty"`
	Actions    int     `json:"actions"`
	CreatedAt  string  `json:"createdAt"`
}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}
