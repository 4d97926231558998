package models

type RegisterCustomerRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	AccountNumber string `json:"accountNumber"`
	IDNumber      string `json:"idNumber"`
}

type RegisterCustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	ExpiresAt  string `json:"expiresAt"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
}

type LogoutResponse struct {
	Revoked bool `json:"revoked"`
}
