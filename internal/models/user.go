package models

// User is the profile blob returned by the login endpoint and persisted
// alongside the session token.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token,omitempty"`
}

type LoginResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user,omitempty"`
	OTP     string `json:"otp,omitempty"`
}

// AllDashboardCounts is the platform-wide counter set behind
// adminAllDashboardCount. The upstream wraps it in a data envelope.
type AllDashboardCounts struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalSubAdmins   int     `json:"totalSubAdmins"`
	TotalRestaurants int     `json:"totalRestaurants"`
	CodPayments      float64 `json:"codPayments"`
	OnlinePayments   float64 `json:"onlinePayments"`
	NewTasks         int     `json:"newTasks"`
}

// SubDashboardCounts is the per-restaurant counter set behind
// adminSubDashboardCount, scoped to the signed-in sub-admin.
type SubDashboardCounts struct {
	TotalSubcategories int     `json:"totalSubcategories"`
	TotalMenuItems     int     `json:"totalMenuItems"`
	TotalOrders        int     `json:"totalOrders"`
	CodPayments        float64 `json:"codPayments"`
}
