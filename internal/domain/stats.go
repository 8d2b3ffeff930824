package domain

// RecentProduct is a product summary on the dashboard.
type RecentProduct struct {
	ID       ID      `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// RecentUser is a user summary on the dashboard.
type RecentUser struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalProducts  int             `json:"total_products"`
	TotalUsers     int             `json:"total_users"`
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   float64         `json:"total_revenue"`
	MonthlyRevenue float64         `json:"monthly_revenue"`
	RecentProducts []RecentProduct `json:"recent_products"`
	RecentUsers    []RecentUser    `json:"recent_users"`
}
