package entity

// DashboardStats mirrors GET /dashboard/stats.
type DashboardStats struct {
	TotalProducts    int64   `json:"total_products"`
	ActiveProducts   int64   `json:"active_products"`
	LowStockProducts int64   `json:"low_stock_products"`
	TotalCategories  int64   `json:"total_categories"`
	TotalUsers       int64   `json:"total_users"`
	TodaySales       int64   `json:"today_sales"`
	TodayRevenue     float64 `json:"today_revenue"`
	MonthSales       int64   `json:"month_sales"`
	MonthRevenue     float64 `json:"month_revenue"`
	YearSales        int64   `json:"year_sales"`
	YearRevenue      float64 `json:"year_revenue"`
}

// TopProduct mirrors one row of GET /dashboard/top-products.
type TopProduct struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	TotalSold    int64   `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}
