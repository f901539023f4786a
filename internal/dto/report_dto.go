package dto

// DashboardStats covers today's completed sales. Money values are fixed
// 2-decimal strings; "0.00" when no transactions matched.
type DashboardStats struct {
	TodaySales        string `json:"todaySales"`
	TodayTransactions int64  `json:"todayTransactions"`
	AverageSale       string `json:"averageSale"`
}

// TopProduct is one row of the best-seller report, ordered by SoldCount
// descending with product id as the stable tie-break.
type TopProduct struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	SoldCount int64  `json:"soldCount"`
	Revenue   string `json:"revenue"`
}
