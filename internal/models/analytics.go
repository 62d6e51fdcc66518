package models

// SpendingTimeSeriesEntry - сумма за календарный день (YYYY-MM-DD)
type SpendingTimeSeriesEntry struct {
	Date          string  `json:"date"`
	TotalSpending float64 `json:"total_spending"`
}

type CategorySpending struct {
	CategoryName  string  `json:"category_name"`
	TotalSpending float64 `json:"total_spending"`
}

// ProductPriceData - точка графика истории цены
type ProductPriceData struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
