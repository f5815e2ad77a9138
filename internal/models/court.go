package models

type City struct {
	ShortCode string `json:"short_code"`
}

type Branch struct {
	City City `json:"city"`
}

type Court struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerHour float64 `json:"price_per_hour"`
	Branch       Branch  `json:"branch"`
}
