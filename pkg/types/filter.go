package types

import "time"

// PageFilter - общие параметры постраничной выборки.
type PageFilter struct {
	Page   int  `json:"page"`
	Limit  int  `json:"limit"`
	Offset int  `json:"offset"`
	GetAll bool `json:"getAll"`
}

// DateRange - закрытый интервал дат, любая из границ может отсутствовать.
type DateRange struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
