package entities

import "hr-system/pkg/types"

type LeaveBenefit struct {
	ID          uint64 `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	DaysPerYear int    `json:"daysPerYear" db:"days_per_year"`

	types.BaseEntity
}
