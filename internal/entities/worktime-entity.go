package entities

import (
	"github.com/aarondl/null/v8"

	"hr-system/pkg/types"
)

type GeneralWorktimeSetting struct {
	ID   uint64 `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`

	// Заполняется только при выборке графика на конкретный день.
	Worktime *GeneralWorktime `json:"worktime,omitempty" db:"-"`

	types.BaseEntity
}

// GeneralWorktime - график одного дня недели. DayOfWeek: 0 - воскресенье ... 6 - суббота.
type GeneralWorktime struct {
	ID           uint64      `json:"id" db:"id"`
	WorktimeCode string      `json:"worktimeCode" db:"worktime_code"`
	DayOfWeek    int         `json:"dayOfWeek" db:"day_of_week"`
	StartTime    string      `json:"startTime" db:"start_time"`
	EndTime      string      `json:"endTime" db:"end_time"`
	BreakStart   null.String `json:"breakStart" db:"break_start"`
	BreakEnd     null.String `json:"breakEnd" db:"break_end"`
	WorkHour     float64     `json:"workHour" db:"work_hour"`
	IsDayOff     bool        `json:"isDayOff" db:"is_day_off"`

	types.BaseEntity
}
