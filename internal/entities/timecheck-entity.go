package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"hr-system/pkg/types"
)

type Timecheck struct {
	ID              uint64    `json:"id" db:"id"`
	UserCode        string    `json:"userCode" db:"user_code"`
	CheckDate       time.Time `json:"checkDate" db:"check_date"`
	CheckInTime     null.Time `json:"checkInTime" db:"check_in_time"`
	CheckOutTime    null.Time `json:"checkOutTime" db:"check_out_time"`
	MissCheckIn     bool      `json:"missCheckIn" db:"miss_check_in"`
	MissCheckOut    bool      `json:"missCheckOut" db:"miss_check_out"`
	MissCheckInMin  int       `json:"missCheckInMin" db:"miss_check_in_min"`
	MissCheckOutMin int       `json:"missCheckOutMin" db:"miss_check_out_min"`
	IsLeaveBenefit  bool      `json:"isLeaveBenefit" db:"is_leave_benefit"`
	LeaveHour       float64   `json:"leaveHour" db:"leave_hour"`
	WorkHour        float64   `json:"workHour" db:"work_hour"`
	Timezone        string    `json:"timezone" db:"timezone"`
	IsDayOff        bool      `json:"isDayOff" db:"is_day_off"`
	IsActive        bool      `json:"isActive" db:"is_active"`

	types.BaseEntity
}

// TimecheckUser - краткие данные владельца отметки.
type TimecheckUser struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// TimecheckRow - отметка вместе с её владельцем.
type TimecheckRow struct {
	User      TimecheckUser
	Timecheck Timecheck
}

// TimecheckConditions - дополнительные условия на владельца отметки.
type TimecheckConditions struct {
	UserCode       *string
	DepartmentCode *string
}

// TimecheckFilter - период и пагинация для выборки отметок.
type TimecheckFilter struct {
	types.PageFilter
	types.DateRange
}
