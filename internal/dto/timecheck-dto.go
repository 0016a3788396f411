package dto

import "time"

type ShortUserDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type TimecheckDTO struct {
	ID              uint64       `json:"id"`
	CheckDate       string       `json:"checkDate"`
	CheckInTime     *time.Time   `json:"checkInTime"`
	CheckOutTime    *time.Time   `json:"checkOutTime"`
	MissCheckInMin  int          `json:"missCheckInMin"`
	MissCheckOutMin int          `json:"missCheckOutMin"`
	MissCheckIn     bool         `json:"missCheckIn"`
	MissCheckOut    bool         `json:"missCheckOut"`
	IsLeaveBenefit  bool         `json:"isLeaveBenefit"`
	LeaveHour       float64      `json:"leaveHour"`
	WorkHour        float64      `json:"workHour"`
	Timezone        string       `json:"timezone"`
	IsDayOff        bool         `json:"isDayOff"`
	User            ShortUserDTO `json:"user"`
}

type CreateTimecheckDTO struct {
	UserCode       string     `json:"userCode" validate:"required,business_code"`
	CheckDate      string     `json:"checkDate" validate:"required,datetime=2006-01-02"`
	CheckInTime    *time.Time `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	IsLeaveBenefit bool       `json:"isLeaveBenefit"`
	LeaveHour      float64    `json:"leaveHour" validate:"gte=0,lte=24"`
	Timezone       string     `json:"timezone" validate:"omitempty,timezone"`
	IsDayOff       bool       `json:"isDayOff"`
}

type UpdateTimecheckDTO struct {
	CheckInTime    *time.Time `json:"checkInTime"`
	CheckOutTime   *time.Time `json:"checkOutTime"`
	IsLeaveBenefit *bool      `json:"isLeaveBenefit"`
	LeaveHour      *float64   `json:"leaveHour" validate:"omitempty,gte=0,lte=24"`
	IsDayOff       *bool      `json:"isDayOff"`
}
