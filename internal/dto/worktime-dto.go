package dto

type CreateWorktimeDayDTO struct {
	DayOfWeek  int     `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime  string  `json:"startTime" validate:"required,hhmm"`
	EndTime    string  `json:"endTime" validate:"required,hhmm"`
	BreakStart *string `json:"breakStart" validate:"omitempty,hhmm"`
	BreakEnd   *string `json:"breakEnd" validate:"omitempty,hhmm"`
	WorkHour   float64 `json:"workHour" validate:"gte=0,lte=24"`
	IsDayOff   bool    `json:"isDayOff"`
}

type CreateWorktimeSettingDTO struct {
	Code string                 `json:"code" validate:"required,business_code"`
	Name string                 `json:"name" validate:"required,max=255"`
	Days []CreateWorktimeDayDTO `json:"days" validate:"required,min=1,max=7,dive"`
}

// WorktimeDTO - день графика без служебных отметок времени.
type WorktimeDTO struct {
	ID           uint64  `json:"id"`
	WorktimeCode string  `json:"worktimeCode"`
	DayOfWeek    int     `json:"dayOfWeek"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	BreakStart   *string `json:"breakStart"`
	BreakEnd     *string `json:"breakEnd"`
	WorkHour     float64 `json:"workHour"`
	IsDayOff     bool    `json:"isDayOff"`
}

type WorktimeSettingDTO struct {
	ID       uint64        `json:"id"`
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Worktime *WorktimeDTO  `json:"worktime,omitempty"`
	Days     []WorktimeDTO `json:"days,omitempty"`
}

// UserWorktimeDTO - график пользователя на конкретную дату.
type UserWorktimeDTO struct {
	ID           uint64              `json:"id"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	WorktimeCode *string             `json:"worktimeCode"`
	WorktimeStg  *WorktimeSettingDTO `json:"worktimeStg"`
}
