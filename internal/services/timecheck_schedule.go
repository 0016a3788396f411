package services

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"hr-system/internal/entities"
)

const clockLayout = "15:04"

// clockOn переносит время "HH:MM" на дату day в зоне loc.
func clockOn(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	clock, err := time.Parse(clockLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("неверный формат времени '%s': %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// loadLocation возвращает зону отметки; неизвестная зона заменяется на UTC.
func loadLocation(name string, logger *zap.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("Неизвестная часовая зона, расчёт ведётся в UTC", zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

func minutesBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Minutes()))
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// applySchedule пересчитывает опоздание, ранний уход и отработанные часы
// отметки t по графику дня day. day == nil означает, что графика на этот день нет.
// Часы отпуска (LeaveHour) сначала покрывают опоздание, остаток - ранний уход.
// Перерыв, который кончается не позже начала, не вычитается.
func applySchedule(t *entities.Timecheck, day *entities.GeneralWorktime, logger *zap.Logger) error {
	t.MissCheckInMin, t.MissCheckOutMin = 0, 0
	t.MissCheckIn, t.MissCheckOut = false, false
	t.WorkHour = 0

	if day != nil && day.IsDayOff {
		t.IsDayOff = true
	}

	loc := loadLocation(t.Timezone, logger)
	var breakStart, breakEnd time.Time
	if day != nil && day.BreakStart.Valid && day.BreakEnd.Valid {
		var err error
		if breakStart, err = clockOn(t.CheckDate, day.BreakStart.String, loc); err != nil {
			return err
		}
		if breakEnd, err = clockOn(t.CheckDate, day.BreakEnd.String, loc); err != nil {
			return err
		}
	}

	if t.CheckInTime.Valid && t.CheckOutTime.Valid && t.CheckOutTime.Time.After(t.CheckInTime.Time) {
		in, out := t.CheckInTime.Time, t.CheckOutTime.Time
		worked := out.Sub(in)
		if breakEnd.After(breakStart) && in.Before(breakEnd) && out.After(breakStart) {
			overlapFrom, overlapTo := breakStart, breakEnd
			if in.After(overlapFrom) {
				overlapFrom = in
			}
			if out.Before(overlapTo) {
				overlapTo = out
			}
			worked -= overlapTo.Sub(overlapFrom)
		}
		t.WorkHour = roundHours(worked.Hours())
	}

	if day == nil || t.IsDayOff {
		return nil
	}

	start, err := clockOn(t.CheckDate, day.StartTime, loc)
	if err != nil {
		return err
	}
	end, err := clockOn(t.CheckDate, day.EndTime, loc)
	if err != nil {
		return err
	}

	if t.CheckInTime.Valid {
		t.MissCheckInMin = minutesBetween(start, t.CheckInTime.Time)
	}
	if t.CheckOutTime.Valid {
		t.MissCheckOutMin = minutesBetween(t.CheckOutTime.Time, end)
	}

	if t.IsLeaveBenefit && t.LeaveHour > 0 {
		leaveMin := int(math.Round(t.LeaveHour * 60))
		covered := min(leaveMin, t.MissCheckInMin)
		t.MissCheckInMin -= covered
		leaveMin -= covered
		t.MissCheckOutMin -= min(leaveMin, t.MissCheckOutMin)
	}

	t.MissCheckIn = t.MissCheckInMin > 0
	t.MissCheckOut = t.MissCheckOutMin > 0
	return nil
}
