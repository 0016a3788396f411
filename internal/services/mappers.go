package services

import (
	"cmp"
	"slices"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/pkg/utils"
)

func userEntityToDTO(u *entities.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:               u.ID,
		Code:             u.Code,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone.Ptr(),
		Department:       u.Department.Ptr(),
		ManagerCode:      u.ManagerCode.Ptr(),
		WorktimeCode:     u.WorktimeCode.Ptr(),
		LeaveBenefitCode: u.LeaveBenefitCode.Ptr(),
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func userListItemToDTO(u entities.UserWithRoles) dto.UserListItemDTO {
	roles := make([]dto.UserRoleDTO, 0, len(u.Roles))
	for _, r := range u.Roles {
		item := dto.UserRoleDTO{ID: r.ID, RoleCode: r.RoleCode}
		if r.RoleInfo != nil {
			item.RoleInfo = &dto.RoleInfoDTO{ID: r.RoleInfo.ID, Name: r.RoleInfo.Name}
		}
		roles = append(roles, item)
	}
	return dto.UserListItemDTO{
		ID:        u.ID,
		Code:      u.Code,
		Email:     u.Email,
		Phone:     u.Phone.Ptr(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Roles:     roles,
	}
}

func worktimeEntityToDTO(w entities.GeneralWorktime) dto.WorktimeDTO {
	return dto.WorktimeDTO{
		ID:           w.ID,
		WorktimeCode: w.WorktimeCode,
		DayOfWeek:    w.DayOfWeek,
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
		BreakStart:   w.BreakStart.Ptr(),
		BreakEnd:     w.BreakEnd.Ptr(),
		WorkHour:     w.WorkHour,
		IsDayOff:     w.IsDayOff,
	}
}

// sortWorktimes упорядочивает дни графика по day_of_week.
func sortWorktimes(list []entities.GeneralWorktime) []entities.GeneralWorktime {
	slices.SortFunc(list, func(a, b entities.GeneralWorktime) int {
		return cmp.Compare(a.DayOfWeek, b.DayOfWeek)
	})
	return list
}

func worktimeEntitiesToDTOs(list []entities.GeneralWorktime) []dto.WorktimeDTO {
	result := make([]dto.WorktimeDTO, 0, len(list))
	for _, w := range list {
		result = append(result, worktimeEntityToDTO(w))
	}
	return result
}

func shortRef(id uint64, code, name string) *dto.ShortRefDTO {
	return &dto.ShortRefDTO{ID: id, Code: code, Name: name}
}

// ownerRecordToDTO убирает пароль и оставляет от связанных сущностей только id, code и name.
func ownerRecordToDTO(rec *entities.OwnerRecord) *dto.OwnersInfoDTO {
	out := &dto.OwnersInfoDTO{
		ID:               rec.ID,
		Code:             rec.Code,
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone.Ptr(),
		ManagerCode:      rec.ManagerCode.Ptr(),
		WorktimeCode:     rec.WorktimeCode.Ptr(),
		LeaveBenefitCode: rec.LeaveBenefitCode.Ptr(),
		IsActive:         rec.IsActive,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		Worktimes:        worktimeEntitiesToDTOs(sortWorktimes(rec.Worktimes)),
	}
	if rec.DepartmentInfo != nil {
		out.Department = shortRef(rec.DepartmentInfo.ID, rec.DepartmentInfo.Code, rec.DepartmentInfo.Name)
	}
	if rec.Manager != nil {
		out.Manager = shortRef(rec.Manager.ID, rec.Manager.Code, rec.Manager.Name)
	}
	if rec.LeaveBenefit != nil {
		out.LeaveBenefit = shortRef(rec.LeaveBenefit.ID, rec.LeaveBenefit.Code, rec.LeaveBenefit.Name)
	}
	return out
}

func userWorktimeToDTO(w *entities.UserWorktime) *dto.UserWorktimeDTO {
	out := &dto.UserWorktimeDTO{
		ID:           w.ID,
		Code:         w.Code,
		Name:         w.Name,
		WorktimeCode: w.WorktimeCode.Ptr(),
	}
	if w.WorktimeStg != nil {
		out.WorktimeStg = &dto.WorktimeSettingDTO{
			ID:   w.WorktimeStg.ID,
			Code: w.WorktimeStg.Code,
			Name: w.WorktimeStg.Name,
		}
		if w.WorktimeStg.Worktime != nil {
			day := worktimeEntityToDTO(*w.WorktimeStg.Worktime)
			out.WorktimeStg.Worktime = &day
		}
	}
	return out
}

func timecheckToDTO(t entities.Timecheck, user entities.TimecheckUser) dto.TimecheckDTO {
	return dto.TimecheckDTO{
		ID:              t.ID,
		CheckDate:       t.CheckDate.Format(utils.DateLayout),
		CheckInTime:     t.CheckInTime.Ptr(),
		CheckOutTime:    t.CheckOutTime.Ptr(),
		MissCheckInMin:  t.MissCheckInMin,
		MissCheckOutMin: t.MissCheckOutMin,
		MissCheckIn:     t.MissCheckIn,
		MissCheckOut:    t.MissCheckOut,
		IsLeaveBenefit:  t.IsLeaveBenefit,
		LeaveHour:       t.LeaveHour,
		WorkHour:        t.WorkHour,
		Timezone:        t.Timezone,
		IsDayOff:        t.IsDayOff,
		User:            dto.ShortUserDTO{ID: user.ID, Code: user.Code, Name: user.Name},
	}
}

func timecheckRowsToDTOs(rows []entities.TimecheckRow) []dto.TimecheckDTO {
	result := make([]dto.TimecheckDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, timecheckToDTO(row.Timecheck, row.User))
	}
	return result
}
