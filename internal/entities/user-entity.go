// Файл: internal/entities/user-entity.go
package entities

import (
	"github.com/aarondl/null/v8"

	"hr-system/pkg/types"
)

// User связан с остальными таблицами через Code, а не через ID.
type User struct {
	ID       uint64      `json:"id" db:"id"`
	Code     string      `json:"code" db:"code"`
	Name     string      `json:"name" db:"name"`
	Email    string      `json:"email" db:"email"`
	Phone    null.String `json:"phone" db:"phone"`
	Password string      `json:"-" db:"password"`

	Department       null.String `json:"department" db:"department"`
	ManagerCode      null.String `json:"managerCode" db:"manager_code"`
	WorktimeCode     null.String `json:"worktimeCode" db:"worktime_code"`
	LeaveBenefitCode null.String `json:"leaveBenefitCode" db:"leave_benefit_code"`

	IsActive bool `json:"isActive" db:"is_active"`

	types.BaseEntity
}

// UserRole - строка связующей таблицы user_roles.
type UserRole struct {
	ID       uint64 `json:"id" db:"id"`
	UserCode string `json:"userCode" db:"user_code"`
	RoleCode string `json:"roleCode" db:"role_code"`

	RoleInfo *Role `json:"roleInfo,omitempty" db:"-"`

	types.BaseEntity
}

// UserWithRoles - пользователь из списка вместе с его ролями.
type UserWithRoles struct {
	User
	Roles []UserRole
}

// UserConditions - условия поиска одного пользователя; учитываются только заданные поля.
type UserConditions struct {
	ID    *uint64
	Code  *string
	Email *string
}

func (c UserConditions) IsEmpty() bool {
	return c.ID == nil && c.Code == nil && c.Email == nil
}

// UserReferenceConditions - отбор пользователей по отделу или руководителю.
type UserReferenceConditions struct {
	Department  *string
	ManagerCode *string
}

// UserUpdate - частичное обновление; nil означает "не менять".
type UserUpdate struct {
	Name             *string
	Phone            *string
	Department       *string
	ManagerCode      *string
	WorktimeCode     *string
	LeaveBenefitCode *string
	IsActive         *bool
}

func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Department == nil && u.ManagerCode == nil &&
		u.WorktimeCode == nil && u.LeaveBenefitCode == nil && u.IsActive == nil
}

// OwnerRecord - пользователь со всеми связанными по кодам сущностями.
type OwnerRecord struct {
	User
	DepartmentInfo *Department
	Manager        *User
	LeaveBenefit   *LeaveBenefit
	Worktimes      []GeneralWorktime
}

// UserWorktime - пользователь, его настройка графика и строка графика на конкретный день.
type UserWorktime struct {
	ID           uint64
	Code         string
	Name         string
	WorktimeCode null.String
	WorktimeStg  *GeneralWorktimeSetting
}

// UserFilter - фильтр списка пользователей.
type UserFilter struct {
	types.PageFilter
	Email *string
}
