package dto

import "time"

type SignUpDTO struct {
	Code             string  `json:"code" validate:"omitempty,business_code"`
	Name             string  `json:"name" validate:"required,max=255"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            *string `json:"phone" validate:"omitempty,phone_number"`
	Password         string  `json:"password" validate:"required,min=6,max=72"`
	Department       *string `json:"department" validate:"omitempty,business_code"`
	ManagerCode      *string `json:"managerCode" validate:"omitempty,business_code"`
	WorktimeCode     *string `json:"worktimeCode" validate:"omitempty,business_code"`
	LeaveBenefitCode *string `json:"leaveBenefitCode" validate:"omitempty,business_code"`
}

// UpdateUserDTO - то, что пользователь может поменять сам.
type UpdateUserDTO struct {
	Phone *string `json:"phone" validate:"omitempty,phone_number"`
}

// UpdateUserAssignmentsDTO - административные привязки пользователя по кодам.
type UpdateUserAssignmentsDTO struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=255"`
	Department       *string `json:"department" validate:"omitempty,business_code"`
	ManagerCode      *string `json:"managerCode" validate:"omitempty,business_code"`
	WorktimeCode     *string `json:"worktimeCode" validate:"omitempty,business_code"`
	LeaveBenefitCode *string `json:"leaveBenefitCode" validate:"omitempty,business_code"`
	IsActive         *bool   `json:"isActive"`
}

// UserDTO - полная запись пользователя без пароля.
type UserDTO struct {
	ID               uint64     `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone"`
	Department       *string    `json:"department"`
	ManagerCode      *string    `json:"managerCode"`
	WorktimeCode     *string    `json:"worktimeCode"`
	LeaveBenefitCode *string    `json:"leaveBenefitCode"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        *time.Time `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

type RoleInfoDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type UserRoleDTO struct {
	ID       uint64       `json:"id"`
	RoleCode string       `json:"roleCode"`
	RoleInfo *RoleInfoDTO `json:"roleInfo"`
}

// UserListItemDTO - строка списка пользователей.
type UserListItemDTO struct {
	ID        uint64        `json:"id"`
	Code      string        `json:"code"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone"`
	CreatedAt *time.Time    `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt"`
	Roles     []UserRoleDTO `json:"roles"`
}

type UserWithRolesDTO struct {
	ID          uint64   `json:"id"`
	Code        string   `json:"code"`
	Department  *string  `json:"department"`
	ManagerCode *string  `json:"managerCode"`
	Name        string   `json:"name"`
	Roles       []string `json:"roles"`
}

// ShortRefDTO - {id, code, name} связанной сущности.
type ShortRefDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// OwnersInfoDTO не содержит поля пароля вовсе.
type OwnersInfoDTO struct {
	ID               uint64        `json:"id"`
	Code             string        `json:"code"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            *string       `json:"phone"`
	ManagerCode      *string       `json:"managerCode"`
	WorktimeCode     *string       `json:"worktimeCode"`
	LeaveBenefitCode *string       `json:"leaveBenefitCode"`
	IsActive         bool          `json:"isActive"`
	CreatedAt        *time.Time    `json:"createdAt"`
	UpdatedAt        *time.Time    `json:"updatedAt"`
	Department       *ShortRefDTO  `json:"department"`
	Manager          *ShortRefDTO  `json:"manager"`
	LeaveBenefit     *ShortRefDTO  `json:"leaveBenefit"`
	Worktimes        []WorktimeDTO `json:"worktimes"`
}
