package dto

type CreateDepartmentDTO struct {
	Code string `json:"code" validate:"required,business_code"`
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

type CreateLeaveBenefitDTO struct {
	Code        string `json:"code" validate:"required,business_code"`
	Name        string `json:"name" validate:"required,max=255"`
	DaysPerYear int    `json:"daysPerYear" validate:"gte=0,lte=366"`
}

type CreateRoleDTO struct {
	Code string `json:"code" validate:"required,business_code"`
	Name string `json:"name" validate:"required,max=255"`
}
