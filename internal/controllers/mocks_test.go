package controllers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/pkg/customvalidator"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

// newTestEcho собирает echo с тем же валидатором, что и в main.
func newTestEcho() *echo.Echo {
	e := echo.New()
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		panic(err)
	}
	e.Validator = utils.NewValidator(v)
	return e
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUsers(ctx context.Context, filter entities.UserFilter) (types.Page[dto.UserListItemDTO], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(types.Page[dto.UserListItemDTO]), args.Error(1)
}

func (m *MockUserService) SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.UserDTO, error) {
	args := m.Called(ctx, payload)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

func (m *MockUserService) FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*dto.UserDTO, error) {
	args := m.Called(ctx, conditions)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	args := m.Called(ctx, id, payload)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

func (m *MockUserService) UpdateUserAssignments(ctx context.Context, id uint64, payload dto.UpdateUserAssignmentsDTO) (*dto.UserDTO, error) {
	args := m.Called(ctx, id, payload)
	u, _ := args.Get(0).(*dto.UserDTO)
	return u, args.Error(1)
}

func (m *MockUserService) FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error) {
	args := m.Called(ctx, conditions)
	u, _ := args.Get(0).(*dto.UserWithRolesDTO)
	return u, args.Error(1)
}

func (m *MockUserService) GetOwnersInfo(ctx context.Context, code string) (*dto.OwnersInfoDTO, error) {
	args := m.Called(ctx, code)
	info, _ := args.Get(0).(*dto.OwnersInfoDTO)
	return info, args.Error(1)
}

func (m *MockUserService) GetUserWorktime(ctx context.Context, code string, checkDate time.Time) (*dto.UserWorktimeDTO, error) {
	args := m.Called(ctx, code, checkDate)
	w, _ := args.Get(0).(*dto.UserWorktimeDTO)
	return w, args.Error(1)
}

type MockTimecheckService struct {
	mock.Mock
}

func (m *MockTimecheckService) GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) (types.Page[dto.TimecheckDTO], error) {
	args := m.Called(ctx, filter, conditions)
	return args.Get(0).(types.Page[dto.TimecheckDTO]), args.Error(1)
}

func (m *MockTimecheckService) ExportTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]dto.TimecheckDTO, error) {
	args := m.Called(ctx, filter, conditions)
	items, _ := args.Get(0).([]dto.TimecheckDTO)
	return items, args.Error(1)
}

func (m *MockTimecheckService) CreateTimecheck(ctx context.Context, payload dto.CreateTimecheckDTO) (*dto.TimecheckDTO, error) {
	args := m.Called(ctx, payload)
	t, _ := args.Get(0).(*dto.TimecheckDTO)
	return t, args.Error(1)
}

func (m *MockTimecheckService) UpdateTimecheck(ctx context.Context, id uint64, payload dto.UpdateTimecheckDTO) (*dto.TimecheckDTO, error) {
	args := m.Called(ctx, id, payload)
	t, _ := args.Get(0).(*dto.TimecheckDTO)
	return t, args.Error(1)
}

func (m *MockTimecheckService) DeactivateTimecheck(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}
