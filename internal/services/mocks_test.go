package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/pkg/types"
)

// MockUserRepository represents a mock user repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUsers(ctx context.Context, filter entities.UserFilter) ([]entities.UserWithRoles, uint64, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]entities.UserWithRoles)
	return users, args.Get(1).(uint64), args.Error(2)
}

func (m *MockUserRepository) SignUp(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*entities.User, error) {
	args := m.Called(ctx, conditions)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id uint64, update entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, update)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error) {
	args := m.Called(ctx, conditions)
	u, _ := args.Get(0).(*dto.UserWithRolesDTO)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]entities.TimecheckRow, uint64, error) {
	args := m.Called(ctx, filter, conditions)
	rows, _ := args.Get(0).([]entities.TimecheckRow)
	return rows, args.Get(1).(uint64), args.Error(2)
}

func (m *MockUserRepository) GetUserWorktime(ctx context.Context, userCode string, checkDate time.Time) (*entities.UserWorktime, error) {
	args := m.Called(ctx, userCode, checkDate)
	w, _ := args.Get(0).(*entities.UserWorktime)
	return w, args.Error(1)
}

func (m *MockUserRepository) GetUserCodes(ctx context.Context, conditions entities.UserReferenceConditions) ([]string, error) {
	args := m.Called(ctx, conditions)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *MockUserRepository) GetOwnersInfo(ctx context.Context, code string) (*entities.OwnerRecord, error) {
	args := m.Called(ctx, code)
	rec, _ := args.Get(0).(*entities.OwnerRecord)
	return rec, args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) GetDepartments(ctx context.Context, filter types.PageFilter) ([]entities.Department, uint64, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.Department)
	return list, args.Get(1).(uint64), args.Error(2)
}

func (m *MockDepartmentRepository) FindDepartmentByCode(ctx context.Context, code string) (*entities.Department, error) {
	args := m.Called(ctx, code)
	d, _ := args.Get(0).(*entities.Department)
	return d, args.Error(1)
}

func (m *MockDepartmentRepository) CreateDepartment(ctx context.Context, department entities.Department) (*entities.Department, error) {
	args := m.Called(ctx, department)
	d, _ := args.Get(0).(*entities.Department)
	return d, args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, code string, name *string) (*entities.Department, error) {
	args := m.Called(ctx, code, name)
	d, _ := args.Get(0).(*entities.Department)
	return d, args.Error(1)
}

type MockWorktimeRepository struct {
	mock.Mock
}

func (m *MockWorktimeRepository) GetSettings(ctx context.Context, filter types.PageFilter) ([]entities.GeneralWorktimeSetting, uint64, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.GeneralWorktimeSetting)
	return list, args.Get(1).(uint64), args.Error(2)
}

func (m *MockWorktimeRepository) FindSettingByCode(ctx context.Context, code string) (*entities.GeneralWorktimeSetting, error) {
	args := m.Called(ctx, code)
	s, _ := args.Get(0).(*entities.GeneralWorktimeSetting)
	return s, args.Error(1)
}

func (m *MockWorktimeRepository) GetWorktimes(ctx context.Context, worktimeCode string) ([]entities.GeneralWorktime, error) {
	args := m.Called(ctx, worktimeCode)
	list, _ := args.Get(0).([]entities.GeneralWorktime)
	return list, args.Error(1)
}

func (m *MockWorktimeRepository) CreateSettingInTx(ctx context.Context, tx pgx.Tx, setting entities.GeneralWorktimeSetting) (*entities.GeneralWorktimeSetting, error) {
	args := m.Called(ctx, tx, setting)
	s, _ := args.Get(0).(*entities.GeneralWorktimeSetting)
	return s, args.Error(1)
}

func (m *MockWorktimeRepository) CreateWorktimeInTx(ctx context.Context, tx pgx.Tx, worktime entities.GeneralWorktime) (*entities.GeneralWorktime, error) {
	args := m.Called(ctx, tx, worktime)
	w, _ := args.Get(0).(*entities.GeneralWorktime)
	return w, args.Error(1)
}

type MockLeaveBenefitRepository struct {
	mock.Mock
}

func (m *MockLeaveBenefitRepository) GetLeaveBenefits(ctx context.Context, filter types.PageFilter) ([]entities.LeaveBenefit, uint64, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.LeaveBenefit)
	return list, args.Get(1).(uint64), args.Error(2)
}

func (m *MockLeaveBenefitRepository) FindLeaveBenefitByCode(ctx context.Context, code string) (*entities.LeaveBenefit, error) {
	args := m.Called(ctx, code)
	lb, _ := args.Get(0).(*entities.LeaveBenefit)
	return lb, args.Error(1)
}

func (m *MockLeaveBenefitRepository) CreateLeaveBenefit(ctx context.Context, benefit entities.LeaveBenefit) (*entities.LeaveBenefit, error) {
	args := m.Called(ctx, benefit)
	lb, _ := args.Get(0).(*entities.LeaveBenefit)
	return lb, args.Error(1)
}

type MockTimecheckRepository struct {
	mock.Mock
}

func (m *MockTimecheckRepository) CreateTimecheck(ctx context.Context, timecheck entities.Timecheck) (*entities.Timecheck, error) {
	args := m.Called(ctx, timecheck)
	t, _ := args.Get(0).(*entities.Timecheck)
	return t, args.Error(1)
}

func (m *MockTimecheckRepository) FindTimecheck(ctx context.Context, id uint64) (*entities.Timecheck, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entities.Timecheck)
	return t, args.Error(1)
}

func (m *MockTimecheckRepository) UpdateTimecheck(ctx context.Context, timecheck entities.Timecheck) (*entities.Timecheck, error) {
	args := m.Called(ctx, timecheck)
	t, _ := args.Get(0).(*entities.Timecheck)
	return t, args.Error(1)
}

func (m *MockTimecheckRepository) DeactivateTimecheck(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) GetRoles(ctx context.Context, filter types.PageFilter) ([]entities.Role, uint64, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.Role)
	return list, args.Get(1).(uint64), args.Error(2)
}

func (m *MockRoleRepository) FindRoleByCode(ctx context.Context, code string) (*entities.Role, error) {
	args := m.Called(ctx, code)
	r, _ := args.Get(0).(*entities.Role)
	return r, args.Error(1)
}

func (m *MockRoleRepository) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	args := m.Called(ctx, role)
	r, _ := args.Get(0).(*entities.Role)
	return r, args.Error(1)
}

func (m *MockRoleRepository) AssignRole(ctx context.Context, userCode, roleCode string) (*entities.UserRole, error) {
	args := m.Called(ctx, userCode, roleCode)
	ur, _ := args.Get(0).(*entities.UserRole)
	return ur, args.Error(1)
}

func (m *MockRoleRepository) RevokeRole(ctx context.Context, userCode, roleCode string) error {
	return m.Called(ctx, userCode, roleCode).Error(0)
}

// MockCache represents a mock cache repository.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

// fakeTxManager вызывает fn без настоящей транзакции и запоминает результат.
type fakeTxManager struct {
	calls   int
	lastErr error
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	f.lastErr = fn(nil)
	return f.lastErr
}
