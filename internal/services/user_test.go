package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

type userServiceDeps struct {
	users        *MockUserRepository
	departments  *MockDepartmentRepository
	worktimes    *MockWorktimeRepository
	leaveBenefit *MockLeaveBenefitRepository
	cache        *MockCache
}

func newTestUserService(withCache bool) (*UserService, userServiceDeps) {
	deps := userServiceDeps{
		users:        &MockUserRepository{},
		departments:  &MockDepartmentRepository{},
		worktimes:    &MockWorktimeRepository{},
		leaveBenefit: &MockLeaveBenefitRepository{},
		cache:        &MockCache{},
	}
	var cache repositories.CacheRepositoryInterface
	if withCache {
		cache = deps.cache
	}
	svc := NewUserService(deps.users, deps.departments, deps.worktimes, deps.leaveBenefit, cache, time.Minute, zap.NewNop())
	return svc.(*UserService), deps
}

func ownerRecordFixture() *entities.OwnerRecord {
	return &entities.OwnerRecord{
		User: entities.User{
			ID:           7,
			Code:         "EMP7",
			Name:         "Иван",
			Email:        "ivan@x.com",
			Password:     "$2a$10$secret-hash",
			Department:   null.StringFrom("IT"),
			ManagerCode:  null.StringFrom("MGR"),
			WorktimeCode: null.StringFrom("OFFICE"),
			IsActive:     true,
		},
		DepartmentInfo: &entities.Department{ID: 1, Code: "IT", Name: "ИТ"},
		Manager:        &entities.User{ID: 2, Code: "MGR", Name: "Пётр", Password: "other-hash"},
		Worktimes: []entities.GeneralWorktime{
			{ID: 12, WorktimeCode: "OFFICE", DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00"},
			{ID: 10, WorktimeCode: "OFFICE", DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		},
	}
}

func TestUserService_GetUsers(t *testing.T) {
	svc, deps := newTestUserService(false)
	ctx := context.Background()
	filter := entities.UserFilter{PageFilter: types.PageFilter{Page: 1, Limit: 10}, Email: utils.ToPtr("a@x.com")}

	deps.users.On("GetUsers", ctx, filter).Return([]entities.UserWithRoles{
		{
			User: entities.User{ID: 1, Code: "EMP1", Email: "a@x.com", Phone: null.StringFrom("+992900000000")},
			Roles: []entities.UserRole{
				{ID: 3, RoleCode: "HR", RoleInfo: &entities.Role{ID: 5, Code: "HR", Name: "Кадры"}},
				{ID: 4, RoleCode: "GHOST"},
			},
		},
	}, uint64(1), nil)

	page, err := svc.GetUsers(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, types.Pagination{TotalItems: 1, ItemCount: 1, ItemsPerPage: 10, TotalPages: 1, CurrentPage: 1}, page.Pagination)

	item := page.Items[0]
	assert.Equal(t, "+992900000000", *item.Phone)
	require.Len(t, item.Roles, 2)
	assert.Equal(t, &dto.RoleInfoDTO{ID: 5, Name: "Кадры"}, item.Roles[0].RoleInfo)
	assert.Nil(t, item.Roles[1].RoleInfo)
}

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("генерирует код, если он не задан", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("SignUp", ctx, mock.MatchedBy(func(u entities.User) bool {
			return len(u.Code) == 12 && u.Email == "new@x.com" && !u.Department.Valid
		})).Return(&entities.User{ID: 1, Code: "ABCDEF123456", Email: "new@x.com", Password: "hash"}, nil)

		res, err := svc.SignUp(ctx, dto.SignUpDTO{Name: "Новый", Email: " New@x.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "ABCDEF123456", res.Code)
		deps.users.AssertExpectations(t)
	})

	t.Run("несуществующий отдел", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.departments.On("FindDepartmentByCode", ctx, "NOPE").Return(nil, apperrors.ErrNotFound)

		_, err := svc.SignUp(ctx, dto.SignUpDTO{Name: "x", Email: "x@x.com", Password: "secret1", Department: utils.ToPtr("NOPE")})
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		deps.users.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("дубликат", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		conflict := apperrors.NewHttpError(http.StatusConflict, "Пользователь с такими данными уже существует", apperrors.ErrConflict, nil)
		deps.users.On("SignUp", ctx, mock.Anything).Return(nil, conflict)

		_, err := svc.SignUp(ctx, dto.SignUpDTO{Code: "EMP1", Name: "x", Email: "x@x.com", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestUserService_EmailCase(t *testing.T) {
	ctx := context.Background()
	stored := &entities.User{ID: 1, Code: "EMP1", Email: "ivan@example.com", Password: "hash"}

	t.Run("регистрация и поиск в разном регистре", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("SignUp", ctx, mock.MatchedBy(func(u entities.User) bool { return u.Email == "ivan@example.com" })).
			Return(stored, nil)
		deps.users.On("FindOneByConditions", ctx, entities.UserConditions{Email: utils.ToPtr("ivan@example.com")}).
			Return(stored, nil)

		_, err := svc.SignUp(ctx, dto.SignUpDTO{Name: "Иван", Email: "Ivan@Example.com", Password: "secret1"})
		require.NoError(t, err)

		found, err := svc.FindOneByConditions(ctx, entities.UserConditions{Email: utils.ToPtr("Ivan@Example.com")})
		require.NoError(t, err)
		assert.Equal(t, "EMP1", found.Code)
		deps.users.AssertExpectations(t)
	})

	t.Run("фильтр списка", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		filter := entities.UserFilter{PageFilter: types.PageFilter{Page: 1, Limit: 10}, Email: utils.ToPtr("ivan@example.com")}
		deps.users.On("GetUsers", ctx, filter).Return([]entities.UserWithRoles{{User: *stored}}, uint64(1), nil)

		page, err := svc.GetUsers(ctx, entities.UserFilter{PageFilter: filter.PageFilter, Email: utils.ToPtr(" IVAN@example.com")})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("поиск с ролями", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("FindOneWithRoles", ctx, entities.UserConditions{Email: utils.ToPtr("ivan@example.com")}).
			Return(&dto.UserWithRolesDTO{ID: 1, Code: "EMP1"}, nil)

		res, err := svc.FindOneWithRoles(ctx, entities.UserConditions{Email: utils.ToPtr("Ivan@Example.com")})
		require.NoError(t, err)
		assert.Equal(t, "EMP1", res.Code)
	})
}

func TestUserService_GetOwnersInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("без пароля и с урезанными связями", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("GetOwnersInfo", ctx, "EMP7").Return(ownerRecordFixture(), nil)

		info, err := svc.GetOwnersInfo(ctx, "EMP7")
		require.NoError(t, err)

		assert.Equal(t, &dto.ShortRefDTO{ID: 1, Code: "IT", Name: "ИТ"}, info.Department)
		assert.Equal(t, &dto.ShortRefDTO{ID: 2, Code: "MGR", Name: "Пётр"}, info.Manager)
		assert.Nil(t, info.LeaveBenefit)
		require.Len(t, info.Worktimes, 2)
		assert.Equal(t, 1, info.Worktimes[0].DayOfWeek)
		assert.Equal(t, 5, info.Worktimes[1].DayOfWeek)

		raw, err := json.Marshal(info)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), "secret-hash")
		assert.Contains(t, string(raw), `"leaveBenefit":null`)
	})

	t.Run("ответ из кэша", func(t *testing.T) {
		svc, deps := newTestUserService(true)
		cached, _ := json.Marshal(dto.OwnersInfoDTO{ID: 7, Code: "EMP7", Name: "Из кэша"})
		deps.cache.On("Get", ctx, "owners-info:EMP7").Return(string(cached), nil)

		info, err := svc.GetOwnersInfo(ctx, "EMP7")
		require.NoError(t, err)
		assert.Equal(t, "Из кэша", info.Name)
		deps.users.AssertNotCalled(t, "GetOwnersInfo", mock.Anything, mock.Anything)
	})

	t.Run("промах кэша сохраняет результат", func(t *testing.T) {
		svc, deps := newTestUserService(true)
		deps.cache.On("Get", ctx, "owners-info:EMP7").Return("", repositories.ErrCacheMiss)
		deps.cache.On("Set", ctx, "owners-info:EMP7", mock.Anything, time.Minute).Return(nil)
		deps.users.On("GetOwnersInfo", ctx, "EMP7").Return(ownerRecordFixture(), nil)

		_, err := svc.GetOwnersInfo(ctx, "EMP7")
		require.NoError(t, err)
		deps.cache.AssertExpectations(t)
	})

	t.Run("ошибка кэша не ломает запрос", func(t *testing.T) {
		svc, deps := newTestUserService(true)
		deps.cache.On("Get", ctx, "owners-info:EMP7").Return("", errors.New("connection refused"))
		deps.cache.On("Set", ctx, "owners-info:EMP7", mock.Anything, time.Minute).Return(errors.New("connection refused"))
		deps.users.On("GetOwnersInfo", ctx, "EMP7").Return(ownerRecordFixture(), nil)

		info, err := svc.GetOwnersInfo(ctx, "EMP7")
		require.NoError(t, err)
		assert.Equal(t, "EMP7", info.Code)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("GetOwnersInfo", ctx, "NOPE").Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.GetOwnersInfo(ctx, "NOPE")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestUserService(true)

	phone := "+992900000001"
	deps.users.On("UpdateUser", ctx, uint64(7), entities.UserUpdate{Phone: &phone}).
		Return(&entities.User{ID: 7, Code: "EMP7", Phone: null.StringFrom(phone)}, nil)
	deps.cache.On("Del", ctx, []string{"owners-info:EMP7"}).Return(nil)

	res, err := svc.UpdateUser(ctx, 7, dto.UpdateUserDTO{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, *res.Phone)
	deps.cache.AssertExpectations(t)
}

func TestUserService_RenameInvalidatesSubordinates(t *testing.T) {
	ctx := context.Background()
	id, code, name := uint64(2), "MGR", "Пётр Петрович"

	t.Run("сбрасывает owner-info подчинённых", func(t *testing.T) {
		svc, deps := newTestUserService(true)
		deps.users.On("FindOneByConditions", ctx, entities.UserConditions{ID: &id}).Return(&entities.User{ID: id, Code: code}, nil)
		deps.users.On("UpdateUser", ctx, id, entities.UserUpdate{Name: &name}).Return(&entities.User{ID: id, Code: code, Name: name}, nil)
		deps.users.On("GetUserCodes", ctx, entities.UserReferenceConditions{ManagerCode: &code}).Return([]string{"EMP1", "EMP7"}, nil)
		deps.cache.On("Del", ctx, []string{"owners-info:MGR", "owners-info:EMP1", "owners-info:EMP7"}).Return(nil)

		_, err := svc.UpdateUserAssignments(ctx, id, dto.UpdateUserAssignmentsDTO{Name: &name})
		require.NoError(t, err)
		deps.cache.AssertExpectations(t)
	})

	t.Run("ошибка выборки не мешает сбросить свою запись", func(t *testing.T) {
		svc, deps := newTestUserService(true)
		deps.users.On("FindOneByConditions", ctx, entities.UserConditions{ID: &id}).Return(&entities.User{ID: id, Code: code}, nil)
		deps.users.On("UpdateUser", ctx, id, entities.UserUpdate{Name: &name}).Return(&entities.User{ID: id, Code: code, Name: name}, nil)
		deps.users.On("GetUserCodes", ctx, mock.Anything).Return(nil, errors.New("connection refused"))
		deps.cache.On("Del", ctx, []string{"owners-info:MGR"}).Return(nil)

		_, err := svc.UpdateUserAssignments(ctx, id, dto.UpdateUserAssignmentsDTO{Name: &name})
		require.NoError(t, err)
		deps.cache.AssertExpectations(t)
	})
}

func TestUserService_UpdateUserAssignments(t *testing.T) {
	ctx := context.Background()
	id := uint64(7)

	t.Run("сам себе руководитель", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("FindOneByConditions", ctx, entities.UserConditions{ID: &id}).Return(&entities.User{ID: 7, Code: "EMP7"}, nil)

		_, err := svc.UpdateUserAssignments(ctx, id, dto.UpdateUserAssignmentsDTO{ManagerCode: utils.ToPtr("EMP7")})
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("проверяет график и сохраняет", func(t *testing.T) {
		svc, deps := newTestUserService(false)
		deps.users.On("FindOneByConditions", ctx, entities.UserConditions{ID: &id}).Return(&entities.User{ID: 7, Code: "EMP7"}, nil)
		deps.worktimes.On("FindSettingByCode", ctx, "OFFICE").Return(&entities.GeneralWorktimeSetting{ID: 1, Code: "OFFICE"}, nil)
		deps.users.On("UpdateUser", ctx, id, mock.MatchedBy(func(u entities.UserUpdate) bool {
			return u.WorktimeCode != nil && *u.WorktimeCode == "OFFICE" && u.Phone == nil
		})).Return(&entities.User{ID: 7, Code: "EMP7", WorktimeCode: null.StringFrom("OFFICE")}, nil)

		res, err := svc.UpdateUserAssignments(ctx, id, dto.UpdateUserAssignmentsDTO{WorktimeCode: utils.ToPtr("OFFICE")})
		require.NoError(t, err)
		assert.Equal(t, "OFFICE", *res.WorktimeCode)
		deps.worktimes.AssertExpectations(t)
	})
}

func TestUserService_GetUserWorktime(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestUserService(false)
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	deps.users.On("GetUserWorktime", ctx, "EMP1", date).Return(&entities.UserWorktime{
		ID: 1, Code: "EMP1", Name: "x", WorktimeCode: null.StringFrom("OFFICE"),
		WorktimeStg: &entities.GeneralWorktimeSetting{ID: 2, Code: "OFFICE", Name: "Офис"},
	}, nil)

	res, err := svc.GetUserWorktime(ctx, "EMP1", date)
	require.NoError(t, err)
	require.NotNil(t, res.WorktimeStg)
	assert.Nil(t, res.WorktimeStg.Worktime)
	assert.Equal(t, "OFFICE", *res.WorktimeCode)
}
