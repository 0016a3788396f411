package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
	"hr-system/pkg/utils"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func setupUserController() (*echo.Echo, *MockUserService, *MockTimecheckService) {
	e := newTestEcho()
	users, timechecks := &MockUserService{}, &MockTimecheckService{}
	ctrl := NewUserController(users, timechecks, zap.NewNop())

	e.GET("/users", ctrl.GetUsers)
	e.POST("/users/sign-up", ctrl.SignUp)
	e.GET("/users/find", ctrl.FindOneByConditions)
	e.PUT("/users/:id", ctrl.UpdateUser)
	e.GET("/users/:code/owner-info", ctrl.GetOwnersInfo)
	e.GET("/users/:code/worktime", ctrl.GetUserWorktime)
	e.GET("/users/:code/timechecks", ctrl.GetUserTimechecks)
	return e, users, timechecks
}

func TestUserController_GetUsers(t *testing.T) {
	e, users, _ := setupUserController()
	email := "a@x.com"
	filter := entities.UserFilter{PageFilter: types.PageFilter{Page: 1, Limit: 10}, Email: &email}

	users.On("GetUsers", mock.Anything, filter).Return(
		types.NewPage([]dto.UserListItemDTO{{ID: 1, Code: "EMP1", Email: email, Roles: []dto.UserRoleDTO{}}}, 1, filter.PageFilter),
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/users?page=1&limit=10&email=a@x.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)

	var page types.Page[dto.UserListItemDTO]
	require.NoError(t, json.Unmarshal(env.Body, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.LessOrEqual(t, page.Pagination.ItemCount, 1)
	users.AssertExpectations(t)
}

func TestUserController_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockUserService)
		wantStatus int
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"Иван","email":"ivan@x.com","password":"secret1","phone":"+992900000000"}`,
			setup: func(m *MockUserService) {
				m.On("SignUp", mock.Anything, mock.MatchedBy(func(p dto.SignUpDTO) bool { return p.Email == "ivan@x.com" })).
					Return(&dto.UserDTO{ID: 1, Code: "EMP1", Email: "ivan@x.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "неверный email",
			body:       `{"name":"Иван","email":"not-an-email","password":"secret1"}`,
			setup:      func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "неверный телефон",
			body:       `{"name":"Иван","email":"ivan@x.com","password":"secret1","phone":"12"}`,
			setup:      func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "дубликат",
			body: `{"name":"Иван","email":"ivan@x.com","password":"secret1"}`,
			setup: func(m *MockUserService) {
				m.On("SignUp", mock.Anything, mock.Anything).
					Return(nil, apperrors.NewHttpError(http.StatusConflict, "Пользователь с такими данными уже существует", apperrors.ErrConflict, nil))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "битый JSON",
			body:       `{"name":`,
			setup:      func(*MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, users, _ := setupUserController()
			tt.setup(users)

			req := httptest.NewRequest(http.MethodPost, "/users/sign-up", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "secret1")
		})
	}
}

func TestUserController_FindOneByConditions(t *testing.T) {
	t.Run("без условий", func(t *testing.T) {
		e, users, _ := setupUserController()
		users.On("FindOneByConditions", mock.Anything, entities.UserConditions{}).Return(nil, apperrors.ErrEmptyConditions)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/find", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("неверный id", func(t *testing.T) {
		e, users, _ := setupUserController()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/find?id=abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		users.AssertNotCalled(t, "FindOneByConditions", mock.Anything, mock.Anything)
	})

	t.Run("по email", func(t *testing.T) {
		e, users, _ := setupUserController()
		email := "a@x.com"
		users.On("FindOneByConditions", mock.Anything, entities.UserConditions{Email: &email}).
			Return(&dto.UserDTO{ID: 3, Email: email}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/find?email=a@x.com", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestUserController_UpdateUser_BadID(t *testing.T) {
	e, _, _ := setupUserController()

	req := httptest.NewRequest(http.MethodPut, "/users/abc", strings.NewReader(`{"phone":"+992900000000"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserController_GetOwnersInfo(t *testing.T) {
	e, users, _ := setupUserController()
	users.On("GetOwnersInfo", mock.Anything, "EMP1").Return(&dto.OwnersInfoDTO{ID: 1, Code: "EMP1", Worktimes: []dto.WorktimeDTO{}}, nil)
	users.On("GetOwnersInfo", mock.Anything, "NOPE").Return(nil, apperrors.ErrUserNotFound)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/EMP1/owner-info", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department":null`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/NOPE/owner-info", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserController_GetUserWorktime(t *testing.T) {
	e, users, _ := setupUserController()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	users.On("GetUserWorktime", mock.Anything, "EMP1", date).Return(&dto.UserWorktimeDTO{ID: 1, Code: "EMP1"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/EMP1/worktime?checkDate=2024-01-03", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/EMP1/worktime", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/EMP1/worktime?checkDate=03.01.2024", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserController_GetUserTimechecks(t *testing.T) {
	e, _, timechecks := setupUserController()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	code := "EMP1"
	filter := entities.TimecheckFilter{
		PageFilter: utils.ParsePageFilter(map[string][]string{"page": {"2"}, "limit": {"5"}}),
		DateRange:  types.DateRange{StartDate: &start, EndDate: &end},
	}

	timechecks.On("GetTimechecks", mock.Anything, filter, &entities.TimecheckConditions{UserCode: &code}).
		Return(types.NewPage([]dto.TimecheckDTO{}, 31, filter.PageFilter), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/EMP1/timechecks?page=2&limit=5&startDate=2024-01-01&endDate=2024-01-31", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	timechecks.AssertExpectations(t)
}
