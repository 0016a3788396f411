package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

const (
	userTable     = "users"
	userRoleTable = "user_roles"

	userFields        = "id, code, name, email, phone, password, department, manager_code, worktime_code, leave_benefit_code, is_active, created_at, updated_at"
	userAliasedFields = "u.id, u.code, u.name, u.email, u.phone, u.password, u.department, u.manager_code, u.worktime_code, u.leave_benefit_code, u.is_active, u.created_at, u.updated_at"

	timecheckRowFields = "u.id, u.code, u.name, " +
		"t.id, t.user_code, t.check_date, t.check_in_time, t.check_out_time, t.miss_check_in_min, t.miss_check_out_min, " +
		"t.miss_check_in, t.miss_check_out, t.is_leave_benefit, t.leave_hour, t.work_hour, t.timezone, t.is_day_off"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter entities.UserFilter) ([]entities.UserWithRoles, uint64, error)
	SignUp(ctx context.Context, user entities.User) (*entities.User, error)
	FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, update entities.UserUpdate) (*entities.User, error)
	FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error)
	GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]entities.TimecheckRow, uint64, error)
	GetUserWorktime(ctx context.Context, userCode string, checkDate time.Time) (*entities.UserWorktime, error)
	GetOwnersInfo(ctx context.Context, code string) (*entities.OwnerRecord, error)
	GetUserCodes(ctx context.Context, conditions entities.UserReferenceConditions) ([]string, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Code, &u.Name, &u.Email, &u.Phone, &u.Password,
		&u.Department, &u.ManagerCode, &u.WorktimeCode, &u.LeaveBenefitCode,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}
	return &u, nil
}

func conditionsToEq(alias string, c entities.UserConditions) sq.Eq {
	eq := sq.Eq{}
	if c.ID != nil {
		eq[alias+".id"] = *c.ID
	}
	if c.Code != nil {
		eq[alias+".code"] = *c.Code
	}
	if c.Email != nil {
		eq[alias+".email"] = *c.Email
	}
	return eq
}

func (r *UserRepository) GetUsers(ctx context.Context, filter entities.UserFilter) ([]entities.UserWithRoles, uint64, error) {
	where := sq.Eq{}
	if filter.Email != nil {
		where["u.email"] = *filter.Email
	}

	countBuilder := psql.Select("COUNT(*)").From(userTable + " AS u")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	total, err := countRows(ctx, r.storage, countBuilder)
	if err != nil || total == 0 {
		return []entities.UserWithRoles{}, total, err
	}

	listBuilder := psql.Select("u.id", "u.code", "u.email", "u.phone", "u.created_at", "u.updated_at").
		From(userTable + " AS u").
		OrderBy("u.id ASC")
	if len(where) > 0 {
		listBuilder = listBuilder.Where(where)
	}
	listBuilder = paginate(listBuilder, filter.Limit, filter.Offset, filter.GetAll)

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.UserWithRoles, 0)
	codes := make([]string, 0)
	for rows.Next() {
		var u entities.UserWithRoles
		if err := rows.Scan(&u.ID, &u.Code, &u.Email, &u.Phone, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования user: %w", err)
		}
		users = append(users, u)
		codes = append(codes, u.Code)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	rolesByUser, err := r.getRolesByUserCodes(ctx, codes)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].Roles = rolesByUser[users[i].Code]
		if users[i].Roles == nil {
			users[i].Roles = []entities.UserRole{}
		}
	}
	return users, total, nil
}

// getRolesByUserCodes: user_roles -> roles по role_code = code.
func (r *UserRepository) getRolesByUserCodes(ctx context.Context, codes []string) (map[string][]entities.UserRole, error) {
	result := make(map[string][]entities.UserRole)
	if len(codes) == 0 {
		return result, nil
	}

	query, args, err := psql.Select("ur.id", "ur.user_code", "ur.role_code", "ri.id", "ri.name").
		From(userRoleTable + " AS ur").
		LeftJoin(roleTable + " AS ri ON ur.role_code = ri.code").
		Where(sq.Eq{"ur.user_code": codes}).
		OrderBy("ur.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ur       entities.UserRole
			roleID   *uint64
			roleName *string
		)
		if err := rows.Scan(&ur.ID, &ur.UserCode, &ur.RoleCode, &roleID, &roleName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования user_role: %w", err)
		}
		if roleID != nil {
			ur.RoleInfo = &entities.Role{ID: *roleID, Code: ur.RoleCode, Name: utils.SafeDeref(roleName)}
		}
		result[ur.UserCode] = append(result[ur.UserCode], ur)
	}
	return result, rows.Err()
}

// SignUp хеширует пароль и сохраняет пользователя.
func (r *UserRepository) SignUp(ctx context.Context, user entities.User) (*entities.User, error) {
	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(userTable).
		Columns("code", "name", "email", "phone", "password", "department", "manager_code", "worktime_code", "leave_benefit_code").
		Values(user.Code, user.Name, user.Email, user.Phone, hashed, user.Department, user.ManagerCode, user.WorktimeCode, user.LeaveBenefitCode).
		Suffix("RETURNING " + userFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError(err, "Пользователь")
	}
	return created, nil
}

func (r *UserRepository) FindOneByConditions(ctx context.Context, conditions entities.UserConditions) (*entities.User, error) {
	if conditions.IsEmpty() {
		return nil, apperrors.ErrEmptyConditions
	}
	query, args, err := psql.Select(userAliasedFields).
		From(userTable + " AS u").
		Where(conditionsToEq("u", conditions)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, update entities.UserUpdate) (*entities.User, error) {
	if update.IsEmpty() {
		return r.FindOneByConditions(ctx, entities.UserConditions{ID: &id})
	}

	builder := sq.Update(userTable).
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", nullableString(*update.Phone))
	}
	if update.Department != nil {
		builder = builder.Set("department", nullableString(*update.Department))
	}
	if update.ManagerCode != nil {
		builder = builder.Set("manager_code", nullableString(*update.ManagerCode))
	}
	if update.WorktimeCode != nil {
		builder = builder.Set("worktime_code", nullableString(*update.WorktimeCode))
	}
	if update.LeaveBenefitCode != nil {
		builder = builder.Set("leave_benefit_code", nullableString(*update.LeaveBenefitCode))
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	query, args, err := builder.Suffix("RETURNING " + userFields).ToSql()
	if err != nil {
		return nil, err
	}
	updated, err := scanUser(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError(err, "Пользователь")
	}
	return updated, nil
}

// nullableString: пустая строка в запросе на обновление означает "очистить поле".
func nullableString(s string) null.String {
	return null.NewString(s, s != "")
}

func (r *UserRepository) FindOneWithRoles(ctx context.Context, conditions entities.UserConditions) (*dto.UserWithRolesDTO, error) {
	if conditions.IsEmpty() {
		return nil, apperrors.ErrEmptyConditions
	}
	query, args, err := psql.Select("u.id", "u.code", "u.department", "u.manager_code", "u.name", "roles.role_code").
		From(userTable + " AS u").
		LeftJoin(userRoleTable + " AS roles ON u.code = roles.user_code").
		Where(conditionsToEq("u", conditions)).
		OrderBy("roles.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result *dto.UserWithRolesDTO
	for rows.Next() {
		var (
			id          uint64
			code, name  string
			department  null.String
			managerCode null.String
			roleCode    *string
		)
		if err := rows.Scan(&id, &code, &department, &managerCode, &name, &roleCode); err != nil {
			return nil, fmt.Errorf("ошибка сканирования user с ролями: %w", err)
		}
		if result == nil {
			result = &dto.UserWithRolesDTO{
				ID:          id,
				Code:        code,
				Department:  department.Ptr(),
				ManagerCode: managerCode.Ptr(),
				Name:        name,
				Roles:       []string{},
			}
		}
		// по email/коду попадает один пользователь, строки отличаются только ролью
		if id == result.ID && roleCode != nil {
			result.Roles = append(result.Roles, *roleCode)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperrors.ErrNotFound
	}
	return result, nil
}

func timecheckWhere(filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) sq.And {
	where := sq.And{sq.Eq{"u.is_active": true, "t.is_active": true}}
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"t.check_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"t.check_date": *filter.EndDate})
	}
	if conditions != nil {
		if conditions.UserCode != nil {
			where = append(where, sq.Eq{"u.code": *conditions.UserCode})
		}
		if conditions.DepartmentCode != nil {
			where = append(where, sq.Eq{"u.department": *conditions.DepartmentCode})
		}
	}
	return where
}

// GetTimechecks возвращает отметки активных пользователей по возрастанию даты.
func (r *UserRepository) GetTimechecks(ctx context.Context, filter entities.TimecheckFilter, conditions *entities.TimecheckConditions) ([]entities.TimecheckRow, uint64, error) {
	where := timecheckWhere(filter, conditions)

	total, err := countRows(ctx, r.storage, psql.Select("COUNT(*)").
		From(timecheckTable+" AS t").
		Join(userTable+" AS u ON u.code = t.user_code").
		Where(where))
	if err != nil || total == 0 {
		return []entities.TimecheckRow{}, total, err
	}

	builder := psql.Select(timecheckRowFields).
		From(timecheckTable + " AS t").
		Join(userTable + " AS u ON u.code = t.user_code").
		Where(where).
		OrderBy("t.check_date ASC", "t.id ASC")
	builder = paginate(builder, filter.Limit, filter.Offset, filter.GetAll)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.TimecheckRow, 0)
	for rows.Next() {
		var row entities.TimecheckRow
		t := &row.Timecheck
		if err := rows.Scan(
			&row.User.ID, &row.User.Code, &row.User.Name,
			&t.ID, &t.UserCode, &t.CheckDate, &t.CheckInTime, &t.CheckOutTime, &t.MissCheckInMin, &t.MissCheckOutMin,
			&t.MissCheckIn, &t.MissCheckOut, &t.IsLeaveBenefit, &t.LeaveHour, &t.WorkHour, &t.Timezone, &t.IsDayOff,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования timecheck: %w", err)
		}
		t.IsActive = true
		items = append(items, row)
	}
	return items, total, rows.Err()
}

// GetUserWorktime подтягивает настройку графика пользователя и строку графика
// на день недели checkDate (по UTC).
func (r *UserRepository) GetUserWorktime(ctx context.Context, userCode string, checkDate time.Time) (*entities.UserWorktime, error) {
	dayOfWeek := int(checkDate.UTC().Weekday())

	query, args, err := psql.Select(
		"u.id", "u.code", "u.name", "u.worktime_code",
		"s.id", "s.code", "s.name",
		"w.id", "w.worktime_code", "w.day_of_week", "w.start_time", "w.end_time",
		"w.break_start", "w.break_end", "w.work_hour", "w.is_day_off",
	).
		From(userTable+" AS u").
		LeftJoin(worktimeSettingTable+" AS s ON u.worktime_code = s.code").
		LeftJoin(worktimeTable+" AS w ON s.code = w.worktime_code AND w.day_of_week = ?", dayOfWeek).
		Where(sq.Eq{"u.code": userCode}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		res                    entities.UserWorktime
		stgID                  *uint64
		stgCode, stgName       *string
		wID                    *uint64
		wCode, wStart, wEnd    *string
		wDay                   *int
		wBreakStart, wBreakEnd null.String
		wHour                  *float64
		wDayOff                *bool
	)
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.Code, &res.Name, &res.WorktimeCode,
		&stgID, &stgCode, &stgName,
		&wID, &wCode, &wDay, &wStart, &wEnd, &wBreakStart, &wBreakEnd, &wHour, &wDayOff,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения графика пользователя: %w", err)
	}

	if stgID != nil {
		res.WorktimeStg = &entities.GeneralWorktimeSetting{
			ID:   *stgID,
			Code: utils.SafeDeref(stgCode),
			Name: utils.SafeDeref(stgName),
		}
		if wID != nil {
			res.WorktimeStg.Worktime = &entities.GeneralWorktime{
				ID:           *wID,
				WorktimeCode: utils.SafeDeref(wCode),
				DayOfWeek:    utils.SafeDeref(wDay),
				StartTime:    utils.SafeDeref(wStart),
				EndTime:      utils.SafeDeref(wEnd),
				BreakStart:   wBreakStart,
				BreakEnd:     wBreakEnd,
				WorkHour:     utils.SafeDeref(wHour),
				IsDayOff:     utils.SafeDeref(wDayOff),
			}
		}
	}
	return &res, nil
}

// GetUserCodes возвращает коды пользователей отдела или подчинённых руководителя.
func (r *UserRepository) GetUserCodes(ctx context.Context, conditions entities.UserReferenceConditions) ([]string, error) {
	where := sq.Eq{}
	if conditions.Department != nil {
		where["department"] = *conditions.Department
	}
	if conditions.ManagerCode != nil {
		where["manager_code"] = *conditions.ManagerCode
	}
	if len(where) == 0 {
		return nil, apperrors.ErrEmptyConditions
	}

	query, args, err := psql.Select("code").From(userTable).Where(where).OrderBy("code").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки кодов пользователей: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// GetOwnersInfo возвращает пользователя со связанными сущностями как есть,
// включая пароль. Урезание полей делает сервис.
func (r *UserRepository) GetOwnersInfo(ctx context.Context, code string) (*entities.OwnerRecord, error) {
	query, args, err := psql.Select(
		userAliasedFields,
		"department.id", "department.code", "department.name",
		"manager.id", "manager.code", "manager.name",
		"lb.id", "lb.code", "lb.name",
	).
		From(userTable + " AS u").
		LeftJoin(departmentTable + " AS department ON u.department = department.code").
		LeftJoin(userTable + " AS manager ON u.manager_code = manager.code").
		LeftJoin(leaveBenefitTable + " AS lb ON u.leave_benefit_code = lb.code").
		Where(sq.Eq{"u.code": code}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		rec                entities.OwnerRecord
		depID, mgrID, lbID *uint64
		depCode, depName   *string
		mgrCode, mgrName   *string
		lbCode, lbName     *string
	)
	u := &rec.User
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Code, &u.Name, &u.Email, &u.Phone, &u.Password,
		&u.Department, &u.ManagerCode, &u.WorktimeCode, &u.LeaveBenefitCode,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&depID, &depCode, &depName,
		&mgrID, &mgrCode, &mgrName,
		&lbID, &lbCode, &lbName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения данных владельца: %w", err)
	}

	if depID != nil {
		rec.DepartmentInfo = &entities.Department{ID: *depID, Code: utils.SafeDeref(depCode), Name: utils.SafeDeref(depName)}
	}
	if mgrID != nil {
		rec.Manager = &entities.User{ID: *mgrID, Code: utils.SafeDeref(mgrCode), Name: utils.SafeDeref(mgrName)}
	}
	if lbID != nil {
		rec.LeaveBenefit = &entities.LeaveBenefit{ID: *lbID, Code: utils.SafeDeref(lbCode), Name: utils.SafeDeref(lbName)}
	}

	rec.Worktimes = []entities.GeneralWorktime{}
	if u.WorktimeCode.Valid {
		rec.Worktimes, err = findWorktimesByCode(ctx, r.storage, u.WorktimeCode.String)
		if err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
