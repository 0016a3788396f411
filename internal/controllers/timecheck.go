package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/services"
	"hr-system/pkg/api"
	"hr-system/pkg/utils"
)

type TimecheckController struct {
	timecheckService services.TimecheckServiceInterface
	logger           *zap.Logger
}

func NewTimecheckController(timecheckService services.TimecheckServiceInterface, logger *zap.Logger) *TimecheckController {
	return &TimecheckController{timecheckService: timecheckService, logger: logger}
}

func timecheckFilterFromQuery(ctx echo.Context) (entities.TimecheckFilter, error) {
	query := ctx.QueryParams()
	rng, err := utils.ParseDateRange(query)
	if err != nil {
		return entities.TimecheckFilter{}, err
	}
	return entities.TimecheckFilter{PageFilter: utils.ParsePageFilter(query), DateRange: rng}, nil
}

func timecheckConditionsFromQuery(ctx echo.Context) *entities.TimecheckConditions {
	var conditions entities.TimecheckConditions
	if code := strings.TrimSpace(ctx.QueryParam("userCode")); code != "" {
		conditions.UserCode = &code
	}
	if code := strings.TrimSpace(ctx.QueryParam("departmentCode")); code != "" {
		conditions.DepartmentCode = &code
	}
	if conditions.UserCode == nil && conditions.DepartmentCode == nil {
		return nil
	}
	return &conditions
}

func (c *TimecheckController) GetTimechecks(ctx echo.Context) error {
	filter, err := timecheckFilterFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.logger.Debug("Запрос отметок с фильтрами", zap.Any("filter", filter))

	page, err := c.timecheckService.GetTimechecks(ctx.Request().Context(), filter, timecheckConditionsFromQuery(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "Отметки успешно получены", page)
}

func (c *TimecheckController) CreateTimecheck(ctx echo.Context) error {
	var payload dto.CreateTimecheckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.timecheckService.CreateTimecheck(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Отметка успешно создана", res)
}

func (c *TimecheckController) UpdateTimecheck(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateTimecheckDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Неверное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.timecheckService.UpdateTimecheck(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Отметка успешно обновлена", res)
}

func (c *TimecheckController) DeactivateTimecheck(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.timecheckService.DeactivateTimecheck(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessEmpty(ctx, "Отметка успешно удалена")
}

var timecheckHeaders = []string{
	"№", "Код сотрудника", "Сотрудник", "Дата", "Приход", "Уход", "Опоздание (мин)", "Ранний уход (мин)",
	"Отпуск", "Часы отпуска", "Отработано (ч)", "Выходной", "Часовой пояс",
}

func yesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}

func timecheckToRow(n int, item dto.TimecheckDTO) []interface{} {
	clock := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("15:04")
	}
	return []interface{}{
		n, item.User.Code, item.User.Name, item.CheckDate, clock(item.CheckInTime), clock(item.CheckOutTime),
		item.MissCheckInMin, item.MissCheckOutMin, yesNo(item.IsLeaveBenefit), item.LeaveHour,
		item.WorkHour, yesNo(item.IsDayOff), item.Timezone,
	}
}

// buildTimecheckWorkbook раскладывает отметки по строкам листа, первая строка - заголовок.
func buildTimecheckWorkbook(items []dto.TimecheckDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Отметки"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &timecheckHeaders); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(timecheckHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return nil, err
	}

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := timecheckToRow(i+1, item)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "D", 12)
	f.SetColWidth(sheet, "G", "H", 18)
	return f, nil
}

func (c *TimecheckController) ExportTimechecks(ctx echo.Context) error {
	filter, err := timecheckFilterFromQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items, err := c.timecheckService.ExportTimechecks(ctx.Request().Context(), filter, timecheckConditionsFromQuery(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildTimecheckWorkbook(items)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("timechecks_%s.xlsx", time.Now().Format(utils.DateLayout))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
