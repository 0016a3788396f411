package seeders

type refSeed struct {
	Code string
	Name string
}

type leaveBenefitSeed struct {
	Code        string
	Name        string
	DaysPerYear int
}

type worktimeDaySeed struct {
	DayOfWeek  int
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string
	WorkHour   float64
	IsDayOff   bool
}

var rolesData = []refSeed{
	{Code: "ADMIN", Name: "Администратор"},
	{Code: "HR", Name: "Отдел кадров"},
	{Code: "MANAGER", Name: "Руководитель"},
	{Code: "EMPLOYEE", Name: "Сотрудник"},
}

var departmentsData = []refSeed{
	{Code: "HQ", Name: "Головной офис"},
	{Code: "HR", Name: "Отдел кадров"},
	{Code: "IT", Name: "Отдел информационных технологий"},
	{Code: "FIN", Name: "Финансовый отдел"},
}

var leaveBenefitsData = []leaveBenefitSeed{
	{Code: "STANDARD", Name: "Ежегодный оплачиваемый отпуск", DaysPerYear: 24},
	{Code: "EXTENDED", Name: "Удлинённый отпуск", DaysPerYear: 30},
}

var (
	lunchStart = "13:00"
	lunchEnd   = "14:00"
)

// officeWeek - пятидневка 09:00-18:00 с часовым обедом, выходные суббота и воскресенье.
var officeWeek = func() []worktimeDaySeed {
	days := make([]worktimeDaySeed, 0, 7)
	for d := 0; d <= 6; d++ {
		if d == 0 || d == 6 {
			days = append(days, worktimeDaySeed{DayOfWeek: d, StartTime: "00:00", EndTime: "00:00", IsDayOff: true})
			continue
		}
		days = append(days, worktimeDaySeed{
			DayOfWeek: d, StartTime: "09:00", EndTime: "18:00",
			BreakStart: &lunchStart, BreakEnd: &lunchEnd, WorkHour: 8,
		})
	}
	return days
}()

const (
	officeWorktimeCode = "OFFICE"
	officeWorktimeName = "Офисный график 5/2"
)

const (
	adminCode  = "ADMIN0001"
	adminName  = "Администратор системы"
	adminEmail = "admin@hr-system.local"
)
