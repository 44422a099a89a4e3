package dto

// PeriodBreakdown totales de un subperiodo (día dentro de un mes, mes dentro de un año).
type PeriodBreakdown struct {
	Period    string `json:"period"` // YYYY-MM-DD o YYYY-MM
	Income    int64  `json:"income"`
	Expense   int64  `json:"expense"`
	Net       int64  `json:"net"`
	Purchases int64  `json:"purchases"`
	Salaries  int64  `json:"salaries"`
	Utilities int64  `json:"utilities"`
}

// MonthlyStatsResponse totales financieros de un mes con desglose diario.
type MonthlyStatsResponse struct {
	Month          string            `json:"month"`
	IncomeTotal    int64             `json:"income_total"`
	ExpenseTotal   int64             `json:"expense_total"`
	Net            int64             `json:"net"`
	PurchasesTotal int64             `json:"purchases_total"`
	SalaryTotal    int64             `json:"salary_total"`
	UtilityTotal   int64             `json:"utility_total"`
	DailyBreakdown []PeriodBreakdown `json:"daily_breakdown"`
}

// YearlyStatsResponse totales financieros de un año con desglose mensual.
type YearlyStatsResponse struct {
	Year             int               `json:"year"`
	IncomeTotal      int64             `json:"income_total"`
	ExpenseTotal     int64             `json:"expense_total"`
	Net              int64             `json:"net"`
	PurchasesTotal   int64             `json:"purchases_total"`
	SalaryTotal      int64             `json:"salary_total"`
	UtilityTotal     int64             `json:"utility_total"`
	MonthlyBreakdown []PeriodBreakdown `json:"monthly_breakdown"`
}

// ShortageResponse insumos actualmente por debajo de su stock mínimo.
type ShortageResponse struct {
	Total int                   `json:"total"`
	Data  []ItemBalanceResponse `json:"data"`
}
