package payroll

// PeriodInput is the payload for creating a payroll period.
type PeriodInput struct {
	Year  int `json:"year" binding:"required,gte=2000,lte=2100"`
	Month int `json:"month" binding:"required,gte=1,lte=12"`
}
