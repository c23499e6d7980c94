package leave

// LeaveTypeInput is the payload for creating or updating a leave category.
type LeaveTypeInput struct {
	Name    string `json:"name" binding:"required,max=100"`
	MaxDays int    `json:"max_days" binding:"required,gte=1"`
	Paid    bool   `json:"paid"`
}

// LeaveRequestInput is the payload for applying for leave.
type LeaveRequestInput struct {
	EmployeeID  uint   `json:"employee_id" binding:"required"`
	LeaveTypeID uint   `json:"leave_type_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" binding:"omitempty,max=500"`
}

// ReviewInput carries the optional note attached to an approve or reject
// decision.
type ReviewInput struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}
