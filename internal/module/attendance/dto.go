package attendance

// OffsiteRequestInput is the payload for creating an offsite request.
type OffsiteRequestInput struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Location   string `json:"location" binding:"required,max=200"`
	Reason     string `json:"reason" binding:"omitempty,max=500"`
}

// ReviewInput carries the optional note attached to an approve or reject
// decision.
type ReviewInput struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}
