package domain

// Feature codes gated by the permission checker.
const (
	FeatureEmployees  = "employees"
	FeatureAttendance = "attendance"
	FeatureLeave      = "leave"
	FeaturePayroll    = "payroll"
	FeatureCalendar   = "calendar"
	FeatureSettings   = "settings"
)

// PermissionChecker is the capability screens and middleware depend on
// instead of reaching into global session state. CanView gates access to a
// feature's own records; CanViewAll additionally grants visibility across
// all employees' records (approver/administrator surfaces).
type PermissionChecker interface {
	CanView(role, feature string) bool
	CanViewAll(role, feature string) bool
}
