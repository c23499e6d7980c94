package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simp-lee/pagination"
)

// Employment statuses.
const (
	EmploymentOnboarding = "onboarding"
	EmploymentActive     = "active"
	EmploymentTerminated = "terminated"
)

// Contract types.
const (
	ContractFullTime  = "full_time"
	ContractPartTime  = "part_time"
	ContractTemporary = "temporary"
)

// Employee is the central HR record. The optional one-to-one sections and
// the documents slice mirror the onboarding wizard's nested payload: each
// section can be absent, and documents are managed as an independent list.
type Employee struct {
	BaseModel
	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:32" json:"phone"`
	Status       string `gorm:"size:32;not null;default:onboarding" json:"status"`
	DepartmentID uint   `gorm:"index;not null" json:"department_id"`
	PositionID   uint   `gorm:"index;not null" json:"position_id"`
	UserID       *uint  `gorm:"index" json:"user_id,omitempty"`

	NextOfKin        *NextOfKin          `gorm:"foreignKey:EmployeeID" json:"next_of_kin,omitempty"`
	EmergencyContact *EmergencyContact   `gorm:"foreignKey:EmployeeID" json:"emergency_contact,omitempty"`
	Contract         *EmploymentContract `gorm:"foreignKey:EmployeeID" json:"contract,omitempty"`
	Payment          *PaymentProfile     `gorm:"foreignKey:EmployeeID" json:"payment,omitempty"`
	Property         []PropertyItem      `gorm:"foreignKey:EmployeeID" json:"property,omitempty"`
	Documents        []EmployeeDocument  `gorm:"foreignKey:EmployeeID" json:"documents,omitempty"`
}

// FullName returns "First Last" for display surfaces such as payslip export.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// NextOfKin is the employee's next-of-kin section.
type NextOfKin struct {
	BaseModel
	EmployeeID   uint   `gorm:"uniqueIndex;not null" json:"-"`
	FullName     string `gorm:"size:200;not null" json:"full_name"`
	Relationship string `gorm:"size:32;not null" json:"relationship"`
	Phone        string `gorm:"size:32" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
}

// EmergencyContact is the employee's emergency-contact section.
type EmergencyContact struct {
	BaseModel
	EmployeeID   uint   `gorm:"uniqueIndex;not null" json:"-"`
	FullName     string `gorm:"size:200;not null" json:"full_name"`
	Relationship string `gorm:"size:32;not null" json:"relationship"`
	Phone        string `gorm:"size:32;not null" json:"phone"`
}

// EmploymentContract holds the terms payroll processing computes from.
type EmploymentContract struct {
	BaseModel
	EmployeeID uint            `gorm:"uniqueIndex;not null" json:"-"`
	Type       string          `gorm:"size:32;not null" json:"type"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	BaseSalary decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_salary"`
	Allowances decimal.Decimal `gorm:"type:decimal(12,2)" json:"allowances"`
}

// PaymentProfile is the employee's salary payment destination.
type PaymentProfile struct {
	BaseModel
	EmployeeID    uint   `gorm:"uniqueIndex;not null" json:"-"`
	BankName      string `gorm:"size:100;not null" json:"bank_name"`
	AccountName   string `gorm:"size:200;not null" json:"account_name"`
	AccountNumber string `gorm:"size:64;not null" json:"account_number"`
}

// PropertyItem records company property issued to an employee.
type PropertyItem struct {
	BaseModel
	EmployeeID   uint       `gorm:"index;not null" json:"-"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	SerialNumber string     `gorm:"size:100" json:"serial_number"`
	IssuedAt     time.Time  `gorm:"not null" json:"issued_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
}

// EmployeeDocument is one entry of the onboarding documents array. FileKey
// is an opaque storage handle; the file body never passes through this
// service's domain layer.
type EmployeeDocument struct {
	BaseModel
	EmployeeID uint       `gorm:"index;not null" json:"-"`
	CategoryID uint       `gorm:"index;not null" json:"document_type"`
	FileKey    string     `gorm:"size:255;not null" json:"file_key"`
	Description string    `gorm:"size:255" json:"description"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// EmployeeRepository defines the data access interface for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	List(ctx context.Context, req PageRequest) (*pagination.Pagination[Employee], error)
	ListActiveWithContracts(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint) error
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
	CountByPosition(ctx context.Context, positionID uint) (int64, error)
	CountDocumentsByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// EmployeeService defines the business logic interface for employees.
type EmployeeService interface {
	Onboard(ctx context.Context, e *Employee) (*Employee, error)
	GetEmployee(ctx context.Context, id uint) (*Employee, error)
	ListEmployees(ctx context.Context, req PageRequest) (*pagination.Pagination[Employee], error)
	UpdateEmployee(ctx context.Context, e *Employee) (*Employee, error)
	Terminate(ctx context.Context, id uint) (*Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
}
