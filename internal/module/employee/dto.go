package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplekit/portal/internal/domain"
)

// OnboardingRequest is the aggregate payload produced by the onboarding
// wizard: top-level personal info plus optional nested sections and a
// documents array. Dates travel as "2006-01-02" strings.
type OnboardingRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty,max=32"`
	DepartmentID uint   `json:"department_id" binding:"required"`
	PositionID   uint   `json:"position_id" binding:"required"`

	NextOfKin        *NextOfKinSection        `json:"next_of_kin,omitempty"`
	EmergencyContact *EmergencyContactSection `json:"emergency_contact,omitempty"`
	Contract         *ContractSection         `json:"contract,omitempty"`
	Payment          *PaymentSection          `json:"payment,omitempty"`
	Property         []PropertySection        `json:"property,omitempty" binding:"omitempty,dive"`
	Documents        []DocumentSection        `json:"documents,omitempty" binding:"omitempty,dive"`
}

// NextOfKinSection is the wizard's next-of-kin tab.
type NextOfKinSection struct {
	FullName     string `json:"full_name" binding:"required,max=200"`
	Relationship string `json:"relationship" binding:"required,oneof=spouse parent sibling child other"`
	Phone        string `json:"phone" binding:"omitempty,max=32"`
	Address      string `json:"address" binding:"omitempty,max=255"`
}

// EmergencyContactSection is the wizard's emergency-contact tab.
type EmergencyContactSection struct {
	FullName     string `json:"full_name" binding:"required,max=200"`
	Relationship string `json:"relationship" binding:"required,oneof=spouse parent sibling child other"`
	Phone        string `json:"phone" binding:"required,max=32"`
}

// ContractSection is the wizard's contract tab.
type ContractSection struct {
	Type       string          `json:"type" binding:"required,oneof=full_time part_time temporary"`
	StartDate  string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	BaseSalary decimal.Decimal `json:"base_salary" binding:"required"`
	Allowances decimal.Decimal `json:"allowances"`
}

// PaymentSection is the wizard's payment tab.
type PaymentSection struct {
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountName   string `json:"account_name" binding:"required,max=200"`
	AccountNumber string `json:"account_number" binding:"required,max=64"`
}

// PropertySection is one item of company property issued at onboarding.
type PropertySection struct {
	Name         string `json:"name" binding:"required,max=100"`
	SerialNumber string `json:"serial_number" binding:"omitempty,max=100"`
	IssuedAt     string `json:"issued_at" binding:"required,datetime=2006-01-02"`
}

// DocumentSection is one entry of the wizard's documents array.
type DocumentSection struct {
	DocumentType uint   `json:"document_type" binding:"required"`
	FileKey      string `json:"file_key" binding:"required,max=255"`
	Description  string `json:"description" binding:"omitempty,max=255"`
	ExpiryDate   string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateRequest carries changes to an employee's top-level fields and
// sections; it reuses the onboarding shape.
type UpdateRequest = OnboardingRequest

// toDomain converts the request to an Employee aggregate. Dates have
// passed binding validation, so parse errors cannot occur here.
func (r *OnboardingRequest) toDomain() *domain.Employee {
	e := &domain.Employee{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		DepartmentID: r.DepartmentID,
		PositionID:   r.PositionID,
	}

	if r.NextOfKin != nil {
		e.NextOfKin = &domain.NextOfKin{
			FullName:     r.NextOfKin.FullName,
			Relationship: r.NextOfKin.Relationship,
			Phone:        r.NextOfKin.Phone,
			Address:      r.NextOfKin.Address,
		}
	}
	if r.EmergencyContact != nil {
		e.EmergencyContact = &domain.EmergencyContact{
			FullName:     r.EmergencyContact.FullName,
			Relationship: r.EmergencyContact.Relationship,
			Phone:        r.EmergencyContact.Phone,
		}
	}
	if r.Contract != nil {
		start, _ := time.Parse(domain.DateLayout, r.Contract.StartDate)
		contract := &domain.EmploymentContract{
			Type:       r.Contract.Type,
			StartDate:  start,
			BaseSalary: r.Contract.BaseSalary,
			Allowances: r.Contract.Allowances,
		}
		if r.Contract.EndDate != "" {
			end, _ := time.Parse(domain.DateLayout, r.Contract.EndDate)
			contract.EndDate = &end
		}
		e.Contract = contract
	}
	if r.Payment != nil {
		e.Payment = &domain.PaymentProfile{
			BankName:      r.Payment.BankName,
			AccountName:   r.Payment.AccountName,
			AccountNumber: r.Payment.AccountNumber,
		}
	}
	for _, p := range r.Property {
		issued, _ := time.Parse(domain.DateLayout, p.IssuedAt)
		e.Property = append(e.Property, domain.PropertyItem{
			Name:         p.Name,
			SerialNumber: p.SerialNumber,
			IssuedAt:     issued,
		})
	}
	for _, d := range r.Documents {
		doc := domain.EmployeeDocument{
			CategoryID:  d.DocumentType,
			FileKey:     d.FileKey,
			Description: d.Description,
		}
		if d.ExpiryDate != "" {
			expiry, _ := time.Parse(domain.DateLayout, d.ExpiryDate)
			doc.ExpiryDate = &expiry
		}
		e.Documents = append(e.Documents, doc)
	}

	return e
}
