package employee

import (
	"context"
	"net/mail"
	"strings"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/metrics"
)

// employeeService implements domain.EmployeeService.
type employeeService struct {
	repo domain.EmployeeRepository
}

// NewService creates an EmployeeService with the given repository.
func NewService(repo domain.EmployeeRepository) domain.EmployeeService {
	return &employeeService{repo: repo}
}

// Onboard validates and persists a new employee record with whatever
// sections the onboarding wizard supplied. Missing sections are allowed;
// the record starts in onboarding status unless a contract is present, in
// which case the employee is active from day one.
func (s *employeeService) Onboard(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := validateEmployee(e); err != nil {
		return nil, err
	}

	if e.Status == "" {
		e.Status = domain.EmploymentOnboarding
		if e.Contract != nil {
			e.Status = domain.EmploymentActive
		}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	metrics.EmployeesOnboarded.Inc()
	return e, nil
}

// GetEmployee retrieves an employee with all sections.
func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// ListEmployees returns a paginated list of employees.
func (s *employeeService) ListEmployees(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Employee], error) {
	return s.repo.List(ctx, req)
}

// UpdateEmployee validates and persists changes to an existing employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := validateEmployee(e); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.EmploymentTerminated {
		return nil, domain.NewAppError(domain.CodeConflict, "cannot update a terminated employee", nil)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, e.ID)
}

// Terminate marks an employee as terminated. Terminating twice is a
// conflict.
func (s *employeeService) Terminate(ctx context.Context, id uint) (*domain.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status == domain.EmploymentTerminated {
		return nil, domain.NewAppError(domain.CodeConflict, "employee is already terminated", nil)
	}

	e.Status = domain.EmploymentTerminated
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEmployee removes an employee record entirely. Only terminated
// employees can be deleted; active records must be terminated first.
func (s *employeeService) DeleteEmployee(ctx context.Context, id uint) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.Status != domain.EmploymentTerminated {
		return domain.NewAppError(domain.CodeConflict, "Cannot delete: employee is not terminated", nil)
	}
	return s.repo.Delete(ctx, id)
}

// validateEmployee checks the fields the database schema cannot express.
func validateEmployee(e *domain.Employee) error {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Email = strings.TrimSpace(e.Email)

	if e.FirstName == "" {
		return domain.NewAppError(domain.CodeValidation, "first name is required", nil)
	}
	if e.LastName == "" {
		return domain.NewAppError(domain.CodeValidation, "last name is required", nil)
	}
	if e.Email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(e.Email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if e.DepartmentID == 0 {
		return domain.NewAppError(domain.CodeValidation, "department is required", nil)
	}
	if e.PositionID == 0 {
		return domain.NewAppError(domain.CodeValidation, "position is required", nil)
	}

	if e.Contract != nil {
		switch e.Contract.Type {
		case domain.ContractFullTime, domain.ContractPartTime, domain.ContractTemporary:
		default:
			return domain.NewAppError(domain.CodeValidation, "invalid contract type", nil)
		}
		if e.Contract.StartDate.IsZero() {
			return domain.NewAppError(domain.CodeValidation, "contract start date is required", nil)
		}
		if e.Contract.EndDate != nil && !e.Contract.EndDate.After(e.Contract.StartDate) {
			return domain.NewAppError(domain.CodeValidation, "contract end date must be after start date", nil)
		}
		if e.Contract.BaseSalary.IsNegative() {
			return domain.NewAppError(domain.CodeValidation, "base salary cannot be negative", nil)
		}
	}

	for i := range e.Documents {
		if e.Documents[i].CategoryID == 0 {
			return domain.NewAppError(domain.CodeValidation, "document type is required", nil)
		}
		if strings.TrimSpace(e.Documents[i].FileKey) == "" {
			return domain.NewAppError(domain.CodeValidation, "document file is required", nil)
		}
	}

	return nil
}
