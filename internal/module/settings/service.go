package settings

import (
	"context"
	"strings"

	"github.com/simp-lee/pagination"

	"github.com/peoplekit/portal/internal/domain"
)

// settingsService implements domain.SettingsService. Deletion protection
// consults the employee repository: reference data used by any employee
// record cannot be removed.
type settingsService struct {
	repo      domain.SettingsRepository
	employees domain.EmployeeRepository
}

// NewService creates a SettingsService with the given repositories.
func NewService(repo domain.SettingsRepository, employees domain.EmployeeRepository) domain.SettingsService {
	return &settingsService{repo: repo, employees: employees}
}

var errInUse = domain.NewAppError(domain.CodeConflict, "Cannot delete: in use", nil)

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	return name, nil
}

func (s *settingsService) CreateDepartment(ctx context.Context, name string) (*domain.Department, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	d := &domain.Department{Name: name}
	if err := s.repo.CreateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *settingsService) ListDepartments(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Department], error) {
	return s.repo.ListDepartments(ctx, req)
}

func (s *settingsService) UpdateDepartment(ctx context.Context, id uint, name string) (*domain.Department, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	d, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Name = name
	if err := s.repo.UpdateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *settingsService) DeleteDepartment(ctx context.Context, id uint) error {
	if _, err := s.repo.GetDepartment(ctx, id); err != nil {
		return err
	}

	count, err := s.employees.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errInUse
	}

	return s.repo.DeleteDepartment(ctx, id)
}

func (s *settingsService) CreatePosition(ctx context.Context, name string, departmentID *uint) (*domain.Position, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if departmentID != nil {
		if _, err := s.repo.GetDepartment(ctx, *departmentID); err != nil {
			return nil, err
		}
	}

	p := &domain.Position{Name: name, DepartmentID: departmentID}
	if err := s.repo.CreatePosition(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *settingsService) ListPositions(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.Position], error) {
	return s.repo.ListPositions(ctx, req)
}

func (s *settingsService) UpdatePosition(ctx context.Context, id uint, name string, departmentID *uint) (*domain.Position, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if departmentID != nil {
		if _, err := s.repo.GetDepartment(ctx, *departmentID); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.GetPosition(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.DepartmentID = departmentID
	if err := s.repo.UpdatePosition(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *settingsService) DeletePosition(ctx context.Context, id uint) error {
	if _, err := s.repo.GetPosition(ctx, id); err != nil {
		return err
	}

	count, err := s.employees.CountByPosition(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errInUse
	}

	return s.repo.DeletePosition(ctx, id)
}

func (s *settingsService) CreateDocumentCategory(ctx context.Context, name string, requiresExpiry bool) (*domain.DocumentCategory, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	c := &domain.DocumentCategory{Name: name, RequiresExpiry: requiresExpiry}
	if err := s.repo.CreateDocumentCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *settingsService) ListDocumentCategories(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.DocumentCategory], error) {
	return s.repo.ListDocumentCategories(ctx, req)
}

func (s *settingsService) UpdateDocumentCategory(ctx context.Context, id uint, name string, requiresExpiry bool) (*domain.DocumentCategory, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetDocumentCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.RequiresExpiry = requiresExpiry
	if err := s.repo.UpdateDocumentCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *settingsService) DeleteDocumentCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.GetDocumentCategory(ctx, id); err != nil {
		return err
	}

	count, err := s.employees.CountDocumentsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errInUse
	}

	return s.repo.DeleteDocumentCategory(ctx, id)
}

func (s *settingsService) CreateBreakPolicy(ctx context.Context, name string, durationMinutes int, paid bool) (*domain.BreakPolicy, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "duration must be positive", nil)
	}

	b := &domain.BreakPolicy{Name: name, DurationMinutes: durationMinutes, Paid: paid}
	if err := s.repo.CreateBreakPolicy(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *settingsService) ListBreakPolicies(ctx context.Context, req domain.PageRequest) (*pagination.Pagination[domain.BreakPolicy], error) {
	return s.repo.ListBreakPolicies(ctx, req)
}

func (s *settingsService) UpdateBreakPolicy(ctx context.Context, id uint, name string, durationMinutes int, paid bool) (*domain.BreakPolicy, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "duration must be positive", nil)
	}

	b, err := s.repo.GetBreakPolicy(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	b.DurationMinutes = durationMinutes
	b.Paid = paid
	if err := s.repo.UpdateBreakPolicy(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *settingsService) DeleteBreakPolicy(ctx context.Context, id uint) error {
	if _, err := s.repo.GetBreakPolicy(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBreakPolicy(ctx, id)
}
