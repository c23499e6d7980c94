package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports schema validation failures keyed by dotted field
// path. It blocks submission and is always recoverable by user correction;
// it is never surfaced as a panic or uncaught failure.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Wizard aggregates the nested form, the independently-managed documents
// list, and the validation schema into one submission unit.
type Wizard struct {
	Form      *Form
	Documents *DocumentList
	validate  *validator.Validate
}

// New creates a wizard with an empty form and document list.
func New() *Wizard {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Wizard{
		Form:      NewForm(),
		Documents: NewDocumentList(),
		validate:  v,
	}
}

// Payload returns the aggregate nested object: the form tree with the
// documents array merged in. Opaque file handles are excluded; only the
// serializable storage key travels with each entry.
func (w *Wizard) Payload() map[string]any {
	payload := w.Form.Values()

	entries := w.Documents.Entries()
	docs := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		doc := map[string]any{
			"document_type": e.DocumentType,
			"file_key":      e.FileKey,
			"description":   e.Description,
		}
		if e.ExpiryDate != "" {
			doc["expiry_date"] = e.ExpiryDate
		}
		docs = append(docs, doc)
	}
	if len(docs) > 0 {
		payload["documents"] = docs
	}
	return payload
}

// Materialize decodes the aggregate payload into target, which must be a
// pointer to the typed request struct carrying json and validate tags.
func (w *Wizard) Materialize(target any) error {
	raw, err := json.Marshal(w.Payload())
	if err != nil {
		return fmt.Errorf("encode form payload: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode form payload: %w", err)
	}
	return nil
}

// Submit validates the aggregate object and, on success, invokes send with
// the materialized target. Validation failures are recorded on the form —
// attributed to dotted paths so each tab can render its own — and returned
// as a *ValidationError. A send failure is returned as-is; the form state
// is retained either way so the user can retry without re-entering data.
func (w *Wizard) Submit(ctx context.Context, target any, send func(context.Context) error) error {
	if err := w.Materialize(target); err != nil {
		return err
	}

	if err := w.validate.StructCtx(ctx, target); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		w.Form.setErrors(fields)
		return &ValidationError{Fields: fields}
	}

	w.Form.setErrors(nil)
	return send(ctx)
}

// fieldPath converts a validator namespace such as
// "OnboardingRequest.contract.start_date" into the dotted path owned by a
// wizard tab, dropping the root struct segment.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
