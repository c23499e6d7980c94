package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peoplekit/portal/internal/client"
	"github.com/peoplekit/portal/internal/wizard"
)

// onboardingForm mirrors the server's onboarding payload with client-side
// validation tags, so bad input is caught and attributed to fields before
// any request is made.
type onboardingForm struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	DepartmentID uint   `json:"department_id" validate:"required"`
	PositionID   uint   `json:"position_id" validate:"required"`

	NextOfKin *struct {
		FullName     string `json:"full_name" validate:"required,max=200"`
		Relationship string `json:"relationship" validate:"required,oneof=spouse parent sibling child other"`
		Phone        string `json:"phone" validate:"omitempty,max=32"`
	} `json:"next_of_kin,omitempty"`

	Contract *struct {
		Type       string `json:"type" validate:"required,oneof=full_time part_time temporary"`
		StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
		EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
		BaseSalary string `json:"base_salary" validate:"required"`
		Allowances string `json:"allowances" validate:"omitempty"`
	} `json:"contract,omitempty"`

	Payment *struct {
		BankName      string `json:"bank_name" validate:"required,max=100"`
		AccountName   string `json:"account_name" validate:"required,max=200"`
		AccountNumber string `json:"account_number" validate:"required,max=64"`
	} `json:"payment,omitempty"`

	Documents []struct {
		DocumentType uint   `json:"document_type" validate:"required"`
		FileKey      string `json:"file_key" validate:"required,max=255"`
		Description  string `json:"description" validate:"omitempty,max=255"`
		ExpiryDate   string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	} `json:"documents,omitempty" validate:"omitempty,dive"`
}

// docFlags collects repeated -document flags. Each value is a comma list of
// key=value pairs: type, key, desc, expires.
type docFlags []wizard.DocumentEntry

func (d *docFlags) String() string { return fmt.Sprintf("%d document(s)", len(*d)) }

func (d *docFlags) Set(value string) error {
	var entry wizard.DocumentEntry
	for _, pair := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("document field %q is not key=value", pair)
		}
		switch k {
		case "type":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("document type %q is not a category id", v)
			}
			entry.DocumentType = uint(n)
		case "key":
			entry.FileKey = v
		case "desc":
			entry.Description = v
		case "expires":
			entry.ExpiryDate = v
		default:
			return fmt.Errorf("unknown document field %q", k)
		}
	}
	*d = append(*d, entry)
	return nil
}

func cmdOnboard(args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr, "portal base URL")

	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "work email")
	phone := fs.String("phone", "", "phone number")
	department := fs.Uint("department", 0, "department id")
	position := fs.Uint("position", 0, "position id")

	kinName := fs.String("kin-name", "", "next of kin full name")
	kinRelationship := fs.String("kin-relationship", "", "next of kin relationship")
	kinPhone := fs.String("kin-phone", "", "next of kin phone")

	contractType := fs.String("contract-type", "", "full_time, part_time, or temporary")
	startDate := fs.String("start-date", "", "contract start date (2006-01-02)")
	endDate := fs.String("end-date", "", "contract end date")
	salary := fs.String("salary", "", "base salary")
	allowances := fs.String("allowances", "", "monthly allowances")

	bank := fs.String("bank", "", "bank name")
	accountName := fs.String("account-name", "", "bank account name")
	accountNumber := fs.String("account-number", "", "bank account number")

	var documents docFlags
	fs.Var(&documents, "document", "document entry, e.g. type=2,key=uploads/passport.pdf,expires=2030-01-01 (repeatable)")
	fs.Parse(args)

	// Each flag group fills one wizard tab. A section left entirely blank
	// stays out of the payload, the same way an untouched tab does.
	w := wizard.New()
	w.Form.Set("first_name", *firstName)
	w.Form.Set("last_name", *lastName)
	w.Form.Set("email", *email)
	if *phone != "" {
		w.Form.Set("phone", *phone)
	}
	w.Form.Set("department_id", *department)
	w.Form.Set("position_id", *position)

	if *kinName != "" || *kinRelationship != "" {
		w.Form.Set("next_of_kin.full_name", *kinName)
		w.Form.Set("next_of_kin.relationship", *kinRelationship)
		if *kinPhone != "" {
			w.Form.Set("next_of_kin.phone", *kinPhone)
		}
	}

	if *contractType != "" || *startDate != "" || *salary != "" {
		w.Form.Set("contract.type", *contractType)
		w.Form.Set("contract.start_date", *startDate)
		w.Form.Set("contract.base_salary", *salary)
		if *endDate != "" {
			w.Form.Set("contract.end_date", *endDate)
		}
		if *allowances != "" {
			w.Form.Set("contract.allowances", *allowances)
		}
	}

	if *bank != "" || *accountNumber != "" {
		w.Form.Set("payment.bank_name", *bank)
		w.Form.Set("payment.account_name", *accountName)
		w.Form.Set("payment.account_number", *accountNumber)
	}

	for _, entry := range documents {
		w.Documents.Add(entry)
	}

	api := newClient(*addr)
	var form onboardingForm
	var created employeeRow
	err := w.Submit(context.Background(), &form, func(ctx context.Context) error {
		return api.Post(ctx, "/api/v1/employees", &form, &created)
	})
	if err != nil {
		if ve, ok := err.(*wizard.ValidationError); ok {
			printFieldErrors(ve.Fields)
			return fmt.Errorf("onboarding form is incomplete")
		}
		if apiErr, ok := err.(*client.APIError); ok && len(apiErr.Fields) > 0 {
			printFieldErrors(apiErr.Fields)
		}
		return err
	}

	fmt.Printf("onboarded %s %s (employee %d, %s)\n", created.FirstName, created.LastName, created.ID, created.Status)
	return nil
}

func printFieldErrors(fields map[string]string) {
	paths := make([]string, 0, len(fields))
	for p := range fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", p, fields[p])
	}
}
