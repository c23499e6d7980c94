// Command hrctl is a terminal client for the portal API. It drives the
// same controllers the web UI uses: list screens share the URL query
// grammar, onboarding goes through the multi-section wizard, and
// state-changing actions run through the confirmation flow.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/peoplekit/portal/internal/client"
	"github.com/peoplekit/portal/internal/confirm"
	"github.com/peoplekit/portal/internal/listquery"
)

const defaultAddr = "http://127.0.0.1:8080"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hrctl <command> [flags]

Commands:
  login      authenticate and print a bearer token
  employees  list employees with filters and pagination
  onboard    onboard a new employee from flags
  review     approve, reject, or cancel a request

The token printed by login is read from the HRCTL_TOKEN environment
variable by every other command.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = cmdLogin(os.Args[2:])
	case "employees":
		err = cmdEmployees(os.Args[2:])
	case "onboard":
		err = cmdOnboard(os.Args[2:])
	case "review":
		err = cmdReview(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "hrctl: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "hrctl:", err)
		os.Exit(1)
	}
}

// newClient builds an API client from the -addr flag and the ambient token.
func newClient(addr string) *client.Client {
	return client.New(addr, client.WithToken(os.Getenv("HRCTL_TOKEN")))
}

func cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr, "portal base URL")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	body := map[string]string{"email": *email, "password": *password}
	var token struct {
		Token     string `json:"token"`
		Role      string `json:"role"`
		ExpiresAt int64  `json:"expires_at"`
	}
	if err := newClient(*addr).Post(context.Background(), "/api/v1/auth/login", body, &token); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "logged in as %s (%s)\n", *email, token.Role)
	fmt.Printf("export HRCTL_TOKEN=%s\n", token.Token)
	return nil
}

// employeeRow is the subset of the employee record the list view shows.
type employeeRow struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	DepartmentID uint   `json:"department_id"`
}

func cmdEmployees(args []string) error {
	fs := flag.NewFlagSet("employees", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr, "portal base URL")
	status := fs.String("status", "", "filter by employment status")
	department := fs.String("department", "", "filter by department id")
	name := fs.String("name", "", "filter by first name substring")
	page := fs.Int("page", 0, "page to fetch (default 1, or the page from -query)")
	rawQuery := fs.String("query", "", "query string copied from the web UI; reproduces that view")
	fs.Parse(args)

	initial, err := url.ParseQuery(strings.TrimPrefix(*rawQuery, "?"))
	if err != nil {
		return fmt.Errorf("parse -query: %w", err)
	}

	// The controller decodes the pasted query, overlays the explicit
	// flags, and emits the canonical query for both the request and the
	// shareable URL.
	filters := listquery.Filters{}
	if *status != "" {
		filters["status"] = *status
	}
	if *department != "" {
		filters["department_id"] = *department
	}
	if *name != "" {
		filters["first_name__like"] = *name
	}

	ctrl := listquery.New(listquery.Options{
		InitialQuery:   initial,
		InitialFilters: filters,
		Fields:         []string{"status", "department_id", "first_name__like"},
	})
	defer ctrl.Close()
	if *page > 0 {
		ctrl.PageChange(*page)
	}

	var result struct {
		Items []employeeRow `json:"items"`
		Total int64         `json:"total"`
	}
	if err := newClient(*addr).Get(context.Background(), "/api/v1/employees", ctrl.Params(), &result); err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Printf("%-5s %-22s %-30s %-12s %s\n", "ID", "NAME", "EMAIL", "STATUS", "DEPT")
	for _, e := range result.Items {
		fmt.Printf("%-5d %-22s %-30s %-12s %d\n", e.ID, e.FirstName+" "+e.LastName, e.Email, e.Status, e.DepartmentID)
	}
	fmt.Printf("\npage %d, %d total", snap.Page, result.Total)
	if encoded := listquery.Encode(snap.Filters, snap.Page).Encode(); encoded != "" {
		fmt.Printf("  (share: ?%s)", encoded)
	}
	fmt.Println()
	return nil
}

// notifier prints action outcomes the way the web UI toasts them.
type notifier struct{}

func (notifier) Success(message string) { fmt.Fprintln(os.Stdout, message) }
func (notifier) Error(message string)   { fmt.Fprintln(os.Stderr, message) }

// reviewPaths maps a request kind to its API collection path.
var reviewPaths = map[string]string{
	"offsite": "/api/v1/attendance/offsite",
	"leave":   "/api/v1/leave/requests",
}

// pastTense maps an action verb to its outcome word for the success toast.
var pastTense = map[string]string{
	"approve": "approved",
	"reject":  "rejected",
	"cancel":  "cancelled",
}

func cmdReview(args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr, "portal base URL")
	kind := fs.String("kind", "", "request kind: offsite or leave")
	action := fs.String("action", "", "approve, reject, or cancel")
	id := fs.Uint("id", 0, "request id")
	note := fs.String("note", "", "review note (approve/reject)")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	base, ok := reviewPaths[*kind]
	if !ok {
		return fmt.Errorf("-kind must be offsite or leave")
	}
	switch *action {
	case "approve", "reject", "cancel":
	default:
		return fmt.Errorf("-action must be approve, reject, or cancel")
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	api := newClient(*addr)
	ctrl := confirm.New(confirm.Options{
		Do: func(ctx context.Context, target confirm.Target) error {
			path := fmt.Sprintf("%s/%d/%s", base, target.ID, target.Action)
			var body any
			if target.Action != "cancel" {
				body = map[string]string{"note": *note}
			}
			return api.Post(ctx, path, body, nil)
		},
		Notifier:       notifier{},
		SuccessMessage: fmt.Sprintf("Request %d %s", *id, pastTense[*action]),
		CloseOnFailure: true,
	})

	ctrl.Open(*id, *action)
	if !*yes && !promptYes(fmt.Sprintf("%s %s request %d? [y/N] ", *action, *kind, *id)) {
		ctrl.Cancel()
		fmt.Fprintln(os.Stderr, "aborted")
		return nil
	}
	return ctrl.Confirm(context.Background())
}

// promptYes asks on stderr and reads one line from stdin.
func promptYes(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
