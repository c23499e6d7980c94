// Package confirm implements the two-step action confirmation flow used by
// destructive and state-changing operations: a target is armed, the user
// confirms, the action runs exactly once, and the outcome is reported
// through a notifier. The same controller backs delete, approve, reject,
// and cancel buttons.
package confirm

import (
	"context"
	"sync"

	"github.com/peoplekit/portal/internal/client"
)

// State is the controller's position in the confirmation lifecycle.
type State int

const (
	// Closed means no action is armed; the confirmation dialog is hidden.
	Closed State = iota
	// AwaitingConfirm means a target is armed and the dialog is visible.
	AwaitingConfirm
	// InFlight means the confirmed action is executing. Further Confirm
	// calls are no-ops until it settles.
	InFlight
)

// Target identifies what an armed action will operate on.
type Target struct {
	ID     uint
	Action string
}

// Notifier receives the outcome of a settled action.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Action executes the armed operation against its target.
type Action func(ctx context.Context, target Target) error

// Options configures a Controller.
type Options struct {
	// Do runs the confirmed action.
	Do Action

	// Notifier receives success and failure messages. Optional.
	Notifier Notifier

	// OnSuccess runs after a successful action, before the controller
	// closes. List screens use it to refetch. It never runs on failure.
	OnSuccess func(target Target)

	// SuccessMessage is shown on success. Empty defaults to a generic one.
	SuccessMessage string

	// CloseOnFailure closes the dialog when the action fails. The default
	// keeps it open so the user can retry or cancel after reading the
	// error.
	CloseOnFailure bool
}

// Controller drives one confirmation dialog. All methods are safe for
// concurrent use; the in-flight flag guarantees an armed action executes
// at most once per confirmation.
type Controller struct {
	mu     sync.Mutex
	state  State
	target Target
	opts   Options
}

// New creates a closed controller.
func New(opts Options) *Controller {
	return &Controller{opts: opts}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Target returns the armed target. The boolean reports whether one is
// armed.
func (c *Controller) Target() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.state != Closed
}

// Open arms an action against a target and shows the dialog. Opening while
// an action is in flight is rejected.
func (c *Controller) Open(id uint, action string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == InFlight {
		return false
	}
	c.target = Target{ID: id, Action: action}
	c.state = AwaitingConfirm
	return true
}

// Cancel dismisses the dialog without running the action. Cancelling while
// in flight is a no-op; the action settles normally.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != AwaitingConfirm {
		return
	}
	c.state = Closed
	c.target = Target{}
}

// Confirm executes the armed action. It is a no-op unless the controller
// is awaiting confirmation, so double-clicks and repeated calls cannot run
// the action twice. On success the OnSuccess hook fires, the notifier gets
// the success message, and the dialog closes. On failure the notifier gets
// the failure message extracted from the error and the dialog stays open
// for retry unless CloseOnFailure is set.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.state != AwaitingConfirm {
		c.mu.Unlock()
		return nil
	}
	c.state = InFlight
	target := c.target
	c.mu.Unlock()

	err := c.opts.Do(ctx, target)

	c.mu.Lock()
	if err != nil {
		if c.opts.CloseOnFailure {
			c.state = Closed
			c.target = Target{}
		} else {
			c.state = AwaitingConfirm
		}
		c.mu.Unlock()
		if c.opts.Notifier != nil {
			c.opts.Notifier.Error(failureMessage(err))
		}
		return err
	}
	c.state = Closed
	c.target = Target{}
	c.mu.Unlock()

	if c.opts.OnSuccess != nil {
		c.opts.OnSuccess(target)
	}
	if c.opts.Notifier != nil {
		msg := c.opts.SuccessMessage
		if msg == "" {
			msg = "Done"
		}
		c.opts.Notifier.Success(msg)
	}
	return nil
}

// failureMessage extracts the user-facing message from an action error.
// API errors carry their own extraction order; anything else falls back to
// the error text.
func failureMessage(err error) string {
	if apiErr, ok := err.(*client.APIError); ok {
		return apiErr.UserMessage()
	}
	if err.Error() != "" {
		return err.Error()
	}
	return "An error occurred. Please try again."
}
