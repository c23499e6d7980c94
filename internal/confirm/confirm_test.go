package confirm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/peoplekit/portal/internal/client"
)

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *fakeNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func TestController_SuccessFlow(t *testing.T) {
	notifier := &fakeNotifier{}
	var executed []Target
	var refetched int

	c := New(Options{
		Do: func(ctx context.Context, target Target) error {
			executed = append(executed, target)
			return nil
		},
		Notifier:       notifier,
		OnSuccess:      func(Target) { refetched++ },
		SuccessMessage: "Request approved",
	})

	if c.State() != Closed {
		t.Fatalf("initial state = %v; want Closed", c.State())
	}
	if !c.Open(42, "approve") {
		t.Fatal("Open returned false")
	}
	if c.State() != AwaitingConfirm {
		t.Fatalf("state after Open = %v", c.State())
	}

	if err := c.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if len(executed) != 1 || executed[0] != (Target{ID: 42, Action: "approve"}) {
		t.Errorf("executed = %v", executed)
	}
	if refetched != 1 {
		t.Errorf("refetch count = %d; want 1", refetched)
	}
	if got := notifier.successes; len(got) != 1 || got[0] != "Request approved" {
		t.Errorf("success toasts = %v", got)
	}
	if c.State() != Closed {
		t.Errorf("state after success = %v; want Closed", c.State())
	}
	if _, armed := c.Target(); armed {
		t.Error("target still armed after settlement")
	}
}

func TestController_FailureKeepsDialogOpen(t *testing.T) {
	notifier := &fakeNotifier{}
	refetched := 0
	apiErr := &client.APIError{
		Status:  409,
		Message: "conflict",
		Err:     "Cannot delete: in use",
	}

	c := New(Options{
		Do:        func(context.Context, Target) error { return apiErr },
		Notifier:  notifier,
		OnSuccess: func(Target) { refetched++ },
	})

	c.Open(7, "delete")
	err := c.Confirm(context.Background())
	if !errors.Is(err, error(apiErr)) {
		t.Fatalf("err = %v; want the API error", err)
	}

	if got := notifier.failures; len(got) != 1 || got[0] != "Cannot delete: in use" {
		t.Errorf("failure toasts = %v; want the server's exact error string", got)
	}
	if refetched != 0 {
		t.Error("refetch ran on failure")
	}
	if c.State() != AwaitingConfirm {
		t.Errorf("state after failure = %v; want AwaitingConfirm for retry", c.State())
	}
	target, armed := c.Target()
	if !armed || target.ID != 7 {
		t.Errorf("target after failure = %v (%v); want still armed", target, armed)
	}
}

func TestController_CloseOnFailure(t *testing.T) {
	c := New(Options{
		Do:             func(context.Context, Target) error { return errors.New("boom") },
		CloseOnFailure: true,
	})
	c.Open(1, "delete")
	if err := c.Confirm(context.Background()); err == nil {
		t.Fatal("Confirm returned nil")
	}
	if c.State() != Closed {
		t.Errorf("state = %v; want Closed", c.State())
	}
}

func TestController_DuplicateConfirmRunsOnce(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var runs int
	var mu sync.Mutex

	c := New(Options{
		Do: func(context.Context, Target) error {
			mu.Lock()
			runs++
			mu.Unlock()
			close(started)
			<-release
			return nil
		},
	})

	c.Open(9, "reject")
	done := make(chan struct{})
	go func() {
		c.Confirm(context.Background())
		close(done)
	}()
	<-started

	// Second click while in flight.
	if c.State() != InFlight {
		t.Fatalf("state = %v; want InFlight", c.State())
	}
	if err := c.Confirm(context.Background()); err != nil {
		t.Fatalf("duplicate Confirm: %v", err)
	}
	if c.Open(10, "delete") {
		t.Error("Open succeeded while in flight")
	}

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if runs != 1 {
		t.Errorf("action ran %d times; want 1", runs)
	}
}

func TestController_CancelDismissesWithoutRunning(t *testing.T) {
	ran := false
	c := New(Options{
		Do: func(context.Context, Target) error {
			ran = true
			return nil
		},
	})

	c.Open(3, "cancel_request")
	c.Cancel()

	if c.State() != Closed {
		t.Errorf("state = %v; want Closed", c.State())
	}
	if err := c.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm after Cancel: %v", err)
	}
	if ran {
		t.Error("action ran after Cancel")
	}
}

func TestController_RetryAfterFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	calls := 0
	c := New(Options{
		Do: func(context.Context, Target) error {
			calls++
			if calls == 1 {
				return &client.APIError{Status: 500, Message: "internal error"}
			}
			return nil
		},
		Notifier: notifier,
	})

	c.Open(11, "approve")
	if err := c.Confirm(context.Background()); err == nil {
		t.Fatal("first Confirm succeeded")
	}
	// Dialog stayed open; the user clicks confirm again.
	if err := c.Confirm(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d; want 2", calls)
	}
	if c.State() != Closed {
		t.Errorf("state = %v; want Closed", c.State())
	}
}
