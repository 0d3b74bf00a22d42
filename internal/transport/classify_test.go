package transport

import (
	"errors"
	"sync"
	"testing"

	"github.com/spec-kit/learnhub-portal/internal/auth"
	"github.com/spec-kit/learnhub-portal/internal/notify"
	"github.com/spec-kit/learnhub-portal/internal/observability"
	util "github.com/spec-kit/learnhub-portal/pkg/util"
)

func newTestClassifier(t *testing.T) (*Classifier, func() []notify.Notification) {
	t.Helper()
	notifier := notify.New()

	var mu sync.Mutex
	var seen []notify.Notification
	if err := notifier.Subscribe(func(n notify.Notification) {
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	classifier := NewClassifier(auth.NewSelector("/admin"), notifier, observability.NewMetrics())
	return classifier, func() []notify.Notification {
		mu.Lock()
		defer mu.Unlock()
		return append([]notify.Notification{}, seen...)
	}
}

func TestClassifyNetworkFailure(t *testing.T) {
	classifier, notifications := newTestClassifier(t)

	cause := errors.New("dial tcp: connection refused")
	err := classifier.Classify("/api/lms/courses", 0, nil, cause)

	domainErr := util.ToDomainError(err)
	if domainErr.Code != "NETWORK_UNAVAILABLE" {
		t.Fatalf("unexpected code: %s", domainErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("original failure must stay reachable through the classified error")
	}
	if got := notifications(); len(got) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(got))
	}
}

func TestClassifyUnauthorizedByTarget(t *testing.T) {
	classifier, notifications := newTestClassifier(t)

	adminErr := util.ToDomainError(classifier.Classify("/api/admin/users", 401, nil, nil))
	userErr := util.ToDomainError(classifier.Classify("/api/lms/my-books", 401, nil, nil))

	if adminErr.Code != "UNAUTHORIZED" || userErr.Code != "UNAUTHORIZED" {
		t.Fatalf("unexpected codes: %s / %s", adminErr.Code, userErr.Code)
	}
	if adminErr.Message == userErr.Message {
		t.Fatalf("admin and user 401s must carry role-specific messages")
	}
	if got := notifications(); len(got) != 2 {
		t.Fatalf("expected one notification per failure, got %d", len(got))
	}
}

func TestClassifyServerError(t *testing.T) {
	classifier, _ := newTestClassifier(t)

	domainErr := util.ToDomainError(classifier.Classify("/api/lms/courses", 503, nil, nil))
	if domainErr.Code != "SERVER_ERROR" {
		t.Fatalf("unexpected code: %s", domainErr.Code)
	}
}

func TestClassifyValidationUsesServerMessage(t *testing.T) {
	classifier, _ := newTestClassifier(t)

	withMessage := util.ToDomainError(classifier.Classify("/api/lms/courses", 422, []byte(`{"message":"title is required"}`), nil))
	if withMessage.Message != "title is required" {
		t.Fatalf("expected verbatim server message, got %q", withMessage.Message)
	}

	withoutMessage := util.ToDomainError(classifier.Classify("/api/lms/courses", 400, []byte(`{}`), nil))
	if withoutMessage.Message == "" || withoutMessage.Message == "title is required" {
		t.Fatalf("expected generic fallback, got %q", withoutMessage.Message)
	}
}

func TestClassifySuccessIsNil(t *testing.T) {
	classifier, notifications := newTestClassifier(t)

	if err := classifier.Classify("/api/lms/courses", 200, nil, nil); err != nil {
		t.Fatalf("2xx must not classify as failure: %v", err)
	}
	if got := notifications(); len(got) != 0 {
		t.Fatalf("2xx must not notify, got %d", len(got))
	}
}
