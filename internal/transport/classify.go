package transport

import (
	"encoding/json"
	"net/http"

	"github.com/spec-kit/learnhub-portal/internal/auth"
	"github.com/spec-kit/learnhub-portal/internal/notify"
	"github.com/spec-kit/learnhub-portal/internal/observability"
	util "github.com/spec-kit/learnhub-portal/pkg/util"
)

// Classifier turns failed request outcomes into DomainErrors, emitting exactly
// one user notification per failure. The returned error wraps the original
// cause so callers keep full control over recovery.
type Classifier struct {
	selector *auth.Selector
	notifier *notify.Notifier
	metrics  *observability.Metrics
}

// NewClassifier builds a classifier. notifier and metrics may be nil.
func NewClassifier(selector *auth.Selector, notifier *notify.Notifier, metrics *observability.Metrics) *Classifier {
	return &Classifier{selector: selector, notifier: notifier, metrics: metrics}
}

// Classify maps a request outcome to a DomainError and reports it. err is the
// transport-level failure, if any; status and body describe the response when
// one was received. Returns nil for 2xx outcomes.
func (c *Classifier) Classify(requestURL string, status int, body []byte, err error) error {
	var domainErr *util.DomainError

	switch {
	case err != nil:
		domainErr = util.ToDomainError(util.NewNetworkUnavailable(err))
	case status < http.StatusBadRequest:
		return nil
	case status == http.StatusUnauthorized:
		message := "your session is not authorized, please sign in"
		if c.selector.IsAdminTarget(requestURL) {
			message = "admin session is not authorized, please log in again"
		}
		domainErr = util.ToDomainError(util.NewUnauthorized(message))
	case status >= http.StatusInternalServerError:
		domainErr = util.ToDomainError(util.NewServerError(status))
	default:
		domainErr = util.ToDomainError(util.NewValidationError(serverMessage(body), nil))
	}

	if c.notifier != nil {
		c.notifier.Publish(notify.LevelError, domainErr.Code, domainErr.Message)
	}
	c.metrics.RecordAPIFailure(domainErr.Code)
	return domainErr
}

// serverMessage surfaces the server-supplied message verbatim when present.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return "request rejected by server"
}
