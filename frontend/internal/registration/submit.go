package registration

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/itchan-dev/signup/shared/errors"
)

const (
	MsgRegistered         = "Registration completed successfully!"
	MsgEmailTaken         = "Email is already in use! Try again!"
	MsgBackendUnavailable = "Internal error: backend unavailable."

	// SuccessURL is where the browser goes after a successful registration.
	SuccessURL = "/"
)

// Registrar creates an account on the remote API. A failure that reached the
// API is reported as *errors.APIError.
type Registrar interface {
	Register(ctx context.Context, email, password string) error
}

type Kind int

const (
	Rejected   Kind = iota // local validation failed, nothing was sent
	Conflict               // API answered 409
	Failed                 // any other API or transport failure
	Registered
)

func (k Kind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case Conflict:
		return "conflict"
	case Failed:
		return "failed"
	case Registered:
		return "registered"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one submission attempt.
// Alert is set for every kind except Registered, which sets Toast.
type Outcome struct {
	Kind   Kind
	Alert  string
	Toast  string
	Status int   // HTTP status the page answers with
	Err    error // underlying cause, for logging
}

// Submit validates the form and, when it is valid, issues exactly one
// registration call. Nothing is retried.
func (f *Form) Submit(ctx context.Context, r Registrar) Outcome {
	if err := f.Validate(); err != nil {
		return Outcome{Kind: Rejected, Alert: err.Error(), Status: http.StatusUnprocessableEntity, Err: err}
	}

	err := r.Register(ctx, f.Email, f.Primary.Password)
	if err == nil {
		return Outcome{Kind: Registered, Toast: MsgRegistered, Status: http.StatusSeeOther}
	}
	return classify(err)
}

func classify(err error) Outcome {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		return Outcome{Kind: Failed, Alert: MsgBackendUnavailable, Status: http.StatusBadGateway, Err: err}
	}
	if apiErr.StatusCode == http.StatusConflict {
		return Outcome{Kind: Conflict, Alert: MsgEmailTaken, Status: http.StatusConflict, Err: err}
	}
	return Outcome{Kind: Failed, Alert: apiErr.Payload, Status: http.StatusBadGateway, Err: err}
}
