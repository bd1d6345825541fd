package registration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apierrors "github.com/itchan-dev/signup/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRegistrar struct {
	RegisterFunc func(ctx context.Context, email, password string) error
	Calls        []string
}

func (m *MockRegistrar) Register(ctx context.Context, email, password string) error {
	m.Calls = append(m.Calls, email+":"+password)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return nil
}

func failingWith(err error) *MockRegistrar {
	return &MockRegistrar{RegisterFunc: func(ctx context.Context, email, password string) error { return err }}
}

func TestSubmitSuccess(t *testing.T) {
	inputs := []struct{ email, password string }{
		{"user@example.com", "secret"},
		{"x", "y"},
		{"ünïcode@example.com", "pässwörd with spaces"},
	}
	for _, in := range inputs {
		f := Form{}
		f.SetEmail(in.email)
		f.SetPassword(in.password)
		f.SetConfirm(in.password)
		api := &MockRegistrar{}

		out := f.Submit(context.Background(), api)

		assert.Equal(t, Registered, out.Kind)
		assert.Equal(t, MsgRegistered, out.Toast)
		assert.Empty(t, out.Alert)
		assert.Equal(t, http.StatusSeeOther, out.Status)
		assert.Equal(t, []string{in.email + ":" + in.password}, api.Calls, "exactly one call with the primary password")
	}
}

func TestSubmitValidationNeverCallsAPI(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want string
	}{
		{name: "empty email", form: filledFormWithEmail("", "pw", "pw"), want: ErrEmptyFields.Error()},
		{name: "empty password", form: filledFormWithEmail("a@b.c", "", "pw"), want: ErrEmptyFields.Error()},
		{name: "empty confirm", form: filledFormWithEmail("a@b.c", "pw", ""), want: ErrEmptyFields.Error()},
		{name: "mismatch", form: filledFormWithEmail("a@b.c", "pw1", "pw2"), want: ErrPasswordMismatch.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockRegistrar{}
			out := tt.form.Submit(context.Background(), api)

			assert.Empty(t, api.Calls)
			assert.Equal(t, Rejected, out.Kind)
			assert.Equal(t, tt.want, out.Alert)
			assert.Equal(t, http.StatusUnprocessableEntity, out.Status)
		})
	}
}

func filledFormWithEmail(email, password, confirm string) Form {
	f := filledForm(password, confirm)
	f.SetEmail(email)
	return f
}

func TestSubmitConflictIgnoresPayload(t *testing.T) {
	for _, payload := range []string{"", "duplicate key", "<b>taken</b>"} {
		f := filledForm("pw", "pw")
		out := f.Submit(context.Background(), failingWith(&apierrors.APIError{StatusCode: http.StatusConflict, Payload: payload}))

		assert.Equal(t, Conflict, out.Kind)
		assert.Equal(t, MsgEmailTaken, out.Alert)
		assert.Equal(t, http.StatusConflict, out.Status)
	}
}

func TestSubmitGenericFailureShowsPayloadVerbatim(t *testing.T) {
	f := filledForm("pw", "pw")
	out := f.Submit(context.Background(), failingWith(&apierrors.APIError{StatusCode: 500, Payload: "Internal error"}))

	assert.Equal(t, Failed, out.Kind)
	assert.Equal(t, "Internal error", out.Alert)
	assert.Equal(t, http.StatusBadGateway, out.Status)
	require.Error(t, out.Err)
}

func TestSubmitWrappedAPIError(t *testing.T) {
	f := filledForm("pw", "pw")
	wrapped := fmt.Errorf("register: %w", &apierrors.APIError{StatusCode: 400, Payload: "Required fields missing"})

	out := f.Submit(context.Background(), failingWith(wrapped))

	assert.Equal(t, Failed, out.Kind)
	assert.Equal(t, "Required fields missing", out.Alert)
}

func TestSubmitTransportFailure(t *testing.T) {
	f := filledForm("pw", "pw")
	out := f.Submit(context.Background(), failingWith(errors.New("dial tcp: connection refused")))

	assert.Equal(t, Failed, out.Kind)
	assert.Equal(t, MsgBackendUnavailable, out.Alert)
}

func TestSubmitKeepsFieldsOnFailure(t *testing.T) {
	f := filledForm("pw", "pw")
	f.TogglePassword()
	_ = f.Submit(context.Background(), failingWith(&apierrors.APIError{StatusCode: 500, Payload: "x"}))

	assert.Equal(t, "user@example.com", f.Email)
	assert.Equal(t, "pw", f.Primary.Password)
	assert.Equal(t, "pw", f.Confirm.Password)
	assert.True(t, f.Primary.Reveal)
}

func TestSubmitPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "req-1")
	var seen any
	api := &MockRegistrar{RegisterFunc: func(ctx context.Context, email, password string) error {
		seen = ctx.Value(key{})
		return nil
	}}

	f := filledForm("pw", "pw")
	f.Submit(ctx, api)
	assert.Equal(t, "req-1", seen)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "registered", Registered.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
