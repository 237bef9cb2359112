package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/config"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/domain"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/internal/usecase"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/logger"
	"github.com/TheepanURK24CS1099/SPIROLINK-WEB-BACKEND/pkg/mail"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// MockSender spies on provider invocations
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		MailFrom:       "noreply@spirolink.net",
		ContactEmailTo: "info@spirolink.net",
	}
}

func healthyTransport(sender mail.Sender) *mail.Transport {
	return &mail.Transport{
		Provider: mail.ProviderResend,
		Sender:   sender,
		Verified: true,
	}
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Need fiber install",
	}
}

func TestSubmitContactValidation(t *testing.T) {
	cases := []struct {
		name string
		req  *domain.ContactRequest
	}{
		{"missing name", &domain.ContactRequest{Email: "jane@example.com", Message: "hi"}},
		{"missing email", &domain.ContactRequest{Name: "Jane", Message: "hi"}},
		{"missing message", &domain.ContactRequest{Name: "Jane", Email: "jane@example.com"}},
		{"whitespace only message", &domain.ContactRequest{Name: "Jane", Email: "jane@example.com", Message: "   \n "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := usecase.NewContactUsecase(healthyTransport(sender), testConfig())

			result, err := uc.SubmitContact(context.Background(), tc.req)

			assert.Nil(t, result)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "Name, email, and message are required", validationErr.Message)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestSubmitContactSendsBothInOrder(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)
	uc := usecase.NewContactUsecase(healthyTransport(sender), testConfig())

	result, err := uc.SubmitContact(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, "resend", result.Provider)
	sender.AssertNumberOfCalls(t, "Send", 2)

	// Operator notification first, submitter confirmation second
	first := sender.Calls[0].Arguments.Get(1).(mail.Message)
	second := sender.Calls[1].Arguments.Get(1).(mail.Message)
	assert.Equal(t, "info@spirolink.net", first.To)
	assert.Equal(t, "jane@example.com", first.ReplyTo)
	assert.Equal(t, "jane@example.com", second.To)
}

func TestSubmitContactAbortsAfterFirstFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).
		Return(errors.New("550 rejected")).Once()
	uc := usecase.NewContactUsecase(healthyTransport(sender), testConfig())

	result, err := uc.SubmitContact(context.Background(), validRequest())

	assert.Nil(t, result)
	var dispatchErr *domain.DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, "resend", dispatchErr.Provider)
	assert.Contains(t, dispatchErr.Error(), "550 rejected")
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSubmitContactUnverifiedSMTPStillDispatches(t *testing.T) {
	// A configured-but-unverified account is still used so the real error
	// surfaces on send instead of being hidden by a fallback.
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)
	transport := &mail.Transport{Provider: mail.ProviderSMTP, Sender: sender, Verified: false}
	uc := usecase.NewContactUsecase(transport, testConfig())

	result, err := uc.SubmitContact(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, "gmail-smtp", result.Provider)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubmitContactDisabled(t *testing.T) {
	transport := &mail.Transport{Provider: mail.ProviderDisabled, Sender: mail.NewLogSender()}
	uc := usecase.NewContactUsecase(transport, testConfig())

	result, err := uc.SubmitContact(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.False(t, result.Delivered)
	assert.Equal(t, "disabled", result.Provider)
	assert.NotEmpty(t, result.Warning)

	// Both rendered messages travel with the result for logging/inspection
	assert.Contains(t, result.Notification.HTML, "Jane Doe")
	assert.Contains(t, result.Confirmation.HTML, "Jane Doe")
}

func TestSubmitContactRendering(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)
	uc := usecase.NewContactUsecase(healthyTransport(sender), testConfig())

	t.Run("defaults for optional fields", func(t *testing.T) {
		result, err := uc.SubmitContact(context.Background(), validRequest())
		assert.NoError(t, err)

		assert.Equal(t, "New Service Inquiry: General", result.Notification.Subject)
		assert.Contains(t, result.Notification.HTML, "N/A") // phone and service fall back
		assert.Contains(t, result.Notification.HTML, "jane@example.com")
	})

	t.Run("service type in subject and body", func(t *testing.T) {
		req := validRequest()
		req.ServiceType = "Fiber Installation"
		req.Phone = "+15550100"

		result, err := uc.SubmitContact(context.Background(), req)
		assert.NoError(t, err)

		assert.Equal(t, "New Service Inquiry: Fiber Installation", result.Notification.Subject)
		assert.Contains(t, result.Notification.HTML, "Fiber Installation")
		assert.Contains(t, result.Notification.HTML, "+15550100")
	})

	t.Run("newlines become line breaks and html is escaped", func(t *testing.T) {
		req := validRequest()
		req.Message = "line one\nline two <script>"

		result, err := uc.SubmitContact(context.Background(), req)
		assert.NoError(t, err)

		assert.Contains(t, result.Notification.HTML, "line one<br>line two")
		assert.NotContains(t, result.Notification.HTML, "<script>")
	})

	t.Run("confirmation greets the submitter", func(t *testing.T) {
		result, err := uc.SubmitContact(context.Background(), validRequest())
		assert.NoError(t, err)

		assert.Equal(t, "jane@example.com", result.Confirmation.To)
		assert.True(t, strings.Contains(result.Confirmation.HTML, "Hi Jane Doe"))
	})
}

func TestSubmitContactIdempotence(t *testing.T) {
	// Repeating the same request dispatches twice; there is no dedup.
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mail.Message")).Return(nil)
	uc := usecase.NewContactUsecase(healthyTransport(sender), testConfig())

	_, err1 := uc.SubmitContact(context.Background(), validRequest())
	_, err2 := uc.SubmitContact(context.Background(), validRequest())

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	sender.AssertNumberOfCalls(t, "Send", 4)
}
