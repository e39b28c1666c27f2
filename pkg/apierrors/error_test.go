package apierrors_test

import (
	"errors"
	"os"
	"testing"

	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Empty(t, err.ErrDetails.Detail)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}

func TestJsonErr_WithDetail(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en").WithDetail(errors.New("dial tcp: connection refused"))
	assert.Equal(t, "dial tcp: connection refused", err.ErrDetails.Detail)

	unchanged := apierrors.CreateError(500, "test_key", "en").WithDetail(nil)
	assert.Empty(t, unchanged.ErrDetails.Detail)
}

func TestValidationErrs(t *testing.T) {
	errs := apierrors.ValidationErrs{Errors: []apierrors.FieldError{
		{Msg: "Due day is required.", Param: "due-day", Location: apierrors.LocationBody},
		{Msg: "second message", Param: "due-day", Location: apierrors.LocationBody},
		{Msg: "Title must be between 3 and 100 characters long.", Param: "title", Location: apierrors.LocationBody},
	}}

	assert.Equal(t, map[string]string{
		"due-day": "Due day is required.",
		"title":   "Title must be between 3 and 100 characters long.",
	}, errs.ByParam())
	assert.Contains(t, errs.Error(), "due-day: Due day is required.")
}
