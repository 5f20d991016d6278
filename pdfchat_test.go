package pdfchat_test

import (
	"errors"
	"testing"

	"github.com/pdfchat/pdfchat"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pdfchat.Errorf(pdfchat.ENOTFOUND, "library %q not found", "test")

	assert.Equal(t, pdfchat.ENOTFOUND, pdfchat.ErrorCode(err))
	assert.Equal(t, "library \"test\" not found", pdfchat.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pdfchat.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pdfchat.EINTERNAL, pdfchat.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pdfchat.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", pdfchat.ErrorMessage(errors.New("boom")))
}
