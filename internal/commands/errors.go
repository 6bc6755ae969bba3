package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so log pipelines can group
// corpus command failures without string matching on messages.
const (
	TextCodeInvalidMessage  = "CORPUS_CMD_INVALID_MESSAGE"
	TextCodeRunCanceled     = "CORPUS_CMD_CANCELED"
	TextCodeRunTimedOut     = "CORPUS_CMD_TIMED_OUT"
	TextCodeRunContextError = "CORPUS_CMD_CONTEXT_ERROR"
	TextCodeRunFailed       = "CORPUS_CMD_FAILED"
)

// tag wraps err once with the given category, message, and text code. Errors
// already wrapped by go-errors pass through untouched so the innermost
// category wins.
func tag(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, "corpus command rejected invalid message", TextCodeInvalidMessage)
}

func wrapContextError(err error) error {
	switch err {
	case nil:
		return nil
	case context.Canceled:
		return tag(err, goerrors.CategoryCommand, "corpus command canceled", TextCodeRunCanceled)
	case context.DeadlineExceeded:
		return tag(err, goerrors.CategoryCommand, "corpus command timed out", TextCodeRunTimedOut)
	default:
		return tag(err, goerrors.CategoryCommand, "corpus command context error", TextCodeRunContextError)
	}
}

func wrapExecuteError(err error) error {
	return tag(err, goerrors.CategoryCommand, "corpus command failed", TextCodeRunFailed)
}
