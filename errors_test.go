package hatenadl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/hatenadl"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", hatenadl.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := hatenadl.Errorf(hatenadl.EPARSE, "article has no datetime attribute")
		assert.Equal(t, hatenadl.EPARSE, hatenadl.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("crawl: %w", hatenadl.Errorf(hatenadl.ENOTFOUND, "no route"))
		assert.Equal(t, hatenadl.ENOTFOUND, hatenadl.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hatenadl.EINTERNAL, hatenadl.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := hatenadl.Errorf(hatenadl.EINVALID, "target domain required")
	assert.Equal(t, "target domain required", hatenadl.ErrorMessage(err))
	assert.Equal(t, "Internal error", hatenadl.ErrorMessage(errors.New("boom")))
}
