package errs

import (
	"errors"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	t.Run("null parameter is an invalid parameter", func(t *testing.T) {
		err := NullParameter("userId")
		assert.True(t, IsInvalidParameter(err))
		assert.False(t, IsUserNotAuthorized(err))
		assert.Equal(t, errx.T_Validation, errx.AsErrorX(err).Type())
		assert.Equal(t, "required", errx.AsErrorX(err).Fields()["userId"])
	})

	t.Run("unknown guid is a not found invalid parameter", func(t *testing.T) {
		err := UnknownGUID("1234", "GlossaryTerm")
		assert.True(t, IsInvalidParameter(err))
		assert.Equal(t, errx.T_NotFound, errx.AsErrorX(err).Type())
	})

	t.Run("duplicate is a conflict", func(t *testing.T) {
		err := Duplicate("qualifiedName", "Glossary:Sales")
		assert.True(t, IsInvalidParameter(err))
		assert.Equal(t, errx.T_Conflict, errx.AsErrorX(err).Type())
	})

	t.Run("user not authorized", func(t *testing.T) {
		err := UserNotAuthorized("erinoverview", "1234", "homed elsewhere")
		assert.True(t, IsUserNotAuthorized(err))
		assert.Equal(t, errx.T_Forbidden, errx.AsErrorX(err).Type())
	})
}

func TestPropertyServer(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, PropertyServer(nil))
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		err := PropertyServer(errors.New("connection refused"))
		assert.True(t, IsPropertyServer(err))
		assert.Equal(t, errx.T_Internal, errx.AsErrorX(err).Type())
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("passes exchange errors through", func(t *testing.T) {
		orig := NullParameter("guid")
		err := PropertyServer(orig)
		assert.True(t, IsInvalidParameter(err))
		assert.False(t, IsPropertyServer(err))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(UnknownGUID("1234", "Glossary")))
	assert.True(t, IsNotFound(UnknownExternalIdentifier("am-1", "ext-1")))
	assert.False(t, IsNotFound(NullParameter("guid")))
	assert.False(t, IsNotFound(nil))
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(Duplicate("relationship", "TermCategorization c-1 t-1")))
	assert.False(t, IsDuplicate(UnknownGUID("1234", "Glossary")))
	assert.False(t, IsDuplicate(nil))
}
