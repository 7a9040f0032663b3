package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "bad input")

	assert.Equal(t, CodeInvalidInput, err.Code())
	assert.Equal(t, "INVALID_INPUT: bad input", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrapWithContext(t *testing.T) {
	t.Run("wraps cause and copies context", func(t *testing.T) {
		ctx := map[string]interface{}{"path": ".sasjslint"}
		err := WrapWithContext(fs.ErrNotExist, CodeConfigLoadFailed, "failed to load configuration", ctx)
		require.NotNil(t, err)

		ctx["path"] = "changed"
		assert.Equal(t, ".sasjslint", err.Context()["path"])
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, WrapWithContext(nil, CodeInternal, "unused", nil))
		assert.Nil(t, Wrap(nil, CodeInternal, "unused"))
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  New(CodeRuleFailed, "boom"),
			want: CodeRuleFailed,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("outer: %w", New(CodeCacheFailed, "boom")),
			want: CodeCacheFailed,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	joined := Join(
		New(CodeRuleFailed, "first"),
		fmt.Errorf("second: %w", New(CodeIOFailed, "io")),
	)

	assert.True(t, HasCode(joined, CodeRuleFailed))
	assert.True(t, HasCode(joined, CodeIOFailed))
	assert.False(t, HasCode(joined, CodeInvalidConfig))
	assert.False(t, HasCode(nil, CodeUnknown))

	var pe PlatformError
	assert.True(t, As(joined, &pe))
}
