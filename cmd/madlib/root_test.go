package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storyforge/madlib/pkg/types"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: exitSuccess,
		},
		{
			name: "usage error",
			err:  fmt.Errorf("%w: madlib expects 3 argument(s), got 2", errUsage),
			want: exitUsage,
		},
		{
			name: "missing file",
			err:  fmt.Errorf("load dictionary: %w", fs.ErrNotExist),
			want: exitNotFound,
		},
		{
			name: "unreadable file",
			err:  fmt.Errorf("open template: %w", fs.ErrPermission),
			want: exitNotFound,
		},
		{
			name: "parse error",
			err:  fmt.Errorf("load dictionary: %w", &types.ParseError{Path: "w.json", Err: types.ErrMissingType}),
			want: exitParse,
		},
		{
			name: "anything else",
			err:  errors.New("disk on fire"),
			want: exitOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}

func TestExactArgs(t *testing.T) {
	validate := exactArgs(3)

	assert.NoError(t, validate(rootCmd, []string{"a", "b", "c"}))

	err := validate(rootCmd, []string{"a", "b"})
	assert.ErrorIs(t, err, errUsage)

	err = validate(rootCmd, []string{"a", "b", "c", "d"})
	assert.ErrorIs(t, err, errUsage)
}
