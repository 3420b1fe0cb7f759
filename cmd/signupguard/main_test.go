package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupguard/pkg/signup"
)

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("built-in catalogue", func(t *testing.T) {
		t.Parallel()

		eval, err := newEvaluator("")
		require.NoError(t, err)
		results := eval.EvaluateField(signup.Username, "")
		require.NotEmpty(t, results)
		assert.Equal(t, "8-16 characters", results[0].Guidance)
	})

	t.Run("override file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "guidance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("username:\n  lengthInRange: between 8 and 16 characters\n"), 0o600))

		eval, err := newEvaluator(path)
		require.NoError(t, err)
		results := eval.EvaluateField(signup.Username, "")
		assert.Equal(t, "between 8 and 16 characters", results[0].Guidance)
		assert.Equal(t, "at least 1 letter and 1 number", results[1].Guidance)
	})

	t.Run("unknown criterion", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "guidance.yaml")
		require.NoError(t, os.WriteFile(path, []byte("username:\n  tooShort: nope\n"), 0o600))

		_, err := newEvaluator(path)
		assert.ErrorIs(t, err, signup.ErrUnknownCriterion)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := newEvaluator(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("rotating file output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.log")
		log, closeLog, err := newLogger(appConfig{Env: "production", LogFile: path, LogMaxSizeMB: 1})
		require.NoError(t, err)
		log.Info("hello")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
		assert.Contains(t, string(data), `"env":"production"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, _, err := newLogger(appConfig{LogLevel: "loud"})
		assert.Error(t, err)
	})
}
