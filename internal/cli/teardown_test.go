package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/config"
)

func runWithArgs(t *testing.T, args *RootArgs, cmdArgs ...string) error {
	t.Helper()
	for _, key := range []string{
		config.EnvTickInterval, config.EnvLogLevel, config.EnvLogFormat, config.EnvLogFile,
		config.EnvExportDir, config.EnvExportFormat, config.EnvOTLPEndpoint, config.EnvOTELService,
	} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	tc := newRootCmd(args, "toybox_test", "", "")
	tc.SetArgs(cmdArgs)
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})
	tc.SetIn(&bytes.Buffer{})
	return tc.Execute()
}

func TestFailedCommandClosesLogFile(t *testing.T) {
	args := NewRootArgs()
	logFile := filepath.Join(t.TempDir(), "toybox.log")

	err := runWithArgs(t, args,
		"export", "--out", t.TempDir(), "--format", "gif",
		"--log_level", "debug", "--log_file", logFile)
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.Nil(t, args.logCloser, "log file released after RunE failed")
	assert.Nil(t, args.telemetry)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shutting down")
}

func TestFailedSetupClosesLogFile(t *testing.T) {
	args := NewRootArgs()
	logFile := filepath.Join(t.TempDir(), "toybox.log")

	err := runWithArgs(t, args, "meta", "--log_format", "xml", "--log_file", logFile)
	require.ErrorIs(t, err, ErrLogHandlerFailed)
	assert.Nil(t, args.logCloser, "log file opened before the handler failed is closed")
}

func TestSuccessfulCommandClosesLogFile(t *testing.T) {
	args := NewRootArgs()
	logFile := filepath.Join(t.TempDir(), "toybox.log")

	require.NoError(t, runWithArgs(t, args, "meta", "--log_file", logFile))
	assert.Nil(t, args.logCloser)
}

func TestClose_Idempotent(t *testing.T) {
	args := NewRootArgs()
	f, err := os.Create(filepath.Join(t.TempDir(), "toybox.log"))
	require.NoError(t, err)
	args.logCloser = f

	require.NoError(t, args.Close(t.Context()))
	require.NoError(t, args.Close(t.Context()))
	assert.Error(t, f.Close(), "already closed")
}
