package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wrapperflow/internal/app"
	"github.com/vk/wrapperflow/internal/loader"
)

// LogsEnv enables dumping captured logs of every harness run when set to "true".
const LogsEnv = "WRAPPERFLOW_TEST_LOGS"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Result    *app.Result
	Err       error
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext writes files into a temporary directory, points
// cfg.WorkflowPath into it and runs the app. The workflow is loaded once for
// Result and once more through App.Run for Output.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	cfg.WorkflowPath = filepath.Join(dir, cfg.WorkflowPath)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(out, logs, appConfig, loader.New(appConfig.DocumentFormat()))

	res := &HarnessResult{}
	res.Result, res.Err = testApp.Load(ctx)
	if res.Err == nil {
		res.Err = testApp.Run(ctx)
	}
	res.Output = out.String()
	res.LogOutput = logs.String()

	if os.Getenv(LogsEnv) == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), res.LogOutput)
	}
	return res
}

// WriteFiles writes every name/content pair below a new temporary directory
// and returns the directory. Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}
