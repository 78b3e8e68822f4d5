package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /api/auth/login/":
			_, _ = fmt.Fprint(w, `{"success":true,"message":"ok","data":{"user":{"id":1,"username":"smoke","email":"smoke@example.com","plan_type":"free"},"tokens":{"access":"access-1","refresh":"refresh-1"}}}`)
		case "GET /api/insights/today/":
			if r.Header.Get("Authorization") != "Bearer access-1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = fmt.Fprint(w, `{"success":false,"message":"error","error":{"message":"Unauthorized"}}`)
				return
			}
			_, _ = fmt.Fprint(w, `{"success":true,"message":"ok","data":{"insights":[{"id":9,"title":"Sessions fell off a cliff","severity":"high","status":"active","source":"ga4"}],"count":1,"last_week_avg":0.5,"date":"2026-10-19"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"success":false,"message":"error","error":{"message":"Not found"}}`)
		}
	}))
	t.Cleanup(server.Close)

	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home, server.URL+"/api"))

	stdout, stderr, err := runInsightly(t, binaryPath, home, "auth", "login", "--email", "smoke@example.com", "--password", "secret")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Successfully logged in!")

	stdout, stderr, err = runInsightly(t, binaryPath, home, "issues", "today", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Sessions fell off a cliff")

	_, stderr, err = runInsightly(t, binaryPath, home, "prefs", "theme", "dark")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runInsightly(t, binaryPath, home, "prefs", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "theme: dark")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "insightly-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/insightly")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build insightly binary: %s", string(output))
	return binaryPath
}

func runInsightly(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "INSIGHTLY_LOG_LEVEL=disabled")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home, baseURL string) error {
	configDir := filepath.Join(home, ".insightly")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	config := fmt.Sprintf(`[api]
base_url = %q
timeout = "5s"

[secrets]
backend = "file"
`, baseURL)

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600)
}
