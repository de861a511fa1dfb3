package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pocketratings/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "pocketratings", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	paths := [][]string{
		{"serve"},
		{"migrate"},
		{"category", "list"},
		{"category", "show"},
		{"category", "create"},
		{"category", "update"},
		{"category", "delete"},
		{"product", "list"},
		{"product", "show"},
		{"product", "create"},
		{"product", "update"},
		{"product", "delete"},
		{"location", "list"},
		{"location", "show"},
		{"location", "create"},
		{"location", "update"},
		{"location", "delete"},
		{"purchase", "list"},
		{"purchase", "show"},
		{"purchase", "create"},
		{"purchase", "delete"},
		{"review", "list"},
		{"review", "show"},
		{"review", "create"},
		{"review", "update"},
		{"review", "delete"},
		{"user", "register"},
		{"user", "list"},
		{"user", "delete"},
		{"database", "backup"},
	}

	for _, path := range paths {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestDeleteCommandsTakeForce(t *testing.T) {
	cmd := NewRootCommand()

	for _, kind := range []string{"category", "product", "location", "purchase", "review", "user"} {
		sub, _, err := cmd.Find([]string{kind, "delete"})
		require.NoError(t, err)
		force := sub.Flags().Lookup("force")
		require.NotNil(t, force, kind)
		assert.Equal(t, "false", force.DefValue)
	}
}

func TestExecute_RejectsUnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), []string{"--format", "yaml", "migrate", "--dry-run"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "VALIDATION_FAILED")
}

func TestExecute_InvalidIDAsJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), []string{"--format", "json", "category", "delete", "not-a-uuid"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code  string `json:"code"`
			Class string `json:"class"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp), stdout.String())
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "validation", resp.Error.Class)
}

func TestMigrate_DryRunPrintsSchema(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), []string{"migrate", "--dry-run"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "CREATE TABLE IF NOT EXISTS categories")
}

// writeSQLiteConfig points the CLI at a throwaway SQLite database.
func writeSQLiteConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `env:
  env: test
  serviceName: pocketratings
  log:
    level: error
database:
  driver: sqlite
  sqlitePath: ` + filepath.Join(dir, "test.db") + `
secretKey:
  access: test-access-secret
  refresh: test-refresh-secret
auth:
  bcryptCost: 4
cache:
  products:
    enabled: true
  reviews:
    enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

func TestCatalogRoundTripOnSQLite(t *testing.T) {
	cfgPath := writeSQLiteConfig(t)
	t.Cleanup(func() { config.SetPath("") })

	_, stderr, code := run(t, "--config", cfgPath, "migrate")
	require.Equal(t, 0, code, stderr)

	stdout, stderr, code := run(t, "--config", cfgPath, "--format", "json", "category", "create", "--name", "Dairy")
	require.Equal(t, 0, code, stderr)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &created), stdout)
	require.NotEmpty(t, created.Data.ID)

	_, stderr, code = run(t, "--config", cfgPath, "--format", "json", "product", "create",
		"--category", created.Data.ID, "--brand", "Acme", "--name", "Oat Milk")
	require.Equal(t, 0, code, stderr)

	stdout, stderr, code = run(t, "--config", cfgPath, "product", "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Oat Milk")
	assert.Contains(t, stdout, "Dairy")

	// The category still has an active product.
	stdout, _, code = run(t, "--config", cfgPath, "--format", "json", "category", "delete", created.Data.ID)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "INTEGRITY_VIOLATION")

	stdout, stderr, code = run(t, "--config", cfgPath, "category", "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Dairy")
}

// createdID runs a JSON command and returns data.id from its envelope.
func createdID(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, code := run(t, append([]string{"--format", "json"}, args...)...)
	require.Equal(t, 0, code, stderr+stdout)

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	require.NotEmpty(t, resp.Data.ID)

	return resp.Data.ID
}

func TestPurchasesReviewsAndBackupOnSQLite(t *testing.T) {
	cfgPath := writeSQLiteConfig(t)
	t.Cleanup(func() { config.SetPath("") })
	c := []string{"--config", cfgPath}
	with := func(args ...string) []string { return append(append([]string(nil), c...), args...) }

	_, stderr, code := run(t, with("migrate")...)
	require.Equal(t, 0, code, stderr)

	userID := createdID(t, with("user", "register", "--name", "Ada", "--email", "ada@example.com", "--password", "correct-horse")...)
	categoryID := createdID(t, with("category", "create", "--name", "Drinks")...)
	productID := createdID(t, with("product", "create", "--category", categoryID, "--brand", "Acme", "--name", "Cola")...)
	locationID := createdID(t, with("location", "create", "--name", "Corner shop")...)

	stdout, stderr, code := run(t, with("category", "update", categoryID, "--name", "Beverages")...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Beverages")

	stdout, stderr, code = run(t, with("location", "show", locationID)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Corner shop")

	purchaseID := createdID(t, with("purchase", "create", "--email", "ADA@example.com",
		"--product", productID, "--location", locationID, "--price", "1.49", "--quantity", "2")...)
	reviewID := createdID(t, with("review", "create", "--user", userID, "--product", productID, "--rating", "4.5", "--text", "Fizzy")...)

	stdout, stderr, code = run(t, with("purchase", "list", "--user", userID)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, purchaseID)
	assert.Contains(t, stdout, "1.49")

	stdout, stderr, code = run(t, with("review", "update", reviewID, "--rating", "3")...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "3")

	stdout, stderr, code = run(t, with("review", "list", "--product", productID)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Ada")
	assert.Contains(t, stdout, "Acme Cola")

	// The purchase pins the product.
	stdout, _, code = run(t, with("--format", "json", "product", "delete", "--force", productID)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "INTEGRITY_VIOLATION")

	for _, args := range [][]string{
		{"purchase", "delete", "--force", purchaseID},
		{"review", "delete", "--force", reviewID},
		{"product", "delete", "--force", productID},
	} {
		_, stderr, code = run(t, with(args...)...)
		require.Equal(t, 0, code, strings.Join(args, " ")+": "+stderr)
	}

	stdout, stderr, code = run(t, with("product", "list", "--include-deleted")...)
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, "Cola")

	stdout, stderr, code = run(t, with("user", "list")...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "ada@example.com")

	snapshot := filepath.Join(t.TempDir(), "snapshot.db")
	stdout, stderr, code = run(t, with("database", "backup", "--output", snapshot)...)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, snapshot)
	assert.FileExists(t, snapshot)

	stdout, _, code = run(t, with("--format", "json", "database", "backup", "--output", snapshot)...)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "VALIDATION_FAILED")
}
