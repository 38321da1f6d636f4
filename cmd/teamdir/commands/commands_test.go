package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/orgtools/teamdir/pkg/oskeyring"
)

func testCtx(t *testing.T) *cliCtx {
	t.Helper()
	return &cliCtx{
		Context:   context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OSKeyring: oskeyring.NewMemoryService(),
	}
}

func TestValidateCmdCleanRepository(t *testing.T) {
	cmd := &ValidateCmd{Path: filepath.Join("testdata", "valid")}
	assert.NoError(t, cmd.Run(testCtx(t)))
}

func TestValidateCmdReportsViolations(t *testing.T) {
	cmd := &ValidateCmd{Path: filepath.Join("testdata", "invalid")}
	err := cmd.Run(testCtx(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation errors found")
}

func TestValidateCmdStrictWithoutToken(t *testing.T) {
	cmd := &ValidateCmd{Path: filepath.Join("testdata", "valid"), Strict: true}
	err := cmd.Run(testCtx(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GitHub directory is unavailable")
}

func TestValidateCmdUsesStoredToken(t *testing.T) {
	ctx := testCtx(t)
	// With a token in the keyring, strict mode must pass the availability
	// gate. The check itself is skipped so no API call is made.
	assert.NoError(t, ctx.OSKeyring.Set("teamdir", "github-token", "stored-token"))

	cmd := &ValidateCmd{
		Path:   filepath.Join("testdata", "valid"),
		Strict: true,
		Skip:   []string{"github-usernames"},
	}
	assert.NoError(t, cmd.Run(ctx))
}

func TestValidateCmdMissingRepository(t *testing.T) {
	cmd := &ValidateCmd{Path: filepath.Join("testdata", "nope")}
	err := cmd.Run(testCtx(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loading data repository")
}

func TestChecksCmdListsTiers(t *testing.T) {
	out := captureStdout(t, func() {
		assert.NoError(t, (&ChecksCmd{}).Run(testCtx(t)))
	})

	assert.Contains(t, out, "Local checks (always run):")
	assert.Contains(t, out, "  name-prefixes\n")
	assert.Contains(t, out, "  github-usernames\n")
	assert.Contains(t, out, "  zulip-users\n")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	assert.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	assert.NoError(t, err)
	return string(data)
}
