package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"anylist/internal/commands"
	"anylist/internal/config"
	"anylist/internal/exitcode"
	"anylist/internal/service"
)

// TestLoginCommand_MissingEmail verifies login fails without credentials
func TestLoginCommand_MissingEmail(t *testing.T) {
	cmd := &commands.LoginCmd{}

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: t.TempDir()}

	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if errBuf.String() != "error: email required\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

// TestLoginCommand_MissingPassword verifies login fails without a password
func TestLoginCommand_MissingPassword(t *testing.T) {
	cmd := &commands.LoginCmd{}
	cmd.SetCredentials("user@example.com", "")

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: t.TempDir()}

	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if errBuf.String() != "error: password required\n" {
		t.Errorf("unexpected stderr: %q", errBuf.String())
	}
}

// TestLoginCommand_AlreadyLoggedIn verifies login is a no-op with stored tokens
func TestLoginCommand_AlreadyLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if err := cfg.SaveTokens(service.SavedTokens{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		UserID:       "user-1",
	}); err != nil {
		t.Fatalf("failed to seed tokens: %v", err)
	}

	cmd := &commands.LoginCmd{}

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "already logged in\n" {
		t.Errorf("unexpected stdout: %q", outBuf.String())
	}
}

// TestLogoutCommand_NotLoggedIn verifies logout succeeds without stored tokens
func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cmd := &commands.LogoutCmd{}

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: t.TempDir()}

	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "not logged in\n" {
		t.Errorf("unexpected stdout: %q", outBuf.String())
	}
}

// TestLogoutCommand_RemovesTokens verifies logout deletes the tokens file
func TestLogoutCommand_RemovesTokens(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if err := cfg.SaveTokens(service.SavedTokens{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}); err != nil {
		t.Fatalf("failed to seed tokens: %v", err)
	}

	cmd := &commands.LogoutCmd{}

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != "ok\n" {
		t.Errorf("unexpected stdout: %q", outBuf.String())
	}

	if _, err := os.Stat(filepath.Join(cfg.Dir, config.TokensFile)); !os.IsNotExist(err) {
		t.Error("expected tokens file to be removed")
	}
}
