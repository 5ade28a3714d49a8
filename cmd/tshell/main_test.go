package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"ls", "cat", "cp", "mv", "touch", "mkdir", "config", "menu", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}

// execute runs rootCmd with args against an isolated config file.
func execute(t *testing.T, configPath string, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		globalOpts.ConfigPath = ""
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs(append([]string{"--config", configPath, "--no-color", "--yes"}, args...))
	return rootCmd.Execute()
}

func TestFileCommands(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tshell.conf")
	src := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(src, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	sub := filepath.Join(dir, "x", "y")
	if err := execute(t, configPath, "mkdir", "-p", sub); err != nil {
		t.Fatalf("mkdir -p error = %v", err)
	}
	if err := execute(t, configPath, "cp", src, filepath.Join(sub, "b.txt")); err != nil {
		t.Fatalf("cp error = %v", err)
	}
	if err := execute(t, configPath, "mv", filepath.Join(sub, "b.txt"), filepath.Join(dir, "c.txt")); err != nil {
		t.Fatalf("mv error = %v", err)
	}
	if err := execute(t, configPath, "touch", filepath.Join(dir, "d.txt")); err != nil {
		t.Fatalf("touch error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "c.txt"))
	if err != nil || string(data) != "hello" {
		t.Errorf("c.txt = %q, %v; want hello", data, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "d.txt")); err != nil {
		t.Errorf("d.txt not created: %v", err)
	}

	err = execute(t, configPath, "cp", src)
	if err == nil || !strings.HasPrefix(err.Error(), "cp: not enough arguments") {
		t.Errorf("cp with one argument error = %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tshell.conf")

	if err := execute(t, configPath, "config", "set", "CONCURRENCY", "8"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "CONCURRENCY=8") {
		t.Errorf("config file = %q, want CONCURRENCY=8", data)
	}

	if err := execute(t, configPath, "config", "set", "CONCURRENCY", "zero"); err == nil {
		t.Error("config set with invalid value error = nil, want error")
	}
	if err := execute(t, configPath, "config", "get", "NOT_A_KEY"); err == nil {
		t.Error("config get unknown key error = nil, want error")
	}

	if err := execute(t, configPath, "config", "unset", "CONCURRENCY"); err != nil {
		t.Fatalf("config unset error = %v", err)
	}
	data, _ = os.ReadFile(configPath)
	if strings.Contains(string(data), "CONCURRENCY") {
		t.Errorf("config file still contains CONCURRENCY: %q", data)
	}
}

// executeOutput runs rootCmd like execute and returns what it wrote to
// stdout and stderr.
func executeOutput(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := execute(t, configPath, args...)
	return stdout.String(), stderr.String(), err
}

func TestConfigGetHonoursEnvironment(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tshell.conf")
	if err := os.WriteFile(configPath, []byte("CONCURRENCY=4\n"), 0600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeOutput(t, configPath, "config", "get", "CONCURRENCY")
	if err != nil || stdout != "4\n" {
		t.Errorf("config get = %q, %v; want 4 from the file", stdout, err)
	}

	t.Setenv("TSHELL_CONCURRENCY", "3")
	stdout, _, err = executeOutput(t, configPath, "config", "get", "CONCURRENCY")
	if err != nil || stdout != "3\n" {
		t.Errorf("config get = %q, %v; want 3 from the environment", stdout, err)
	}

	_, stderr, err := executeOutput(t, configPath, "config", "list")
	if err != nil {
		t.Fatalf("config list error = %v", err)
	}
	if !strings.Contains(stderr, "CONCURRENCY = 3 (TSHELL_CONCURRENCY)") {
		t.Errorf("config list does not show the override: %q", stderr)
	}
	if !strings.Contains(stderr, "DIR_MODE = 0755 (default)") {
		t.Errorf("config list does not show the default: %q", stderr)
	}
}

func TestConfigCommandsWorkWithInvalidStoredValue(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tshell.conf")
	if err := os.WriteFile(configPath, []byte("CONCURRENCY=zero\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := executeOutput(t, configPath, "config", "list"); err != nil {
		t.Errorf("config list error = %v", err)
	}
	if _, _, err := executeOutput(t, configPath, "config", "set", "CONCURRENCY", "4"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	data, _ := os.ReadFile(configPath)
	if !strings.Contains(string(data), "CONCURRENCY=4") {
		t.Errorf("config file = %q, want CONCURRENCY=4", data)
	}
}
