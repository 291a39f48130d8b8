package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildDietwiseBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "dietwise")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build dietwise binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runDietwise(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run dietwise command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initDB(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runDietwise(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init db failed: exit=%d stderr=%s", exit, stderr)
	}
}

func setProfile(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runDietwise(t, binPath, dbPath,
		"profile", "set",
		"--name", "Ravi",
		"--age", "50",
		"--gender", "male",
		"--height", "170",
		"--weight", "94",
		"--activity", "light",
		"--goal", "weight_loss",
		"--target-weight", "80",
	)
	if exit != 0 {
		t.Fatalf("profile set failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIRejectsUnknownFood(t *testing.T) {
	binPath := buildDietwiseBinary(t)
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDietwise(t, binPath, dbPath,
		"log", "add", "no_such_food", "--meal", "lunch",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for unknown food")
	}
	if !strings.Contains(stderr, "unknown food") {
		t.Fatalf("expected unknown food error, got: %s", stderr)
	}
}

func TestCLIRejectsInvalidMealSlot(t *testing.T) {
	binPath := buildDietwiseBinary(t)
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDietwise(t, binPath, dbPath,
		"log", "add", "bread_roti", "--meal", "second_lunch",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for invalid meal slot")
	}
	if !strings.Contains(stderr, "invalid meal type") {
		t.Fatalf("expected invalid meal type error, got: %s", stderr)
	}
}

func TestCLIRejectsInvalidProfile(t *testing.T) {
	binPath := buildDietwiseBinary(t)
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDietwise(t, binPath, dbPath,
		"profile", "set",
		"--age", "50",
		"--gender", "robot",
		"--height", "170",
		"--weight", "94",
		"--activity", "light",
		"--goal", "weight_loss",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for invalid gender")
	}
	if !strings.Contains(stderr, "invalid gender") {
		t.Fatalf("expected invalid gender error, got: %s", stderr)
	}
}

func TestCLIRejectsZeroServings(t *testing.T) {
	binPath := buildDietwiseBinary(t)
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDietwise(t, binPath, dbPath,
		"log", "add", "bread_roti", "--meal", "lunch", "--servings", "0",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for zero servings")
	}
	if !strings.Contains(stderr, "servings must be > 0") {
		t.Fatalf("expected servings validation error, got: %s", stderr)
	}
}
