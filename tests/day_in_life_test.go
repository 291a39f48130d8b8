package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDayInTheLifeFlow(t *testing.T) {
	binPath := buildDietwiseBinary(t)
	dbPath := filepath.Join(t.TempDir(), "dietwise.db")

	initDB(t, binPath, dbPath)
	setProfile(t, binPath, dbPath)

	stdout, stderr, exit := runDietwise(t, binPath, dbPath, "profile", "targets")
	if exit != 0 {
		t.Fatalf("profile targets failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Calories: 1800 kcal") {
		t.Fatalf("expected 1800 kcal target for weight-loss profile, got: %s", stdout)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "search", "roti")
	if exit != 0 || !strings.Contains(stdout, "bread_roti") {
		t.Fatalf("search roti: exit=%d stdout=%s stderr=%s", exit, stdout, stderr)
	}

	_, stderr, exit = runDietwise(t, binPath, dbPath,
		"log", "add", "bread_roti",
		"--meal", "breakfast",
		"--servings", "2",
		"--date", "2026-02-01",
	)
	if exit != 0 {
		t.Fatalf("log add failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runDietwise(t, binPath, dbPath,
		"log", "add", "dal_moong",
		"--meal", "lunch",
		"--date", "2026-02-01",
	)
	if exit != 0 {
		t.Fatalf("log add dal failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "log", "list", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("log list failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Breakfast") || !strings.Contains(stdout, "Lunch") {
		t.Fatalf("expected both meals in listing, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Wheat Roti") {
		t.Fatalf("expected logged roti in listing, got: %s", stdout)
	}

	_, stderr, exit = runDietwise(t, binPath, dbPath, "water", "add", "500", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("water add failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runDietwise(t, binPath, dbPath, "weight", "add", "94", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("weight add failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath,
		"exercise", "add", "walk_brisk",
		"--duration", "45",
		"--date", "2026-02-01",
	)
	if exit != 0 {
		t.Fatalf("exercise add failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "375 kcal") {
		t.Fatalf("expected 375 kcal for 45 min brisk walk, got: %s", stdout)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "today", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("today failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "/ 1800 kcal") {
		t.Fatalf("expected calorie target on dashboard, got: %s", stdout)
	}
	if !strings.Contains(stdout, "Water:    500 / 3100 ml") {
		t.Fatalf("expected water progress on dashboard, got: %s", stdout)
	}
	if !strings.Contains(stdout, "375 kcal burned") {
		t.Fatalf("expected exercise burn on dashboard, got: %s", stdout)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "streak")
	if exit != 0 {
		t.Fatalf("streak failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Current streak: 1") {
		t.Fatalf("expected streak of 1, got: %s", stdout)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "micros", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("micros failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Iron") {
		t.Fatalf("expected iron line in micros output, got: %s", stdout)
	}

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	_, stderr, exit = runDietwise(t, binPath, dbPath, "backup", "export", "--out", backupPath)
	if exit != 0 {
		t.Fatalf("backup export failed: exit=%d stderr=%s", exit, stderr)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}

	freshDB := filepath.Join(t.TempDir(), "fresh.db")
	initDB(t, binPath, freshDB)
	_, stderr, exit = runDietwise(t, binPath, freshDB, "backup", "import", backupPath)
	if exit != 0 {
		t.Fatalf("backup import failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, stderr, exit = runDietwise(t, binPath, freshDB, "log", "list", "--date", "2026-02-01")
	if exit != 0 {
		t.Fatalf("log list after import failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Wheat Roti") {
		t.Fatalf("expected imported log to survive, got: %s", stdout)
	}

	stdout, stderr, exit = runDietwise(t, binPath, dbPath, "remind", "config", "--enable")
	if exit != 0 {
		t.Fatalf("remind config failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Enabled: true") {
		t.Fatalf("expected reminders enabled, got: %s", stdout)
	}
}
