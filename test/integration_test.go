// ABOUTME: Integration tests for nutrient CLI.
// ABOUTME: Builds the binary and exercises the full daily workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	nutrientBinary := filepath.Join(projectRoot, "nutrient")

	buildCmd := exec.Command("go", "build", "-o", nutrientBinary, "./cmd/nutrient")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(nutrientBinary)

	// Point config and data at temp directories
	configHome := t.TempDir()
	dataHome := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(nutrientBinary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+configHome,
			"XDG_DATA_HOME="+dataHome,
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Set up a profile
	output, err := run("profile", "set",
		"--age", "30", "--gender", "male", "--height", "175",
		"--weight", "75", "--activity", "moderate", "--goal", "weight_loss")
	if err != nil {
		t.Fatalf("Failed to set profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Profile saved") {
		t.Errorf("Expected 'Profile saved' in output, got: %s", output)
	}

	// Targets reflect the profile
	output, err = run("targets")
	if err != nil {
		t.Fatalf("Failed to show targets: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2232") {
		t.Errorf("Expected weight-loss calorie target 2232 in output, got: %s", output)
	}

	// Log a meal
	output, err = run("log", "chicken bowl", "520", "--slot", "lunch", "--protein", "38")
	if err != nil {
		t.Fatalf("Failed to log meal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged lunch") {
		t.Errorf("Expected 'Logged lunch' in output, got: %s", output)
	}

	// List shows the meal
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "chicken bowl") {
		t.Errorf("Expected 'chicken bowl' in list output, got: %s", output)
	}

	// Gap is based on the ledger now
	output, err = run("gap")
	if err != nil {
		t.Fatalf("Failed to show gap: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 logged meal") {
		t.Errorf("Expected ledger-based gap, got: %s", output)
	}

	// Adjust a restaurant meal
	output, err = run("adjust", "780", "32", "45", "38.5", "1190", "3", "--scenario", "restaurant")
	if err != nil {
		t.Fatalf("Failed to adjust: %v\n%s", err, output)
	}

	// Recommendations come back for the weight-loss goal
	output, err = run("recommend")
	if err != nil {
		t.Fatalf("Failed to recommend: %v\n%s", err, output)
	}
	if strings.Contains(output, "No recipes") {
		t.Errorf("Expected recommendations, got: %s", output)
	}

	// Generate a plan, then hit the free-tier quota
	output, err = run("plan")
	if err != nil {
		t.Fatalf("Failed to generate plan: %v\n%s", err, output)
	}
	if !strings.Contains(output, "breakfast") {
		t.Errorf("Expected plan slots in output, got: %s", output)
	}

	output, err = run("plan")
	if err != nil {
		t.Fatalf("Quota refusal should exit cleanly: %v\n%s", err, output)
	}
	if !strings.Contains(output, "quota") {
		t.Errorf("Expected quota message, got: %s", output)
	}

	// The saved plan is still readable
	output, err = run("plan", "show")
	if err != nil {
		t.Fatalf("Failed to show plan: %v\n%s", err, output)
	}
	if !strings.Contains(output, "lunch") {
		t.Errorf("Expected plan in output, got: %s", output)
	}

	// Export the food diary
	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Food Diary") {
		t.Errorf("Expected food diary export, got: %s", output)
	}
}
