package cli

import (
	"io"
	"os"
	"testing"

	"github.com/hiro2620/sphero-controll/internal/ui"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() returned error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() returned error: %v", err)
	}

	ui.SetOutput(io.Discard)
	t.Cleanup(func() {
		os.Chdir(orig)
		ui.SetOutput(os.Stdout)
		provisionSource = ""
		provisionDryRun = false
		container = nil
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestProvisionSourceFlagOverridesManifest(t *testing.T) {
	srcDir := t.TempDir()

	err := runRoot(t, "provision", "--dry-run", "--source", srcDir)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if container == nil {
		t.Fatal("container was not initialized")
	}
	if container.Config.Artifacts.Source != srcDir {
		t.Errorf("Artifacts.Source = %s, expected the --source override %s",
			container.Config.Artifacts.Source, srcDir)
	}
}

func TestProvisionDefaultSourceWithoutFlag(t *testing.T) {
	err := runRoot(t, "plan")
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if container == nil {
		t.Fatal("container was not initialized")
	}
	if container.Config.Artifacts.Source != "." {
		t.Errorf("Artifacts.Source = %s, expected the default", container.Config.Artifacts.Source)
	}
}
