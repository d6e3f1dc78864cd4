package terminal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rund/internal/config"
)

// writeFakeTerm installs a shell script that records its arguments in
// the file named by FAKE_OUT.
func writeFakeTerm(t *testing.T, binDir, name string) {
	t.Helper()
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"$FAKE_OUT\"\n"
	if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0755); err != nil {
		t.Fatalf("write fake terminal: %v", err)
	}
}

func writeCatalog(t *testing.T, cfgDir, yaml string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(cfgDir, "terminals.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old := os.Getenv(key)
	os.Setenv(key, value)
	t.Cleanup(func() { os.Setenv(key, old) })
}

func TestLaunch_BlockingEmulator(t *testing.T) {
	binDir := t.TempDir()
	cfgDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "out")
	writeFakeTerm(t, binDir, "fake-term")
	writeCatalog(t, cfgDir, `terminals:
  - name: fake-term
    blocks: true
    args:
      - "-e"
      - "{cmd}"
`)
	setEnv(t, "PATH", binDir)
	setEnv(t, "FAKE_OUT", outPath)

	handle, err := Launch(Options{
		Command:   "echo hi",
		Geometry:  config.Geometry{AutoPosition: true},
		ConfigDir: cfgDir,
	})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !handle.Waitable() {
		t.Fatal("blocking emulator should be waitable")
	}
	if err := handle.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read fake output: %v", err)
	}
	if !strings.Contains(string(out), "echo hi") {
		t.Errorf("fake terminal args = %q, want echo hi", out)
	}
}

func TestLaunch_FireAndForgetEmulator(t *testing.T) {
	binDir := t.TempDir()
	cfgDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "out")
	writeFakeTerm(t, binDir, "fake-term")
	writeCatalog(t, cfgDir, `terminals:
  - name: fake-term
    args:
      - "{cmd}"
`)
	setEnv(t, "PATH", binDir)
	setEnv(t, "FAKE_OUT", outPath)

	handle, err := Launch(Options{
		Command:   "echo hi",
		Geometry:  config.Geometry{AutoPosition: true},
		ConfigDir: cfgDir,
	})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if handle.Waitable() {
		t.Error("fire-and-forget emulator should not be waitable")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(outPath); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("fake terminal never ran")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestLaunch_PreferredEmulatorWins(t *testing.T) {
	binDir := t.TempDir()
	cfgDir := t.TempDir()
	outPath := filepath.Join(t.TempDir(), "out")
	writeFakeTerm(t, binDir, "a-term")
	writeFakeTerm(t, binDir, "b-term")
	writeCatalog(t, cfgDir, `terminals:
  - name: a-term
    blocks: true
    args:
      - "a-ran"
      - "{cmd}"
  - name: b-term
    blocks: true
    args:
      - "b-ran"
      - "{cmd}"
`)
	setEnv(t, "PATH", binDir)
	setEnv(t, "FAKE_OUT", outPath)

	handle, err := Launch(Options{
		Command:   "true",
		Geometry:  config.Geometry{AutoPosition: true},
		ConfigDir: cfgDir,
		Preferred: "b-term",
	})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	handle.Wait()

	out, _ := os.ReadFile(outPath)
	if !strings.HasPrefix(string(out), "b-ran") {
		t.Errorf("output = %q, want b-term to run first", out)
	}
}

func TestLaunch_NoEmulatorInstalled(t *testing.T) {
	cfgDir := t.TempDir()
	writeCatalog(t, cfgDir, `terminals:
  - name: fake-term
    args:
      - "{cmd}"
`)
	setEnv(t, "PATH", t.TempDir())

	_, err := Launch(Options{Command: "echo hi", ConfigDir: cfgDir})
	if err == nil {
		t.Fatal("expected error when no emulator is installed")
	}
	if !strings.Contains(err.Error(), "no supported terminal found") {
		t.Errorf("error = %q, want no supported terminal message", err)
	}
	if !strings.Contains(err.Error(), "fake-term") {
		t.Errorf("error = %q, should name the catalog emulators", err)
	}
}

func TestDescribe_NamesInstalledEmulator(t *testing.T) {
	binDir := t.TempDir()
	cfgDir := t.TempDir()
	writeFakeTerm(t, binDir, "fake-term")
	writeCatalog(t, cfgDir, `terminals:
  - name: fake-term
    args:
      - "-e"
      - "{cmd}"
`)
	setEnv(t, "PATH", binDir)

	got := Describe(Options{
		Command:   "echo hi",
		Geometry:  config.Geometry{AutoPosition: true},
		ConfigDir: cfgDir,
	})
	want := "fake-term -e 'echo hi'"
	if got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}
