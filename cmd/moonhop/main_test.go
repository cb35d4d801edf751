package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/moonhop/internal/games/moonhop"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
	"github.com/vovakirdan/moonhop/internal/storage"
)

// resetCommandFlags puts every subcommand flag back to its default so one
// execute call cannot leak flags into the next. Root persistent flags are
// left alone; tests set those through their variables.
func resetCommandFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("reset --%s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommandFlags(t)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetCommandFlags(t)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	useTempDB(t)
	if _, err := execute(t, "scores", "--reset", "--recent", "3"); err != nil {
		t.Fatalf("scores --reset: %v", err)
	}
	if _, err := execute(t, "scores"); err != nil {
		t.Fatalf("scores: %v", err)
	}
	if flagScoresReset || flagScoresRecent != 0 {
		t.Errorf("flags leaked: reset=%v recent=%d", flagScoresReset, flagScoresRecent)
	}
	if f := scoresCmd.Flags().Lookup("reset"); f.Changed {
		t.Error("--reset still marked as changed")
	}
}

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	prev := flagDBPath
	flagDBPath = path
	t.Cleanup(func() { flagDBPath = prev })
	return path
}

func TestStageCommandJSON(t *testing.T) {
	first, err := execute(t, "stage", "2", "--format", "json")
	if err != nil {
		t.Fatalf("stage: %v", err)
	}

	var s world.Stage
	if err := json.Unmarshal([]byte(first), &s); err != nil {
		t.Fatalf("decode stage: %v\n%s", err, first)
	}
	if s.Number != 2 {
		t.Errorf("Number = %d, want 2", s.Number)
	}
	if len(s.Platforms) < 2 {
		t.Errorf("got %d platforms, want ground plus at least one", len(s.Platforms))
	}

	second, err := execute(t, "stage", "2", "--format", "json")
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if first != second {
		t.Error("generating the same stage twice gave different output")
	}
}

func TestStageCommandYAMLKeys(t *testing.T) {
	out, err := execute(t, "stage", "3", "--format", "yaml")
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if !strings.Contains(out, "stage_number: 3") {
		t.Errorf("yaml missing stage_number:\n%s", out)
	}
	if strings.Contains(out, "stagenumber:") {
		t.Error("yaml uses an untagged stagenumber key")
	}
}

func TestStageCommandText(t *testing.T) {
	useTempDB(t)
	out, err := execute(t, "stage", "1")
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	for _, want := range []string{"Stage 1", "ground", "Moon:", "Clear score:", "Best clear:  none yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStageCommandRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "stage", "0"); err == nil {
		t.Error("stage 0 should fail")
	}
	if _, err := execute(t, "stage", "x"); err == nil {
		t.Error("non-numeric stage should fail")
	}
	if _, err := execute(t, "stage", "1", "--format", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	for _, want := range []string{`"stages"`, `"water_speed"`, `"respawn_delay"`} {
		if !strings.Contains(out, want) {
			t.Errorf("schema missing %s", want)
		}
	}
}

func TestScoresUnknownMode(t *testing.T) {
	_, err := execute(t, "scores", "tetris")
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Errorf("err = %v, want unknown mode", err)
	}
}

func TestScoresCommand(t *testing.T) {
	path := useTempDB(t)
	mode := moonhop.ModeCampaign.ID()

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{Mode: mode, Score: 4200, Stage: 3, Stages: 3, Duration: 95}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := store.RecordClear(1, 1300, 12.5); err != nil {
		t.Fatalf("RecordClear: %v", err)
	}
	store.Close()

	out, err := execute(t, "scores", "--recent", "5")
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	for _, want := range []string{"4200", "Recent Runs", "Stage Records", "12.50s", "Unlocked start stage: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "scores", "--reset"); err != nil {
		t.Fatalf("scores --reset: %v", err)
	}
	out, err = execute(t, "scores")
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("runs survived reset:\n%s", out)
	}
}
