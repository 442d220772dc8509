package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/driftsim/internal/config"
	"github.com/san-kum/driftsim/internal/drift"
)

func newTestCommand() *cobra.Command {
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addSimFlags(cmd)
	return cmd
}

func TestResolveConfig_Flags(t *testing.T) {
	cmd := newTestCommand()
	if err := cmd.Flags().Set("size", "40"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("seed", "9"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.PopulationSize != 40 || cfg.Seed != 9 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.InitialFrequency != 0.5 || cfg.Populations != 5 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestResolveConfig_PresetWithOverride(t *testing.T) {
	cmd := newTestCommand()
	if err := cmd.Flags().Set("preset", "small"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("gens", "7"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.PopulationSize != 10 {
		t.Errorf("expected preset size 10, got %d", cfg.PopulationSize)
	}
	if cfg.Generations != 7 {
		t.Errorf("expected flag override 7, got %d", cfg.Generations)
	}
}

func TestResolveConfig_SaveConfig(t *testing.T) {
	cmd := newTestCommand()
	path := filepath.Join(t.TempDir(), "drift.yaml")
	for name, value := range map[string]string{"size": "64", "pops": "3", "seed": "11", "save-config": path} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if *saved != *cfg {
		t.Errorf("saved config = %+v, want %+v", saved, cfg)
	}

	// The saved file feeds back in through --config.
	cmd = newTestCommand()
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	again, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve from saved config failed: %v", err)
	}
	if again.PopulationSize != 64 || again.Populations != 3 || again.Seed != 11 {
		t.Errorf("config round trip lost values: %+v", again)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	cmd := newTestCommand()
	if err := cmd.Flags().Set("preset", "nonexistent"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}

	cmd = newTestCommand()
	if err := cmd.Flags().Set("size", "0"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); !errors.Is(err, drift.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestParseLists(t *testing.T) {
	ints, err := parseInts("10, 50,,100")
	if err != nil {
		t.Fatal(err)
	}
	if len(ints) != 3 || ints[2] != 100 {
		t.Errorf("unexpected ints: %v", ints)
	}

	floats, err := parseFloats("0.1,0.5")
	if err != nil {
		t.Fatal(err)
	}
	if len(floats) != 2 || floats[1] != 0.5 {
		t.Errorf("unexpected floats: %v", floats)
	}

	if _, err := parseInts("a,b"); err == nil {
		t.Error("expected error for non-numeric sizes")
	}
	if _, err := parseFloats("x"); err == nil {
		t.Error("expected error for non-numeric frequencies")
	}
}
