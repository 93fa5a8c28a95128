package config

import "testing"

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Spacing != 10.0 {
		t.Errorf("World.Spacing = %v, want 10.0", cfg.World.Spacing)
	}
	if cfg.OIDE.PopulationSize != 10 {
		t.Errorf("OIDE.PopulationSize = %v, want 10", cfg.OIDE.PopulationSize)
	}
	if cfg.Run.Seed != 323381111 {
		t.Errorf("Run.Seed = %v, want 323381111", cfg.Run.Seed)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	defer func() {
		if recover() == nil {
			t.Fatal("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}

func TestInitThenCfgReturnsLoadedConfig(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().World.BuoyInfluenceRadius != 25.5 {
		t.Errorf("World.BuoyInfluenceRadius = %v, want 25.5", Cfg().World.BuoyInfluenceRadius)
	}
}
