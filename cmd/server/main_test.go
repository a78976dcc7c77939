package main

import "testing"

func TestConfigPathUsesEnv(t *testing.T) {
	t.Setenv("PETVERSE_CONFIG", "/tmp/custom.yaml")
	if got := configPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("configPath() = %q, want %q", got, "/tmp/custom.yaml")
	}
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("PETVERSE_CONFIG", "")
	if got := configPath(); got != "config.yaml" {
		t.Fatalf("configPath() = %q, want %q", got, "config.yaml")
	}
}
