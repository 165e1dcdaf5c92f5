package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestParseUpdates(t *testing.T) {
	updates, err := parseUpdates([]string{"ip_memory", "10.0.0.1", "port_memory", "8010", "replacement", "LRU"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updates["ip_memory"] != "10.0.0.1" {
		t.Errorf("Expected ip as string, got %v", updates["ip_memory"])
	}
	if updates["port_memory"] != float64(8010) {
		t.Errorf("Expected port as number, got %v", updates["port_memory"])
	}
	if updates["replacement"] != "LRU" {
		t.Errorf("Expected LRU, got %v", updates["replacement"])
	}

	for _, args := range [][]string{{}, {"ip_memory"}, {"a", "1", "b"}} {
		if _, err := parseUpdates(args); err == nil {
			t.Errorf("Expected error for %v, got nil", args)
		}
	}
}

func TestUpdateConfigs(t *testing.T) {
	dir := t.TempDir()
	memoryPath := filepath.Join(dir, "memoria.json")
	otherPath := filepath.Join(dir, "otro.json")
	os.WriteFile(memoryPath, []byte(`{"port_memory": 8002, "replacement": "FIFO"}`), 0644)
	os.WriteFile(otherPath, []byte(`{"log_level": "INFO"}`), 0644)
	os.WriteFile(filepath.Join(dir, "trace.txt"), []byte("1 0\n"), 0644)

	updated, err := updateConfigs(dir, map[string]any{"replacement": "LRU", "ip_cpu": "1.2.3.4"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated != 1 {
		t.Errorf("Expected 1 updated file, got %d", updated)
	}

	content, _ := os.ReadFile(memoryPath)
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if data["replacement"] != "LRU" || data["port_memory"] != float64(8002) {
		t.Errorf("Unexpected config after update: %v", data)
	}
	if _, ok := data["ip_cpu"]; ok {
		t.Error("Expected missing keys not to be added")
	}
}
