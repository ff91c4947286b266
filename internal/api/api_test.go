package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Natfii/voxelbiome/internal/config"
	"github.com/Natfii/voxelbiome/internal/ws"
)

func testCatalogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plains.yaml"), []byte(`
name: Plains
temperature: 50
moisture: 40
age: 20
activity: 10
primary_log_block: 6
primary_leaves_block: 7
`), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestHealth(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()
	cfg := config.Default()

	router := NewRouter(hub, cfg)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateWorldAndQueryPoint(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()
	cfg := config.Default()
	cfg.World.CatalogDir = testCatalogDir(t)

	router := NewRouter(hub, cfg)
	srv := httptest.NewServer(router)
	defer srv.Close()

	body := `{"seed": 12345}`
	resp, err := http.Post(srv.URL+"/api/worlds", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/worlds: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := created["id"]
	if id == "" {
		t.Fatal("expected a non-empty world id")
	}

	pointResp, err := http.Get(srv.URL + "/api/worlds/" + id + "/point?x=10&y=70&z=10")
	if err != nil {
		t.Fatalf("GET point: %v", err)
	}
	defer pointResp.Body.Close()
	if pointResp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", pointResp.StatusCode)
	}

	var point map[string]interface{}
	if err := json.NewDecoder(pointResp.Body).Decode(&point); err != nil {
		t.Fatalf("decode point: %v", err)
	}
	if _, ok := point["biome"]; !ok {
		t.Error("expected a biome field in the point response")
	}
}

func TestQueryPointUnknownWorld(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()
	cfg := config.Default()

	router := NewRouter(hub, cfg)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/worlds/00000000-0000-0000-0000-000000000000/point?x=0&y=0&z=0")
	if err != nil {
		t.Fatalf("GET point: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
