// Package api exposes the debug HTTP surface over one or more running
// world handles: creating worlds, querying a single point, and handing off
// to the WebSocket hub for streaming column scans.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/Natfii/voxelbiome/internal/config"
	"github.com/Natfii/voxelbiome/internal/core"
	"github.com/Natfii/voxelbiome/internal/ws"
)

// Handler contains the debug server's HTTP handler methods.
type Handler struct {
	hub *ws.Hub
	cfg *config.Config

	mu     sync.RWMutex
	worlds map[uuid.UUID]*core.Core
}

// NewHandler creates a Handler backed by hub for WebSocket hand-off.
func NewHandler(hub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		hub:    hub,
		cfg:    cfg,
		worlds: make(map[uuid.UUID]*core.Core),
	}
}

// Health reports the debug server is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateWorldRequest describes a new world to initialize.
type CreateWorldRequest struct {
	Seed            int64   `json:"seed"`
	TemperatureBias float64 `json:"temperature_bias"`
	MoistureBias    float64 `json:"moisture_bias"`
	AgeBias         float64 `json:"age_bias"`
	CatalogDir      string  `json:"catalog_dir"`
}

// CreateWorld initializes a new world and registers it under a fresh ID, so
// a single debug server process can host several independent worlds at
// once.
func (h *Handler) CreateWorld(w http.ResponseWriter, r *http.Request) {
	var req CreateWorldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CatalogDir == "" {
		req.CatalogDir = h.cfg.World.CatalogDir
	}

	c, err := core.Init(req.Seed, core.Biases{
		Temperature: req.TemperatureBias,
		Moisture:    req.MoistureBias,
		Age:         req.AgeBias,
	}, req.CatalogDir)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id := uuid.New()
	h.mu.Lock()
	h.worlds[id] = c
	h.mu.Unlock()
	h.hub.RegisterWorld(id, c)

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// ListWorlds returns the IDs of every registered world.
func (h *Handler) ListWorlds(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	ids := make([]string, 0, len(h.worlds))
	for id := range h.worlds {
		ids = append(ids, id.String())
	}
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) worldFromPath(r *http.Request) (uuid.UUID, *core.Core, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, nil, err
	}
	h.mu.RLock()
	c, ok := h.worlds[id]
	h.mu.RUnlock()
	if !ok {
		return id, nil, errUnknownWorld
	}
	return id, c, nil
}

var errUnknownWorld = &httpError{"unknown world id"}

type httpError struct{ msg string }

func (e *httpError) Error() string { return e.msg }

func queryFloat(r *http.Request, key string) float64 {
	v, _ := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	return v
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

// QueryPoint handles GET /api/worlds/{id}/point?x=&y=&z=, returning every
// scalar the public API exposes for a single position in one response.
func (h *Handler) QueryPoint(w http.ResponseWriter, r *http.Request) {
	_, c, err := h.worldFromPath(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	x := queryFloat(r, "x")
	y := queryFloat(r, "y")
	z := queryFloat(r, "z")

	b := c.BiomeAt(x, z)
	biomeName := ""
	if b != nil {
		biomeName = b.Name
	}

	height := c.HeightAt(x, z)
	temperature := c.TemperatureAt(x, z)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"biome":                biomeName,
		"temperature":          temperature,
		"moisture":             c.MoistureAt(x, z),
		"height":               height,
		"influences":           c.InfluencesAt(x, z),
		"influences_3d":        c.Influences3DAt(x, y, z),
		"cave_density":         c.CaveDensityAt(x, y, z),
		"is_underground_biome": c.IsUndergroundBiomeAt(x, y, z),
		"temperature_altitude": c.TemperatureAltitudeModifier(int(y)),
		"should_apply_snow":    c.ShouldApplySnow(x, y, z),
	})
}

// WebSocket hands the connection off to the hub, bound to the world in the
// path.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid world id")
		return
	}
	h.mu.RLock()
	_, ok := h.worlds[id]
	h.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "unknown world id")
		return
	}
	h.hub.ServeWS(w, r, id)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("api: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
