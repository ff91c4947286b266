package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// scanYMin/scanYMax/scanStep bound a column scan's sample range.
	scanYMin  = -64
	scanYMax  = 200
	scanStep  = 2
	maxColumn = (scanYMax-scanYMin)/scanStep + 1
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades an HTTP request to a WebSocket bound to worldID and
// starts its read/write pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, worldID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:      uuid.New(),
		WorldID: worldID,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		hub:     h,
	}

	h.Register(client)

	go client.writePump()
	go client.readPump()
}

// ScanRequest is a client's request to scan one world column for cave
// density, from scanYMin to scanYMax in scanStep increments.
type ScanRequest struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
}

// ScanSample is one (y, density) point in a column scan response.
type ScanSample struct {
	Y       int     `json:"y"`
	Density float64 `json:"density"`
	Solid   bool    `json:"solid"`
}

// ScanResponse is the full result of one column scan.
type ScanResponse struct {
	Type    string       `json:"type"`
	X       float64      `json:"x"`
	Z       float64      `json:"z"`
	Biome   string       `json:"biome"`
	Height  int          `json:"height"`
	Samples []ScanSample `json:"samples"`
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws: read error: %v", err)
			}
			break
		}
		c.handleMessage(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var req ScanRequest
	if err := json.Unmarshal(message, &req); err != nil {
		log.Printf("ws: failed to parse client message: %v", err)
		return
	}

	switch req.Type {
	case "ping":
		c.sendJSON(map[string]string{"type": "pong"})

	case "scan_column":
		c.handleScanColumn(req)

	default:
		log.Printf("ws: unknown message type: %s", req.Type)
	}
}

func (c *Client) handleScanColumn(req ScanRequest) {
	world, ok := c.hub.worldFor(c.WorldID)
	if !ok {
		c.sendJSON(map[string]string{"type": "error", "message": "unknown world"})
		return
	}

	b := world.BiomeAt(req.X, req.Z)
	height := world.HeightAt(req.X, req.Z)

	samples := make([]ScanSample, 0, maxColumn)
	for y := scanYMin; y <= scanYMax; y += scanStep {
		density := world.CaveDensityAt(req.X, float64(y), req.Z)
		samples = append(samples, ScanSample{Y: y, Density: density, Solid: density >= 0.45})
	}

	biomeName := ""
	if b != nil {
		biomeName = b.Name
	}

	c.sendJSON(ScanResponse{
		Type:    "scan_result",
		X:       req.X,
		Z:       req.Z,
		Biome:   biomeName,
		Height:  height,
		Samples: samples,
	})
}
