package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"galaxygenerator/config"
	"galaxygenerator/galaxy"
)

// StatusData is the periodic broadcast to tuning clients: what the
// last generation pass produced and which generation the renderer is
// currently showing.
type StatusData struct {
	Type       string  `json:"type"`
	Generation uint64  `json:"generation"`
	Particles  int     `json:"particles"`
	Lanes      int     `json:"lanes"`
	StarCount  int     `json:"starCount"`
	DustCount  int     `json:"dustCount"`
	Radius     float64 `json:"galaxyRadius"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins for development
	},
}

// ParameterServer exposes the generation parameters over a websocket
// so an external UI can tune the galaxy while the sandbox runs.
// Incoming JSON fields mutate the store (setting its dirty flag); the
// pipeline picks the change up on its next tick.
type ParameterServer struct {
	store    *config.Store
	pipeline *galaxy.Pipeline

	clients      map[*websocket.Conn]*sync.Mutex
	clientsMutex sync.RWMutex
}

func NewParameterServer(store *config.Store, pipeline *galaxy.Pipeline) *ParameterServer {
	return &ParameterServer{
		store:    store,
		pipeline: pipeline,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start serves the websocket endpoint and the periodic status
// broadcast. It blocks, so run it on its own goroutine.
func (s *ParameterServer) Start(port, updateIntervalMs int) {
	go s.broadcastLoop(time.Duration(updateIntervalMs) * time.Millisecond)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	fmt.Printf("Parameter server on ws://localhost:%d/ws\n", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
}

func (s *ParameterServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.clientsMutex.Lock()
	s.clients[conn] = connMutex
	s.clientsMutex.Unlock()
	defer func() {
		s.clientsMutex.Lock()
		delete(s.clients, conn)
		s.clientsMutex.Unlock()
	}()

	s.sendStatus(conn, connMutex)

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("WebSocket read error:", err)
			break
		}
		s.applyMessage(msg)
	}
}

// applyMessage folds recognized fields into the parameter store. One
// store mutation per message, so a multi-field update triggers a
// single regeneration.
func (s *ParameterServer) applyMessage(msg map[string]interface{}) {
	s.store.Mutate(func(p *config.GenerationParameters) {
		if v, ok := msg["starCount"].(float64); ok {
			fmt.Printf("STAR COUNT: %d -> %d\n", p.StarCount, int(v))
			p.StarCount = int(v)
		}
		if v, ok := msg["dustCount"].(float64); ok {
			p.DustCount = int(v)
		}
		if v, ok := msg["filamentCount"].(float64); ok {
			p.FilamentCount = int(v)
		}
		if v, ok := msg["systemCount"].(float64); ok {
			p.SystemCount = int(v)
		}
		if v, ok := msg["galaxyRadius"].(float64); ok {
			fmt.Printf("GALAXY RADIUS: %.0f -> %.0f pc\n", p.GalaxyRadius, v)
			p.GalaxyRadius = v
		}
		if v, ok := msg["coreRadius"].(float64); ok {
			p.CoreRadius = v
		}
		if v, ok := msg["ex1"].(float64); ok {
			p.Ex1 = v
		}
		if v, ok := msg["ex2"].(float64); ok {
			p.Ex2 = v
		}
		if v, ok := msg["angleCoefficient"].(float64); ok {
			p.AngleCoefficient = v
		}
		if v, ok := msg["perturbationCount"].(float64); ok {
			p.PerturbationCount = int(v)
		}
		if v, ok := msg["perturbationAmplitude"].(float64); ok {
			p.PerturbationAmplitude = v
		}
		if v, ok := msg["timeStep"].(float64); ok {
			fmt.Printf("TIME STEP: %.0f -> %.0f yr/frame\n", p.TimeStep, v)
			p.TimeStep = v
		}
		if v, ok := msg["seed"].(float64); ok {
			p.Seed = int64(v)
		}
		if v, ok := msg["showStars"].(bool); ok {
			p.ShowStars = v
		}
		if v, ok := msg["showDust"].(bool); ok {
			p.ShowDust = v
		}
		if v, ok := msg["showFilaments"].(bool); ok {
			p.ShowFilaments = v
		}
	})
}

// status reads only the pipeline's published pass stats and the
// mutex-guarded store. The broadcaster runs on its own goroutine, so
// it must never touch the arenas the simulation thread rewrites.
func (s *ParameterServer) status() StatusData {
	stats, gen := s.pipeline.Stats()
	params := s.store.Peek()
	return StatusData{
		Type:       "status",
		Generation: gen,
		Particles:  stats.Stars + stats.Dust + stats.Filaments,
		Lanes:      stats.Lanes,
		StarCount:  params.StarCount,
		DustCount:  params.DustCount,
		Radius:     params.GalaxyRadius,
	}
}

func (s *ParameterServer) sendStatus(conn *websocket.Conn, mutex *sync.Mutex) {
	data := s.status()
	mutex.Lock()
	conn.WriteJSON(data)
	mutex.Unlock()
}

func (s *ParameterServer) broadcastLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		data := s.status()

		s.clientsMutex.RLock()
		var failed []*websocket.Conn
		for client, mutex := range s.clients {
			mutex.Lock()
			err := client.WriteJSON(data)
			mutex.Unlock()
			if err != nil {
				log.Println("WebSocket write error:", err)
				client.Close()
				failed = append(failed, client)
			}
		}
		s.clientsMutex.RUnlock()

		if len(failed) > 0 {
			s.clientsMutex.Lock()
			for _, client := range failed {
				delete(s.clients, client)
			}
			s.clientsMutex.Unlock()
		}
	}
}
