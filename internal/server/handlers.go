// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/woozymasta/clustermap/internal/geo"
	"github.com/woozymasta/clustermap/internal/interact"
	"github.com/woozymasta/clustermap/internal/loader"
	"github.com/woozymasta/clustermap/internal/overlay"
	"github.com/woozymasta/clustermap/internal/style"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Viewport used by fit requests without explicit dimensions.
const (
	defaultWidth  = 1024
	defaultHeight = 768
)

type layerInfo struct {
	Name     style.Kind `json:"name"`
	Error    string     `json:"error,omitempty"`
	Features int        `json:"features"`
	Active   bool       `json:"active"`
	Loaded   bool       `json:"loaded"`
}

type activeRequest struct {
	Layer string `json:"layer"`
}

type activeResponse struct {
	Layer  style.Kind      `json:"layer"`
	Legend json.RawMessage `json:"legend,omitempty"`
}

// Routes registers every handler on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/map", s.HandleMap)
	mux.HandleFunc("GET /api/layers", s.HandleLayers)
	mux.HandleFunc("GET /api/active", s.HandleActive)
	mux.HandleFunc("PUT /api/active", s.HandleSetActive)
	mux.HandleFunc("POST /api/active/toggle", s.HandleToggle)
	mux.HandleFunc("GET /api/legend", s.HandleLegend)
	mux.HandleFunc("GET /api/layers/{layer}/features", s.HandleFeatures)
	mux.HandleFunc("GET /api/layers/{layer}/raw", s.HandleRaw)
	mux.HandleFunc("PUT /api/layers/{layer}/features/{id}/hover", s.HandleHover)
	mux.HandleFunc("DELETE /api/layers/{layer}/features/{id}/hover", s.HandleHover)
	mux.HandleFunc("GET /api/layers/{layer}/features/{id}/fit", s.HandleFit)
	return mux
}

// HandleMap serves base map settings: tiles, attribution, zoom and padding.
// The active layer is served by HandleActive.
func (s *ServerContext) HandleMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "application/json", s.Config)
}

// HandleLayers lists registered layers with their load state.
func (s *ServerContext) HandleLayers(w http.ResponseWriter, r *http.Request) {
	active := s.State.Active()
	layers := s.State.Layers()

	out := make([]layerInfo, 0, len(layers))
	for _, l := range layers {
		info := layerInfo{
			Name:     l.Kind,
			Active:   l.Kind == active,
			Loaded:   l.Collection != nil,
			Features: l.Collection.Len(),
		}
		if l.Err != nil {
			info.Error = l.Err.Error()
		}
		out = append(out, info)
	}

	writeJSON(w, "application/json", out)
}

// HandleActive reports the active layer.
func (s *ServerContext) HandleActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "application/json", activeResponse{Layer: s.State.Active()})
}

// HandleSetActive selects the active layer from a {"layer": ...} body.
func (s *ServerContext) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var req activeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	kind, err := style.ParseKind(req.Layer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.State.SetActive(kind)
	s.writeActive(w)
}

// HandleToggle switches to the other layer.
func (s *ServerContext) HandleToggle(w http.ResponseWriter, r *http.Request) {
	s.State.Toggle()
	s.writeActive(w)
}

func (s *ServerContext) writeActive(w http.ResponseWriter) {
	resp := activeResponse{Layer: s.State.Active()}
	if c := s.Legend.Current(); c != nil {
		if data, err := json.Marshal(c); err == nil {
			resp.Legend = data
		}
	}
	writeJSON(w, "application/json", resp)
}

// HandleLegend serves every attached legend control.
func (s *ServerContext) HandleLegend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, "application/json", s.Panel.Controls())
}

// HandleFeatures serves the styled feature collection of a layer.
// A layer that failed to load yields an empty collection.
func (s *ServerContext) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	layer, ok := s.layer(w, r)
	if !ok {
		return
	}

	var fc *geojson.FeatureCollection
	if layer.Collection != nil {
		fc = layer.Collection.Features
	}

	writeJSON(w, "application/geo+json", interact.Decorate(layer.Kind, fc, s.Hover))
}

// HandleRaw serves the layer document exactly as fetched, minified.
func (s *ServerContext) HandleRaw(w http.ResponseWriter, r *http.Request) {
	layer, ok := s.layer(w, r)
	if !ok {
		return
	}
	if layer.Collection == nil {
		http.NotFound(w, r)
		return
	}

	body := layer.Collection.Raw
	if compact, err := s.Minifier.Bytes("application/json", body); err == nil {
		body = compact
	} else {
		log.Debug().Err(err).Str("layer", string(layer.Kind)).Msg("Serving raw document unminified")
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(body)
}

// HandleHover applies pointer-enter (PUT) or pointer-leave (DELETE) and
// returns the resulting presentation.
func (s *ServerContext) HandleHover(w http.ResponseWriter, r *http.Request) {
	layer, f, ok := s.feature(w, r)
	if !ok {
		return
	}

	id := loader.FeatureID(f)
	if r.Method == http.MethodDelete {
		s.Hover.Leave(layer.Kind, id)
	} else {
		s.Hover.Enter(layer.Kind, id)
	}

	writeJSON(w, "application/json", interact.Present(layer.Kind, f, s.Hover.Hovered(layer.Kind, id)))
}

// HandleFit returns the viewport framing a clicked feature.
func (s *ServerContext) HandleFit(w http.ResponseWriter, r *http.Request) {
	_, f, ok := s.feature(w, r)
	if !ok {
		return
	}

	size := geo.Size{
		Width:  queryInt(r, "width", defaultWidth),
		Height: queryInt(r, "height", defaultHeight),
	}

	vp, err := interact.Fit(f, size, s.Config.PaddingPx(), s.Config.MaxZoom)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, "application/json", vp)
}

func (s *ServerContext) layer(w http.ResponseWriter, r *http.Request) (overlay.Layer, bool) {
	kind, err := style.ParseKind(r.PathValue("layer"))
	if err != nil {
		http.NotFound(w, r)
		return overlay.Layer{}, false
	}

	layer, ok := s.State.Layer(kind)
	if !ok {
		http.NotFound(w, r)
		return overlay.Layer{}, false
	}

	return layer, true
}

func (s *ServerContext) feature(w http.ResponseWriter, r *http.Request) (overlay.Layer, *geojson.Feature, bool) {
	layer, ok := s.layer(w, r)
	if !ok {
		return overlay.Layer{}, nil, false
	}

	f, ok := layer.Collection.Feature(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return overlay.Layer{}, nil, false
	}

	return layer, f, true
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
