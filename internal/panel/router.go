package panel

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voxctl/voxctl/internal/auth"
	"github.com/voxctl/voxctl/internal/recovery"
	"github.com/voxctl/voxctl/internal/requestid"
)

// NewRouter builds the panel's router. Ping stays outside the authenticated
// subrouter so load balancers can probe without a key; everything else
// requires the external API key before any payload parsing.
func NewRouter(h *Handler, apiKey string) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(recovery.Middleware)

	r.HandleFunc("/api/ping", h.Ping).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireKey(auth.PanelKeyHeader, apiKey))
	api.HandleFunc("/say", h.Say).Methods(http.MethodPost)
	api.HandleFunc("/joinvoice", h.JoinVoice).Methods(http.MethodPost)
	api.HandleFunc("/leavevoice", h.LeaveVoice).Methods(http.MethodPost)
	api.HandleFunc("/play", h.Play).Methods(http.MethodPost)
	api.HandleFunc("/pause", h.Pause).Methods(http.MethodPost)
	api.HandleFunc("/resume", h.Resume).Methods(http.MethodPost)
	api.HandleFunc("/skip", h.Skip).Methods(http.MethodPost)
	api.HandleFunc("/stop", h.Stop).Methods(http.MethodPost)
	api.HandleFunc("/volume", h.Volume).Methods(http.MethodPost)
	api.HandleFunc("/sfx", h.Sfx).Methods(http.MethodPost)
	api.HandleFunc("/speak", h.Speak).Methods(http.MethodPost)
	api.HandleFunc("/equipmentcheck", h.EquipmentCheck).Methods(http.MethodPost)
	api.HandleFunc("/equipmentchecksoundoff", h.EquipmentCheckSoundOff).Methods(http.MethodPost)
	api.HandleFunc("/resetmemory", h.ResetMemory).Methods(http.MethodPost)
	api.HandleFunc("/forget", h.Forget).Methods(http.MethodPost)
	api.HandleFunc("/persona", h.Persona).Methods(http.MethodPost)
	api.HandleFunc("/voice", h.Voice).Methods(http.MethodPost)
	return r
}
