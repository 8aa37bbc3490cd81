package control

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/voxctl/voxctl/internal/auth"
	"github.com/voxctl/voxctl/internal/recovery"
	"github.com/voxctl/voxctl/internal/requestid"
)

// NewRouter builds the control tier's router. Ping stays outside the
// authenticated subrouter so the panel can probe reachability without the
// shared secret.
func NewRouter(h *Handler, internalKey string) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(recovery.Middleware)

	r.HandleFunc("/ctl/ping", h.Ping).Methods(http.MethodGet)

	ctl := r.PathPrefix("/ctl").Subrouter()
	ctl.Use(auth.RequireKey(auth.ControlKeyHeader, internalKey))
	ctl.HandleFunc("/say", h.Say).Methods(http.MethodPost)
	ctl.HandleFunc("/joinvoice", h.JoinVoice).Methods(http.MethodPost)
	ctl.HandleFunc("/leavevoice", h.LeaveVoice).Methods(http.MethodPost)
	ctl.HandleFunc("/play", h.Play).Methods(http.MethodPost)
	ctl.HandleFunc("/pause", h.Pause).Methods(http.MethodPost)
	ctl.HandleFunc("/resume", h.Resume).Methods(http.MethodPost)
	ctl.HandleFunc("/skip", h.Skip).Methods(http.MethodPost)
	ctl.HandleFunc("/stop", h.Stop).Methods(http.MethodPost)
	ctl.HandleFunc("/volume", h.Volume).Methods(http.MethodPost)
	ctl.HandleFunc("/sfx", h.Sfx).Methods(http.MethodPost)
	ctl.HandleFunc("/speak", h.Speak).Methods(http.MethodPost)
	ctl.HandleFunc("/equipmentcheck", h.EquipmentCheck).Methods(http.MethodPost)
	ctl.HandleFunc("/equipmentchecksoundoff", h.EquipmentCheckSoundOff).Methods(http.MethodPost)
	ctl.HandleFunc("/resetmemory", h.ResetMemory).Methods(http.MethodPost)
	ctl.HandleFunc("/forget", h.Forget).Methods(http.MethodPost)
	ctl.HandleFunc("/persona", h.Persona).Methods(http.MethodPost)
	ctl.HandleFunc("/voice", h.Voice).Methods(http.MethodPost)
	return r
}
