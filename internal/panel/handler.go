package panel

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/respond"
	"github.com/voxctl/voxctl/internal/validate"
)

// Handler holds the panel's route handlers. Each one decodes and validates
// the shared command schema before anything crosses the internal boundary, so
// the control tier never sees a payload the panel has not vetted.
type Handler struct {
	fwd *Forwarder
	log zerolog.Logger
}

func NewHandler(fwd *Forwarder, log zerolog.Logger) *Handler {
	return &Handler{fwd: fwd, log: log}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respond.WriteBadRequest(w, "invalid JSON payload")
		return false
	}
	return true
}

func queryID(w http.ResponseWriter, r *http.Request, field string) (int64, bool) {
	v, err := validate.ID(field, r.URL.Query().Get(field))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return 0, false
	}
	return v, true
}

// relay forwards the command and mirrors the control tier's verdict verbatim.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request, path string, body interface{}) {
	status, raw, err := h.fwd.Forward(r.Context(), http.MethodPost, path, body)
	if err != nil {
		h.log.Warn().Err(err).Str("path", path).Msg("forward failed")
		respond.WriteServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// Ping probes the control tier and reports both tiers' reachability in one
// response. The panel answering at all proves this tier; the forwarded body
// proves the other.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	status, raw, err := h.fwd.Forward(r.Context(), http.MethodGet, "/ctl/ping", nil)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func (h *Handler) Say(w http.ResponseWriter, r *http.Request) {
	var cmd model.SayCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.Say(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/say", cmd)
}

func (h *Handler) JoinVoice(w http.ResponseWriter, r *http.Request) {
	var cmd model.JoinVoiceCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.JoinVoice(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/joinvoice", cmd)
}

func (h *Handler) LeaveVoice(w http.ResponseWriter, r *http.Request) {
	var cmd model.LeaveVoiceCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.LeaveVoice(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/leavevoice", cmd)
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	var cmd model.PlayMediaCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.PlayMedia(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/play", cmd)
}

func (h *Handler) Pause(w http.ResponseWriter, r *http.Request) {
	h.relayTransport(w, r, "pause")
}

func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	h.relayTransport(w, r, "resume")
}

func (h *Handler) Skip(w http.ResponseWriter, r *http.Request) {
	h.relayTransport(w, r, "skip")
}

func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	h.relayTransport(w, r, "stop")
}

func (h *Handler) relayTransport(w http.ResponseWriter, r *http.Request, op string) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	h.relay(w, r, fmt.Sprintf("/ctl/%s?guild_id=%d", op, guildID), nil)
}

func (h *Handler) Volume(w http.ResponseWriter, r *http.Request) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	var cmd model.SetVolumeCommand
	if !decode(w, r, &cmd) {
		return
	}
	h.relay(w, r, fmt.Sprintf("/ctl/volume?guild_id=%d", guildID), cmd)
}

func (h *Handler) Sfx(w http.ResponseWriter, r *http.Request) {
	var cmd model.PlaySfxCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.PlaySfx(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/sfx", cmd)
}

func (h *Handler) Speak(w http.ResponseWriter, r *http.Request) {
	var cmd model.SpeakCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.Speak(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/speak", cmd)
}

func (h *Handler) EquipmentCheck(w http.ResponseWriter, r *http.Request) {
	h.equipmentCheck(w, r, "/ctl/equipmentcheck")
}

func (h *Handler) EquipmentCheckSoundOff(w http.ResponseWriter, r *http.Request) {
	h.equipmentCheck(w, r, "/ctl/equipmentchecksoundoff")
}

func (h *Handler) equipmentCheck(w http.ResponseWriter, r *http.Request, path string) {
	var cmd model.EquipmentCheckCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.EquipmentCheck(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, path, cmd)
}

func (h *Handler) ResetMemory(w http.ResponseWriter, r *http.Request) {
	channelID, ok := queryID(w, r, "channel_id")
	if !ok {
		return
	}
	h.relay(w, r, fmt.Sprintf("/ctl/resetmemory?channel_id=%d", channelID), nil)
}

func (h *Handler) Forget(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}
	h.relay(w, r, fmt.Sprintf("/ctl/forget?user_id=%d", userID), nil)
}

func (h *Handler) Persona(w http.ResponseWriter, r *http.Request) {
	var cmd model.SetPersonaCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.SetPersona(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/persona", cmd)
}

func (h *Handler) Voice(w http.ResponseWriter, r *http.Request) {
	var cmd model.SetVoiceCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.SetVoice(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	h.relay(w, r, "/ctl/voice", cmd)
}
