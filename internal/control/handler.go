// Package control implements the private-tier HTTP surface under /ctl. Every
// route except ping requires the internal shared secret; the handlers decode
// the shared command schema, validate, and dispatch to the services layer.
package control

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/respond"
	"github.com/voxctl/voxctl/internal/services"
	"github.com/voxctl/voxctl/internal/session"
	"github.com/voxctl/voxctl/internal/validate"
)

// Services bundles the command execution services the handlers dispatch to.
type Services struct {
	Message  *services.MessageService
	Voice    *services.VoiceService
	Playback *services.PlaybackService
	Speech   *services.SpeechService
	Memory   *services.MemoryService
	Settings *services.SettingsService
}

// Handler holds the control tier's route handlers.
type Handler struct {
	rt    session.Runtime
	svc   Services
	ready func() bool
	log   zerolog.Logger
}

func NewHandler(rt session.Runtime, svc Services, ready func() bool, log zerolog.Logger) *Handler {
	return &Handler{rt: rt, svc: svc, ready: ready, log: log}
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

func writeOK(w http.ResponseWriter) {
	respond.WriteJSON(w, http.StatusOK, model.OK{OK: true})
}

// Ping reports bot identity and runtime readiness. It is the only
// unauthenticated route on this tier.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, model.PingResponse{
		OK:    true,
		Bot:   h.rt.Identity(),
		Ready: h.ready(),
	})
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
	if err := h.svc.Message.Say(r.Context(), cmd.ChannelID, cmd.Message); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
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
	if err := h.svc.Voice.Join(r.Context(), cmd.VoiceChannelID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
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
	if err := h.svc.Voice.Leave(r.Context(), cmd.GuildID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
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
	title, err := h.svc.Playback.Play(r.Context(), cmd.URL, cmd.VoiceChannelID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, model.PlayResponse{OK: true, Title: title})
}

func (h *Handler) Pause(w http.ResponseWriter, r *http.Request) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	if err := h.svc.Playback.Pause(r.Context(), guildID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
}

func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	if err := h.svc.Playback.Resume(r.Context(), guildID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
}

func (h *Handler) Skip(w http.ResponseWriter, r *http.Request) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	if err := h.svc.Playback.Skip(r.Context(), guildID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
}

func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	guildID, ok := queryID(w, r, "guild_id")
	if !ok {
		return
	}
	if err := h.svc.Playback.Stop(r.Context(), guildID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
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
	level, err := h.svc.Playback.SetVolume(r.Context(), guildID, cmd.Level)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, model.VolumeResponse{OK: true, Level: level})
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
	if err := h.svc.Playback.PlaySfx(r.Context(), cmd.VoiceChannelID, cmd.Name); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
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
	if err := h.svc.Speech.Speak(r.Context(), cmd.VoiceChannelID, cmd.Text); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
}

func (h *Handler) EquipmentCheck(w http.ResponseWriter, r *http.Request) {
	h.equipmentCheck(w, r, false)
}

func (h *Handler) EquipmentCheckSoundOff(w http.ResponseWriter, r *http.Request) {
	h.equipmentCheck(w, r, true)
}

func (h *Handler) equipmentCheck(w http.ResponseWriter, r *http.Request, soundOff bool) {
	var cmd model.EquipmentCheckCommand
	if !decode(w, r, &cmd) {
		return
	}
	if err := validate.EquipmentCheck(cmd); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := h.svc.Speech.EquipmentCheck(r.Context(), cmd, soundOff); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	writeOK(w)
}

func (h *Handler) ResetMemory(w http.ResponseWriter, r *http.Request) {
	channelID, ok := queryID(w, r, "channel_id")
	if !ok {
		return
	}
	h.svc.Memory.ResetChannel(channelID)
	writeOK(w)
}

func (h *Handler) Forget(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}
	h.svc.Memory.ForgetUser(userID)
	writeOK(w)
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
	mode, err := h.svc.Settings.SetPersona(cmd.Mode)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, model.PersonaResponse{OK: true, Mode: mode})
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
	name, err := h.svc.Settings.SetVoice(cmd.Name)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, model.VoiceResponse{OK: true, Voice: name})
}
