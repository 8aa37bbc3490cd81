package panel

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/voxctl/voxctl/internal/ai"
	"github.com/voxctl/voxctl/internal/control"
	"github.com/voxctl/voxctl/internal/memory"
	"github.com/voxctl/voxctl/internal/persona"
	"github.com/voxctl/voxctl/internal/services"
	"github.com/voxctl/voxctl/internal/session"
	"github.com/voxctl/voxctl/internal/speech"
)

// Full-chain tests: a real panel in front of a real control tier backed by
// the in-memory dev runtime, with no AI endpoints configured.
func newChain(t *testing.T) (*httptest.Server, *session.DevRuntime) {
	t.Helper()
	rt := session.NewDevRuntime(zerolog.Nop())
	rt.AddGuild(session.Guild{ID: 1, Name: "alpha"})
	rt.AddChannel(session.Channel{ID: 123, GuildID: 1, Kind: session.TextChannel, Name: "general", CanSend: true})
	rt.AddChannel(session.Channel{ID: 200, GuildID: 1, Kind: session.VoiceChannel, Name: "voice-a"})

	reg := session.NewRegistry()
	voice := services.NewVoiceService(rt, reg)
	msg := services.NewMessageService(rt)
	voices := speech.NewVoiceState("alloy")
	sp := services.NewSpeechService(reg, voice, msg, ai.Noop{}, speech.Noop{}, voices, t.TempDir(), zerolog.Nop())
	mem := services.NewMemoryService(memory.NewStore())
	settings := services.NewSettingsService(persona.NewState("tactical"), voices)

	ctlHandler := control.NewHandler(rt, control.Services{
		Message:  msg,
		Voice:    voice,
		Playback: services.NewPlaybackService(rt, reg, voice, nil, "sounds", zerolog.Nop()),
		Speech:   sp,
		Memory:   mem,
		Settings: settings,
	}, func() bool { return true }, zerolog.Nop())
	ctlSrv := httptest.NewServer(control.NewRouter(ctlHandler, "internal-secret"))
	t.Cleanup(ctlSrv.Close)

	fwd := NewForwarder(ctlSrv.URL, "internal-secret", 5*time.Second)
	panelSrv := httptest.NewServer(NewRouter(NewHandler(fwd, zerolog.Nop()), testAPIKey))
	t.Cleanup(panelSrv.Close)
	return panelSrv, rt
}

func TestChainSay(t *testing.T) {
	srv, rt := newChain(t)

	code, raw := do(t, srv, http.MethodPost, "/api/say", testAPIKey, map[string]interface{}{"channel_id": 123, "message": "roger"})
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"ok":true}`, string(raw))
	require.Equal(t, []string{"roger"}, rt.Messages(123))

	code, raw = do(t, srv, http.MethodPost, "/api/say", testAPIKey, map[string]interface{}{"channel_id": 999999, "message": "roger"})
	require.Equal(t, http.StatusNotFound, code)
	require.Contains(t, string(raw), "999999")
}

func TestChainEquipmentCheckFallsBackWithoutAI(t *testing.T) {
	srv, rt := newChain(t)

	code, raw := do(t, srv, http.MethodPost, "/api/equipmentcheck", testAPIKey, map[string]interface{}{"text_channel_id": 123})
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"ok":true}`, string(raw))

	msgs := rt.Messages(123)
	require.Len(t, msgs, 1)
	require.Equal(t, "**EQUIPMENT CHECK - COMMAND FAILED**\nFallback briefing activated.", msgs[0])
}

func TestChainSpeakFailsWithoutTTS(t *testing.T) {
	srv, _ := newChain(t)

	code, raw := do(t, srv, http.MethodPost, "/api/speak", testAPIKey, map[string]interface{}{"voice_channel_id": 200, "text": "hello"})
	require.Equal(t, http.StatusInternalServerError, code)
	require.Contains(t, string(raw), "speech synthesis failed")
}

func TestChainPing(t *testing.T) {
	srv, _ := newChain(t)

	code, raw := do(t, srv, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, string(raw), `"bot":"voxctl-dev"`)
}
