package session

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DevRuntime is an in-memory session runtime for local development. It holds
// a seeded topology, records sent messages, and fabricates voice handles, so
// the control tier can run without a live bot process.
type DevRuntime struct {
	log      zerolog.Logger
	mu       sync.Mutex
	guilds   map[int64]Guild
	channels map[int64]Channel
	sent     map[int64][]string
}

func NewDevRuntime(log zerolog.Logger) *DevRuntime {
	return &DevRuntime{
		log:      log,
		guilds:   make(map[int64]Guild),
		channels: make(map[int64]Channel),
		sent:     make(map[int64][]string),
	}
}

// AddGuild seeds a guild into the topology.
func (rt *DevRuntime) AddGuild(g Guild) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.guilds[g.ID] = g
}

// AddChannel seeds a channel into the topology.
func (rt *DevRuntime) AddChannel(ch Channel) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.channels[ch.ID] = ch
}

func (rt *DevRuntime) Identity() string { return "voxctl-dev" }

func (rt *DevRuntime) Channel(id int64) (Channel, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	ch, ok := rt.channels[id]
	return ch, ok
}

func (rt *DevRuntime) Guild(id int64) (Guild, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	g, ok := rt.guilds[id]
	return g, ok
}

func (rt *DevRuntime) TextChannels(guildID int64) []Channel {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	var out []Channel
	for _, ch := range rt.channels {
		if ch.GuildID == guildID && ch.Kind == TextChannel {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (rt *DevRuntime) Connect(ctx context.Context, ch Channel) (Handle, error) {
	rt.log.Info().Int64("guild", ch.GuildID).Int64("channel", ch.ID).Msg("dev runtime: connect")
	return &DevHandle{guildID: ch.GuildID, channelID: ch.ID, connected: true, log: rt.log}, nil
}

func (rt *DevRuntime) SendMessage(ctx context.Context, channelID int64, content string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, ok := rt.channels[channelID]; !ok {
		return errors.Errorf("channel %d not found", channelID)
	}
	rt.sent[channelID] = append(rt.sent[channelID], content)
	rt.log.Info().Int64("channel", channelID).Int("len", len(content)).Msg("dev runtime: message sent")
	return nil
}

// Messages returns everything sent to a channel, oldest first.
func (rt *DevRuntime) Messages(channelID int64) []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.sent[channelID]...)
}

// HealthPing reports the dev runtime as always reachable.
func (rt *DevRuntime) HealthPing(ctx context.Context) error { return nil }

// DevHandle mimics a voice connection's state machine in memory.
type DevHandle struct {
	log       zerolog.Logger
	mu        sync.Mutex
	guildID   int64
	channelID int64
	connected bool
	playing   bool
	paused    bool
	src       *Source
}

func (h *DevHandle) GuildID() int64 { return h.guildID }

func (h *DevHandle) ChannelID() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.channelID
}

func (h *DevHandle) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connected
}

func (h *DevHandle) Move(ctx context.Context, channelID int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.connected {
		return errors.New("handle disconnected")
	}
	h.channelID = channelID
	return nil
}

func (h *DevHandle) Disconnect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = false
	h.playing = false
	h.paused = false
	h.src = nil
	return nil
}

func (h *DevHandle) Play(ctx context.Context, src Source) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.connected {
		return errors.New("handle disconnected")
	}
	s := src
	h.src = &s
	h.playing = true
	h.paused = false
	h.log.Info().Int64("guild", h.guildID).Str("title", src.Title).Msg("dev runtime: play")
	return nil
}

func (h *DevHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playing = false
	h.paused = false
}

func (h *DevHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.playing {
		h.playing = false
		h.paused = true
	}
}

func (h *DevHandle) Resume() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.paused {
		h.paused = false
		h.playing = true
	}
}

func (h *DevHandle) Playing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

func (h *DevHandle) Paused() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paused
}

func (h *DevHandle) SetGain(gain float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.src == nil || !h.src.Adjustable {
		return errors.New("current source not adjustable")
	}
	h.src.Gain = gain
	return nil
}

// CurrentSource returns a copy of the bound source for inspection in tests.
func (h *DevHandle) CurrentSource() (Source, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.src == nil {
		return Source{}, false
	}
	return *h.src, true
}
