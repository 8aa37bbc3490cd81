// Package session abstracts the real-time session runtime the control tier
// drives: channel topology, message delivery, and voice connections. The
// runtime itself lives in another process or library; the control tier only
// sees these capability interfaces.
package session

import "context"

// ChannelKind discriminates text from voice destinations.
type ChannelKind int

const (
	TextChannel ChannelKind = iota + 1
	VoiceChannel
)

// Channel is an addressable destination in the runtime's topology.
type Channel struct {
	ID      int64
	GuildID int64
	Kind    ChannelKind
	Name    string
	// CanSend reports whether the bot may post messages here.
	CanSend bool
}

// Guild is the runtime's top-level grouping for handles and playback.
type Guild struct {
	ID   int64
	Name string
}

// Source is the audio bound to a handle. Exactly one source is active per
// handle; binding a new one replaces any prior source.
type Source struct {
	Title      string
	StreamURL  string // remote stream to pull
	Path       string // local asset or scratch file
	PageURL    string
	Gain       float64
	Adjustable bool
}

// Runtime is the capability surface the control tier needs from the session
// process. Implementations must be safe for concurrent use.
type Runtime interface {
	// Identity returns the bot's display identity, empty when not signed in.
	Identity() string
	Channel(id int64) (Channel, bool)
	Guild(id int64) (Guild, bool)
	// TextChannels lists the guild's text channels the bot may post to.
	TextChannels(guildID int64) []Channel
	// Connect establishes a voice connection to ch and returns its handle.
	Connect(ctx context.Context, ch Channel) (Handle, error)
	SendMessage(ctx context.Context, channelID int64, content string) error
}

// Handle is one active voice connection. Its lifecycle is
// connected -> (playing <-> paused) -> connected -> disconnected, with at most
// one of playing/paused true at a time. Voice-affecting callers serialize
// through the Registry's guild lock.
type Handle interface {
	GuildID() int64
	ChannelID() int64
	Connected() bool
	// Move retargets the connection within the same guild.
	Move(ctx context.Context, channelID int64) error
	Disconnect(ctx context.Context) error
	// Play binds src and starts playback, replacing any prior source.
	Play(ctx context.Context, src Source) error
	Stop()
	Pause()
	Resume()
	Playing() bool
	Paused() bool
	// SetGain applies a fractional gain to the current source; it fails when
	// no source is bound or the source is not adjustable.
	SetGain(gain float64) error
}
