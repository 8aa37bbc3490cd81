package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Probe both tiers' reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/ping")
		},
	})

	// say
	var sayChannel int64
	sayCmd := &cobra.Command{
		Use:   "say MESSAGE",
		Short: "Post a message to a text channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/say", map[string]interface{}{
				"channel_id": sayChannel,
				"message":    args[0],
			})
		},
	}
	sayCmd.Flags().Int64VarP(&sayChannel, "channel", "c", 0, "Text channel ID (required)")
	_ = sayCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(sayCmd)

	// join / leave
	var joinChannel int64
	joinCmd := &cobra.Command{
		Use:   "join",
		Short: "Join (or retarget to) a voice channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/joinvoice", map[string]interface{}{"voice_channel_id": joinChannel})
		},
	}
	joinCmd.Flags().Int64VarP(&joinChannel, "channel", "c", 0, "Voice channel ID (required)")
	_ = joinCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(joinCmd)

	var leaveGuild int64
	leaveCmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave the guild's voice channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/leavevoice", map[string]interface{}{"guild_id": leaveGuild})
		},
	}
	leaveCmd.Flags().Int64VarP(&leaveGuild, "guild", "g", 0, "Guild ID (required)")
	_ = leaveCmd.MarkFlagRequired("guild")
	rootCmd.AddCommand(leaveCmd)

	// play
	var playChannel int64
	playCmd := &cobra.Command{
		Use:   "play URL",
		Short: "Resolve a media URL and play it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"url": args[0]}
			if playChannel != 0 {
				payload["voice_channel_id"] = playChannel
			}
			return doPost("/api/play", payload)
		},
	}
	playCmd.Flags().Int64VarP(&playChannel, "channel", "c", 0, "Voice channel ID (optional; defaults to the single connected session)")
	rootCmd.AddCommand(playCmd)

	// pause / resume / skip / stop
	for _, op := range []struct{ use, short string }{
		{"pause", "Pause playback"},
		{"resume", "Resume paused playback"},
		{"skip", "Skip the current source"},
		{"stop", "Stop playback"},
	} {
		op := op
		var guild int64
		c := &cobra.Command{
			Use:   op.use,
			Short: op.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return doPost(fmt.Sprintf("/api/%s?guild_id=%d", op.use, guild), nil)
			},
		}
		c.Flags().Int64VarP(&guild, "guild", "g", 0, "Guild ID (required)")
		_ = c.MarkFlagRequired("guild")
		rootCmd.AddCommand(c)
	}

	// volume
	var volGuild int64
	var volLevel int
	volumeCmd := &cobra.Command{
		Use:   "volume",
		Short: "Set playback volume (0-200)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(fmt.Sprintf("/api/volume?guild_id=%d", volGuild),
				map[string]interface{}{"level": volLevel})
		},
	}
	volumeCmd.Flags().Int64VarP(&volGuild, "guild", "g", 0, "Guild ID (required)")
	volumeCmd.Flags().IntVarP(&volLevel, "level", "l", 100, "Volume level percent")
	_ = volumeCmd.MarkFlagRequired("guild")
	rootCmd.AddCommand(volumeCmd)

	// sfx
	var sfxChannel int64
	sfxCmd := &cobra.Command{
		Use:   "sfx NAME",
		Short: "Play a named sound effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/sfx", map[string]interface{}{
				"voice_channel_id": sfxChannel,
				"name":             args[0],
			})
		},
	}
	sfxCmd.Flags().Int64VarP(&sfxChannel, "channel", "c", 0, "Voice channel ID (required)")
	_ = sfxCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(sfxCmd)

	// speak
	var speakChannel int64
	speakCmd := &cobra.Command{
		Use:   "speak TEXT",
		Short: "Synthesize text and play it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/speak", map[string]interface{}{
				"voice_channel_id": speakChannel,
				"text":             args[0],
			})
		},
	}
	speakCmd.Flags().Int64VarP(&speakChannel, "channel", "c", 0, "Voice channel ID (required)")
	_ = speakCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(speakCmd)

	// equipment-check
	var eqText, eqVoice int64
	var eqDescriptor string
	var eqSoundOff bool
	eqCmd := &cobra.Command{
		Use:   "equipment-check",
		Short: "Post a generated readiness briefing",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"text_channel_id": eqText}
			if eqVoice != 0 {
				payload["voice_channel_id"] = eqVoice
			}
			if eqDescriptor != "" {
				payload["descriptor"] = eqDescriptor
			}
			path := "/api/equipmentcheck"
			if eqSoundOff {
				path = "/api/equipmentchecksoundoff"
			}
			return doPost(path, payload)
		},
	}
	eqCmd.Flags().Int64VarP(&eqText, "channel", "c", 0, "Text channel ID (required)")
	eqCmd.Flags().Int64Var(&eqVoice, "voice-channel", 0, "Voice channel ID (sound-off audio target)")
	eqCmd.Flags().StringVarP(&eqDescriptor, "style", "s", "", "Briefing style descriptor")
	eqCmd.Flags().BoolVar(&eqSoundOff, "sound-off", false, "Use the sound-off variant")
	_ = eqCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(eqCmd)

	// reset-memory / forget
	var resetChannel int64
	resetCmd := &cobra.Command{
		Use:   "reset-memory",
		Short: "Clear a channel's conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(fmt.Sprintf("/api/resetmemory?channel_id=%d", resetChannel), nil)
		},
	}
	resetCmd.Flags().Int64VarP(&resetChannel, "channel", "c", 0, "Text channel ID (required)")
	_ = resetCmd.MarkFlagRequired("channel")
	rootCmd.AddCommand(resetCmd)

	var forgetUser int64
	forgetCmd := &cobra.Command{
		Use:   "forget",
		Short: "Clear a user's conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost(fmt.Sprintf("/api/forget?user_id=%d", forgetUser), nil)
		},
	}
	forgetCmd.Flags().Int64VarP(&forgetUser, "user", "u", 0, "User ID (required)")
	_ = forgetCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(forgetCmd)

	// persona / voice
	personaCmd := &cobra.Command{
		Use:   "persona MODE",
		Short: "Switch the active persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/persona", map[string]interface{}{"mode": args[0]})
		},
	}
	rootCmd.AddCommand(personaCmd)

	voiceCmd := &cobra.Command{
		Use:   "voice NAME",
		Short: "Switch the synthesis voice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/voice", map[string]interface{}{"name": args[0]})
		},
	}
	rootCmd.AddCommand(voiceCmd)
}
