package config

import (
	"time"
)

// KickSettings holds the Kick account monitoring settings.
type KickSettings struct {
	// Username is the Kick channel to watch.
	Username string
	// CheckInterval is the polling period (kick.check_interval, seconds).
	CheckInterval time.Duration
	// EnableNotifications toggles desktop notifications on status changes.
	EnableNotifications bool
}

// DiscordSettings holds the Discord rich presence settings.
type DiscordSettings struct {
	// ClientID is the Discord application ID used for rich presence.
	ClientID string
	// EnableRichPresence toggles publishing presence to Discord.
	EnableRichPresence bool
}

// GUISettings holds window and tray preferences.
type GUISettings struct {
	Theme          string
	StartMinimized bool
	MinimizeToTray bool
}

// LoggingSettings holds the log level and optional log file.
type LoggingSettings struct {
	// Level is a level name such as INFO or DEBUG.
	Level string
	// File is the log file path; empty when logging.file is null.
	File string
}

// Settings is a typed snapshot of the well-known sections of a Store.
type Settings struct {
	Kick    KickSettings
	Discord DiscordSettings
	GUI     GUISettings
	Logging LoggingSettings
}

// Settings builds a typed snapshot of the document. Fields holding a value of
// the wrong type fall back to their defaults.
func (s *Store) Settings() Settings {
	return Settings{
		Kick: KickSettings{
			Username:            s.GetString("kick.username", ""),
			CheckInterval:       time.Duration(s.GetInt("kick.check_interval", 30)) * time.Second,
			EnableNotifications: s.GetBool("kick.enable_notifications", true),
		},
		Discord: DiscordSettings{
			ClientID:           s.GetString("discord.client_id", ""),
			EnableRichPresence: s.GetBool("discord.enable_rich_presence", true),
		},
		GUI: GUISettings{
			Theme:          s.GetString("gui.theme", "dark"),
			StartMinimized: s.GetBool("gui.start_minimized", false),
			MinimizeToTray: s.GetBool("gui.minimize_to_tray", true),
		},
		Logging: LoggingSettings{
			Level: s.GetString("logging.level", "INFO"),
			File:  s.GetString("logging.file", ""),
		},
	}
}
