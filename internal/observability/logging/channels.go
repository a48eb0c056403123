// Package logging provides structured logging channels for AmourDesk
// operations.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Business logic channels
	ChannelContent Channel = "content" // Entity store operations
	ChannelHTTP    Channel = "http"    // Inbound dashboard requests

	// Infrastructure channels
	ChannelUpstream Channel = "upstream" // Calls against the dating API
)

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	mu       sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	JSONFormat   bool       `json:"jsonFormat"`   // Use JSON format for structured logging
	DefaultLevel slog.Level `json:"defaultLevel"` // Default log level
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		JSONFormat:   true,
		DefaultLevel: slog.LevelInfo,
	}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) *ChanneledLogger {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	return &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}
}

// Logger returns the slog logger for a channel, creating it on first use.
func (cl *ChanneledLogger) Logger(channel Channel) *slog.Logger {
	cl.mu.RLock()
	logger, exists := cl.channels[channel]
	cl.mu.RUnlock()
	if exists {
		return logger
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	if logger, exists := cl.channels[channel]; exists {
		return logger
	}

	opts := &slog.HandlerOptions{Level: cl.config.DefaultLevel}
	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger = slog.New(handler).With("channel", string(channel))
	cl.channels[channel] = logger
	return logger
}

// System returns the general system channel.
func (cl *ChanneledLogger) System() *slog.Logger { return cl.Logger(ChannelSystem) }

// Startup returns the startup channel.
func (cl *ChanneledLogger) Startup() *slog.Logger { return cl.Logger(ChannelStartup) }

// Shutdown returns the shutdown channel.
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.Logger(ChannelShutdown) }

// Content returns the entity store channel.
func (cl *ChanneledLogger) Content() *slog.Logger { return cl.Logger(ChannelContent) }

// HTTP returns the inbound request channel.
func (cl *ChanneledLogger) HTTP() *slog.Logger { return cl.Logger(ChannelHTTP) }

// Upstream returns the dating-API call channel.
func (cl *ChanneledLogger) Upstream() *slog.Logger { return cl.Logger(ChannelUpstream) }
