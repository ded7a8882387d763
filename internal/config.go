package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	MaxContentLength int           `env:"MAX_CONTENT_LENGTH,default=200"`
	RetentionDays    int           `env:"RETENTION_DAYS,default=7"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL,default=24h"`
	SweepPageSize    int           `env:"SWEEP_PAGE_SIZE,default=100"`

	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	CensoredWords string `env:"CENSORED_WORDS"`
	CensoredChar  string `env:"CENSORED_CHARACTER,default=*"`

	DebugPort int `env:"DEBUG_PORT,default=8081"`
}

// Retention converts the configured day count into a duration.
func (c Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// CensoredWordList splits the comma-separated word list, dropping blanks.
func (c Config) CensoredWordList() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", str)
	}
	return r[0], nil
}
