package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"messenger/domain"
	"messenger/internal"
	"messenger/moderation"
	"messenger/observability"
	"messenger/repositories"
	"messenger/runtime/workers"
	"messenger/search"
	"messenger/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the process lifecycle, so
// every defer (database close, index flush) executes before the program
// exits and main stays trivially testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB) & Search Index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if log.Enabled(ctx, slog.LevelDebug) {
		url := fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort)
		log.Info("Debug Badger inspector available", "url", url)
		internal.StartDebugServer(db, config.DebugPort, "/inspect", messengerMapper, nil)
	}

	// 3. Repositories & Services
	censorChar, err := internal.CharacterRune(config.CensoredChar)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.CensoredWordList(), censorChar)
	if err != nil {
		return fmt.Errorf("moderator init failed: %w", err)
	}

	userRepository := repositories.NewUserRepository(db)
	chatRepository := repositories.NewChatRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log)
	userIndex := search.NewUserIndex(blugeWriter, log)

	chatService := services.NewChatService(chatRepository, messageRepository, userRepository, log)
	messageService := services.NewMessageService(
		messageRepository, userRepository, chatService,
		moderator, config.MaxContentLength, log,
	)

	// Rebuild the search index from the directory so a wiped or stale Bluge
	// path converges with Badger on startup.
	if err := reindexUsers(userRepository, userIndex); err != nil {
		return fmt.Errorf("user reindex failed: %w", err)
	}

	// 4. Background workers
	monitor := observability.NewSweepMonitor()
	sweeper := workers.NewSweeper(
		messageRepository, chatRepository, messageService, monitor,
		config.SweepInterval, config.Retention(), config.SweepPageSize, log,
	)
	heartbeat := workers.NewHeartbeat(log, monitor, config.HeartbeatInterval)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(sweeper, heartbeat)

	log.Info("Messenger engine started", "at", time.Now().UTC())
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

func reindexUsers(users repositories.IUserRepository, index search.IUserIndex) error {
	all, err := users.All()
	if err != nil {
		return err
	}
	for _, user := range all {
		if err := index.Index(user); err != nil {
			return err
		}
	}
	return nil
}

// messengerMapper decodes known namespaces for the inspector view.
func messengerMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, "msg:"):
		var message domain.Message
		if err := json.Unmarshal(val, &message); err == nil {
			row.Detail = fmt.Sprintf("from=%s chat=%s permanent=%t at=%s",
				message.SenderID, message.ChatID, message.Permanent,
				message.At.Format(time.RFC3339))
		}
	case strings.HasPrefix(key, "chat:"):
		var chat domain.Chat
		if err := json.Unmarshal(val, &chat); err == nil {
			row.Detail = fmt.Sprintf("members=%d [%s]", len(chat.Members), chat.Members.CanonicalKey())
		}
	case strings.HasPrefix(key, "user:"):
		var user domain.User
		if err := json.Unmarshal(val, &user); err == nil {
			row.Detail = fmt.Sprintf("%s (%s %s)", user.Username, user.FirstName, user.Surname)
		}
	}
	return row
}
