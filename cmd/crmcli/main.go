// Command crmcli signs in as one of the CRM roles, prints that role's
// dashboard and optionally chats with the assistant.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/chatbot"
	"github.com/spec-kit/bank-crm/internal/config"
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/events"
	"github.com/spec-kit/bank-crm/internal/observability"
	"github.com/spec-kit/bank-crm/internal/overlay"
	"github.com/spec-kit/bank-crm/internal/persistence"
	"github.com/spec-kit/bank-crm/internal/records"
	"github.com/spec-kit/bank-crm/internal/service"
	"github.com/spec-kit/bank-crm/internal/session"
	"github.com/spec-kit/bank-crm/internal/views"
	apperrors "github.com/spec-kit/bank-crm/pkg/util/errorutil"
)

// questions collects repeated -ask flags.
type questions []string

func (q *questions) String() string { return strings.Join(*q, "; ") }

func (q *questions) Set(v string) error {
	*q = append(*q, v)
	return nil
}

type options struct {
	role     domain.Role
	email    string
	password string
	query    string
	asks     []string
	wait     time.Duration
}

func main() {
	role := flag.String("role", "", "one of: "+roleList())
	email := flag.String("email", "demo@bank.com", "login email")
	password := flag.String("password", "demo", "login password")
	query := flag.String("q", "", "filter dashboard records")
	wait := flag.Duration("wait", 5*time.Second, "how long to wait for assistant replies")
	var asks questions
	flag.Var(&asks, "ask", "question for the assistant (repeatable)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := observability.NewConsoleLogger(zapcore.WarnLevel)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	opts := options{
		role:     domain.Role(*role),
		email:    *email,
		password: *password,
		query:    *query,
		asks:     asks,
		wait:     *wait,
	}
	if err := run(ctx, os.Stdout, cfg, records.NewProvider(pg.PoolHandle()), logger, opts); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, provider records.Provider, logger *zap.Logger, opts options) error {
	var sessionOpts []session.Option
	if cfg.Auth.StrictCredentials() {
		sessionOpts = append(sessionOpts, session.WithVerifier(auth.NewBcryptVerifier(cfg.Auth.PasswordHash)))
	}

	replies := make(chan domain.ChatMessage, len(opts.asks))
	chats := chatbot.NewRegistry(
		chatbot.WithReplyDelay(cfg.Chatbot.ReplyDelay),
		chatbot.WithReplyHook(func(m domain.ChatMessage) { replies <- m }),
	)
	defer chats.Shutdown()

	dispatcher := events.NewInMemoryDispatcher()
	service.NewActionLogService(dispatcher, logger, 0).RegisterHandlers()

	sessions := session.NewRegistry(session.NewMemoryStore(cfg.Session.TTL), sessionOpts...)
	authService := service.NewAuthService(service.AuthDependencies{
		Sessions:   sessions,
		Tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		Chats:      chats,
		Overlays:   overlay.NewRegistry(service.NewOverlayCompletion(dispatcher, logger)),
		Dispatcher: dispatcher,
	}, logger)

	res, err := authService.Login(ctx, "", opts.email, opts.password, opts.role)
	switch {
	case errors.Is(err, service.ErrUnknownRole):
		return fmt.Errorf("unknown role %q, want one of: %s", opts.role, roleList())
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewInvalidCredentials()
	case err != nil:
		return err
	}
	fmt.Fprintln(w, color.Green.Sprint(res.Message))

	page, err := views.NewBuilder(provider).Build(ctx, &res.Identity, opts.query)
	if err != nil {
		return err
	}
	renderPage(w, page)

	if len(opts.asks) > 0 {
		widget := chats.Get(res.SessionID)
		widget.Open()
		expected := 0
		for _, q := range opts.asks {
			if _, ok := widget.Send(q); ok {
				expected++
			}
		}
		awaitReplies(replies, expected, opts.wait)
		renderTranscript(w, widget.Messages())
	}

	sess, err := sessions.Get(ctx, res.SessionID)
	if err != nil {
		return err
	}
	return authService.Logout(ctx, res.SessionID, sess)
}

func awaitReplies(replies <-chan domain.ChatMessage, n int, wait time.Duration) {
	deadline := time.After(wait)
	for i := 0; i < n; i++ {
		select {
		case <-replies:
		case <-deadline:
			return
		}
	}
}

func roleList() string {
	names := make([]string, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
