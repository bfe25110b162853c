package bot

import (
	"context"
	"time"

	"teamdesk/internal/analytics"
	"teamdesk/internal/auth"
	"teamdesk/internal/calc"
	"teamdesk/internal/command"
	"teamdesk/internal/config"
	"teamdesk/internal/modlog"
	"teamdesk/internal/remind"
	"teamdesk/internal/snipe"
	"teamdesk/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	cfg       config.Config
	logger    *zap.Logger
	store     *storage.Store
	audit     *modlog.Logger
	session   *discordgo.Session
	gateway   *gateway
	router    *command.Router
	snipes    *snipe.Cache
	scheduler *remind.Scheduler
	stop      chan struct{}
}

func New(cfg config.Config, logger *zap.Logger, store *storage.Store, auditLogger *modlog.Logger, reporter *analytics.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	// Deleted messages can only be sniped if the state kept a copy.
	session.State.MaxMessageCount = 1024

	b := &Bot{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		audit:   auditLogger,
		session: session,
		gateway: &gateway{session: session},
		snipes:  snipe.NewCache(cfg.SnipeChannelCap),
		stop:    make(chan struct{}),
	}

	b.scheduler = remind.NewScheduler(func(userID, message string) {
		if err := b.gateway.DirectMessage(userID, "⏰ Reminder: "+message); err != nil {
			b.logger.Debug("reminder delivery failed", zap.String("user", userID), zap.Error(err))
		}
	})

	deps := &command.Deps{
		Prefix:      cfg.Prefix,
		OwnerID:     cfg.OwnerID,
		StartedAt:   time.Now(),
		MuteDefault: time.Duration(cfg.MuteDefaultMinutes) * time.Minute,
		Store:       store,
		Mod:         b.gateway,
		Directory:   b.gateway,
		Notifier:    b.gateway,
		Presence:    b.gateway,
		Scheduler:   b.scheduler,
		Calc:        calc.NewEvaluator(),
		Snipes:      b.snipes,
		Audit:       auditLogger,
		Analytics:   reporter,
		Logger:      logger,
	}
	b.router = command.NewRouter(auth.NewGate(cfg.OwnerID, cfg.SupportRoleID), deps)

	if b.audit != nil {
		b.audit.SetNotifier(func(ctx context.Context, entry storage.AuditLog) {
			b.notifyModLog(ctx, entry)
		})
	}

	return b, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onMessageDelete)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	b.startStatusRotation()

	return nil
}

func (b *Bot) Close(ctx context.Context) {
	_ = ctx
	close(b.stop)
	if b.session != nil {
		_ = b.session.Close()
	}
}

func (b *Bot) startStatusRotation() {
	statuses := b.cfg.Statuses
	if len(statuses) == 0 {
		return
	}
	_ = b.session.UpdateGameStatus(0, statuses[0])

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		idx := 0
		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				idx = (idx + 1) % len(statuses)
				_ = b.session.UpdateGameStatus(0, statuses[idx])
			}
		}
	}()
}

func (b *Bot) notifyModLog(ctx context.Context, entry storage.AuditLog) {
	channelID, err := b.store.GetModLogChannel(ctx, entry.GuildID)
	if err != nil || channelID == "" {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:       entry.Event,
		Description: entry.Details,
		Color:       modLogColor(entry.Level),
		Timestamp:   entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.UserID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "User",
			Value:  "<@" + entry.UserID + ">",
			Inline: true,
		})
	}
	_, _ = b.session.ChannelMessageSendEmbed(channelID, embed)
}

func modLogColor(level string) int {
	switch level {
	case modlog.LevelCrit:
		return 0xe74c3c
	case modlog.LevelWarn:
		return 0xf39c12
	default:
		return 0x3498db
	}
}
