package command

import (
	"context"
	"time"

	"teamdesk/internal/analytics"
	"teamdesk/internal/snipe"
	"teamdesk/internal/storage"

	"go.uber.org/zap"
)

// Store is the slice of the persistence layer handlers touch.
type Store interface {
	SetAddress(ctx context.Context, userID, kind, address string) error
	GetAddress(ctx context.Context, userID, kind string) (string, error)
	ListAddresses(ctx context.Context, userID string) (map[string]string, error)
	AddWarning(ctx context.Context, warning storage.Warning) error
	ListWarnings(ctx context.Context, guildID, userID string) ([]storage.Warning, error)
	ClearWarnings(ctx context.Context, guildID, userID string) (int64, error)
	SetModLogChannel(ctx context.Context, guildID, channelID string) error
	GetModLogChannel(ctx context.Context, guildID string) (string, error)
}

type UserInfo struct {
	ID        string
	Tag       string
	AvatarURL string
	CreatedAt time.Time
}

type MemberInfo struct {
	User      UserInfo
	Nickname  string
	JoinedAt  time.Time
	RoleCount int
}

type GuildInfo struct {
	ID           string
	Name         string
	OwnerID      string
	MemberCount  int
	ChannelCount int
	RoleCount    int
	IconURL      string
	CreatedAt    time.Time
}

// Moderator performs the privileged platform actions. Implementations talk to
// the chat platform; handlers only see explicit errors.
type Moderator interface {
	Kick(ctx context.Context, guildID, userID, reason string) error
	Ban(ctx context.Context, guildID, userID, reason string) error
	Unban(ctx context.Context, guildID, userID string) error
	Timeout(ctx context.Context, guildID, userID string, until time.Time) error
	ClearTimeout(ctx context.Context, guildID, userID string) error
	LockChannel(ctx context.Context, guildID, channelID string, locked bool) error
	SetSlowmode(ctx context.Context, channelID string, seconds int) error
	PurgeMessages(ctx context.Context, channelID string, count int) (int, error)
	// RecreateChannel deletes the channel and rebuilds it in place with the
	// same name, parent, overwrites and position. Destructive: if recreation
	// fails after the delete, the channel is gone.
	RecreateChannel(ctx context.Context, guildID, channelID string) (string, error)
}

// Directory resolves users, members and guilds for informational commands.
type Directory interface {
	User(ctx context.Context, userID string) (UserInfo, error)
	Member(ctx context.Context, guildID, userID string) (MemberInfo, error)
	Guild(ctx context.Context, guildID string) (GuildInfo, error)
}

// Notifier delivers out-of-band messages. Deliveries are best effort.
type Notifier interface {
	DirectMessage(userID, content string) error
	Broadcast(content string) int
}

type Presence interface {
	GuildCount() int
	Latency() time.Duration
}

type Scheduler interface {
	Schedule(userID string, delay time.Duration, message string) string
	PendingCount() int
}

type Evaluator interface {
	Evaluate(expr string) (string, error)
}

type Snipes interface {
	Get(channelID string) (snipe.Record, bool)
}

type Audit interface {
	Log(ctx context.Context, level, guildID, userID, event, details string)
}

type Reporter interface {
	Report(ctx context.Context, guildID string, since time.Time) (analytics.Report, error)
}

// Deps bundles the collaborators handed to every handler.
type Deps struct {
	Prefix      string
	OwnerID     string
	StartedAt   time.Time
	MuteDefault time.Duration
	Store       Store
	Mod         Moderator
	Directory   Directory
	Notifier    Notifier
	Presence    Presence
	Scheduler   Scheduler
	Calc        Evaluator
	Snipes      Snipes
	Audit       Audit
	Analytics   Reporter
	Logger      *zap.Logger
}

func (d *Deps) usage(text string) Response {
	return Message("Usage: " + d.Prefix + text)
}
