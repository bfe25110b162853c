package bot

import (
	"context"
	"fmt"
	"time"

	"teamdesk/internal/command"

	"github.com/bwmarrin/discordgo"
)

// gateway adapts the discord session to the narrow interfaces the command
// handlers depend on.
type gateway struct {
	session *discordgo.Session
}

func (g *gateway) Kick(ctx context.Context, guildID, userID, reason string) error {
	_ = ctx
	return g.session.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (g *gateway) Ban(ctx context.Context, guildID, userID, reason string) error {
	_ = ctx
	return g.session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (g *gateway) Unban(ctx context.Context, guildID, userID string) error {
	_ = ctx
	return g.session.GuildBanDelete(guildID, userID)
}

func (g *gateway) Timeout(ctx context.Context, guildID, userID string, until time.Time) error {
	_ = ctx
	return g.session.GuildMemberTimeout(guildID, userID, &until)
}

func (g *gateway) ClearTimeout(ctx context.Context, guildID, userID string) error {
	_ = ctx
	return g.session.GuildMemberTimeout(guildID, userID, nil)
}

// LockChannel toggles the send-messages bit on the @everyone overwrite,
// leaving every other bit as it was.
func (g *gateway) LockChannel(ctx context.Context, guildID, channelID string, locked bool) error {
	_ = ctx
	channel, err := g.channel(channelID)
	if err != nil {
		return err
	}
	var allow, deny int64
	for _, overwrite := range channel.PermissionOverwrites {
		if overwrite.Type == discordgo.PermissionOverwriteTypeRole && overwrite.ID == guildID {
			allow = overwrite.Allow
			deny = overwrite.Deny
			break
		}
	}
	if locked {
		deny |= discordgo.PermissionSendMessages
		allow &^= discordgo.PermissionSendMessages
	} else {
		deny &^= discordgo.PermissionSendMessages
	}
	return g.session.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

func (g *gateway) SetSlowmode(ctx context.Context, channelID string, seconds int) error {
	_ = ctx
	_, err := g.session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds})
	return err
}

func (g *gateway) PurgeMessages(ctx context.Context, channelID string, count int) (int, error) {
	_ = ctx
	messages, err := g.session.ChannelMessages(channelID, count, "", "", "")
	if err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := g.session.ChannelMessagesBulkDelete(channelID, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (g *gateway) RecreateChannel(ctx context.Context, guildID, channelID string) (string, error) {
	_ = ctx
	channel, err := g.channel(channelID)
	if err != nil {
		return "", err
	}
	data := discordgo.GuildChannelCreateData{
		Name:                 channel.Name,
		Type:                 channel.Type,
		Topic:                channel.Topic,
		NSFW:                 channel.NSFW,
		Position:             channel.Position,
		RateLimitPerUser:     channel.RateLimitPerUser,
		PermissionOverwrites: channel.PermissionOverwrites,
		ParentID:             channel.ParentID,
	}
	if _, err := g.session.ChannelDelete(channelID); err != nil {
		return "", err
	}
	recreated, err := g.session.GuildChannelCreateComplex(guildID, data)
	if err != nil {
		return "", err
	}
	return recreated.ID, nil
}

func (g *gateway) channel(channelID string) (*discordgo.Channel, error) {
	if channel, err := g.session.State.Channel(channelID); err == nil {
		return channel, nil
	}
	return g.session.Channel(channelID)
}

func (g *gateway) User(ctx context.Context, userID string) (command.UserInfo, error) {
	_ = ctx
	user, err := g.session.User(userID)
	if err != nil {
		return command.UserInfo{}, err
	}
	created, _ := discordgo.SnowflakeTimestamp(user.ID)
	return command.UserInfo{
		ID:        user.ID,
		Tag:       user.String(),
		AvatarURL: user.AvatarURL("256"),
		CreatedAt: created,
	}, nil
}

func (g *gateway) Member(ctx context.Context, guildID, userID string) (command.MemberInfo, error) {
	_ = ctx
	member, err := g.session.GuildMember(guildID, userID)
	if err != nil {
		return command.MemberInfo{}, err
	}
	info := command.MemberInfo{
		Nickname:  member.Nick,
		JoinedAt:  member.JoinedAt,
		RoleCount: len(member.Roles),
	}
	if member.User != nil {
		created, _ := discordgo.SnowflakeTimestamp(member.User.ID)
		info.User = command.UserInfo{
			ID:        member.User.ID,
			Tag:       member.User.String(),
			AvatarURL: member.User.AvatarURL("256"),
			CreatedAt: created,
		}
	}
	return info, nil
}

func (g *gateway) Guild(ctx context.Context, guildID string) (command.GuildInfo, error) {
	_ = ctx
	guild, err := g.session.State.Guild(guildID)
	if err != nil {
		guild, err = g.session.Guild(guildID)
		if err != nil {
			return command.GuildInfo{}, err
		}
	}
	created, _ := discordgo.SnowflakeTimestamp(guild.ID)
	channelCount := len(guild.Channels)
	if channelCount == 0 {
		if channels, err := g.session.GuildChannels(guildID); err == nil {
			channelCount = len(channels)
		}
	}
	return command.GuildInfo{
		ID:           guild.ID,
		Name:         guild.Name,
		OwnerID:      guild.OwnerID,
		MemberCount:  guild.MemberCount,
		ChannelCount: channelCount,
		RoleCount:    len(guild.Roles),
		IconURL:      guild.IconURL("256"),
		CreatedAt:    created,
	}, nil
}

func (g *gateway) DirectMessage(userID, content string) error {
	channel, err := g.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	if _, err := g.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("dm %s: %w", userID, err)
	}
	return nil
}

func (g *gateway) Broadcast(content string) int {
	sent := 0
	for _, guild := range g.session.State.Guilds {
		channelID := guild.SystemChannelID
		if channelID == "" {
			for _, channel := range guild.Channels {
				if channel.Type == discordgo.ChannelTypeGuildText {
					channelID = channel.ID
					break
				}
			}
		}
		if channelID == "" {
			continue
		}
		if _, err := g.session.ChannelMessageSend(channelID, content); err == nil {
			sent++
		}
	}
	return sent
}

func (g *gateway) GuildCount() int {
	return len(g.session.State.Guilds)
}

func (g *gateway) Latency() time.Duration {
	return g.session.HeartbeatLatency()
}
