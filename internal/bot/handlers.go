package bot

import (
	"context"
	"strings"
	"time"

	"teamdesk/internal/command"
	"teamdesk/internal/snipe"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("discord ready",
		zap.String("user", session.State.User.Username),
		zap.Int("guilds", len(event.Guilds)),
	)
}

func (b *Bot) onMessageCreate(session *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.Author == nil || msg.Author.Bot {
		return
	}
	name, args, ok := command.Parse(b.cfg.Prefix, msg.Content)
	if !ok {
		return
	}

	inv := command.Invocation{
		ActorID:   msg.Author.ID,
		ActorTag:  msg.Author.String(),
		GuildID:   msg.GuildID,
		ChannelID: msg.ChannelID,
		Name:      name,
		Args:      args,
	}
	if msg.Member != nil {
		inv.ActorRoles = msg.Member.Roles
	}
	if msg.GuildID != "" {
		if guild, err := session.State.Guild(msg.GuildID); err == nil {
			inv.GuildName = guild.Name
		}
	}

	resp := b.router.Dispatch(context.Background(), inv)
	b.render(msg.ChannelID, resp)
}

func (b *Bot) onMessageDelete(session *discordgo.Session, event *discordgo.MessageDelete) {
	deleted := event.BeforeDelete
	if deleted == nil || deleted.Author == nil || deleted.Author.Bot {
		return
	}
	record := snipe.Record{
		Content:   deleted.Content,
		AuthorTag: deleted.Author.String(),
		AvatarURL: deleted.Author.AvatarURL("64"),
		DeletedAt: time.Now(),
	}
	for _, attachment := range deleted.Attachments {
		if attachment != nil && attachment.URL != "" {
			record.ImageURL = attachment.URL
			break
		}
	}
	b.snipes.Store(event.ChannelID, record)
}

func (b *Bot) onInteractionCreate(session *discordgo.Session, event *discordgo.InteractionCreate) {
	if event.Type != discordgo.InteractionMessageComponent {
		return
	}
	token := event.MessageComponentData().CustomID
	if !strings.HasPrefix(token, "copy-") {
		return
	}

	var actorID string
	switch {
	case event.Member != nil && event.Member.User != nil:
		actorID = event.Member.User.ID
	case event.User != nil:
		actorID = event.User.ID
	default:
		return
	}

	var sourceDescription string
	if event.Message != nil && len(event.Message.Embeds) > 0 {
		sourceDescription = event.Message.Embeds[0].Description
	}

	content, ok := command.ResolveCopyAction(context.Background(), b.store, token, actorID, sourceDescription)
	if !ok {
		content = "❌ No data found to copy."
	}
	err := session.InteractionRespond(event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Debug("interaction respond failed", zap.Error(err))
	}
}
