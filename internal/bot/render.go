package bot

import (
	"teamdesk/internal/command"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// render turns a response descriptor into an actual discord message.
// Send failures are logged and dropped; there is nobody to report them to.
func (b *Bot) render(channelID string, resp command.Response) {
	if resp.ChannelID != "" {
		channelID = resp.ChannelID
	}

	switch resp.Kind {
	case command.KindNone:
		return
	case command.KindMessage:
		if _, err := b.session.ChannelMessageSend(channelID, resp.Content); err != nil {
			b.logger.Debug("send failed", zap.String("channel", channelID), zap.Error(err))
		}
	case command.KindEmbed:
		embed := renderEmbed(resp.Embed)
		send := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
		if components := renderButtons(resp.Buttons); components != nil {
			send.Components = components
		}
		sent, err := b.session.ChannelMessageSendComplex(channelID, send)
		if err != nil {
			b.logger.Debug("send failed", zap.String("channel", channelID), zap.Error(err))
			return
		}
		for _, reaction := range resp.Reactions {
			_ = b.session.MessageReactionAdd(channelID, sent.ID, reaction)
		}
	}
}

func renderEmbed(embed *command.Embed) *discordgo.MessageEmbed {
	if embed == nil {
		return &discordgo.MessageEmbed{}
	}
	out := &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
		Color:       embed.Color,
	}
	if embed.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}
	if embed.AuthorName != "" {
		out.Author = &discordgo.MessageEmbedAuthor{Name: embed.AuthorName, IconURL: embed.AuthorIcon}
	}
	if embed.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: embed.ImageURL}
	}
	if embed.Thumbnail != "" {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: embed.Thumbnail}
	}
	for _, field := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return out
}

func renderButtons(buttons []command.Button) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return nil
	}
	row := discordgo.ActionsRow{}
	for _, button := range buttons {
		row.Components = append(row.Components, discordgo.Button{
			Label:    button.Label,
			Style:    discordgo.SecondaryButton,
			CustomID: button.ActionToken,
		})
	}
	return []discordgo.MessageComponent{row}
}
