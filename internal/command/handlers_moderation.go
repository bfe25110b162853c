package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamdesk/internal/modlog"
	"teamdesk/internal/remind"
	"teamdesk/internal/storage"
)

const embedColorRed = 0xe74c3c

// parseUserID accepts a raw snowflake or a <@id> / <@!id> mention.
func parseUserID(arg string) (string, bool) {
	id := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

// parseChannelID accepts a raw snowflake or a <#id> mention.
func parseChannelID(arg string) (string, bool) {
	id := strings.TrimSuffix(strings.TrimPrefix(arg, "<#"), ">")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

func reasonFrom(args []string) string {
	if len(args) == 0 {
		return "No reason provided"
	}
	return strings.Join(args, " ")
}

func warnHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("warn <user> [reason...]")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("warn <user> [reason...]")
	}
	reason := reasonFrom(inv.Args[1:])
	err := deps.Store.AddWarning(ctx, storage.Warning{
		GuildID:     inv.GuildID,
		UserID:      userID,
		ModeratorID: inv.ActorID,
		Reason:      reason,
	})
	if err != nil {
		return Message("❌ Unable to record the warning right now.")
	}
	warnings, err := deps.Store.ListWarnings(ctx, inv.GuildID, userID)
	count := len(warnings)
	if err != nil {
		count = 0
	}
	deps.Audit.Log(ctx, modlog.LevelWarn, inv.GuildID, userID, "member warned",
		fmt.Sprintf("by <@%s>: %s", inv.ActorID, reason))
	if count > 0 {
		return Message(fmt.Sprintf("⚠️ <@%s> has been warned (%d total): %s", userID, count, reason))
	}
	return Message(fmt.Sprintf("⚠️ <@%s> has been warned: %s", userID, reason))
}

func warningsHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("warnings <user>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("warnings <user>")
	}
	warnings, err := deps.Store.ListWarnings(ctx, inv.GuildID, userID)
	if err != nil {
		return Message("❌ Unable to look up warnings right now.")
	}
	if len(warnings) == 0 {
		return Message(fmt.Sprintf("✅ <@%s> has no warnings.", userID))
	}
	embed := &Embed{
		Title: fmt.Sprintf("Warnings (%d)", len(warnings)),
		Color: embedColorRed,
	}
	for i, w := range warnings {
		embed.Fields = append(embed.Fields, Field{
			Name:  fmt.Sprintf("#%d", i+1),
			Value: fmt.Sprintf("%s\nby <@%s> on %s", w.Reason, w.ModeratorID, w.CreatedAt.Format("2006-01-02 15:04")),
		})
	}
	return Response{Kind: KindEmbed, Embed: embed}
}

func clearWarningsHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("clearwarnings <user>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("clearwarnings <user>")
	}
	removed, err := deps.Store.ClearWarnings(ctx, inv.GuildID, userID)
	if err != nil {
		return Message("❌ Unable to clear warnings right now.")
	}
	deps.Audit.Log(ctx, modlog.LevelInfo, inv.GuildID, userID, "warnings cleared",
		fmt.Sprintf("%d removed by <@%s>", removed, inv.ActorID))
	return Message(fmt.Sprintf("✅ Cleared %d warning(s) for <@%s>.", removed, userID))
}

func kickHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("kick <user> [reason...]")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("kick <user> [reason...]")
	}
	reason := reasonFrom(inv.Args[1:])
	if err := deps.Mod.Kick(ctx, inv.GuildID, userID, reason); err != nil {
		return Message("❌ Unable to kick that member.")
	}
	deps.Audit.Log(ctx, modlog.LevelWarn, inv.GuildID, userID, "member kicked",
		fmt.Sprintf("by <@%s>: %s", inv.ActorID, reason))
	return Message(fmt.Sprintf("👢 <@%s> has been kicked: %s", userID, reason))
}

func banHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("ban <user> [reason...]")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("ban <user> [reason...]")
	}
	reason := reasonFrom(inv.Args[1:])
	if err := deps.Mod.Ban(ctx, inv.GuildID, userID, reason); err != nil {
		return Message("❌ Unable to ban that member.")
	}
	deps.Audit.Log(ctx, modlog.LevelCrit, inv.GuildID, userID, "member banned",
		fmt.Sprintf("by <@%s>: %s", inv.ActorID, reason))
	return Message(fmt.Sprintf("🔨 <@%s> has been banned: %s", userID, reason))
}

func unbanHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("unban <userId>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("unban <userId>")
	}
	if err := deps.Mod.Unban(ctx, inv.GuildID, userID); err != nil {
		return Message("❌ Unable to unban that user.")
	}
	deps.Audit.Log(ctx, modlog.LevelInfo, inv.GuildID, userID, "member unbanned",
		fmt.Sprintf("by <@%s>", inv.ActorID))
	return Message(fmt.Sprintf("✅ <@%s> has been unbanned.", userID))
}

func muteHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("mute <user> [duration]")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("mute <user> [duration]")
	}
	duration := deps.MuteDefault
	if len(inv.Args) > 1 {
		parsed, err := remind.ParseDuration(inv.Args[1])
		if err != nil {
			return deps.usage("mute <user> [duration]")
		}
		duration = parsed
	}
	if err := deps.Mod.Timeout(ctx, inv.GuildID, userID, time.Now().Add(duration)); err != nil {
		return Message("❌ Unable to mute that member.")
	}
	deps.Audit.Log(ctx, modlog.LevelWarn, inv.GuildID, userID, "member muted",
		fmt.Sprintf("for %s by <@%s>", duration, inv.ActorID))
	return Message(fmt.Sprintf("🔇 <@%s> has been muted for %s.", userID, duration))
}

func unmuteHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("unmute <user>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("unmute <user>")
	}
	if err := deps.Mod.ClearTimeout(ctx, inv.GuildID, userID); err != nil {
		return Message("❌ Unable to unmute that member.")
	}
	deps.Audit.Log(ctx, modlog.LevelInfo, inv.GuildID, userID, "member unmuted",
		fmt.Sprintf("by <@%s>", inv.ActorID))
	return Message(fmt.Sprintf("🔊 <@%s> has been unmuted.", userID))
}

func lockHandler(locked bool) HandlerFunc {
	return func(ctx context.Context, inv Invocation, deps *Deps) Response {
		if err := deps.Mod.LockChannel(ctx, inv.GuildID, inv.ChannelID, locked); err != nil {
			if locked {
				return Message("❌ Unable to lock this channel.")
			}
			return Message("❌ Unable to unlock this channel.")
		}
		if locked {
			deps.Audit.Log(ctx, modlog.LevelWarn, inv.GuildID, inv.ActorID, "channel locked",
				fmt.Sprintf("<#%s>", inv.ChannelID))
			return Message("🔒 Channel locked.")
		}
		deps.Audit.Log(ctx, modlog.LevelInfo, inv.GuildID, inv.ActorID, "channel unlocked",
			fmt.Sprintf("<#%s>", inv.ChannelID))
		return Message("🔓 Channel unlocked.")
	}
}

const maxSlowmodeSeconds = 21600

func slowmodeHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("slowmode <seconds>")
	}
	seconds, err := strconv.Atoi(inv.Args[0])
	if err != nil || seconds < 0 || seconds > maxSlowmodeSeconds {
		return deps.usage("slowmode <seconds>")
	}
	if err := deps.Mod.SetSlowmode(ctx, inv.ChannelID, seconds); err != nil {
		return Message("❌ Unable to change slowmode here.")
	}
	if seconds == 0 {
		return Message("✅ Slowmode disabled.")
	}
	return Message(fmt.Sprintf("🐌 Slowmode set to %d second(s).", seconds))
}

func clearHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("clear <1-100>")
	}
	count, err := strconv.Atoi(inv.Args[0])
	if err != nil || count < 1 || count > 100 {
		return deps.usage("clear <1-100>")
	}
	deleted, err := deps.Mod.PurgeMessages(ctx, inv.ChannelID, count)
	if err != nil {
		return Message("❌ Unable to delete messages here.")
	}
	deps.Audit.Log(ctx, modlog.LevelInfo, inv.GuildID, inv.ActorID, "messages purged",
		fmt.Sprintf("%d in <#%s>", deleted, inv.ChannelID))
	return Message(fmt.Sprintf("🧹 Deleted %d message(s).", deleted))
}

func nukeHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 || strings.ToLower(inv.Args[0]) != "confirm" {
		return Message("⚠️ This wipes the channel completely. Run `" + deps.Prefix + "nuke confirm` to proceed.")
	}
	newChannelID, err := deps.Mod.RecreateChannel(ctx, inv.GuildID, inv.ChannelID)
	if err != nil {
		return Message("❌ Unable to nuke this channel.")
	}
	deps.Audit.Log(ctx, modlog.LevelCrit, inv.GuildID, inv.ActorID, "channel nuked",
		fmt.Sprintf("<#%s> recreated as <#%s>", inv.ChannelID, newChannelID))
	// The invoking channel is gone, so the confirmation lands in the new one.
	return Response{
		Kind:      KindMessage,
		ChannelID: newChannelID,
		Content:   "💥 Channel nuked.",
	}
}
