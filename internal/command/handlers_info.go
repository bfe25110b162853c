package command

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"teamdesk/internal/remind"
)

const embedColorBlue = 0x3498db

func calcHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("calc <expression>")
	}
	expr := strings.Join(inv.Args, " ")
	result, err := deps.Calc.Evaluate(expr)
	if err != nil {
		return Message("❌ Could not evaluate that expression.")
	}
	return Response{
		Kind: KindEmbed,
		Embed: &Embed{
			Title:       "Calculator",
			Description: fmt.Sprintf("```%s = %s```", expr, result),
			Color:       embedColorBlue,
		},
	}
}

func remindHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 3 {
		return deps.usage("remind <user> <duration> <message...>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("remind <user> <duration> <message...>")
	}
	delay, err := remind.ParseDuration(inv.Args[1])
	if err != nil {
		return Message("❌ Invalid duration. Use forms like 10s, 5m, 2h or 1d.")
	}
	message := strings.Join(inv.Args[2:], " ")
	deps.Scheduler.Schedule(userID, delay, message)
	return Message(fmt.Sprintf("⏰ Reminder set for <@%s> in %s.", userID, inv.Args[1]))
}

func notifyHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 2 {
		return deps.usage("notify <user> <message...>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("notify <user> <message...>")
	}
	message := strings.Join(inv.Args[1:], " ")
	if err := deps.Notifier.DirectMessage(userID, message); err != nil {
		return Message("❌ Could not DM that user.")
	}
	return Message(fmt.Sprintf("📬 Notified <@%s>.", userID))
}

func broadcastHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("broadcast <message...>")
	}
	message := strings.Join(inv.Args, " ")
	sent := deps.Notifier.Broadcast(message)
	return Message(fmt.Sprintf("📢 Broadcast delivered to %d server(s).", sent))
}

func pingHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	return Message(fmt.Sprintf("🏓 Pong! Gateway latency: %dms", deps.Presence.Latency().Milliseconds()))
}

func statsHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	uptime := time.Since(deps.StartedAt).Round(time.Second)

	embed := &Embed{
		Title: "Bot Stats",
		Color: embedColorBlue,
		Fields: []Field{
			{Name: "Uptime", Value: uptime.String(), Inline: true},
			{Name: "Servers", Value: fmt.Sprintf("%d", deps.Presence.GuildCount()), Inline: true},
			{Name: "Pending reminders", Value: fmt.Sprintf("%d", deps.Scheduler.PendingCount()), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f MiB", float64(mem.Alloc)/1024/1024), Inline: true},
			{Name: "Go routines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
	}
	if inv.InGuild() {
		report, err := deps.Analytics.Report(ctx, inv.GuildID, time.Now().Add(-24*time.Hour))
		if err == nil {
			embed.Fields = append(embed.Fields, Field{
				Name:   "Mod actions (24h)",
				Value:  fmt.Sprintf("%d", report.Total),
				Inline: true,
			})
		}
	}
	return Response{Kind: KindEmbed, Embed: embed}
}

func userInfoHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	targetID := inv.ActorID
	if len(inv.Args) > 0 {
		id, ok := parseUserID(inv.Args[0])
		if !ok {
			return deps.usage("userinfo [user]")
		}
		targetID = id
	}
	user, err := deps.Directory.User(ctx, targetID)
	if err != nil {
		return Message("❌ Unknown user.")
	}
	embed := &Embed{
		Title:     user.Tag,
		Color:     embedColorBlue,
		Thumbnail: user.AvatarURL,
		Fields: []Field{
			{Name: "ID", Value: user.ID, Inline: true},
			{Name: "Created", Value: user.CreatedAt.Format("2006-01-02"), Inline: true},
		},
	}
	if inv.InGuild() {
		member, err := deps.Directory.Member(ctx, inv.GuildID, targetID)
		if err == nil {
			if member.Nickname != "" {
				embed.Fields = append(embed.Fields, Field{Name: "Nickname", Value: member.Nickname, Inline: true})
			}
			embed.Fields = append(embed.Fields,
				Field{Name: "Joined", Value: member.JoinedAt.Format("2006-01-02"), Inline: true},
				Field{Name: "Roles", Value: fmt.Sprintf("%d", member.RoleCount), Inline: true},
			)
		}
	}
	return Response{Kind: KindEmbed, Embed: embed}
}

func serverInfoHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	guild, err := deps.Directory.Guild(ctx, inv.GuildID)
	if err != nil {
		return Message("❌ Unable to look up this server.")
	}
	return Response{
		Kind: KindEmbed,
		Embed: &Embed{
			Title:     guild.Name,
			Color:     embedColorBlue,
			Thumbnail: guild.IconURL,
			Fields: []Field{
				{Name: "ID", Value: guild.ID, Inline: true},
				{Name: "Owner", Value: "<@" + guild.OwnerID + ">", Inline: true},
				{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
				{Name: "Channels", Value: fmt.Sprintf("%d", guild.ChannelCount), Inline: true},
				{Name: "Roles", Value: fmt.Sprintf("%d", guild.RoleCount), Inline: true},
				{Name: "Created", Value: guild.CreatedAt.Format("2006-01-02"), Inline: true},
			},
		},
	}
}

func snipeHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	record, ok := deps.Snipes.Get(inv.ChannelID)
	if !ok {
		return Message("❌ Nothing to snipe here.")
	}
	embed := &Embed{
		AuthorName:  record.AuthorTag,
		AuthorIcon:  record.AvatarURL,
		Description: record.Content,
		Color:       embedColorBlue,
		ImageURL:    record.ImageURL,
		Footer:      "Deleted " + record.DeletedAt.Format("15:04:05"),
	}
	return Response{Kind: KindEmbed, Embed: embed}
}

func sayHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("say <message...>")
	}
	return Message(strings.Join(inv.Args, " "))
}

func pollHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("poll <question...>")
	}
	return Response{
		Kind: KindEmbed,
		Embed: &Embed{
			Title:       "📊 Poll",
			Description: strings.Join(inv.Args, " "),
			Color:       embedColorBlue,
			Footer:      "Started by " + inv.ActorTag,
		},
		Reactions: []string{"👍", "👎"},
	}
}

func avatarHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	targetID := inv.ActorID
	if len(inv.Args) > 0 {
		id, ok := parseUserID(inv.Args[0])
		if !ok {
			return deps.usage("avatar [user]")
		}
		targetID = id
	}
	user, err := deps.Directory.User(ctx, targetID)
	if err != nil {
		return Message("❌ Unknown user.")
	}
	return Response{
		Kind: KindEmbed,
		Embed: &Embed{
			Title:    user.Tag,
			Color:    embedColorBlue,
			ImageURL: user.AvatarURL,
		},
	}
}

func modLogHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 1 {
		return deps.usage("modlog <channel>")
	}
	channelID, ok := parseChannelID(inv.Args[0])
	if !ok {
		return deps.usage("modlog <channel>")
	}
	if err := deps.Store.SetModLogChannel(ctx, inv.GuildID, channelID); err != nil {
		return Message("❌ Unable to save the mod log channel.")
	}
	return Message(fmt.Sprintf("✅ Mod log channel set to <#%s>.", channelID))
}

func (r *Router) helpHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	byCategory := make(map[string][]string)
	var categories []string
	for _, name := range r.order {
		spec := r.specs[name]
		if _, seen := byCategory[spec.Category]; !seen {
			categories = append(categories, spec.Category)
		}
		byCategory[spec.Category] = append(byCategory[spec.Category], "`"+deps.Prefix+spec.Usage+"`")
	}
	embed := &Embed{
		Title:       "Commands",
		Description: "Prefix: `" + deps.Prefix + "`",
		Color:       embedColorBlue,
	}
	for _, category := range categories {
		embed.Fields = append(embed.Fields, Field{
			Name:  category,
			Value: strings.Join(byCategory[category], "\n"),
		})
	}
	return Response{Kind: KindEmbed, Embed: embed}
}
