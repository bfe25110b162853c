package command

import (
	"teamdesk/internal/auth"
	"teamdesk/internal/storage"
)

const (
	categoryPayments   = "Payments"
	categoryModeration = "Moderation"
	categoryUtility    = "Utility"
	categoryInfo       = "Info"
)

func (r *Router) registerBuiltins() {
	r.Register(Spec{
		Name: "upi", Category: categoryPayments, Usage: "upi",
		Help: "Show your saved UPI address.",
		Tier: auth.TierSupport,
		Run:  lookupAddressHandler(storage.AddressUPI),
	})
	r.Register(Spec{
		Name: "ltc", Category: categoryPayments, Usage: "ltc",
		Help: "Show your saved LTC address.",
		Tier: auth.TierSupport,
		Run:  lookupAddressHandler(storage.AddressLTC),
	})
	r.Register(Spec{
		Name: "usdt", Category: categoryPayments, Usage: "usdt",
		Help: "Show your saved USDT address.",
		Tier: auth.TierSupport,
		Run:  lookupAddressHandler(storage.AddressUSDT),
	})
	r.Register(Spec{
		Name: "addaddy", Category: categoryPayments, Usage: "addaddy <userId> <upi|ltc|usdt> <address>",
		Help: "Register a payment address for a team member.",
		Tier: auth.TierOwner,
		Run:  addAddressHandler,
	})
	r.Register(Spec{
		Name: "showaddy", Category: categoryPayments, Usage: "showaddy",
		Help: "List your saved payment addresses.",
		Tier: auth.TierPublic,
		Run:  showAddressesHandler,
	})
	r.Register(Spec{
		Name: "vouch", Category: categoryPayments, Usage: "vouch <product> <price>",
		Help: "Build a ready-to-copy vouch line.",
		Tier: auth.TierSupport,
		Run:  vouchHandler,
	})

	r.Register(Spec{
		Name: "warn", Category: categoryModeration, Usage: "warn <user> [reason]",
		Help: "Warn a member.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: warnHandler,
	})
	r.Register(Spec{
		Name: "warnings", Category: categoryModeration, Usage: "warnings <user>",
		Help: "List a member's warnings.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: warningsHandler,
	})
	r.Register(Spec{
		Name: "clearwarnings", Category: categoryModeration, Usage: "clearwarnings <user>",
		Help: "Clear a member's warnings.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: clearWarningsHandler,
	})
	r.Register(Spec{
		Name: "kick", Category: categoryModeration, Usage: "kick <user> [reason]",
		Help: "Kick a member.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: kickHandler,
	})
	r.Register(Spec{
		Name: "ban", Category: categoryModeration, Usage: "ban <user> [reason]",
		Help: "Ban a member.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: banHandler,
	})
	r.Register(Spec{
		Name: "unban", Category: categoryModeration, Usage: "unban <userId>",
		Help: "Lift a ban.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: unbanHandler,
	})
	r.Register(Spec{
		Name: "mute", Category: categoryModeration, Usage: "mute <user> [duration]",
		Help: "Time a member out, 10 minutes by default.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: muteHandler,
	})
	r.Register(Spec{
		Name: "unmute", Category: categoryModeration, Usage: "unmute <user>",
		Help: "Lift a timeout.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: unmuteHandler,
	})
	r.Register(Spec{
		Name: "lock", Category: categoryModeration, Usage: "lock",
		Help: "Lock the current channel.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: lockHandler(true),
	})
	r.Register(Spec{
		Name: "unlock", Category: categoryModeration, Usage: "unlock",
		Help: "Unlock the current channel.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: lockHandler(false),
	})
	r.Register(Spec{
		Name: "slowmode", Category: categoryModeration, Usage: "slowmode <seconds>",
		Help: "Set channel slowmode, 0 to 21600 seconds.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: slowmodeHandler,
	})
	r.Register(Spec{
		Name: "clear", Category: categoryModeration, Usage: "clear <1-100>",
		Help: "Bulk delete recent messages.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: clearHandler,
	})
	r.Register(Spec{
		Name: "nuke", Category: categoryModeration, Usage: "nuke confirm",
		Help: "Delete and recreate the current channel.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: nukeHandler,
	})
	r.Register(Spec{
		Name: "modlog", Category: categoryModeration, Usage: "modlog <channel>",
		Help: "Bind the moderation log to a channel.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: modLogHandler,
	})

	r.Register(Spec{
		Name: "calc", Category: categoryUtility, Usage: "calc <expression>",
		Help: "Evaluate a math expression.",
		Tier: auth.TierSupport,
		Run:  calcHandler,
	})
	r.Register(Spec{
		Name: "remind", Category: categoryUtility, Usage: "remind <user> <duration> <message>",
		Help: "DM a reminder after a delay like 10s, 5m, 2h or 1d.",
		Tier: auth.TierSupport,
		Run:  remindHandler,
	})
	r.Register(Spec{
		Name: "notify", Category: categoryUtility, Usage: "notify <user> <message>",
		Help: "DM a user immediately.",
		Tier: auth.TierSupport,
		Run:  notifyHandler,
	})
	r.Register(Spec{
		Name: "broadcast", Category: categoryUtility, Usage: "broadcast <message>",
		Help: "Post a message to every server's system channel.",
		Tier: auth.TierOwner,
		Run:  broadcastHandler,
	})
	r.Register(Spec{
		Name: "say", Category: categoryUtility, Usage: "say <text>",
		Help: "Repeat a message as the bot.",
		Tier: auth.TierSupport,
		Run:  sayHandler,
	})
	r.Register(Spec{
		Name: "poll", Category: categoryUtility, Usage: "poll <question>",
		Help: "Start a thumbs up or down poll.",
		Tier: auth.TierSupport,
		Run:  pollHandler,
	})
	r.Register(Spec{
		Name: "snipe", Category: categoryUtility, Usage: "snipe",
		Help: "Show the last deleted message in this channel.",
		Tier: auth.TierSupport,
		Run:  snipeHandler,
	})

	r.Register(Spec{
		Name: "stats", Category: categoryInfo, Usage: "stats",
		Help: "Show runtime stats.",
		Tier: auth.TierSupport,
		Run:  statsHandler,
	})
	r.Register(Spec{
		Name: "ping", Category: categoryInfo, Usage: "ping",
		Help: "Show gateway latency.",
		Tier: auth.TierSupport,
		Run:  pingHandler,
	})
	r.Register(Spec{
		Name: "userinfo", Category: categoryInfo, Usage: "userinfo [user]",
		Help: "Show details about a user.",
		Tier: auth.TierSupport,
		Run:  userInfoHandler,
	})
	r.Register(Spec{
		Name: "serverinfo", Category: categoryInfo, Usage: "serverinfo",
		Help: "Show details about this server.",
		Tier: auth.TierSupport, GuildOnly: true,
		Run: serverInfoHandler,
	})
	r.Register(Spec{
		Name: "avatar", Category: categoryInfo, Usage: "avatar [user]",
		Help: "Show a user's avatar.",
		Tier: auth.TierSupport,
		Run:  avatarHandler,
	})
	r.Register(Spec{
		Name: "help", Category: categoryInfo, Usage: "help",
		Help: "List all commands.",
		Tier: auth.TierSupport,
		Run:  r.helpHandler,
	})
}
