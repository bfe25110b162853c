// Package command routes prefix-delimited text commands to their handlers,
// enforcing the authorization tier of each command before any side effect.
package command

import "strings"

// Invocation carries everything a handler may inspect about one inbound
// command. It is built per message and discarded after dispatch.
type Invocation struct {
	ActorID    string
	ActorTag   string
	ActorRoles []string
	GuildID    string
	GuildName  string
	ChannelID  string
	Name       string
	Args       []string
}

func (inv Invocation) InGuild() bool {
	return inv.GuildID != ""
}

// Parse splits a raw message into a command name and arguments. The second
// return is false when the message does not start with the prefix or names
// nothing after it.
func Parse(prefix, content string) (string, []string, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

type Kind int

const (
	KindNone Kind = iota
	KindMessage
	KindEmbed
)

type Button struct {
	Label       string
	ActionToken string
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a renderer-agnostic description of a rich reply.
type Embed struct {
	Title       string
	Description string
	Color       int
	Footer      string
	AuthorName  string
	AuthorIcon  string
	ImageURL    string
	Thumbnail   string
	Fields      []Field
}

// Response describes what to send back; the gateway layer renders it.
// ChannelID, when set, redirects the reply away from the invoking channel.
type Response struct {
	Kind      Kind
	ChannelID string
	Content   string
	Embed     *Embed
	Buttons   []Button
	Reactions []string
}

func NoOp() Response {
	return Response{Kind: KindNone}
}

func Message(content string) Response {
	return Response{Kind: KindMessage, Content: content}
}

func EmbedResponse(embed Embed) Response {
	return Response{Kind: KindEmbed, Embed: &embed}
}
