package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"teamdesk/internal/snipe"
)

func ownerInvocation(name string, args ...string) Invocation {
	inv := guildInvocation(name, args...)
	inv.ActorID = "100"
	return inv
}

func TestAddAddressThenLookupRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp := f.router.Dispatch(ctx, ownerInvocation("addaddy", "200", "upi", "mod@bank"))
	if !strings.Contains(resp.Content, "Saved") {
		t.Fatalf("addaddy failed: %q", resp.Content)
	}

	resp = f.router.Dispatch(ctx, guildInvocation("upi"))
	if resp.Kind != KindEmbed || !strings.Contains(resp.Embed.Description, "mod@bank") {
		t.Fatalf("lookup did not return the stored address: %+v", resp)
	}
	if len(resp.Buttons) != 1 || resp.Buttons[0].ActionToken != "copy-upi" {
		t.Fatalf("expected a copy-upi button, got %+v", resp.Buttons)
	}
}

func TestAddressLookupReturnsOnlyOwnEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.router.Dispatch(ctx, ownerInvocation("addaddy", "999", "ltc", "Lother"))

	resp := f.router.Dispatch(ctx, guildInvocation("ltc"))
	if resp.Content != "❌ No saved address found." {
		t.Fatalf("expected absence message, got %+v", resp)
	}
}

func TestAddAddressRejectsUnknownKind(t *testing.T) {
	f := newFixture(t)
	resp := f.router.Dispatch(context.Background(), ownerInvocation("addaddy", "200", "btc", "addr"))
	if !strings.Contains(resp.Content, "Unknown address kind") {
		t.Fatalf("expected kind rejection, got %q", resp.Content)
	}
	if f.store.writes != 0 {
		t.Fatalf("rejected kind reached the store")
	}
}

func TestVouchFormat(t *testing.T) {
	f := newFixture(t)
	resp := f.router.Dispatch(context.Background(), guildInvocation("vouch", "Nitro", "Boost", "$5"))
	want := "+rep <@200> | Legit Purchased **Nitro Boost** for **$5**"
	if resp.Kind != KindEmbed || resp.Embed.Description != want {
		t.Fatalf("unexpected vouch: %+v", resp)
	}
}

func TestWarnAccumulatesInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, reason := range []string{"first", "second", "third"} {
		resp := f.router.Dispatch(ctx, guildInvocation("warn", "123", reason))
		if !strings.Contains(resp.Content, "warned") {
			t.Fatalf("warn failed: %q", resp.Content)
		}
	}

	resp := f.router.Dispatch(ctx, guildInvocation("warnings", "123"))
	if resp.Kind != KindEmbed || len(resp.Embed.Fields) != 3 {
		t.Fatalf("expected three warnings, got %+v", resp)
	}
	if !strings.Contains(resp.Embed.Fields[0].Value, "first") ||
		!strings.Contains(resp.Embed.Fields[2].Value, "third") {
		t.Fatalf("warnings out of order: %+v", resp.Embed.Fields)
	}

	resp = f.router.Dispatch(ctx, guildInvocation("clearwarnings", "123"))
	if !strings.Contains(resp.Content, "3") {
		t.Fatalf("expected 3 cleared, got %q", resp.Content)
	}
	resp = f.router.Dispatch(ctx, guildInvocation("warnings", "123"))
	if !strings.Contains(resp.Content, "no warnings") {
		t.Fatalf("ledger not empty after clear: %+v", resp)
	}
}

func TestClearValidatesCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, arg := range []string{"0", "101", "abc", "-3"} {
		resp := f.router.Dispatch(ctx, guildInvocation("clear", arg))
		if !strings.HasPrefix(resp.Content, "Usage:") {
			t.Fatalf("clear %q accepted: %q", arg, resp.Content)
		}
	}
	if f.mod.purged != 0 {
		t.Fatalf("invalid counts reached the moderator")
	}

	resp := f.router.Dispatch(ctx, guildInvocation("clear", "50"))
	if !strings.Contains(resp.Content, "50") || f.mod.purged != 50 {
		t.Fatalf("clear 50 did not purge: %q", resp.Content)
	}
}

func TestSlowmodeBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, arg := range []string{"-1", "21601", "x"} {
		resp := f.router.Dispatch(ctx, guildInvocation("slowmode", arg))
		if !strings.HasPrefix(resp.Content, "Usage:") {
			t.Fatalf("slowmode %q accepted: %q", arg, resp.Content)
		}
	}
	resp := f.router.Dispatch(ctx, guildInvocation("slowmode", "0"))
	if !strings.Contains(resp.Content, "disabled") {
		t.Fatalf("slowmode 0 should disable: %q", resp.Content)
	}
}

func TestNukeRequiresConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp := f.router.Dispatch(ctx, guildInvocation("nuke"))
	if f.mod.recreated {
		t.Fatalf("nuke ran without confirmation")
	}
	if !strings.Contains(resp.Content, "confirm") {
		t.Fatalf("expected confirmation prompt, got %q", resp.Content)
	}

	resp = f.router.Dispatch(ctx, guildInvocation("nuke", "confirm"))
	if !f.mod.recreated {
		t.Fatalf("confirmed nuke did not recreate the channel")
	}
	if resp.ChannelID != "chan-new" {
		t.Fatalf("confirmation should target the new channel, got %q", resp.ChannelID)
	}
}

func TestMuteParsesDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp := f.router.Dispatch(ctx, guildInvocation("mute", "123", "5m"))
	if !strings.Contains(resp.Content, "5m") {
		t.Fatalf("mute 5m: %q", resp.Content)
	}
	resp = f.router.Dispatch(ctx, guildInvocation("mute", "123"))
	if !strings.Contains(resp.Content, "10m") {
		t.Fatalf("default mute should be 10m: %q", resp.Content)
	}
	resp = f.router.Dispatch(ctx, guildInvocation("mute", "123", "5w"))
	if !strings.HasPrefix(resp.Content, "Usage:") {
		t.Fatalf("bad duration accepted: %q", resp.Content)
	}
}

func TestRemindSchedulesDelivery(t *testing.T) {
	f := newFixture(t)
	resp := f.router.Dispatch(context.Background(), guildInvocation("remind", "<@123>", "2h", "check", "stock"))
	if !strings.Contains(resp.Content, "2h") {
		t.Fatalf("remind reply: %q", resp.Content)
	}
	if f.sched.scheduled != 1 {
		t.Fatalf("scheduled %d reminders", f.sched.scheduled)
	}
}

func TestSnipeReadsWithoutConsuming(t *testing.T) {
	f := newFixture(t)
	f.snipes.records["c1"] = snipe.Record{
		Content:   "oops",
		AuthorTag: "ghost#0",
		DeletedAt: time.Now(),
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		resp := f.router.Dispatch(ctx, guildInvocation("snipe"))
		if resp.Kind != KindEmbed || resp.Embed.Description != "oops" {
			t.Fatalf("snipe read %d: %+v", i, resp)
		}
	}
}

func TestPollCarriesReactions(t *testing.T) {
	f := newFixture(t)
	resp := f.router.Dispatch(context.Background(), guildInvocation("poll", "ship", "it?"))
	if len(resp.Reactions) != 2 {
		t.Fatalf("expected two reactions, got %v", resp.Reactions)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	f := newFixture(t)
	resp := f.router.Dispatch(context.Background(), guildInvocation("help"))
	if resp.Kind != KindEmbed {
		t.Fatalf("help should be an embed")
	}
	var joined strings.Builder
	for _, field := range resp.Embed.Fields {
		joined.WriteString(field.Value)
		joined.WriteString("\n")
	}
	for _, name := range []string{"addaddy", "warn", "nuke", "snipe", "broadcast", "help"} {
		if !strings.Contains(joined.String(), name) {
			t.Fatalf("help is missing %q", name)
		}
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in     string
		wantID string
		wantOK bool
	}{
		{"123456", "123456", true},
		{"<@123456>", "123456", true},
		{"<@!123456>", "123456", true},
		{"<#123456>", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := parseUserID(tt.in)
		if id != tt.wantID || ok != tt.wantOK {
			t.Fatalf("parseUserID(%q) = %q %v", tt.in, id, ok)
		}
	}
}
