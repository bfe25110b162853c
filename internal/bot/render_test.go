package bot

import (
	"testing"

	"teamdesk/internal/command"

	"github.com/bwmarrin/discordgo"
)

func TestRenderEmbedMapsEveryField(t *testing.T) {
	in := &command.Embed{
		Title:       "title",
		Description: "desc",
		Color:       0x123456,
		Footer:      "foot",
		AuthorName:  "author",
		AuthorIcon:  "https://cdn.example/a.png",
		ImageURL:    "https://cdn.example/i.png",
		Thumbnail:   "https://cdn.example/t.png",
		Fields: []command.Field{
			{Name: "n", Value: "v", Inline: true},
		},
	}
	out := renderEmbed(in)
	if out.Title != "title" || out.Description != "desc" || out.Color != 0x123456 {
		t.Fatalf("basic fields: %+v", out)
	}
	if out.Footer == nil || out.Footer.Text != "foot" {
		t.Fatalf("footer: %+v", out.Footer)
	}
	if out.Author == nil || out.Author.Name != "author" {
		t.Fatalf("author: %+v", out.Author)
	}
	if out.Image == nil || out.Thumbnail == nil {
		t.Fatalf("image/thumbnail missing")
	}
	if len(out.Fields) != 1 || !out.Fields[0].Inline {
		t.Fatalf("fields: %+v", out.Fields)
	}
}

func TestRenderEmbedNilIsEmpty(t *testing.T) {
	out := renderEmbed(nil)
	if out == nil || out.Title != "" {
		t.Fatalf("nil embed should render empty")
	}
}

func TestRenderButtons(t *testing.T) {
	if renderButtons(nil) != nil {
		t.Fatalf("no buttons should render no components")
	}
	components := renderButtons([]command.Button{
		{Label: "Copy Address", ActionToken: "copy-upi"},
		{Label: "Copy Vouch", ActionToken: "copy-vouch"},
	})
	if len(components) != 1 {
		t.Fatalf("expected one row, got %d", len(components))
	}
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok || len(row.Components) != 2 {
		t.Fatalf("row: %+v", components[0])
	}
	button, ok := row.Components[0].(discordgo.Button)
	if !ok || button.CustomID != "copy-upi" {
		t.Fatalf("button: %+v", row.Components[0])
	}
}
