package command

import (
	"context"
	"testing"
)

func TestResolveCopyActionUsesClickersOwnAddress(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()
	if err := store.SetAddress(ctx, "alice", "upi", "alice@bank"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.SetAddress(ctx, "bob", "upi", "bob@bank"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// bob clicks the button on alice's lookup embed and must get his own
	// address, not the one shown in the embed.
	got, ok := ResolveCopyAction(ctx, store, "copy-upi", "bob", "```alice@bank```")
	if !ok || got != "bob@bank" {
		t.Fatalf("got %q %v, want bob@bank", got, ok)
	}
}

func TestResolveCopyActionAbsentAddress(t *testing.T) {
	store := newFakeStore()
	got, ok := ResolveCopyAction(context.Background(), store, "copy-ltc", "carol", "")
	if ok || got != "" {
		t.Fatalf("expected absence, got %q %v", got, ok)
	}
}

func TestResolveCopyActionVouchUsesSourceText(t *testing.T) {
	store := newFakeStore()
	desc := "+rep <@1> | Legit Purchased **Thing** for **$1**"
	got, ok := ResolveCopyAction(context.Background(), store, "copy-vouch", "anyone", desc)
	if !ok || got != desc {
		t.Fatalf("got %q %v", got, ok)
	}
}

func TestResolveCopyActionUnknownToken(t *testing.T) {
	store := newFakeStore()
	if _, ok := ResolveCopyAction(context.Background(), store, "delete-everything", "x", "y"); ok {
		t.Fatalf("unknown token resolved")
	}
}
