package command

import (
	"context"
	"strings"
)

// ResolveCopyAction maps a button action token to the text a "copy" click
// should hand back. Address copies always read the clicking user's own stored
// address, never the text of the embed the button sits on, so a click on
// somebody else's lookup cannot leak their address.
func ResolveCopyAction(ctx context.Context, store Store, token, actingUserID, sourceDescription string) (string, bool) {
	if token == "copy-vouch" {
		if sourceDescription == "" {
			return "", false
		}
		return sourceDescription, true
	}
	kind := strings.TrimPrefix(token, "copy-")
	if kind == token {
		return "", false
	}
	address, err := store.GetAddress(ctx, actingUserID, kind)
	if err != nil || address == "" {
		return "", false
	}
	return address, true
}
