package command

import (
	"context"
	"fmt"
	"strings"

	"teamdesk/internal/storage"
)

const embedColorGold = 0xf1c40f

var addressKindLabels = map[string]string{
	storage.AddressUPI:  "UPI",
	storage.AddressLTC:  "LTC",
	storage.AddressUSDT: "USDT",
}

func lookupAddressHandler(kind string) HandlerFunc {
	return func(ctx context.Context, inv Invocation, deps *Deps) Response {
		address, err := deps.Store.GetAddress(ctx, inv.ActorID, kind)
		if err != nil {
			return Message("❌ Unable to look up the address right now.")
		}
		if address == "" {
			return Message("❌ No saved address found.")
		}
		label := addressKindLabels[kind]
		return Response{
			Kind: KindEmbed,
			Embed: &Embed{
				Title:       label + " Address",
				Description: "```" + address + "```",
				Color:       embedColorGold,
				Footer:      "Requested by " + inv.ActorTag,
			},
			Buttons: []Button{{Label: "Copy Address", ActionToken: "copy-" + kind}},
		}
	}
}

func addAddressHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 3 {
		return deps.usage("addaddy <userId> <upi|ltc|usdt> <address>")
	}
	userID, ok := parseUserID(inv.Args[0])
	if !ok {
		return deps.usage("addaddy <userId> <upi|ltc|usdt> <address>")
	}
	kind := strings.ToLower(inv.Args[1])
	if !storage.IsAddressKind(kind) {
		return Message("❌ Unknown address kind. Use upi, ltc or usdt.")
	}
	address := strings.Join(inv.Args[2:], " ")
	if err := deps.Store.SetAddress(ctx, userID, kind, address); err != nil {
		return Message("❌ Unable to save the address right now.")
	}
	return Message(fmt.Sprintf("✅ Saved %s address for <@%s>.", addressKindLabels[kind], userID))
}

func showAddressesHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	targetID := inv.ActorID
	if len(inv.Args) > 0 && inv.ActorID == deps.OwnerID {
		if id, ok := parseUserID(inv.Args[0]); ok {
			targetID = id
		}
	}
	addresses, err := deps.Store.ListAddresses(ctx, targetID)
	if err != nil {
		return Message("❌ Unable to look up addresses right now.")
	}
	if len(addresses) == 0 {
		return Message("❌ No saved address found.")
	}
	embed := &Embed{
		Title: "Saved Addresses",
		Color: embedColorGold,
	}
	for _, kind := range []string{storage.AddressUPI, storage.AddressLTC, storage.AddressUSDT} {
		if address, ok := addresses[kind]; ok {
			embed.Fields = append(embed.Fields, Field{
				Name:  addressKindLabels[kind],
				Value: "```" + address + "```",
			})
		}
	}
	return Response{Kind: KindEmbed, Embed: embed}
}

func vouchHandler(ctx context.Context, inv Invocation, deps *Deps) Response {
	if len(inv.Args) < 2 {
		return deps.usage("vouch <product...> <price>")
	}
	price := inv.Args[len(inv.Args)-1]
	product := strings.Join(inv.Args[:len(inv.Args)-1], " ")
	return Response{
		Kind: KindEmbed,
		Embed: &Embed{
			Title:       "Vouch Format",
			Description: fmt.Sprintf("+rep <@%s> | Legit Purchased **%s** for **%s**", inv.ActorID, product, price),
			Color:       embedColorGold,
			Footer:      "Requested by " + inv.ActorTag,
		},
		Buttons: []Button{{Label: "Copy Vouch", ActionToken: "copy-vouch"}},
	}
}
