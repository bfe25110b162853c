package command

import (
	"context"
	"strings"

	"teamdesk/internal/auth"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, inv Invocation, deps *Deps) Response

// Spec is one registered command: its tier, scope and handler, resolved once
// at registration instead of by ad hoc string matching.
type Spec struct {
	Name      string
	Category  string
	Usage     string
	Help      string
	Tier      auth.Tier
	GuildOnly bool
	Run       HandlerFunc
}

type Router struct {
	gate  *auth.Gate
	deps  *Deps
	specs map[string]Spec
	order []string
}

func NewRouter(gate *auth.Gate, deps *Deps) *Router {
	r := &Router{
		gate:  gate,
		deps:  deps,
		specs: make(map[string]Spec),
	}
	r.registerBuiltins()
	return r
}

func (r *Router) Register(spec Spec) {
	name := strings.ToLower(spec.Name)
	if _, exists := r.specs[name]; !exists {
		r.order = append(r.order, name)
	}
	r.specs[name] = spec
}

// Dispatch authorizes and runs the invocation. Unknown commands are silently
// ignored; a denial short-circuits before the handler can touch anything.
func (r *Router) Dispatch(ctx context.Context, inv Invocation) (resp Response) {
	spec, ok := r.specs[strings.ToLower(inv.Name)]
	if !ok {
		return NoOp()
	}

	decision := r.gate.Authorize(spec.Tier, inv.ActorID, inv.ActorRoles, inv.InGuild())
	if !decision.Allowed {
		return denialResponse(spec.Tier)
	}

	if spec.GuildOnly && !inv.InGuild() {
		return Message("❌ This command only works in a server.")
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			if r.deps.Logger != nil {
				r.deps.Logger.Error("handler panic",
					zap.String("command", spec.Name),
					zap.Any("panic", recovered),
				)
			}
			resp = Message("❌ Something went wrong running that command.")
		}
	}()

	return spec.Run(ctx, inv, r.deps)
}

func denialResponse(tier auth.Tier) Response {
	if tier == auth.TierOwner {
		return Message("❌ You are not allowed to use that command.")
	}
	return Message("❌ Only support role can use this command.")
}
