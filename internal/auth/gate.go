package auth

// Tier is the permission level a command demands from its invoker.
type Tier int

const (
	TierPublic Tier = iota
	TierSupport
	TierOwner
)

func (t Tier) String() string {
	switch t {
	case TierOwner:
		return "owner"
	case TierSupport:
		return "support"
	default:
		return "public"
	}
}

type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Gate evaluates command tiers against the invoking actor. It holds no actor
// state of its own; roles must come from the caller on every invocation.
type Gate struct {
	ownerID       string
	supportRoleID string
}

func NewGate(ownerID, supportRoleID string) *Gate {
	return &Gate{ownerID: ownerID, supportRoleID: supportRoleID}
}

// Authorize is a pure predicate. The support tier is only enforced inside a
// guild; direct-message invocations of support commands pass through.
func (g *Gate) Authorize(tier Tier, actorID string, actorRoles []string, inGuild bool) Decision {
	switch tier {
	case TierOwner:
		if actorID == g.ownerID {
			return allow
		}
		return deny("not owner")
	case TierSupport:
		if !inGuild {
			return allow
		}
		if g.supportRoleID == "" {
			return deny("missing support role")
		}
		for _, roleID := range actorRoles {
			if roleID == g.supportRoleID {
				return allow
			}
		}
		return deny("missing support role")
	default:
		return allow
	}
}
