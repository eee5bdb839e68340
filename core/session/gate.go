package session

// Outcome of a navigation through the route gate.
type Outcome int

const (
	OutcomeLoading Outcome = iota
	OutcomeRender
	OutcomeRedirect
	OutcomeForbidden
	OutcomeNotFound
)

var outcomeNames = map[Outcome]string{
	OutcomeLoading:   "loading",
	OutcomeRender:    "render",
	OutcomeRedirect:  "redirect",
	OutcomeForbidden: "forbidden",
	OutcomeNotFound:  "not_found",
}

func (o Outcome) String() string { return outcomeNames[o] }

// Decision tells a screen what to do with a navigation.
type Decision struct {
	Outcome  Outcome
	Route    Route
	User     User
	Location string // set on OutcomeRedirect
}

// Decide applies the route gate to path.
// Unknown paths fall through to the not-found screen without gating.
func Decide(p *Provider, path string) Decision {
	route, ok := LookupRoute(path)
	if !ok {
		return Decision{Outcome: OutcomeNotFound}
	}
	return DecideRoute(p, route)
}

// DecideRoute applies the route gate to a known route.
func DecideRoute(p *Provider, route Route) Decision {
	switch p.State() {
	case StateInitializing:
		return Decision{Outcome: OutcomeLoading, Route: route}
	case StateUnauthenticated:
		return Decision{Outcome: OutcomeRedirect, Route: route, Location: LoginPath}
	}

	usr, _ := p.User()
	if !route.Allows(usr.Role) {
		return Decision{Outcome: OutcomeForbidden, Route: route, User: usr}
	}
	return Decision{Outcome: OutcomeRender, Route: route, User: usr}
}
