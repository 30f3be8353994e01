package system

import (
	"math"

	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// contactEpsilon is the smallest overlap treated as a contact
const contactEpsilon = 1e-9

// seamTolerance is how far apart two obstacle edges may be and still meet
const seamTolerance = 1e-6

// Side names where an obstacle touches the guy, seen from the guy
type Side int

const (
	SideLeft   Side = iota // obstacle on the guy's left
	SideRight              // obstacle on the guy's right
	SideTop                // ceiling
	SideBottom             // floor
	SideInside             // no clean edge on either axis
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Contact is one obstacle/guy overlap
type Contact struct {
	Side  Side
	Depth float64 // penetration along the chosen axis, +Inf for SideInside
}

// Collide classifies the overlap between obstacle rect a and guy rect b.
// An axis has a clean edge when a straddles exactly one of b's edges on it.
// The axis with the smaller depth wins; equal depths resolve horizontally.
func Collide(a, b entity.Rect) (Contact, bool) {
	x, y, ok := axisContacts(a, b)
	if !ok {
		return Contact{}, false
	}
	return nearer(x, y), true
}

// noContact marks an axis without a usable edge
var noContact = Contact{Side: SideInside, Depth: math.Inf(1)}

// axisContacts classifies each axis of the overlap on its own
func axisContacts(a, b entity.Rect) (x, y Contact, ok bool) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	if overlapX <= contactEpsilon || overlapY <= contactEpsilon {
		return noContact, noContact, false
	}

	x, y = noContact, noContact
	switch {
	case a.Min.X < b.Min.X && a.Max.X > b.Min.X && a.Max.X < b.Max.X:
		x = Contact{Side: SideLeft, Depth: a.Max.X - b.Min.X}
	case a.Min.X > b.Min.X && a.Min.X < b.Max.X && a.Max.X > b.Max.X:
		x = Contact{Side: SideRight, Depth: b.Max.X - a.Min.X}
	}

	switch {
	case a.Min.Y < b.Min.Y && a.Max.Y > b.Min.Y && a.Max.Y < b.Max.Y:
		y = Contact{Side: SideBottom, Depth: a.Max.Y - b.Min.Y}
	case a.Min.Y > b.Min.Y && a.Min.Y < b.Max.Y && a.Max.Y > b.Max.Y:
		y = Contact{Side: SideTop, Depth: b.Max.Y - a.Min.Y}
	}
	return x, y, true
}

// nearer picks the shallower axis, horizontal on ties
func nearer(x, y Contact) Contact {
	if y.Depth < x.Depth {
		return y
	}
	return x
}

// coveredEdge reports whether the edge of obstacles[i] facing the guy from
// side is flush against another obstacle over the whole span the guy
// touches. Such an edge is a seam inside solid geometry, not a surface.
func coveredEdge(obstacles []entity.Obstacle, i int, obs, guy entity.Rect, side Side) bool {
	vertical := side == SideBottom || side == SideTop
	lo, hi := max(obs.Min.Y, guy.Min.Y), min(obs.Max.Y, guy.Max.Y)
	if vertical {
		lo, hi = max(obs.Min.X, guy.Min.X), min(obs.Max.X, guy.Max.X)
	}

	for j := range obstacles {
		if j == i {
			continue
		}
		p := obstacles[j].Rect()

		var flush bool
		switch side {
		case SideBottom:
			flush = math.Abs(p.Min.Y-obs.Max.Y) <= seamTolerance
		case SideTop:
			flush = math.Abs(p.Max.Y-obs.Min.Y) <= seamTolerance
		case SideLeft:
			flush = math.Abs(p.Min.X-obs.Max.X) <= seamTolerance
		case SideRight:
			flush = math.Abs(p.Max.X-obs.Min.X) <= seamTolerance
		}
		if !flush {
			continue
		}

		pLo, pHi := p.Min.Y, p.Max.Y
		if vertical {
			pLo, pHi = p.Min.X, p.Max.X
		}
		if pLo <= lo+seamTolerance && pHi >= hi-seamTolerance {
			return true
		}
	}
	return false
}

// Resolution summarizes one resolver run
type Resolution struct {
	Landed  bool // grounded this tick but not the tick before
	Rewound bool // the previous position was restored
	Passes  int  // contacts applied
}

// Resolver pushes the guy out of obstacles and recomputes grounding
type Resolver struct {
	config *config.TuningConfig
}

// NewResolver creates a new collision resolver
func NewResolver(cfg *config.TuningConfig) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve corrects the guy against every obstacle for one physics tick.
// Each pass applies the shallowest contact over all obstacles, earliest
// obstacle first on ties, then tests again. Edges flush against another
// obstacle are skipped, and once the guy has been pushed both left and
// right in one tick only vertical contacts remain. Overlap still left when
// the passes run out rewinds the guy like an inside contact.
func (s *Resolver) Resolve(g *entity.Guy, obstacles []entity.Obstacle, dt float64) Resolution {
	js := &g.Jump
	wasGrounded := js.Grounded

	js.Grounded = false
	if js.CoyoteActive {
		js.Coyote.Tick(dt)
	}

	var res Resolution
	grounded := false
	pushedLeft, pushedRight := false, false

	for res.Passes < s.config.Collision.MaxPasses {
		rect := g.Rect()
		lockX := pushedLeft && pushedRight

		best := -1
		var bestContact Contact
		var bestRect entity.Rect
		for i := range obstacles {
			obsRect := obstacles[i].Rect()
			c, ok := contactAt(obstacles, i, obsRect, rect, lockX)
			if !ok {
				continue
			}
			if best < 0 || c.Depth < bestContact.Depth {
				best, bestContact, bestRect = i, c, obsRect
			}
		}
		if best < 0 {
			break
		}

		s.apply(g, bestRect, bestContact.Side)
		res.Passes++

		switch bestContact.Side {
		case SideBottom:
			grounded = true
		case SideLeft:
			pushedLeft = true
		case SideRight:
			pushedRight = true
		case SideInside:
			res.Rewound = true
		}
		if res.Rewound {
			break
		}
	}

	if !res.Rewound && overlapsAny(obstacles, g.Rect()) {
		s.apply(g, entity.Rect{}, SideInside)
		res.Rewound = true
	}
	if res.Rewound {
		// the tick's corrections were thrown away with the position
		grounded = false
	}

	js.Grounded = grounded
	if grounded {
		js.GroundY = g.Transform.Translation.Y
	}
	res.Landed = grounded && !wasGrounded

	return res
}

// contactAt classifies obstacles[i] against the guy for the resolver.
// Covered edges, and horizontal edges under lockX, are not usable; an
// obstacle with no usable edge left is skipped. A true inside overlap is
// always reported.
func contactAt(obstacles []entity.Obstacle, i int, obs, guy entity.Rect, lockX bool) (Contact, bool) {
	x, y, ok := axisContacts(obs, guy)
	if !ok {
		return Contact{}, false
	}
	if x.Side == SideInside && y.Side == SideInside {
		return x, true
	}

	if x.Side != SideInside && (lockX || coveredEdge(obstacles, i, obs, guy, x.Side)) {
		x = noContact
	}
	if y.Side != SideInside && coveredEdge(obstacles, i, obs, guy, y.Side) {
		y = noContact
	}

	c := nearer(x, y)
	if c.Side == SideInside {
		return Contact{}, false
	}
	return c, true
}

func overlapsAny(obstacles []entity.Obstacle, guy entity.Rect) bool {
	for i := range obstacles {
		if _, ok := axisContacts(obstacles[i].Rect(), guy); ok {
			return true
		}
	}
	return false
}

func (s *Resolver) apply(g *entity.Guy, obs entity.Rect, side Side) {
	vel := &g.Body.Velocity
	pos := &g.Transform.Translation
	half := g.Box.Extent(g.Transform).Scale(0.5)

	switch side {
	case SideLeft:
		vel.X = max(0, vel.X)
		pos.X = obs.Max.X + half.X
	case SideRight:
		vel.X = min(0, vel.X)
		pos.X = obs.Min.X - half.X
	case SideTop:
		vel.Y = min(0, vel.Y)
		pos.Y = obs.Min.Y - half.Y
	case SideBottom:
		standing := s.standingSize()
		g.SetSize(standing)
		g.Jump.Silhouette = entity.SilhouetteStanding
		standingHalf := g.Box.Extent(g.Transform).Scale(0.5)

		vel.Y = max(0, vel.Y)
		pos.Y = obs.Max.Y + standingHalf.Y

		g.Jump.Coyote.Reset()
		g.Jump.CoyoteActive = true
	case SideInside:
		*vel = entity.Vec2{}
		*pos = g.Body.PreviousPosition
	}
}

func (s *Resolver) standingSize() entity.Vec2 {
	sz := s.config.Guy.StandingSize
	return entity.Vec2{X: sz.W, Y: sz.H}
}
