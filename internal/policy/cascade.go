package policy

import (
	"errors"
	"io"
	"log/slog"

	bt "github.com/joeycumines/go-behaviortree"

	"gridduel/internal/config"
	"gridduel/internal/grid"
)

var errNoRule = errors.New("no rule matched")

// Decision is the chosen action and the rule that produced it. Rule 0 is the
// early exit taken when our own piece is not on the board.
type Decision struct {
	Action Action `json:"action"`
	Rule   int    `json:"rule"`
	Reason string `json:"reason"`
}

// Policy holds only read-only settings, so one value may serve any number of
// goroutines.
type Policy struct {
	cfg config.PolicyConfig
	log *slog.Logger
}

func New(cfg config.PolicyConfig, log *slog.Logger) *Policy {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Policy{cfg: cfg, log: log}
}

var defaultPolicy = New(config.DefaultPolicy(), nil)

// Decide runs the default policy.
func Decide(in Input) (Decision, error) { return defaultPolicy.Decide(in) }

// turn is the blackboard the rules read for one evaluation.
type turn struct {
	in      Input
	loc     grid.Locations
	blocked map[grid.Position]bool

	canAttack   bool
	veryLow     bool
	needsHeart  bool
	needsWeapon bool
	finishAt    int // enemy life we expect to take in one blow

	out Decision
}

func newTurn(cfg config.PolicyConfig, in Input, loc grid.Locations) *turn {
	t := &turn{in: in, loc: loc, blocked: map[grid.Position]bool{}}
	if loc.Enemy != nil {
		t.blocked[*loc.Enemy] = true
	}
	my := in.MyLife()
	t.canAttack = grid.AdjacentOrSame(loc.Player, loc.Enemy)
	t.veryLow = my <= cfg.LowHealthThreshold
	t.needsHeart = my < cfg.HeartBelow && loc.Heart != nil
	t.needsWeapon = in.MyBullets() == 0 && loc.Weapon != nil
	t.finishAt = cfg.FinishDamageUnarmed
	if in.MyBullets() > 0 {
		t.finishAt = cfg.FinishDamageArmed
	}
	return t
}

func (t *turn) dist(p *grid.Position) int { return grid.Manhattan(t.loc.Player, p) }

type rule struct {
	name string
	when func(*turn) bool
	act  func(*turn) Action
}

// rules are tried top to bottom; the first whose guard holds decides the turn.
var rules = []rule{
	{"finish", func(t *turn) bool {
		return t.canAttack && t.in.EnemyLife() <= t.finishAt
	}, attack},
	{"heal-adjacent", func(t *turn) bool {
		return t.veryLow && t.loc.Heart != nil && t.dist(t.loc.Heart) == 1
	}, toward(heart)},
	{"arm-adjacent", func(t *turn) bool {
		return t.needsWeapon && t.dist(t.loc.Weapon) == 1
	}, toward(weapon)},
	{"heal-urgent", func(t *turn) bool {
		return t.veryLow && t.needsHeart
	}, toward(heart)},
	{"engage", func(t *turn) bool {
		return t.canAttack && (t.in.MyLife() >= t.in.EnemyLife() || t.in.MyBullets() > 0)
	}, attack},
	{"arm", func(t *turn) bool {
		return t.needsWeapon && (!t.needsHeart || t.dist(t.loc.Weapon) < t.dist(t.loc.Heart))
	}, toward(weapon)},
	{"heal", func(t *turn) bool {
		return t.needsHeart
	}, toward(heart)},
	{"chase", func(t *turn) bool {
		return t.loc.Enemy != nil
	}, toward(enemy)},
	{"center", func(*turn) bool { return true }, toward(center)},
}

func attack(*turn) Action { return Attack }

func heart(t *turn) *grid.Position  { return t.loc.Heart }
func weapon(t *turn) *grid.Position { return t.loc.Weapon }
func enemy(t *turn) *grid.Position  { return t.loc.Enemy }
func center(*turn) *grid.Position {
	c := grid.Center()
	return &c
}

func toward(target func(*turn) *grid.Position) func(*turn) Action {
	return func(t *turn) Action { return PlanStep(t.loc.Player, target(t), t.blocked) }
}

// tree wires the rules into a selector of guard/act sequences bound to t.
func tree(t *turn) bt.Node {
	children := make([]bt.Node, 0, len(rules))
	for i, r := range rules {
		i, r := i, r
		guard := bt.New(func([]bt.Node) (bt.Status, error) {
			if r.when(t) {
				return bt.Success, nil
			}
			return bt.Failure, nil
		})
		act := bt.New(func([]bt.Node) (bt.Status, error) {
			t.out = Decision{Action: r.act(t), Rule: i + 1, Reason: r.name}
			return bt.Success, nil
		})
		children = append(children, bt.New(bt.Sequence, guard, act))
	}
	return bt.New(bt.Selector, children...)
}

// Decide answers one turn. Only a malformed board or player id is an error.
func (p *Policy) Decide(in Input) (Decision, error) {
	if err := in.validate(); err != nil {
		return Decision{}, err
	}
	b, err := grid.Decode(in.Board)
	if err != nil {
		return Decision{}, err
	}
	loc := grid.Locate(b, in.PlayerID)
	if loc.Player == nil {
		p.log.Debug("player not on board", "player", in.PlayerID, "board", in.Board)
		return Decision{Action: Up, Reason: "missing-player"}, nil
	}

	t := newTurn(p.cfg, in, loc)
	status, err := tree(t).Tick()
	if err != nil {
		return Decision{}, err
	}
	if status != bt.Success {
		return Decision{}, errNoRule
	}
	p.log.Debug("decided",
		"player", in.PlayerID,
		"rule", t.out.Rule,
		"reason", t.out.Reason,
		"action", string(t.out.Action),
		"life", in.MyLife(),
		"enemy_life", in.EnemyLife(),
		"bullets", in.MyBullets(),
	)
	return t.out, nil
}
