package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/renderer"
)

// Mode is the top-level game state.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeTerminated
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State holds the paddles and ball as entities plus scores and mode.
type State struct {
	world *ecs.World

	paddleMapper *ecs.Map2[components.Rect, components.Paddle]
	ballMapper   *ecs.Map3[components.Rect, components.Velocity, components.Ball]
	paddleFilter *ecs.Filter2[components.Rect, components.Paddle]
	rectMap      *ecs.Map1[components.Rect]
	velMap       *ecs.Map1[components.Velocity]

	player, ai, ball ecs.Entity

	PlayerScore int
	AIScore     int
	Speed       components.Speed
	Mode        Mode
	Tick        int32

	width, height float32
}

// Snapshot is a value copy of everything visible in a frame.
type Snapshot struct {
	Player      components.Rect
	AI          components.Rect
	Ball        components.Rect
	Velocity    components.Velocity
	PlayerScore int
	AIScore     int
	Speed       components.Speed
	Mode        Mode
	Tick        int32
}

// NewState creates the world with both paddles vertically centered and the
// ball at rest in the middle of the field.
func NewState(cfg *config.Config) *State {
	world := ecs.NewWorld()

	s := &State{
		world:        world,
		paddleMapper: ecs.NewMap2[components.Rect, components.Paddle](world),
		ballMapper:   ecs.NewMap3[components.Rect, components.Velocity, components.Ball](world),
		paddleFilter: ecs.NewFilter2[components.Rect, components.Paddle](world),
		rectMap:      ecs.NewMap1[components.Rect](world),
		velMap:       ecs.NewMap1[components.Velocity](world),
		Mode:         ModeMenu,
		width:        cfg.Derived.FieldW32,
		height:       cfg.Derived.FieldH32,
	}

	pw, ph := cfg.Derived.PaddleW32, cfg.Derived.PaddleH32
	paddleY := s.height/2 - ph/2

	s.player = s.spawnPaddle(components.Rect{
		X: s.width - float32(cfg.Paddle.PlayerInset),
		Y: paddleY,
		W: pw,
		H: ph,
	}, components.SidePlayer)
	s.ai = s.spawnPaddle(components.Rect{
		X: float32(cfg.Paddle.AIInset),
		Y: paddleY,
		W: pw,
		H: ph,
	}, components.SideAI)

	size := cfg.Derived.BallSize
	ball := components.Rect{W: size, H: size}
	ball.SetCenter(s.width/2, s.height/2)
	s.ball = s.ballMapper.NewEntity(&ball, &components.Velocity{}, &components.Ball{})

	return s
}

func (s *State) spawnPaddle(r components.Rect, side components.Side) ecs.Entity {
	return s.paddleMapper.NewEntity(&r, &components.Paddle{Side: side})
}

// Player returns the player paddle.
func (s *State) Player() *components.Rect { return s.rectMap.Get(s.player) }

// AI returns the AI paddle.
func (s *State) AI() *components.Rect { return s.rectMap.Get(s.ai) }

// Ball returns the ball.
func (s *State) Ball() *components.Rect { return s.rectMap.Get(s.ball) }

// Velocity returns the ball velocity.
func (s *State) Velocity() *components.Velocity { return s.velMap.Get(s.ball) }

// Reset starts a new game: scores go to zero, the ball is recentered with
// vel, and the paddles stay where they are. The caller serves the ball.
func (s *State) Reset(speed components.Speed, vel components.Velocity) {
	s.PlayerScore = 0
	s.AIScore = 0
	s.Speed = speed
	s.Ball().SetCenter(s.width/2, s.height/2)
	*s.Velocity() = vel
}

// AddPoint credits one point to side.
func (s *State) AddPoint(side components.Side) {
	switch side {
	case components.SidePlayer:
		s.PlayerScore++
	case components.SideAI:
		s.AIScore++
	}
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Ball:        *s.Ball(),
		Velocity:    *s.Velocity(),
		PlayerScore: s.PlayerScore,
		AIScore:     s.AIScore,
		Speed:       s.Speed,
		Mode:        s.Mode,
		Tick:        s.Tick,
	}

	query := s.paddleFilter.Query()
	for query.Next() {
		rect, paddle := query.Get()
		switch paddle.Side {
		case components.SidePlayer:
			snap.Player = *rect
		case components.SideAI:
			snap.AI = *rect
		}
	}
	return snap
}

// Scene converts a snapshot into renderer input for a field of the given size.
func (snap Snapshot) Scene(width, height int32) renderer.Scene {
	return renderer.Scene{
		Width:       width,
		Height:      height,
		Player:      snap.Player,
		AI:          snap.AI,
		Ball:        snap.Ball,
		PlayerScore: snap.PlayerScore,
		AIScore:     snap.AIScore,
	}
}
