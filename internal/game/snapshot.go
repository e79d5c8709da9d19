package game

// Snapshot is a read-only copy of the simulation state taken at the top of
// a frame. The render path and network consumers only ever see snapshots;
// JSON tags match the browser client's frame messages.
type Snapshot struct {
	Phase     Phase   `json:"phase"`
	Frame     uint64  `json:"frame"`
	Countdown float64 `json:"countdown"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`

	Score     int     `json:"score"`
	Defeated  int     `json:"defeated"`
	Threshold int     `json:"threshold"`
	Lives     int     `json:"lives"`
	Distance  float64 `json:"distance,omitempty"`
	Shake     bool    `json:"shake,omitempty"`
	RollReady bool    `json:"rollReady"`

	Player      PlayerView   `json:"player"`
	Enemies     []CircleView `json:"enemies,omitempty"`
	Projectiles []CircleView `json:"projectiles,omitempty"`
	Coins       []CircleView `json:"coins,omitempty"`
	Obstacles   []CircleView `json:"obstacles,omitempty"`
	Trail       []TrailView  `json:"trail,omitempty"`

	Choices []string `json:"choices,omitempty"`
}

// PlayerView is the player's renderable state.
type PlayerView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"r"`
	Invincible bool    `json:"invincible,omitempty"`
	Rolling    bool    `json:"rolling,omitempty"`
}

// CircleView is the renderable state of any circular entity.
type CircleView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
}

// TrailView is a fading trail segment.
type TrailView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Radius  float64 `json:"r"`
	Opacity float64 `json:"opacity"`
}

// Snapshot copies the current state into a fresh read-only view.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Phase:     s.Phase,
		Frame:     s.Frame,
		Countdown: s.Countdown,
		Width:     s.Cfg.Width,
		Height:    s.Cfg.Height,
		Score:     s.Score,
		Defeated:  s.Defeated,
		Threshold: s.UpgradeThreshold,
		Lives:     s.Player.Lives,
		Distance:  s.Distance,
		Shake:     s.Shake,
		RollReady: s.Player.RollReady(),
		Player: PlayerView{
			X:          s.Player.X,
			Y:          s.Player.Y,
			Radius:     s.Player.Radius(),
			Invincible: s.Player.Invincible,
			Rolling:    s.Player.Rolling(),
		},
	}

	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, CircleView{X: e.X, Y: e.Y, Radius: e.Radius()})
	}
	for _, p := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, CircleView{X: p.X, Y: p.Y, Radius: p.Radius()})
	}
	for _, c := range s.Coins {
		snap.Coins = append(snap.Coins, CircleView{X: c.X, Y: c.Y, Radius: c.Radius()})
	}
	for _, o := range s.Obstacles {
		snap.Obstacles = append(snap.Obstacles, CircleView{X: o.X, Y: o.Y, Radius: o.Radius()})
	}
	for _, t := range s.Trail {
		snap.Trail = append(snap.Trail, TrailView{X: t.X, Y: t.Y, Radius: t.Size / 2, Opacity: t.Opacity})
	}
	for _, u := range s.Choices {
		snap.Choices = append(snap.Choices, u.String())
	}

	return snap
}
