package game

// Upgrade is a permanent flat stat boost offered when the defeated-enemy
// threshold is reached.
type Upgrade int

const (
	UpgradeExtraProjectile Upgrade = iota
	UpgradeFasterFire
	UpgradeMoveSpeed
	UpgradeExtraLife
	upgradeCount
)

// String returns the player-facing name of the upgrade.
func (u Upgrade) String() string {
	switch u {
	case UpgradeExtraProjectile:
		return "Extra projectile"
	case UpgradeFasterFire:
		return "Faster fire rate"
	case UpgradeMoveSpeed:
		return "Move speed +20%"
	case UpgradeExtraLife:
		return "Extra life"
	default:
		return "Unknown"
	}
}

// upgradeChoiceCount is how many upgrades are offered per pause.
const upgradeChoiceCount = 3

// enterUpgrade pauses the simulation and offers a random selection of
// distinct upgrades.
func (s *State) enterUpgrade() {
	s.Phase = PhaseUpgrade
	perm := s.rng.Perm(int(upgradeCount))
	s.Choices = s.Choices[:0]
	for _, i := range perm[:upgradeChoiceCount] {
		s.Choices = append(s.Choices, Upgrade(i))
	}
}

// ChooseUpgrade applies the chosen offer, doubles the next threshold, and
// resumes the simulation. Out-of-range choices are ignored.
func (s *State) ChooseUpgrade(i int) {
	if s.Phase != PhaseUpgrade || i < 0 || i >= len(s.Choices) {
		return
	}
	s.applyUpgrade(s.Choices[i])
	s.Choices = s.Choices[:0]
	s.UpgradeThreshold *= 2
	s.Phase = PhaseRunning
}

func (s *State) applyUpgrade(u Upgrade) {
	switch u {
	case UpgradeExtraProjectile:
		s.Player.ProjectileCount++
	case UpgradeFasterFire:
		s.Player.FireCooldown *= 0.8
	case UpgradeMoveSpeed:
		s.Player.Speed *= 1.2
	case UpgradeExtraLife:
		s.Player.Lives++
	}
}
