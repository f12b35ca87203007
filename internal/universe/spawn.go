package universe

// Formation layout.
const (
	FormationRows = 5
	FormationCols = 11
	MaxMissiles   = 10
	FrontValue    = 100 // value of the first row, halved for each row behind it

	rowGap     = 5
	colGap     = 8
	leftMargin = 4
	topMargin  = 2
)

// FormationHeight is the height of the starting formation, top margin
// included.
const FormationHeight = FormationRows*(AlienHeight+rowGap) + topMargin

var rowKinds = [FormationRows]AlienKind{AlienA, AlienB, AlienB, AlienC, AlienC}

// AddAliens appends the 5x11 starting formation.
// The host calls it once when a game starts.
func (u *Universe) AddAliens() {
	value := FrontValue
	for row := 0; row < FormationRows; row++ {
		y := row*(AlienHeight+rowGap) + topMargin
		for col := 0; col < FormationCols; col++ {
			x := col*(AlienWidth+colGap) + leftMargin
			u.aliens = append(u.aliens, newAlien(x, y, value, rowKinds[row]))
		}
		value /= 2
	}
}

// FireMissile launches a missile from the ship's nose.
// Does nothing when MaxMissiles are already in flight.
func (u *Universe) FireMissile() {
	if len(u.missiles) >= MaxMissiles {
		return
	}
	u.missiles = append(u.missiles, Missile{
		X: u.player.X + 5,
		Y: u.height - PlayerHeight - 1,
	})
}

// SetPlayerHeading records the player's movement intent.
// It takes effect on the next tick.
func (u *Universe) SetPlayerHeading(h PlayerHeading) {
	u.player.Heading = h
}

// DropBomb releases a bomb from the first alien in the formation.
// The choice is deterministic. Without aliens it does nothing.
func (u *Universe) DropBomb() {
	if len(u.aliens) == 0 {
		return
	}
	a := u.aliens[0]
	u.bombs = append(u.bombs, Bomb{X: a.X, Y: a.Y})
	u.logger.Debug("bomb dropped", "x", a.X, "y", a.Y)
}
