package universe

// SpriteID names an entry of the built-in asset table.
type SpriteID int

const (
	SpriteAlienA1 SpriteID = iota
	SpriteAlienA2
	SpriteAlienB1
	SpriteAlienB2
	SpriteAlienC1
	SpriteAlienC2
	SpriteExplosion
	SpritePlayer
	SpritePlayerExplosion
	SpriteMissile
	SpriteBomb
	spriteCount
)

// Entity dimensions in cells.
const (
	AlienWidth   = 12
	AlienHeight  = 8
	PlayerWidth  = 11
	PlayerHeight = 7
)

var assets = [spriteCount]Sprite{
	SpriteAlienA1: mustSprite(AlienWidth, AlienHeight,
		".....@@.....",
		"....@@@@....",
		"...@@@@@@...",
		"..@@.@@.@@..",
		"..@@@@@@@@..",
		"....@..@....",
		"...@.@@.@...",
		"..@.@..@.@..",
	),
	SpriteAlienA2: mustSprite(AlienWidth, AlienHeight,
		".....@@.....",
		"....@@@@....",
		"...@@@@@@...",
		"..@@.@@.@@..",
		"..@@@@@@@@..",
		"...@.@@.@...",
		"..@......@..",
		"...@....@...",
	),
	SpriteAlienB1: mustSprite(AlienWidth, AlienHeight,
		"..@.....@...",
		"...@...@....",
		"..@@@@@@@...",
		".@@.@@@.@@..",
		"@@@@@@@@@@@.",
		"@.@@@@@@@.@.",
		"@.@.....@.@.",
		"...@@.@@....",
	),
	SpriteAlienB2: mustSprite(AlienWidth, AlienHeight,
		".@.@.....@.@",
		".@..@...@..@",
		".@.@@@@@@@.@",
		".@@@.@@@.@@@",
		"..@@@@@@@@@.",
		"...@@@@@@@..",
		"...@.....@..",
		".@@.......@@",
	),
	SpriteAlienC1: mustSprite(AlienWidth, AlienHeight,
		"....@@@@....",
		".@@@@@@@@@@.",
		"@@@@@@@@@@@@",
		"@@@..@@..@@@",
		"@@@@@@@@@@@@",
		"...@@..@@...",
		"..@@.@@.@@..",
		"@@........@@",
	),
	SpriteAlienC2: mustSprite(AlienWidth, AlienHeight,
		"....@@@@....",
		".@@@@@@@@@@.",
		"@@@@@@@@@@@@",
		"@@@..@@..@@@",
		"@@@@@@@@@@@@",
		"..@@@..@@@..",
		".@@..@@..@@.",
		"..@@....@@..",
	),
	SpriteExplosion: mustSprite(AlienWidth, AlienHeight,
		"............",
		".@..@..@..@.",
		"..@..@@..@..",
		"...@....@...",
		"@@........@@",
		"...@....@...",
		"..@..@@..@..",
		".@..@..@..@.",
	),
	SpritePlayer: mustSprite(PlayerWidth, PlayerHeight,
		".....@.....",
		"....@@@....",
		"....@@@....",
		".@@@@@@@@@.",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
	),
	SpritePlayerExplosion: mustSprite(PlayerWidth, PlayerHeight,
		"@...@.@...@",
		".@...@...@.",
		"@.@.@.@.@.@",
		".@@.....@@.",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
	),
	SpriteMissile: mustSprite(1, 3,
		"@",
		"@",
		"@",
	),
	SpriteBomb: mustSprite(3, 3,
		"@@@",
		".@.",
		".@.",
	),
}

// Asset returns the built-in sprite for id.
func Asset(id SpriteID) Sprite {
	return assets[id]
}

// alienFrames maps a kind to its two walk frames, indexed by phase.
// Phase true selects the first frame.
var alienFrames = map[AlienKind][2]SpriteID{
	AlienA: {SpriteAlienA2, SpriteAlienA1},
	AlienB: {SpriteAlienB2, SpriteAlienB1},
	AlienC: {SpriteAlienC2, SpriteAlienC1},
}

// AlienSprite selects the sprite for an alien of the given kind and walk
// phase. Dead aliens always use the explosion.
func AlienSprite(kind AlienKind, phase, alive bool) Sprite {
	if !alive {
		return assets[SpriteExplosion]
	}
	frames, ok := alienFrames[kind]
	if !ok {
		return assets[SpriteExplosion]
	}
	if phase {
		return assets[frames[1]]
	}
	return assets[frames[0]]
}

// PlayerSprite returns the ship, or its wreck while the player is dead.
func PlayerSprite(alive bool) Sprite {
	if alive {
		return assets[SpritePlayer]
	}
	return assets[SpritePlayerExplosion]
}
