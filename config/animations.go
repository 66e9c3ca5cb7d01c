package config

// ClipDef describes an authored animation clip.
type ClipDef struct {
	Duration float64 // seconds at speed 1
	Speed    float64
	Loop     bool
}

// Clip names shared by the character states.
const (
	ClipIdle    = "Idle"
	ClipJump    = "Jump"
	ClipFall    = "Fall"
	ClipDash    = "Dash"
	ClipDodge   = "Dodge"
	ClipStun    = "Stun"
	ClipMagic   = "Magic"
	ClipCounter = "Counter"
	ClipAttack1 = "Attack1"
	ClipAttack2 = "Attack2"
	ClipAttack3 = "Attack3"
)

// AttackClips lists combo clips by step (1-based step -> index step-1).
var AttackClips = []string{ClipAttack1, ClipAttack2, ClipAttack3}

// CharacterClips maps a character key (e.g., "player")
// to its specific set of clip definitions.
var CharacterClips = map[string]map[string]ClipDef{
	"player": {
		ClipIdle:    {Duration: 2.0, Speed: 1, Loop: true},
		ClipJump:    {Duration: 0.5, Speed: 1},
		ClipFall:    {Duration: 0.4, Speed: 1},
		ClipDash:    {Duration: 0.35, Speed: 1},
		ClipDodge:   {Duration: 0.5, Speed: 1},
		ClipStun:    {Duration: 0.6, Speed: 1},
		ClipMagic:   {Duration: 1.2, Speed: 1},
		ClipCounter: {Duration: 0.9, Speed: 1},
		ClipAttack1: {Duration: 0.6, Speed: 1},
		ClipAttack2: {Duration: 0.7, Speed: 1},
		ClipAttack3: {Duration: 1.0, Speed: 1},
	},
	"enemy": {
		ClipIdle:    {Duration: 2.0, Speed: 1, Loop: true},
		ClipJump:    {Duration: 0.5, Speed: 1},
		ClipFall:    {Duration: 0.4, Speed: 1},
		ClipDash:    {Duration: 0.4, Speed: 1},
		ClipDodge:   {Duration: 0.5, Speed: 1},
		ClipStun:    {Duration: 0.8, Speed: 1},
		ClipMagic:   {Duration: 1.5, Speed: 1},
		ClipCounter: {Duration: 0.9, Speed: 1},
		ClipAttack1: {Duration: 1.0, Speed: 1},
		ClipAttack2: {Duration: 1.0, Speed: 1},
		ClipAttack3: {Duration: 1.2, Speed: 1},
	},
}
