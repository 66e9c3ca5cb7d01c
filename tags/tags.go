package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Fighter  = donburi.NewTag().SetName("Fighter")
	Weapon   = donburi.NewTag().SetName("Weapon")
	Particle = donburi.NewTag().SetName("Particle")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision
const (
	ResolvHurtbox = "hurtbox"
	ResolvWeapon  = "weapon"
	ResolvSolid   = "solid"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
)
