package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

func (h *HealthData) Depleted() bool { return h.Current <= 0 }

var Health = donburi.NewComponentType[HealthData]()
