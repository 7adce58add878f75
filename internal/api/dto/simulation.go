package dto

type ParcelDTO struct {
	Place   string `json:"place"`
	Address string `json:"address"`
}

// SimulationRequest runs one robot. Place and Parcels describe an explicit
// start; when Parcels is empty a random world with ParcelCount parcels is used.
type SimulationRequest struct {
	Robot       string      `json:"robot"`
	Seed        *uint64     `json:"seed"`
	ParcelCount int         `json:"parcel_count"`
	Place       string      `json:"place"`
	Parcels     []ParcelDTO `json:"parcels"`
	MaxTurns    int         `json:"max_turns"`
	Trace       bool        `json:"trace"`
}

type TurnResponse struct {
	Turn      int         `json:"turn"`
	Direction string      `json:"direction"`
	Place     string      `json:"place"`
	Parcels   []ParcelDTO `json:"parcels"`
}

type SimulationResponse struct {
	Robot   string         `json:"robot"`
	Start   string         `json:"start"`
	Parcels []ParcelDTO    `json:"parcels"`
	Turns   int            `json:"turns"`
	Trace   []TurnResponse `json:"trace,omitempty"`
}
