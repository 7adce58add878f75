package dto

type ComparisonRequest struct {
	Robots      []string `json:"robots"`
	Trials      int      `json:"trials"`
	ParcelCount int      `json:"parcel_count"`
	Seed        *uint64  `json:"seed"`
	MaxTurns    int      `json:"max_turns"`
}

type RobotScoreResponse struct {
	Robot        string  `json:"robot"`
	TotalTurns   int     `json:"total_turns"`
	AverageTurns float64 `json:"average_turns"`
}

type ComparisonResponse struct {
	Trials   int                  `json:"trials"`
	Scores   []RobotScoreResponse `json:"scores"`
	Averages map[string]float64   `json:"averages"`
}
