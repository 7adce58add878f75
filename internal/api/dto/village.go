package dto

type VillageResponse struct {
	Hub    string   `json:"hub"`
	Nodes  []string `json:"nodes"`
	Roads  []string `json:"roads"`
	Tour   []string `json:"tour"`
	Robots []string `json:"robots"`
}

type RoutesResponse struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Shortest []string   `json:"shortest"`
	All      [][]string `json:"all"`
}
