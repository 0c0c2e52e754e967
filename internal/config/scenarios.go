package config

type ScenariosConfig struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one turn to evaluate in batch mode. Life and Bullets are
// indexed by player id minus one, as on the command line.
type Scenario struct {
	Name    string `yaml:"name" json:"name"`
	Player  int    `yaml:"player" json:"player"`
	Board   string `yaml:"board" json:"board"`
	Life    [2]int `yaml:"life" json:"life"`
	Bullets [2]int `yaml:"bullets" json:"bullets"`
	Expect  string `yaml:"expect" json:"expect,omitempty"`
}
