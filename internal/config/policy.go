package config

// PolicyConfig tunes the thresholds of the decision cascade. Zero fields
// fall back to the defaults.
type PolicyConfig struct {
	LowHealthThreshold  int `yaml:"low_health_threshold"`  // life at or below this is critical
	HeartBelow          int `yaml:"heart_below"`           // a heart is wanted while life is below this
	FinishDamageArmed   int `yaml:"finish_damage_armed"`   // damage assumed for a finishing blow with ammo
	FinishDamageUnarmed int `yaml:"finish_damage_unarmed"` // and without
}

func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		LowHealthThreshold:  5,
		HeartBelow:          9,
		FinishDamageArmed:   2,
		FinishDamageUnarmed: 1,
	}
}

func (c *PolicyConfig) applyDefaults() {
	d := DefaultPolicy()
	if c.LowHealthThreshold == 0 {
		c.LowHealthThreshold = d.LowHealthThreshold
	}
	if c.HeartBelow == 0 {
		c.HeartBelow = d.HeartBelow
	}
	if c.FinishDamageArmed == 0 {
		c.FinishDamageArmed = d.FinishDamageArmed
	}
	if c.FinishDamageUnarmed == 0 {
		c.FinishDamageUnarmed = d.FinishDamageUnarmed
	}
}
