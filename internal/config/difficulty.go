package config

// ProfileTable is a read-only lookup of difficulty profiles.
// It copies the profiles it is built from, so later edits to a config
// never leak into a running session.
type ProfileTable struct {
	profiles map[DifficultyPreset]Profile
}

// NewProfileTable builds a table from the config's difficulty section.
func NewProfileTable(cfg CoinRushConfig) ProfileTable {
	profiles := make(map[DifficultyPreset]Profile, len(cfg.Difficulty))
	for preset, p := range cfg.Difficulty {
		profiles[preset] = p
	}
	return ProfileTable{profiles: profiles}
}

// Get returns the profile for a preset.
func (t ProfileTable) Get(preset DifficultyPreset) (Profile, bool) {
	p, ok := t.profiles[preset]
	return p, ok
}

// Lookup returns the profile for a preset, falling back to NORMAL for
// presets the table does not know.
func (t ProfileTable) Lookup(preset DifficultyPreset) (DifficultyPreset, Profile) {
	if p, ok := t.profiles[preset]; ok {
		return preset, p
	}
	return DifficultyNormal, t.profiles[DifficultyNormal]
}

// StageScaling derives per-stage parameters from the stage settings.
type StageScaling struct {
	cfg StageConfig
}

// NewStageScaling creates a stage scaling helper.
func NewStageScaling(cfg StageConfig) StageScaling {
	return StageScaling{cfg: cfg}
}

// SpeedMultiplier returns the enemy speed factor for a stage:
// 1.0 at stage 1, growing linearly by SpeedScale per stage.
func (s StageScaling) SpeedMultiplier(stage int) float64 {
	return 1.0 + s.cfg.SpeedScale*float64(max(0, stage-1))
}

// CanAdvance reports whether another stage-up is possible from stage.
func (s StageScaling) CanAdvance(stage int) bool {
	return stage < s.cfg.MaxStage
}

// FirstThreshold returns the score needed to leave stage 1.
func (s StageScaling) FirstThreshold() int {
	return s.cfg.ScoreStep
}

// NextThreshold returns the threshold following current.
func (s StageScaling) NextThreshold(current int) int {
	return current + s.cfg.ScoreStep
}
