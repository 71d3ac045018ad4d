package config

import "sort"

var Presets = map[string]map[string]*Config{
	"gaussian": {
		"default": {
			Target: "gaussian", Samples: 1000, StepSize: 0.1, NumSteps: 20,
		},
		"coarse": {
			Target: "gaussian", Samples: 1000, StepSize: 0.5, NumSteps: 10,
		},
	},
	"bimodal": {
		"default": {
			Target: "bimodal", Samples: 2000, StepSize: 0.2, NumSteps: 30,
			Start: StartConfig{X: 2.5, Y: 2.5},
		},
		"hopping": {
			// long trajectories make the mode-to-mode jump likely
			Target: "bimodal", Samples: 5000, StepSize: 0.25, NumSteps: 50,
			Start: StartConfig{X: 2.5, Y: 2.5},
		},
	},
	"banana": {
		"default": {
			Target: "banana", Samples: 2000, StepSize: 0.05, NumSteps: 40,
			Start: StartConfig{X: 1.0, Y: 1.0},
		},
		"fine": {
			// the ridge's curvature limits the stable step size
			Target: "banana", Samples: 5000, StepSize: 0.02, NumSteps: 80,
			Start: StartConfig{X: 1.0, Y: 1.0},
		},
	},
}

func GetPreset(target, name string) *Config {
	group, ok := Presets[target]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(target string) []string {
	group, ok := Presets[target]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
