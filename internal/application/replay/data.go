package replay

import "github.com/younwookim/guyjump/internal/infrastructure/config"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single input tick
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	AX  float64 `json:"ax,omitempty"`  // Axis X
	AY  float64 `json:"ay,omitempty"`  // Axis Y
	J   bool    `json:"j,omitempty"`   // JumpPressed
	Fly bool    `json:"fly,omitempty"` // ToggleFly
}

// ReplayData contains all data needed to replay one level session
type ReplayData struct {
	Version   string               `json:"version"`
	Level     string               `json:"level"`
	StartTime string               `json:"startTime"`
	Tuning    *config.TuningConfig `json:"tuning,omitempty"`
	Frames    []FrameInput         `json:"frames"`
	Retunes   []TuningChange       `json:"retunes,omitempty"`
}

// TuningChange is a hot reload applied before frame F was stepped
type TuningChange struct {
	F      int                 `json:"f"`
	Tuning config.TuningConfig `json:"tuning"`
}
