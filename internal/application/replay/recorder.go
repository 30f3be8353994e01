package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for level. tuning is copied so later
// hot reloads do not alter the recording.
func NewRecorder(level string, tuning *config.TuningConfig) *Recorder {
	var snapshot *config.TuningConfig
	if tuning != nil {
		c := *tuning
		snapshot = &c
	}
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Tuning:    snapshot,
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60Hz
		},
		recording: true,
	}
}

// RecordFrame records a single input tick
func (r *Recorder) RecordFrame(input system.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:   r.frame,
		AX:  input.Axis.X,
		AY:  input.Axis.Y,
		J:   input.JumpPressed,
		Fly: input.ToggleFly,
	})
	r.frame++
}

// RecordTuning records a tuning change taking effect at the next frame
func (r *Recorder) RecordTuning(tuning *config.TuningConfig) {
	if !r.recording || tuning == nil {
		return
	}
	r.data.Retunes = append(r.data.Retunes, TuningChange{F: r.frame, Tuning: *tuning})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recorded data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
