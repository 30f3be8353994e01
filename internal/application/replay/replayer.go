package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/guyjump/internal/application/system"
	"github.com/younwookim/guyjump/internal/domain/entity"
	"github.com/younwookim/guyjump/internal/infrastructure/config"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.Input{
		Axis:        entity.Vec2{X: fi.AX, Y: fi.AY},
		JumpPressed: fi.J,
		ToggleFly:   fi.Fly,
	}, true
}

// PendingTuning returns the tuning change recorded for the frame GetInput
// returns next. The last change wins when several share a frame.
func (r *Replayer) PendingTuning() (config.TuningConfig, bool) {
	var found config.TuningConfig
	ok := false
	for _, c := range r.data.Retunes {
		if c.F == r.frame {
			found, ok = c.Tuning, true
		}
	}
	return found, ok
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle guy)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
