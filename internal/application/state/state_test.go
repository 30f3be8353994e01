package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppState_String(t *testing.T) {
	tests := []struct {
		state    AppState
		expected string
	}{
		{StateMainMenu, "MainMenu"},
		{StateLoading, "Loading"},
		{StateInGame, "InGame"},
		{StatePaused, "Paused"},
		{AppState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestAppStateConstants(t *testing.T) {
	assert.Equal(t, AppState(0), StateMainMenu)
	assert.Equal(t, AppState(1), StateLoading)
	assert.Equal(t, AppState(2), StateInGame)
	assert.Equal(t, AppState(3), StatePaused)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     AppState
		start    bool
		sel      bool
		expected AppState
		quit     bool
	}{
		{"menu start loads", StateMainMenu, true, false, StateLoading, false},
		{"game start pauses", StateInGame, true, false, StatePaused, false},
		{"paused start resumes", StatePaused, true, false, StateInGame, false},
		{"loading ignores start", StateLoading, true, false, StateLoading, false},
		{"no buttons", StateInGame, false, false, StateInGame, false},
		{"select alone", StatePaused, false, true, StatePaused, false},
		{"start select quits in game", StateInGame, true, true, StateInGame, true},
		{"start select quits in menu", StateMainMenu, true, true, StateMainMenu, true},
		{"start select quits while loading", StateLoading, true, true, StateLoading, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, quit := Transition(tt.from, tt.start, tt.sel)
			assert.Equal(t, tt.expected, next)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestLoaded(t *testing.T) {
	assert.Equal(t, StateInGame, Loaded(StateLoading))
	assert.Equal(t, StatePaused, Loaded(StatePaused))
	assert.Equal(t, StateMainMenu, Loaded(StateMainMenu))
}

func TestSimulating(t *testing.T) {
	assert.True(t, StateInGame.Simulating())
	assert.False(t, StatePaused.Simulating())
	assert.False(t, StateLoading.Simulating())
	assert.False(t, StateMainMenu.Simulating())
}
