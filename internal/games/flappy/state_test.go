package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from       State
		action     core.Action
		wantState  State
		wantEffect Effect
	}{
		{NotStarted, core.ActionJump, Running, EffectReset},
		{NotStarted, core.ActionPause, NotStarted, EffectNone},
		{NotStarted, core.ActionRestart, NotStarted, EffectNone},
		{Running, core.ActionJump, Running, EffectJump},
		{Running, core.ActionPause, Paused, EffectNone},
		{Running, core.ActionRestart, Running, EffectNone},
		{Paused, core.ActionPause, Running, EffectNone},
		{Paused, core.ActionJump, Paused, EffectNone},
		{Paused, core.ActionRestart, Paused, EffectNone},
		{GameOver, core.ActionJump, Running, EffectReset},
		{GameOver, core.ActionRestart, Running, EffectReset},
		{GameOver, core.ActionPause, GameOver, EffectNone},
		{Running, core.ActionQuit, Running, EffectNone},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.action.String(), func(t *testing.T) {
			gotState, gotEffect := Transition(tt.from, tt.action)
			if gotState != tt.wantState || gotEffect != tt.wantEffect {
				t.Errorf("Transition(%v, %v) = (%v, %v), want (%v, %v)",
					tt.from, tt.action, gotState, gotEffect, tt.wantState, tt.wantEffect)
			}
		})
	}
}

func TestTransitionNeverEntersGameOver(t *testing.T) {
	actions := []core.Action{core.ActionNone, core.ActionJump, core.ActionPause, core.ActionRestart, core.ActionQuit}
	for _, s := range []State{NotStarted, Running, Paused} {
		for _, a := range actions {
			if next, _ := Transition(s, a); next == GameOver {
				t.Errorf("Transition(%v, %v) entered GameOver", s, a)
			}
		}
	}
}
