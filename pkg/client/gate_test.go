package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Readiness(t *testing.T) {
	gate := NewGate()
	assert.False(t, gate.IsReady(), "empty gate is not ready")

	actor := &mockActor{}
	gate.Set(actor)
	assert.True(t, gate.IsReady())

	got, ok := gate.Actor()
	require.True(t, ok)
	assert.Same(t, actor, got.(*mockActor))

	gate.SetInitializing(true)
	assert.False(t, gate.IsReady(), "reinitializing gate is not ready")
	_, ok = gate.Actor()
	assert.False(t, ok)

	gate.SetInitializing(false)
	gate.Clear()
	assert.False(t, gate.IsReady())
}

func TestConnector_Connect(t *testing.T) {
	gate := NewGate()
	actor := &mockActor{}
	conn := NewConnector(gate, func(context.Context) (Actor, error) {
		assert.False(t, gate.IsReady(), "gate must report not-ready while dialing")
		return actor, nil
	})

	require.NoError(t, conn.Connect(context.Background()))
	assert.True(t, gate.IsReady())
}

func TestConnector_DialFailureLeavesGateClosed(t *testing.T) {
	gate := NewGate()
	conn := NewConnector(gate, func(context.Context) (Actor, error) {
		return nil, errors.New("dial refused")
	})

	err := conn.Connect(context.Background())

	assert.Error(t, err)
	assert.False(t, gate.IsReady())
}
