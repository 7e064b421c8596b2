package maps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsplatform/googlemaps/pkg/maps"
)

func TestLifecycle_HappyPath(t *testing.T) {
	l := maps.NewLifecycle(maps.APIDirections)
	assert.Equal(t, maps.PhaseEmpty, l.Phase())

	l.Touch()
	assert.Equal(t, maps.PhaseConfigured, l.Phase())

	require.NoError(t, l.CheckValidate())
	require.NoError(t, l.Validated())
	require.NoError(t, l.CheckBuild())
	l.Built("key=abc")
	assert.Equal(t, maps.PhaseBuilt, l.Phase())
	assert.Equal(t, "key=abc", l.Query())

	query, err := l.Begin()
	require.NoError(t, err)
	assert.Equal(t, "key=abc", query)
	assert.Equal(t, maps.PhaseExecuted, l.Phase())
}

func TestLifecycle_OutOfOrder(t *testing.T) {
	l := maps.NewLifecycle(maps.APIDirections)
	l.Touch()

	assert.ErrorIs(t, l.CheckBuild(), maps.KindRequestNotValidated)

	_, err := l.Begin()
	assert.ErrorIs(t, err, maps.KindQueryNotBuilt)

	require.NoError(t, l.Validated())
	_, err = l.Begin()
	assert.ErrorIs(t, err, maps.KindQueryNotBuilt)
}

func TestLifecycle_TouchInvalidates(t *testing.T) {
	l := maps.NewLifecycle(maps.APIRoads)
	require.NoError(t, l.Validated())
	l.Built("path=1,2")

	l.Touch()

	assert.Equal(t, maps.PhaseConfigured, l.Phase())
	assert.Empty(t, l.Query())
	assert.ErrorIs(t, l.CheckBuild(), maps.KindRequestNotValidated)
}

func TestLifecycle_ExecutedIsTerminal(t *testing.T) {
	l := maps.NewLifecycle(maps.APIGeocoding)
	require.NoError(t, l.Validated())
	l.Built("address=x")
	_, err := l.Begin()
	require.NoError(t, err)

	l.Touch()
	assert.Equal(t, maps.PhaseExecuted, l.Phase())

	_, err = l.Begin()
	assert.ErrorIs(t, err, maps.KindRequestAlreadyExecuted)
	assert.ErrorIs(t, l.CheckValidate(), maps.KindRequestAlreadyExecuted)
	assert.ErrorIs(t, l.CheckBuild(), maps.KindRequestAlreadyExecuted)
	assert.ErrorIs(t, l.Validated(), maps.ErrSequence)
}

func TestLifecycle_FailedIsTerminal(t *testing.T) {
	l := maps.NewLifecycle(maps.APIDistanceMatrix)
	l.Touch()
	require.NoError(t, l.CheckValidate())
	l.Fail()
	assert.Equal(t, maps.PhaseFailed, l.Phase())
	assert.Equal(t, "failed", l.Phase().String())

	l.Touch()
	assert.Equal(t, maps.PhaseFailed, l.Phase())

	assert.ErrorIs(t, l.CheckValidate(), maps.KindRequestAlreadyExecuted)
	assert.ErrorIs(t, l.CheckBuild(), maps.KindRequestAlreadyExecuted)
	_, err := l.Begin()
	assert.ErrorIs(t, err, maps.KindRequestAlreadyExecuted)
	assert.Contains(t, err.Error(), "failed validation")
}
