package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsandpigs/internal/domain/anim"
)

func createTestDoor(t *testing.T, mode DoorMode) *Door {
	t.Helper()
	anims := buildAnimations(t, DoorFrameWidth, DoorFrameHeight, anim.DefaultCadence, map[string]clip{
		StateIdle:  {frames: 1},
		StateOpen:  {frames: 5, oneShot: true},
		StateClose: {frames: 5, oneShot: true},
	})
	d, err := NewDoor(mode, 500, 288, anims)
	require.NoError(t, err)
	return d
}

func TestNewDoor(t *testing.T) {
	enter := createTestDoor(t, DoorEnter)
	exit := createTestDoor(t, DoorExit)

	assert.Equal(t, StateClose, enter.Animations().State(), "enter doors start closing")
	assert.Equal(t, StateIdle, exit.Animations().State())
	assert.Equal(t, Rect{X: 500, Y: 288, W: 92, H: 112}, exit.Rect)
}

func TestDoor_ExitFiresOnceWhenOpened(t *testing.T) {
	d := createTestDoor(t, DoorExit)

	for i := 0; i < 30; i++ {
		assert.Equal(t, OutcomeNone, d.Update(), "closed door never fires")
	}

	d.Open()
	fired := 0
	firedAt := -1
	for i := 1; i <= 60; i++ {
		if d.Update() == OutcomeSceneChange {
			fired++
			if firedAt < 0 {
				firedAt = i
			}
		}
	}

	assert.Equal(t, 1, fired, "edge-triggered")
	assert.Equal(t, 4*anim.DefaultCadence, firedAt, "fires on the tick the last frame is reached")
	assert.Equal(t, StateOpen, d.Animations().State())
	assert.True(t, d.Animations().Done())
}

func TestDoor_ExitRearmsAfterClosing(t *testing.T) {
	d := createTestDoor(t, DoorExit)

	d.Open()
	for i := 0; i < 30; i++ {
		d.Update()
	}

	d.Close()
	d.Update()
	d.Open()

	fired := 0
	for i := 0; i < 30; i++ {
		if d.Update() == OutcomeSceneChange {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
}

func TestDoor_EnterNeverFires(t *testing.T) {
	d := createTestDoor(t, DoorEnter)

	d.Open()
	for i := 0; i < 60; i++ {
		assert.Equal(t, OutcomeNone, d.Update())
	}
	assert.True(t, d.Animations().Done())
}

func TestDoor_Render(t *testing.T) {
	d := createTestDoor(t, DoorExit)
	sink := &recordingSink{}

	d.Render(sink)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, drawCall{frame: d.Animations().Current().Frame(), x: 500, y: 288}, sink.calls[0])
}

func TestDoorMode_String(t *testing.T) {
	assert.Equal(t, "enter", DoorEnter.String())
	assert.Equal(t, "exit", DoorExit.String())
	assert.Equal(t, "unknown", DoorMode(7).String())
}
