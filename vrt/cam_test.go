package vrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCAMPackUnpackRoundTrip(t *testing.T) {
	var c CAM
	c.SetControlleeEnable(true)
	c.SetControlleeFormat(IdentityFormatUUID)
	c.SetControllerEnable(true)
	c.SetControllerFormat(IdentityFormatWord)
	c.SetPermitPartial(true)
	c.SetPermitWarnings(true)
	c.SetPermitErrors(false)
	c.SetActionMode(ActionModeExecute)
	c.SetNACKOnly(false)
	c.SetReqV(true)
	c.SetReqX(true)
	c.SetAckS(false)
	c.SetReqW(true)
	c.SetReqEr(false)
	c.SetTimingControl(TimingControlDevice)
	c.SetPartial(true)
	c.SetScheduledOrExecuted(false)

	b := make([]byte, camSize)
	require.NoError(t, c.PackInto(b))

	got, err := UnpackCAMFrom(b)
	require.NoError(t, err)

	require.True(t, got.ControlleeEnable())
	require.Equal(t, IdentityFormatUUID, got.ControlleeFormat())
	require.True(t, got.ControllerEnable())
	require.Equal(t, IdentityFormatWord, got.ControllerFormat())
	require.True(t, got.PermitPartial())
	require.True(t, got.PermitWarnings())
	require.False(t, got.PermitErrors())
	require.Equal(t, ActionModeExecute, got.ActionModeField())
	require.False(t, got.NACKOnly())
	require.True(t, got.ReqV())
	require.True(t, got.ReqX())
	require.False(t, got.AckS())
	require.True(t, got.ReqW())
	require.False(t, got.ReqEr())
	tc, err := got.TimingControlField()
	require.NoError(t, err)
	require.Equal(t, TimingControlDevice, tc)
	require.True(t, got.Partial())
	require.False(t, got.ScheduledOrExecuted())
}

func TestCAMUnpackRejectsShortBuffer(t *testing.T) {
	_, err := UnpackCAMFrom([]byte{0, 1, 2})
	require.Error(t, err)
}

func TestCAMPackIntoRejectsShortBuffer(t *testing.T) {
	var c CAM
	require.Error(t, c.PackInto(make([]byte, camSize-1)))
}

func TestCAMTimingControlRejectsReservedEnum(t *testing.T) {
	var c CAM
	c.SetTimingControl(TimingControl(0b111))
	_, err := c.TimingControlField()
	require.Error(t, err)
}

func TestCAMRoleControl(t *testing.T) {
	var c CAM
	require.Equal(t, CAMRoleControl, c.Role(false, false))
}

func TestCAMRoleAckVX(t *testing.T) {
	var c CAM
	c.SetAckS(false)
	require.Equal(t, CAMRoleAckVX, c.Role(true, false))
}

func TestCAMRoleAckS(t *testing.T) {
	var c CAM
	c.SetAckS(true)
	require.Equal(t, CAMRoleAckS, c.Role(true, false))
}

func TestCAMRoleCancellationTakesPriority(t *testing.T) {
	var c CAM
	c.SetAckS(true)
	require.Equal(t, CAMRoleCancellation, c.Role(true, true))
	require.Equal(t, CAMRoleCancellation, c.Role(false, true))
}

func TestCAMRoleString(t *testing.T) {
	require.Equal(t, "CONTROL", CAMRoleControl.String())
	require.Equal(t, "ACK_VX", CAMRoleAckVX.String())
	require.Equal(t, "ACK_S", CAMRoleAckS.String())
	require.Equal(t, "CANCELLATION", CAMRoleCancellation.String())
	require.Equal(t, "UNKNOWN", CAMRole(99).String())
}
