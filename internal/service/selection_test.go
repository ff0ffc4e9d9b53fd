package service_test

import (
	"testing"

	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionSelections_SetsAreIndependent(t *testing.T) {
	s := service.NewMissionSelections()

	require.NoError(t, s.Select(service.SelectionDeploy, 1, 2, 3))
	require.NoError(t, s.Select(service.SelectionGroup, 3, 4))

	deploySel, err := s.Selected(service.SelectionDeploy)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, deploySel)

	groupSel, err := s.Selected(service.SelectionGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, groupSel)

	// Clearing one set never touches the other, even for shared ids.
	require.NoError(t, s.Clear(service.SelectionDeploy))

	deploySel, err = s.Selected(service.SelectionDeploy)
	require.NoError(t, err)
	assert.Empty(t, deploySel)

	groupSel, err = s.Selected(service.SelectionGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, groupSel)
}

func TestMissionSelections_SelectIsIdempotent(t *testing.T) {
	s := service.NewMissionSelections()

	require.NoError(t, s.Select(service.SelectionDeploy, 7))
	require.NoError(t, s.Select(service.SelectionDeploy, 7))

	sel, err := s.Selected(service.SelectionDeploy)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, sel)
}

func TestMissionSelections_Deselect(t *testing.T) {
	s := service.NewMissionSelections()

	require.NoError(t, s.Select(service.SelectionGroup, 1, 2))
	require.NoError(t, s.Deselect(service.SelectionGroup, 1, 99))

	sel, err := s.Selected(service.SelectionGroup)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, sel)
}

func TestMissionSelections_ResetEmptiesBothSets(t *testing.T) {
	s := service.NewMissionSelections()

	require.NoError(t, s.Select(service.SelectionDeploy, 1))
	require.NoError(t, s.Select(service.SelectionGroup, 2))

	s.Reset()

	deploySel, err := s.Selected(service.SelectionDeploy)
	require.NoError(t, err)
	assert.Empty(t, deploySel)

	groupSel, err := s.Selected(service.SelectionGroup)
	require.NoError(t, err)
	assert.Empty(t, groupSel)
}

func TestMissionSelections_UnknownSet(t *testing.T) {
	s := service.NewMissionSelections()

	assert.ErrorIs(t, s.Select(service.SelectionKind("bogus"), 1), apperrors.ErrUnknownSelectionSet)
	assert.ErrorIs(t, s.Deselect(service.SelectionKind("bogus"), 1), apperrors.ErrUnknownSelectionSet)
	assert.ErrorIs(t, s.Clear(service.SelectionKind("bogus")), apperrors.ErrUnknownSelectionSet)
	_, err := s.Selected(service.SelectionKind("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownSelectionSet)
}
