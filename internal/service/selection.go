package service

import (
	"sort"
	"sync"

	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
)

// SelectionKind names one of the two independent mission selection sets.
// The deploy set feeds ad-hoc group creation with an inline pilot/drone
// pick; the group set feeds incremental editing of an existing group. They
// range over the same mission universe but must never be conflated.
type SelectionKind string

const (
	SelectionDeploy SelectionKind = "deploy"
	SelectionGroup  SelectionKind = "group"
)

// MissionSelections tracks the two mission selection sets for the active
// date session.
type MissionSelections struct {
	mu   sync.Mutex
	sets map[SelectionKind]map[int]struct{}
}

// NewMissionSelections creates empty selection sets.
func NewMissionSelections() *MissionSelections {
	return &MissionSelections{
		sets: map[SelectionKind]map[int]struct{}{
			SelectionDeploy: {},
			SelectionGroup:  {},
		},
	}
}

// Select adds mission ids to one selection set.
func (s *MissionSelections) Select(kind SelectionKind, missionIDs ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[kind]
	if !ok {
		return apperrors.ErrUnknownSelectionSet
	}
	for _, id := range missionIDs {
		set[id] = struct{}{}
	}
	return nil
}

// Deselect removes mission ids from one selection set.
func (s *MissionSelections) Deselect(kind SelectionKind, missionIDs ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[kind]
	if !ok {
		return apperrors.ErrUnknownSelectionSet
	}
	for _, id := range missionIDs {
		delete(set, id)
	}
	return nil
}

// Clear empties one selection set.
func (s *MissionSelections) Clear(kind SelectionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sets[kind]; !ok {
		return apperrors.ErrUnknownSelectionSet
	}
	s.sets[kind] = map[int]struct{}{}
	return nil
}

// Reset empties both selection sets. Used when the session switches dates.
func (s *MissionSelections) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for kind := range s.sets {
		s.sets[kind] = map[int]struct{}{}
	}
}

// Selected returns the ids in one selection set, sorted ascending.
func (s *MissionSelections) Selected(kind SelectionKind) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[kind]
	if !ok {
		return nil, apperrors.ErrUnknownSelectionSet
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
