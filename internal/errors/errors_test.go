package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "pilot"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrPilotNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrGroupNotFound))
		assert.False(t, IsNotFound(ErrNoActiveSession))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "from_team_id", Message: "team is unknown"}
		assert.Equal(t, "validation error: from_team_id - team is unknown", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "no missions selected"}
		assert.Equal(t, "validation error: no missions selected", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("date", "required")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})

	t.Run("IsValidation through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("move rejected: %w", NewValidationError("", "same team"))
		assert.True(t, IsValidation(wrapped))
	})
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")

	t.Run("Error message", func(t *testing.T) {
		err := NewTransportError("MovePilot", cause)
		assert.Equal(t, "catalog transport error during MovePilot: dial tcp: i/o timeout", err.Error())
	})

	t.Run("Unwrap preserves the cause", func(t *testing.T) {
		err := NewTransportError("MovePilot", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsTransport helper", func(t *testing.T) {
		assert.True(t, IsTransport(NewTransportError("GetTeams", cause)))
		assert.False(t, IsTransport(cause))
	})
}

func TestGatewayRejectedError(t *testing.T) {
	t.Run("Error message with gateway message", func(t *testing.T) {
		err := NewGatewayRejectedError("CreateGroup", "mission 101 already grouped")
		assert.Equal(t, "catalog gateway rejected CreateGroup: mission 101 already grouped", err.Error())
	})

	t.Run("Error message without gateway message", func(t *testing.T) {
		err := NewGatewayRejectedError("ShrinkGroup", "")
		assert.Equal(t, "catalog gateway rejected ShrinkGroup", err.Error())
	})

	t.Run("IsGatewayRejected helper", func(t *testing.T) {
		assert.True(t, IsGatewayRejected(NewGatewayRejectedError("ExtendGroup", "nope")))
		assert.False(t, IsGatewayRejected(NewTransportError("ExtendGroup", errors.New("eof"))))
	})

	t.Run("Rejection is distinct from transport ambiguity", func(t *testing.T) {
		rejected := NewGatewayRejectedError("MoveDrone", "capacity")
		assert.False(t, IsTransport(rejected))
	})
}
