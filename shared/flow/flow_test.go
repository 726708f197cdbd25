package flow_test

import (
	"serenity/shared/flow"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmission_HappyPath(t *testing.T) {
	s := flow.New()
	assert.Equal(t, flow.Idle, s.State)

	require.NoError(t, s.Begin())
	assert.True(t, s.InFlight())

	require.NoError(t, s.Succeed())
	assert.Equal(t, flow.Succeeded, s.State)

	require.NoError(t, s.Reset())
	assert.Equal(t, flow.Idle, s.State)
}

func TestSubmission_FailureAndResubmit(t *testing.T) {
	s := flow.New()
	require.NoError(t, s.Begin())
	require.NoError(t, s.Fail("Request failed: 500"))

	assert.Equal(t, flow.Failed, s.State)
	assert.Equal(t, "Request failed: 500", s.Error)

	require.NoError(t, s.Begin())
	assert.Equal(t, flow.Submitting, s.State)
	assert.Empty(t, s.Error)
}

func TestSubmission_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     flow.State
		apply    func(*flow.Submission) error
		expected error
	}{
		{name: "begin while submitting", from: flow.Submitting, apply: (*flow.Submission).Begin, expected: flow.ErrInFlight},
		{name: "begin after success", from: flow.Succeeded, apply: (*flow.Submission).Begin, expected: flow.ErrIllegalTransition},
		{name: "succeed from idle", from: flow.Idle, apply: (*flow.Submission).Succeed, expected: flow.ErrIllegalTransition},
		{name: "fail from success", from: flow.Succeeded, apply: func(s *flow.Submission) error { return s.Fail("x") }, expected: flow.ErrIllegalTransition},
		{name: "reset while submitting", from: flow.Submitting, apply: (*flow.Submission).Reset, expected: flow.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := flow.Submission{State: tt.from}
			err := tt.apply(&s)

			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, tt.from, s.State)
		})
	}
}
