package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proccms/internal/domains/repairrequest/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{model.StatusPending, model.StatusAssigned, true},
		{model.StatusAssigned, model.StatusAssigned, true},
		{model.StatusAssigned, model.StatusCompleted, true},
		{model.StatusCompleted, model.StatusVerified, true},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusPending, model.StatusVerified, false},
		{model.StatusCompleted, model.StatusAssigned, false},
		{model.StatusVerified, model.StatusPending, false},
		{model.StatusAssigned, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestSourcesOf(t *testing.T) {
	assert.Equal(t, []string{model.StatusPending, model.StatusAssigned}, model.SourcesOf(model.StatusAssigned))
	assert.Equal(t, []string{model.StatusAssigned}, model.SourcesOf(model.StatusCompleted))
	assert.Equal(t, []string{model.StatusCompleted}, model.SourcesOf(model.StatusVerified))
	assert.Empty(t, model.SourcesOf(model.StatusPending))
}
