package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanApprovalRequiredByDefault(t *testing.T) {
	m := NewManager(DefaultPolicy(), nil, nil)

	// Plans need a human decision even with the policy disabled.
	requires, _ := m.PlanApprovalRequired("deploy the service", nil)
	assert.True(t, requires)
}

func TestPlanApprovalWaivedByEnabledPolicy(t *testing.T) {
	policy := &Policy{
		Enabled: true,
		Rules: []Rule{
			{Kind: "plan", SubjectPattern: "*", RequiresApproval: false},
		},
	}
	m := NewManager(policy, nil, nil)

	requires, _ := m.PlanApprovalRequired("deploy the service", nil)
	assert.False(t, requires)
}
