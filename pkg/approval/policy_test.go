package approval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPolicyEmptyPathIsDisabled(t *testing.T) {
	policy, err := LoadPolicy("")
	require.NoError(t, err)
	assert.False(t, policy.Enabled)
}

func TestDisabledPolicyNeverRequiresApproval(t *testing.T) {
	policy := DefaultPolicy()
	requires, _ := policy.ShouldRequireApproval(models.ApprovalKindTool, "delete_file", nil)
	assert.False(t, requires)
}

func TestLoadPolicyRejectsUnknownKind(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: widget
    subject_pattern: "*"
    requires_approval: true
`)
	_, err := LoadPolicy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoadPolicyRejectsUnknownOp(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: tool
    subject_pattern: "*"
    requires_approval: true
    conditions:
      - op: bigger_than
        argument_key: size
        value: 10
`)
	_, err := LoadPolicy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")
}

func TestFirstMatchingRuleWins(t *testing.T) {
	path := writePolicy(t, `
enabled: true
default_requires_approval: false
rules:
  - kind: tool
    subject_pattern: "delete_*"
    requires_approval: true
    reason: destructive tool
  - kind: tool
    subject_pattern: "*"
    requires_approval: false
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, reason := policy.ShouldRequireApproval(models.ApprovalKindTool, "delete_file", nil)
	assert.True(t, requires)
	assert.Equal(t, "destructive tool", reason)

	requires, _ = policy.ShouldRequireApproval(models.ApprovalKindTool, "read_file", nil)
	assert.False(t, requires)
}

func TestRegexSubjectPattern(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: tool
    subject_pattern: "re:^(rm|delete)_.*$"
    requires_approval: true
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, _ := policy.ShouldRequireApproval(models.ApprovalKindTool, "rm_dir", nil)
	assert.True(t, requires)
	requires, _ = policy.ShouldRequireApproval(models.ApprovalKindTool, "list_dir", nil)
	assert.False(t, requires)
}

func TestConditionsMustAllHold(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: tool
    subject_pattern: "write_file"
    requires_approval: true
    reason: large write outside workspace
    conditions:
      - op: size_gt
        argument_key: size
        value: 1024
      - op: path_prefix
        argument_key: path
        value: /etc
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, _ := policy.ShouldRequireApproval(models.ApprovalKindTool, "write_file", map[string]any{
		"size": 2048, "path": "/etc/passwd",
	})
	assert.True(t, requires)

	// One condition failing means the rule does not match.
	requires, _ = policy.ShouldRequireApproval(models.ApprovalKindTool, "write_file", map[string]any{
		"size": 100, "path": "/etc/passwd",
	})
	assert.False(t, requires)

	// A missing argument key fails the condition.
	requires, _ = policy.ShouldRequireApproval(models.ApprovalKindTool, "write_file", map[string]any{
		"size": 2048,
	})
	assert.False(t, requires)
}

func TestSizeConditionCoercesStrings(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: tool
    subject_pattern: "write_file"
    requires_approval: true
    conditions:
      - op: size_gt
        argument_key: size
        value: 1024
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, _ := policy.ShouldRequireApproval(models.ApprovalKindTool, "write_file", map[string]any{
		"size": "2048",
	})
	assert.True(t, requires)
}

func TestDefaultAppliesWhenNoRuleMatches(t *testing.T) {
	path := writePolicy(t, `
enabled: true
default_requires_approval: true
default_reason: approvals on by default
rules:
  - kind: tool
    subject_pattern: "read_*"
    requires_approval: false
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, reason := policy.ShouldRequireApproval(models.ApprovalKindTool, "write_file", nil)
	assert.True(t, requires)
	assert.Equal(t, "approvals on by default", reason)
}

func TestPlanRulesAreIndependentOfToolRules(t *testing.T) {
	path := writePolicy(t, `
enabled: true
rules:
  - kind: tool
    subject_pattern: "*"
    requires_approval: true
`)
	policy, err := LoadPolicy(path)
	require.NoError(t, err)

	requires, _ := policy.ShouldRequireApproval(models.ApprovalKindPlan, "some goal", nil)
	assert.False(t, requires)
}
