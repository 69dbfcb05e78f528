// Package approval decides when tool calls and plans need a human decision,
// and tracks the resulting approval requests.
package approval

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/maestro-ai/maestro/pkg/models"
)

// regexPrefix marks a subject pattern as a regular expression instead of a
// glob.
const regexPrefix = "re:"

// Condition is a predicate over a request's arguments.
type Condition struct {
	Op          string `yaml:"op"`
	ArgumentKey string `yaml:"argument_key"`
	Value       any    `yaml:"value"`
}

// Rule matches requests by kind and subject pattern. The first matching
// rule wins.
type Rule struct {
	Kind             models.ApprovalKind `yaml:"kind"`
	SubjectPattern   string              `yaml:"subject_pattern"`
	Conditions       []Condition         `yaml:"conditions,omitempty"`
	RequiresApproval bool                `yaml:"requires_approval"`
	Reason           string              `yaml:"reason,omitempty"`

	subjectRe *regexp.Regexp
}

// Policy is the approval policy: an ordered rule list plus defaults.
type Policy struct {
	Enabled                 bool   `yaml:"enabled"`
	DefaultRequiresApproval bool   `yaml:"default_requires_approval"`
	DefaultReason           string `yaml:"default_reason,omitempty"`
	Rules                   []Rule `yaml:"rules,omitempty"`
}

// DefaultPolicy approves everything implicitly: approvals disabled.
func DefaultPolicy() *Policy {
	return &Policy{Enabled: false}
}

// LoadPolicy reads a YAML policy file and compiles its patterns. An empty
// path returns the default disabled policy.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read approval policy %s: %w", path, err)
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse approval policy %s: %w", path, err)
	}

	if err := policy.compile(); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (p *Policy) compile() error {
	for i := range p.Rules {
		rule := &p.Rules[i]
		if rule.Kind != models.ApprovalKindTool && rule.Kind != models.ApprovalKindPlan {
			return fmt.Errorf("rule %d: unknown kind %q", i, rule.Kind)
		}
		if rule.SubjectPattern == "" {
			return fmt.Errorf("rule %d: subject_pattern is required", i)
		}
		if pattern, isRegex := strings.CutPrefix(rule.SubjectPattern, regexPrefix); isRegex {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("rule %d: invalid subject regex: %w", i, err)
			}
			rule.subjectRe = re
		} else if !doublestar.ValidatePattern(rule.SubjectPattern) {
			return fmt.Errorf("rule %d: invalid subject glob %q", i, rule.SubjectPattern)
		}
		for j, cond := range rule.Conditions {
			switch cond.Op {
			case "size_gt", "path_prefix", "equals", "contains":
			default:
				return fmt.Errorf("rule %d condition %d: unknown op %q", i, j, cond.Op)
			}
			if cond.ArgumentKey == "" {
				return fmt.Errorf("rule %d condition %d: argument_key is required", i, j)
			}
		}
	}
	return nil
}

// ShouldRequireApproval evaluates the policy for a request. The first rule
// whose subject matches and whose conditions all hold decides; otherwise
// the default applies. A disabled policy never requires approval.
func (p *Policy) ShouldRequireApproval(kind models.ApprovalKind, subject string, arguments map[string]any) (bool, string) {
	if !p.Enabled {
		return false, ""
	}

	for i := range p.Rules {
		rule := &p.Rules[i]
		if rule.Kind != kind {
			continue
		}
		if !rule.matchesSubject(subject) {
			continue
		}
		if !rule.conditionsHold(arguments) {
			continue
		}
		return rule.RequiresApproval, rule.Reason
	}
	return p.DefaultRequiresApproval, p.DefaultReason
}

func (r *Rule) matchesSubject(subject string) bool {
	if r.subjectRe != nil {
		return r.subjectRe.MatchString(subject)
	}
	matched, err := doublestar.Match(r.SubjectPattern, subject)
	return err == nil && matched
}

func (r *Rule) conditionsHold(arguments map[string]any) bool {
	for _, cond := range r.Conditions {
		value, exists := arguments[cond.ArgumentKey]
		if !exists {
			return false
		}
		switch cond.Op {
		case "size_gt":
			actual, ok1 := asFloat(value)
			threshold, ok2 := asFloat(cond.Value)
			if !ok1 || !ok2 || actual <= threshold {
				return false
			}
		case "path_prefix":
			s, ok := value.(string)
			if !ok || !strings.HasPrefix(s, fmt.Sprintf("%v", cond.Value)) {
				return false
			}
		case "equals":
			if fmt.Sprintf("%v", value) != fmt.Sprintf("%v", cond.Value) {
				return false
			}
		case "contains":
			s, ok := value.(string)
			if !ok || !strings.Contains(s, fmt.Sprintf("%v", cond.Value)) {
				return false
			}
		}
	}
	return true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		// String sizes appear when tool arguments arrive JSON-decoded as
		// text, e.g. {"size": "2048"}
		var f float64
		if _, err := fmt.Sscanf(n, "%g", &f); err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
