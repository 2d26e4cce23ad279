package workflow

import (
	"fmt"

	"github.com/quayside-dev/stride/internal/command"
	"github.com/quayside-dev/stride/internal/config"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/releases"
)

// Build translates a decoded workflow into executable steps, rejecting
// unknown step types, rules, and variable kinds up front so a run never
// fails halfway through on a typo.
func Build(wf config.Workflow) ([]Step, error) {
	steps := make([]Step, 0, len(wf.Steps))
	for i, raw := range wf.Steps {
		step, err := buildStep(wf.Name, i, raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func buildStep(workflow string, index int, raw config.Step) (Step, error) {
	switch raw.Type {
	case "SelectJiraIssue":
		if raw.Status == "" {
			return nil, fmt.Errorf(messages.ConfigStepMissingFieldFmt, workflow, index, raw.Type, "status")
		}
		return SelectJiraIssue{Status: raw.Status}, nil
	case "SelectGitHubIssue":
		return SelectGitHubIssue{Labels: raw.Labels}, nil
	case "TransitionIssue":
		if raw.Status == "" {
			return nil, fmt.Errorf(messages.ConfigStepMissingFieldFmt, workflow, index, raw.Type, "status")
		}
		return TransitionIssue{Status: raw.Status}, nil
	case "BumpVersion":
		rule, err := buildRule(workflow, index, raw)
		if err != nil {
			return nil, err
		}
		return BumpVersion{Rule: rule}, nil
	case "Command":
		if raw.Command == "" {
			return nil, fmt.Errorf(messages.ConfigStepMissingFieldFmt, workflow, index, raw.Type, "command")
		}
		variables := make(map[string]command.Variable, len(raw.Variables))
		for token, kind := range raw.Variables {
			variable, ok := command.ParseVariable(kind)
			if !ok {
				return nil, fmt.Errorf(messages.ConfigUnknownVariableFmt, workflow, index, kind, token)
			}
			variables[token] = variable
		}
		return Command{Command: raw.Command, Variables: variables}, nil
	default:
		return nil, fmt.Errorf(messages.ConfigUnknownStepTypeFmt, workflow, index, raw.Type)
	}
}

// buildRule maps the TOML rule fields to a bump rule. The Pre fallback is
// not configurable: conventional-commit classification is an external
// concern, so the default (Patch) applies.
func buildRule(workflow string, index int, raw config.Step) (releases.Rule, error) {
	switch raw.Rule {
	case "Major":
		return releases.Major{}, nil
	case "Minor":
		return releases.Minor{}, nil
	case "Patch":
		return releases.Patch{}, nil
	case "Release":
		return releases.Release{}, nil
	case "Pre":
		if raw.Label == "" {
			return nil, fmt.Errorf(messages.ConfigStepMissingFieldFmt, workflow, index, raw.Type, "label")
		}
		return releases.Pre{Label: raw.Label}, nil
	default:
		return nil, fmt.Errorf(messages.ConfigUnknownRuleFmt, workflow, index, raw.Rule)
	}
}
