// Package errs defines the failures a deployment can end with.
// Each kind is a struct so callers can pick it out with errors.As and
// read the diagnostics it carries.
package errs

import (
	"fmt"
	"strings"
)

type MalformedTagSpecError struct {
	Spec    string
	Segment string
}

func (e *MalformedTagSpecError) Error() string {
	return fmt.Sprintf("invalid task definition tag format '%s' in '%s', expects 'key:value,key:value'", e.Segment, e.Spec)
}

// AmbiguousActiveDefinitionError is returned when zero or more than one
// ACTIVE revision carries the required tags.
type AmbiguousActiveDefinitionError struct {
	FamilyPrefix string
	Tags         string
	Candidates   []string
}

func (e *AmbiguousActiveDefinitionError) Error() string {
	return fmt.Sprintf(
		"expected exactly one active task definition in '%s' with tags %s. found: [%s]",
		e.FamilyPrefix, e.Tags, strings.Join(e.Candidates, ", "),
	)
}

type BootstrapInvariantViolationError struct {
	FamilyPrefix string
	Arn          string
	SeedTag      string
}

func (e *BootstrapInvariantViolationError) Error() string {
	return fmt.Sprintf(
		"expected initial deployment of '%s' to only have the seed task definition tagged %s, but '%s' is not",
		e.FamilyPrefix, e.SeedTag, e.Arn,
	)
}

type TemplateImageMismatchError struct {
	TaskDefinitionArn string
	Placeholder       string
	Images            []string
}

func (e *TemplateImageMismatchError) Error() string {
	if len(e.Images) != 1 {
		return fmt.Sprintf(
			"only a single image name is allowed in '%s', found: [%s]",
			e.TaskDefinitionArn, strings.Join(e.Images, ", "),
		)
	}
	return fmt.Sprintf(
		"not all values for containerDefinitions 'image' in '%s' equal to '%s', found: '%s'",
		e.TaskDefinitionArn, e.Placeholder, e.Images[0],
	)
}

type ImageNotFoundError struct {
	Repository string
	Tag        string
	Found      []string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf(
		"expected exactly one image tagged '%s' in repository '%s', found tags: [%s]",
		e.Tag, e.Repository, strings.Join(e.Found, ", "),
	)
}

// PreflightFailedError carries the exit code of the preflight container.
// ExitCode is nil when the container reported none.
type PreflightFailedError struct {
	TaskArn  string
	ExitCode *int32
	Reason   string
}

func (e *PreflightFailedError) Error() string {
	code := "none"
	if e.ExitCode != nil {
		code = fmt.Sprintf("%d", *e.ExitCode)
	}
	return fmt.Sprintf(
		"preflight container failed with a non zero exit code - %s \n Reason: %s",
		code, e.Reason,
	)
}

type InvalidEnvironmentForBootstrapError struct {
	Environment string
	Allowed     string
}

func (e *InvalidEnvironmentForBootstrapError) Error() string {
	return fmt.Sprintf(
		"deployments from feature branch only allowed for %s environment, got '%s'",
		e.Allowed, e.Environment,
	)
}

type WaiterExceededError struct {
	Name        string
	MaxAttempts int
}

func (e *WaiterExceededError) Error() string {
	return fmt.Sprintf("exceeded max attempts (%d) while waiting for %s", e.MaxAttempts, e.Name)
}

// RollbackTriggeredError marks a pipeline whose new task definitions have
// been deregistered again. Cause is the step failure that led there, if
// any; a run can also fail with a nil Cause when the service simply never
// rolled onto the new revision.
type RollbackTriggeredError struct {
	Cause error
}

const RollbackMessage = "Deployment failed; rollback triggered."

func (e *RollbackTriggeredError) Error() string {
	return RollbackMessage
}

func (e *RollbackTriggeredError) Unwrap() error {
	return e.Cause
}
