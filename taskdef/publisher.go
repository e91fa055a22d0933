package taskdef

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/tag"
	"github.com/loilo-inc/deploycage/types"
	"golang.org/x/xerrors"
)

// Role names what an identity is deployed for. Step output keys of an
// identity are prefixed with its role so each one stays readable
// downstream.
type Role string

const (
	RoleLocalExec  Role = "local_exec"
	RoleProduction Role = "production"
	RolePreflight  Role = "preflight"
)

func (r Role) OutputKey(name string) string {
	return fmt.Sprintf("%s_%s", r, name)
}

type Publisher struct {
	ecs      awsiface.EcsClient
	resolver *tag.Resolver
	renderer *Renderer
	outputs  *logger.Outputs
}

func NewPublisher(ecsCli awsiface.EcsClient, seedCreator string, outputs *logger.Outputs) *Publisher {
	return &Publisher{
		ecs:      ecsCli,
		resolver: tag.NewResolver(ecsCli, seedCreator),
		renderer: NewRenderer(ecsCli),
		outputs:  outputs,
	}
}

// Publish registers a new revision of identity running imageUri, rendered
// from the identity's seed and tagged with deploymentTag. The revision that
// deploymentTag registered before, if any, is returned alongside.
func (p *Publisher) Publish(ctx context.Context, role Role, identity string, imageUri string, deploymentTag string) (*types.DeployResult, error) {
	seedArn, err := p.resolver.ResolveUniqueActiveArn(ctx, identity, tag.Identity(p.resolver.SeedTag.Value, identity), false)
	if err != nil {
		return nil, xerrors.Errorf("failed to resolve seed task definition of '%s': %w", identity, err)
	}
	input, err := p.renderer.Render(ctx, seedArn, imageUri)
	if err != nil {
		return nil, err
	}
	deployTags := tag.Identity(deploymentTag, identity)
	previousArn, err := p.resolver.ResolveUniqueActiveArn(ctx, identity, deployTags, true)
	if err != nil {
		return nil, xerrors.Errorf("failed to resolve previous task definition of '%s': %w", identity, err)
	}
	input.Tags = tag.EcsTags(deployTags)
	o, err := p.ecs.RegisterTaskDefinition(ctx, input)
	if err != nil {
		return nil, xerrors.Errorf("failed to register task definition of '%s': %w", identity, err)
	}
	latestArn := *o.TaskDefinition.TaskDefinitionArn
	log.Infof(
		"task definition '%s:%d' has been registered",
		*o.TaskDefinition.Family, o.TaskDefinition.Revision,
	)
	p.outputs.Set(role.OutputKey("previous_task_definition_arn"), previousArn)
	p.outputs.Set(role.OutputKey("latest_task_definition_arn"), latestArn)
	return &types.DeployResult{
		PreviousTaskDefinitionArn: previousArn,
		LatestTaskDefinitionArn:   latestArn,
	}, nil
}
