package deploycage

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/image"
	"github.com/loilo-inc/deploycage/preflight"
	"github.com/loilo-inc/deploycage/taskdef"
	"github.com/loilo-inc/deploycage/types"
	"github.com/loilo-inc/deploycage/waiter"
	"golang.org/x/xerrors"
)

// Deploy publishes the local exec, production and optionally preflight
// task definitions, runs the preflight task, and rolls the service onto the
// new production definition. Whatever happens after validation, the
// registered revisions are reconciled before returning: the previous ones
// are deregistered on success, the new ones on failure.
func (d *deployer) Deploy(ctx context.Context) (outcome *types.DeployOutcome, err error) {
	if d.Env.AllowFeatureBranchDeployment && d.Env.Environment != env.FeatureBranchEnvironment {
		return nil, &errs.InvalidEnvironmentForBootstrapError{
			Environment: string(d.Env.Environment),
			Allowed:     string(env.FeatureBranchEnvironment),
		}
	}
	outcome = &types.DeployOutcome{}
	defer func() {
		err = d.Reconcile(ctx, outcome, err)
	}()
	err = d.deploy(ctx, outcome)
	return outcome, err
}

func (d *deployer) deploy(ctx context.Context, outcome *types.DeployOutcome) error {
	envars := d.Env
	log.Infof("🔍 resolving image '%s:%s'...", envars.EcrRepository, envars.ImageTag)
	uri, err := image.NewResolver(d.Ecr).ResolveImageUri(ctx, envars.EcrRepository, envars.ImageTag)
	if err != nil {
		return err
	}
	outcome.ImageUri = uri
	d.Outputs.Set("image_uri", uri)

	publisher := taskdef.NewPublisher(d.Ecs, envars.SeedCreator, d.Outputs)
	log.Infof("creating local exec task definition...")
	if outcome.Local, err = publisher.Publish(ctx, taskdef.RoleLocalExec, envars.LocalExecIdentity(), uri, envars.DeploymentTag); err != nil {
		return err
	}
	log.Infof("creating production task definition...")
	if outcome.Production, err = publisher.Publish(ctx, taskdef.RoleProduction, envars.ServiceName(), uri, envars.DeploymentTag); err != nil {
		return err
	}
	if envars.RunPreflight {
		log.Infof("preflight is enabled. creating preflight task definition...")
		if outcome.Preflight, err = publisher.Publish(ctx, taskdef.RolePreflight, envars.PreflightIdentity(), uri, envars.DeploymentTag); err != nil {
			return err
		}
		runner := preflight.NewRunner(d.Ecs, d.poller(d.Timeout.TaskStopped()), d.Outputs)
		if outcome.PreflightTask, err = runner.Run(
			ctx, outcome.Preflight.LatestTaskDefinitionArn, envars.Cluster(), envars.ServiceName(),
		); err != nil {
			return err
		}
	}

	log.Infof("updating service '%s' to '%s'...", envars.ServiceName(), outcome.Production.LatestTaskDefinitionArn)
	if _, err := d.Ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:        aws.String(envars.Cluster()),
		Service:        aws.String(envars.ServiceName()),
		TaskDefinition: aws.String(outcome.Production.LatestTaskDefinitionArn),
		DesiredCount:   aws.Int32(int32(envars.DesiredCount)),
	}); err != nil {
		return xerrors.Errorf("failed to update service '%s': %w", envars.ServiceName(), err)
	}
	log.Infof("service '%s' has been updated", envars.ServiceName())

	stable := d.Timeout.ServiceStable()
	log.Infof("😴 waiting for service '%s' to be stable (up to %s)...", envars.ServiceName(), stable.MaxWait())
	if err := d.poller(stable).Wait(
		ctx, "service stable", waiter.ServicesStable(d.Ecs, envars.Cluster(), []string{envars.ServiceName()}),
	); err != nil {
		return xerrors.Errorf("failed to wait for service '%s' to be stable: %w", envars.ServiceName(), err)
	}
	log.Infof("☀️ service '%s' is stable", envars.ServiceName())
	return nil
}
