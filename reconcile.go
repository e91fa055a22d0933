package deploycage

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/types"
	"golang.org/x/xerrors"
)

const primaryDeploymentStatus = "PRIMARY"

// Reconcile decides whether the run succeeded and deregisters the task
// definitions that are no longer needed. cause is the error the run ended
// with, if any.
//
// The run succeeded when every identity it had to publish was published
// and the PRIMARY deployment of the service runs the new production
// revision. Then the previous revisions are deregistered, except on the
// first deployment of production where nothing is. Otherwise the new
// revisions are deregistered and a RollbackTriggeredError wrapping cause is
// returned. Identities that were never published are left alone.
func (d *deployer) Reconcile(ctx context.Context, outcome *types.DeployOutcome, cause error) error {
	if cause != nil {
		log.Errorf("😭 deployment failed: %s", cause)
	}
	log.Infof("deregistering task definitions...")
	primary, err := d.primaryTaskDefinition(ctx)
	if err != nil {
		log.Errorf("couldn't find the primary deployment: %s", err)
		if cause == nil {
			cause = err
		}
	} else {
		log.Infof("primary deployment runs '%s'", primary)
		d.Outputs.Set("primary_deployment_definition_arn", primary)
	}

	if succeeded(outcome, d.Env.RunPreflight, primary) {
		if outcome.Production.PreviousTaskDefinitionArn == "" {
			log.Infof("initial deployment of '%s'. no task definition to deregister", d.Env.ServiceName())
			return cause
		}
		for _, r := range attempted(outcome) {
			if r.result.PreviousTaskDefinitionArn == "" {
				log.Infof("'%s' has no previous task definition. skip deregistration", r.identity)
				continue
			}
			if err := d.deregister(ctx, r.result.PreviousTaskDefinitionArn); err != nil {
				return err
			}
		}
		log.Infof("🎉 deployment of '%s' has completed successfully!", outcome.ImageUri)
		return cause
	}

	for _, r := range attempted(outcome) {
		if err := d.deregister(ctx, r.result.LatestTaskDefinitionArn); err != nil {
			return err
		}
	}
	log.Errorf("rollback of '%s' has been triggered", d.Env.ServiceName())
	return &errs.RollbackTriggeredError{Cause: cause}
}

func succeeded(outcome *types.DeployOutcome, runPreflight bool, primary string) bool {
	if outcome.Local == nil || outcome.Production == nil {
		return false
	}
	if runPreflight && outcome.Preflight == nil {
		return false
	}
	return primary != "" && primary == outcome.Production.LatestTaskDefinitionArn
}

type identityResult struct {
	identity string
	result   *types.DeployResult
}

// attempted lists the published identities in deregistration order.
// Production goes last.
func attempted(outcome *types.DeployOutcome) []identityResult {
	var ret []identityResult
	for _, r := range []identityResult{
		{"local exec", outcome.Local},
		{"preflight", outcome.Preflight},
		{"production", outcome.Production},
	} {
		if r.result != nil {
			ret = append(ret, r)
		}
	}
	return ret
}

func (d *deployer) deregister(ctx context.Context, arn string) error {
	log.Infof("deregistering task definition '%s'...", arn)
	if _, err := d.Ecs.DeregisterTaskDefinition(ctx, &ecs.DeregisterTaskDefinitionInput{
		TaskDefinition: &arn,
	}); err != nil {
		return xerrors.Errorf("failed to deregister task definition '%s': %w", arn, err)
	}
	return nil
}

func (d *deployer) primaryTaskDefinition(ctx context.Context) (string, error) {
	o, err := d.Ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(d.Env.Cluster()),
		Services: []string{d.Env.ServiceName()},
	})
	if err != nil {
		return "", xerrors.Errorf("failed to describe service '%s': %w", d.Env.ServiceName(), err)
	}
	if len(o.Services) != 1 {
		return "", xerrors.Errorf("service '%s' not found in cluster '%s'", d.Env.ServiceName(), d.Env.Cluster())
	}
	var primaries []string
	for _, dep := range o.Services[0].Deployments {
		if aws.ToString(dep.Status) == primaryDeploymentStatus {
			primaries = append(primaries, aws.ToString(dep.TaskDefinition))
		}
	}
	if len(primaries) != 1 {
		return "", xerrors.Errorf(
			"expected exactly one PRIMARY deployment in service '%s', found: [%s]",
			d.Env.ServiceName(), strings.Join(primaries, ", "),
		)
	}
	return primaries[0], nil
}
