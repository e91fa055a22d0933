// Package preflight runs a one-shot smoke test task before a service is
// switched to a new task definition.
package preflight

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/errs"
	"github.com/loilo-inc/deploycage/logger"
	"github.com/loilo-inc/deploycage/types"
	"github.com/loilo-inc/deploycage/waiter"
	"golang.org/x/xerrors"
)

const StartedBy = "deploycage-preflight"

func Group(service string) string {
	return fmt.Sprintf("deploycage:preflight:%s", service)
}

type Runner struct {
	ecs     awsiface.EcsClient
	poller  *waiter.Poller
	outputs *logger.Outputs
}

func NewRunner(ecsCli awsiface.EcsClient, poller *waiter.Poller, outputs *logger.Outputs) *Runner {
	return &Runner{ecs: ecsCli, poller: poller, outputs: outputs}
}

// Run starts one Fargate task of taskDefinitionArn in the subnets and
// security groups of service, waits for it to stop and checks that its
// only container exited with 0.
func (r *Runner) Run(ctx context.Context, taskDefinitionArn string, cluster string, service string) (*types.PreflightResult, error) {
	vpc, err := r.describeNetwork(ctx, cluster, service)
	if err != nil {
		return nil, err
	}
	log.Infof("🚀 running preflight task '%s'...", taskDefinitionArn)
	o, err := r.ecs.RunTask(ctx, &ecs.RunTaskInput{
		Cluster:        &cluster,
		TaskDefinition: &taskDefinitionArn,
		Count:          aws.Int32(1),
		LaunchType:     ecstypes.LaunchTypeFargate,
		StartedBy:      aws.String(StartedBy),
		Group:          aws.String(Group(service)),
		NetworkConfiguration: &ecstypes.NetworkConfiguration{
			AwsvpcConfiguration: &ecstypes.AwsVpcConfiguration{
				Subnets:        vpc.Subnets,
				SecurityGroups: vpc.SecurityGroups,
				AssignPublicIp: ecstypes.AssignPublicIpDisabled,
			},
		},
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to run preflight task: %w", err)
	}
	if len(o.Tasks) != 1 {
		return nil, xerrors.Errorf("expected exactly one preflight task to start, got %d (failures: %d)", len(o.Tasks), len(o.Failures))
	}
	taskArn := *o.Tasks[0].TaskArn
	log.Infof("🥚 waiting for preflight task '%s' to stop...", taskArn)
	if err := r.poller.Wait(ctx, "preflight task stopped", waiter.TasksStopped(r.ecs, cluster, []string{taskArn})); err != nil {
		return nil, xerrors.Errorf("failed to wait for preflight task '%s': %w", taskArn, err)
	}
	if err := r.inspect(ctx, cluster, taskArn); err != nil {
		return nil, err
	}
	log.Infof("🐣 preflight task '%s' succeeded", taskArn)
	r.outputs.Set("preflight_task_arn", taskArn)
	return &types.PreflightResult{TaskArn: taskArn}, nil
}

func (r *Runner) describeNetwork(ctx context.Context, cluster string, service string) (*ecstypes.AwsVpcConfiguration, error) {
	o, err := r.ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  &cluster,
		Services: []string{service},
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to describe service '%s': %w", service, err)
	}
	if len(o.Services) != 1 {
		return nil, xerrors.Errorf("service '%s' not found in cluster '%s'", service, cluster)
	}
	nc := o.Services[0].NetworkConfiguration
	if nc == nil || nc.AwsvpcConfiguration == nil {
		return nil, xerrors.Errorf("service '%s' has no awsvpc network configuration", service)
	}
	return nc.AwsvpcConfiguration, nil
}

func (r *Runner) inspect(ctx context.Context, cluster string, taskArn string) error {
	o, err := r.ecs.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: &cluster,
		Tasks:   []string{taskArn},
	})
	if err != nil {
		return xerrors.Errorf("failed to describe preflight task '%s': %w", taskArn, err)
	}
	if len(o.Tasks) != 1 {
		return xerrors.Errorf("expected preflight task '%s' to be described, got %d tasks", taskArn, len(o.Tasks))
	}
	containers := o.Tasks[0].Containers
	if len(containers) != 1 {
		return xerrors.Errorf("expected exactly one container in preflight task '%s', got %d", taskArn, len(containers))
	}
	c := containers[0]
	if c.ExitCode == nil || *c.ExitCode != 0 {
		return &errs.PreflightFailedError{
			TaskArn:  taskArn,
			ExitCode: c.ExitCode,
			Reason:   aws.ToString(c.Reason),
		}
	}
	return nil
}
