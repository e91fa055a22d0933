package waiter

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/awsiface"
	"golang.org/x/xerrors"
)

const failureMissing = "MISSING"

// TasksStopped holds once every task reports lastStatus STOPPED.
func TasksStopped(ecsCli awsiface.EcsClient, cluster string, tasks []string) Condition {
	return func(ctx context.Context) (bool, error) {
		o, err := ecsCli.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: &cluster,
			Tasks:   tasks,
		})
		if err != nil {
			return false, xerrors.Errorf("failed to describe tasks: %w", err)
		}
		if err := missing(o.Failures); err != nil {
			return false, err
		}
		if len(o.Tasks) != len(tasks) {
			return false, nil
		}
		for _, task := range o.Tasks {
			if aws.ToString(task.LastStatus) != "STOPPED" {
				return false, nil
			}
		}
		return true, nil
	}
}

// ServicesStable holds once every service runs a single deployment with
// runningCount equal to desiredCount.
func ServicesStable(ecsCli awsiface.EcsClient, cluster string, services []string) Condition {
	return func(ctx context.Context) (bool, error) {
		o, err := ecsCli.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  &cluster,
			Services: services,
		})
		if err != nil {
			return false, xerrors.Errorf("failed to describe services: %w", err)
		}
		if err := missing(o.Failures); err != nil {
			return false, err
		}
		if len(o.Services) != len(services) {
			return false, nil
		}
		stable := true
		for _, svc := range o.Services {
			switch status := aws.ToString(svc.Status); status {
			case "DRAINING", "INACTIVE":
				return false, xerrors.Errorf("service '%s' is %s", aws.ToString(svc.ServiceName), status)
			}
			if len(svc.Deployments) != 1 || svc.RunningCount != svc.DesiredCount {
				stable = false
			}
		}
		return stable, nil
	}
}

func missing(failures []ecstypes.Failure) error {
	var arns []string
	for _, f := range failures {
		if aws.ToString(f.Reason) == failureMissing {
			arns = append(arns, aws.ToString(f.Arn))
		}
	}
	if len(arns) > 0 {
		return xerrors.Errorf("resources are missing: %s", strings.Join(arns, ", "))
	}
	return nil
}
