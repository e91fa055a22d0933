package test

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/google/uuid"
)

type EcsServer struct {
	Services        map[string]*types.Service
	Tasks           map[string]*types.Task
	TaskDefinitions *TaskDefinitionRepository
	// Deregistered keeps every DeregisterTaskDefinition argument in call order.
	Deregistered []string
	// RunTaskInputs keeps every accepted RunTask request.
	RunTaskInputs []*ecs.RunTaskInput
	// ExitCodes maps a task definition family to the exit code its
	// containers stop with. Families not listed exit with 0.
	ExitCodes map[string]*int32
	// TaskPolls is the number of DescribeTasks calls a task stays RUNNING for.
	TaskPolls int
	// RolloutPolls is the number of DescribeServices calls the previous
	// deployment stays ACTIVE for after UpdateService.
	RolloutPolls int
	// IgnoreServiceUpdates makes UpdateService accept the call without
	// moving the PRIMARY deployment, like a deployment circuit breaker would.
	IgnoreServiceUpdates bool
	// PageSize limits ListTaskDefinitions pages when positive.
	PageSize  int
	taskPolls map[string]int
	rollouts  map[string]int
	mux       sync.Mutex
}

func NewEcsServer() *EcsServer {
	return &EcsServer{
		Services:        make(map[string]*types.Service),
		Tasks:           make(map[string]*types.Task),
		TaskDefinitions: NewTaskDefinitionRepository(),
		ExitCodes:       make(map[string]*int32),
		taskPolls:       make(map[string]int),
		rollouts:        make(map[string]int),
	}
}

func serviceKey(cluster *string, service string) string {
	return fmt.Sprintf("%s/%s", aws.ToString(cluster), service)
}

// PutService creates a steady service running the given task definition.
func (s *EcsServer) PutService(cluster, name, taskDefinition string, desiredCount int32, network *types.NetworkConfiguration) *types.Service {
	s.mux.Lock()
	defer s.mux.Unlock()
	svc := &types.Service{
		ServiceName:          aws.String(name),
		ServiceArn:           aws.String(fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:service/%s/%s", cluster, name)),
		ClusterArn:           aws.String(fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:cluster/%s", cluster)),
		Status:               aws.String("ACTIVE"),
		LaunchType:           types.LaunchTypeFargate,
		TaskDefinition:       aws.String(taskDefinition),
		DesiredCount:         desiredCount,
		RunningCount:         desiredCount,
		NetworkConfiguration: network,
		Deployments: []types.Deployment{
			primaryDeployment(taskDefinition, desiredCount),
		},
	}
	s.Services[serviceKey(&cluster, name)] = svc
	return svc
}

func primaryDeployment(taskDefinition string, count int32) types.Deployment {
	return types.Deployment{
		Id:             aws.String("ecs-svc/" + uuid.New().String()),
		Status:         aws.String("PRIMARY"),
		TaskDefinition: aws.String(taskDefinition),
		DesiredCount:   count,
		RunningCount:   count,
		LaunchType:     types.LaunchTypeFargate,
		RolloutState:   types.DeploymentRolloutStateCompleted,
	}
}

// Service returns the current state of a service, or nil.
func (s *EcsServer) Service(cluster, name string) *types.Service {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.Services[serviceKey(&cluster, name)]
}

func (s *EcsServer) UpdateService(_ context.Context, input *ecs.UpdateServiceInput, _ ...func(options *ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	svc, ok := s.Services[serviceKey(input.Cluster, aws.ToString(input.Service))]
	if !ok {
		return nil, fmt.Errorf("ServiceNotFoundException: service not found: %s", aws.ToString(input.Service))
	}
	nextDesiredCount := svc.DesiredCount
	if input.DesiredCount != nil {
		nextDesiredCount = *input.DesiredCount
	}
	svc.DesiredCount = nextDesiredCount
	svc.RunningCount = nextDesiredCount
	if input.TaskDefinition == nil || s.IgnoreServiceUpdates {
		svc.Deployments[0].DesiredCount = nextDesiredCount
		svc.Deployments[0].RunningCount = nextDesiredCount
		return &ecs.UpdateServiceOutput{Service: svc}, nil
	}
	if s.TaskDefinitions.Get(*input.TaskDefinition) == nil {
		return nil, fmt.Errorf("ClientException: task definition not found: %s", *input.TaskDefinition)
	}
	previous := svc.Deployments[0]
	previous.Status = aws.String("ACTIVE")
	svc.TaskDefinition = input.TaskDefinition
	svc.Deployments = []types.Deployment{primaryDeployment(*input.TaskDefinition, nextDesiredCount)}
	if s.RolloutPolls > 0 {
		svc.Deployments = append(svc.Deployments, previous)
		s.rollouts[*svc.ServiceArn] = s.RolloutPolls
	}
	log.Debugf("%s: primary=%s", *svc.ServiceName, *input.TaskDefinition)
	return &ecs.UpdateServiceOutput{Service: svc}, nil
}

func (s *EcsServer) DescribeServices(_ context.Context, input *ecs.DescribeServicesInput, _ ...func(options *ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := &ecs.DescribeServicesOutput{}
	for _, name := range input.Services {
		svc, ok := s.Services[serviceKey(input.Cluster, name)]
		if !ok {
			out.Failures = append(out.Failures, types.Failure{
				Arn:    aws.String(name),
				Reason: aws.String("MISSING"),
			})
			continue
		}
		if n, ok := s.rollouts[*svc.ServiceArn]; ok {
			if n > 0 {
				s.rollouts[*svc.ServiceArn] = n - 1
			} else {
				svc.Deployments = svc.Deployments[:1]
				delete(s.rollouts, *svc.ServiceArn)
			}
		}
		cp := *svc
		cp.Deployments = append([]types.Deployment(nil), svc.Deployments...)
		out.Services = append(out.Services, cp)
	}
	return out, nil
}

func (s *EcsServer) RegisterTaskDefinition(_ context.Context, input *ecs.RegisterTaskDefinitionInput, _ ...func(options *ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td, err := s.TaskDefinitions.Register(input)
	if err != nil {
		return nil, err
	}
	return &ecs.RegisterTaskDefinitionOutput{TaskDefinition: td, Tags: input.Tags}, nil
}

func (s *EcsServer) DeregisterTaskDefinition(_ context.Context, input *ecs.DeregisterTaskDefinitionInput, _ ...func(options *ecs.Options)) (*ecs.DeregisterTaskDefinitionOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td, err := s.TaskDefinitions.Deregister(aws.ToString(input.TaskDefinition))
	if err != nil {
		return nil, err
	}
	s.Deregistered = append(s.Deregistered, *input.TaskDefinition)
	return &ecs.DeregisterTaskDefinitionOutput{TaskDefinition: td}, nil
}

func (s *EcsServer) DescribeTaskDefinition(_ context.Context, input *ecs.DescribeTaskDefinitionInput, _ ...func(options *ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td := s.TaskDefinitions.Get(aws.ToString(input.TaskDefinition))
	if td == nil {
		return nil, fmt.Errorf("ClientException: unable to describe task definition: %s", aws.ToString(input.TaskDefinition))
	}
	cp := *td
	out := &ecs.DescribeTaskDefinitionOutput{TaskDefinition: &cp}
	for _, field := range input.Include {
		if field == types.TaskDefinitionFieldTags {
			out.Tags = s.TaskDefinitions.Tags(*td.TaskDefinitionArn)
		}
	}
	return out, nil
}

// ListTaskDefinitions treats FamilyPrefix as an exact family name, as ECS does.
func (s *EcsServer) ListTaskDefinitions(_ context.Context, input *ecs.ListTaskDefinitionsInput, _ ...func(options *ecs.Options)) (*ecs.ListTaskDefinitionsOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	arns := s.TaskDefinitions.ListArns(aws.ToString(input.FamilyPrefix), input.Status)
	if input.Sort == types.SortOrderAsc {
		for i, j := 0, len(arns)-1; i < j; i, j = i+1, j-1 {
			arns[i], arns[j] = arns[j], arns[i]
		}
	}
	start := 0
	if input.NextToken != nil {
		n, err := strconv.Atoi(*input.NextToken)
		if err != nil || n > len(arns) {
			return nil, fmt.Errorf("InvalidParameterException: invalid next token: %s", *input.NextToken)
		}
		start = n
	}
	end := len(arns)
	if s.PageSize > 0 && start+s.PageSize < end {
		end = start + s.PageSize
	}
	out := &ecs.ListTaskDefinitionsOutput{TaskDefinitionArns: arns[start:end]}
	if end < len(arns) {
		out.NextToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func (s *EcsServer) RunTask(_ context.Context, input *ecs.RunTaskInput, _ ...func(options *ecs.Options)) (*ecs.RunTaskOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td := s.TaskDefinitions.Get(aws.ToString(input.TaskDefinition))
	if td == nil {
		return nil, fmt.Errorf("ClientException: task definition not found: %s", aws.ToString(input.TaskDefinition))
	}
	if td.Status != types.TaskDefinitionStatusActive {
		return nil, fmt.Errorf("ClientException: task definition is inactive: %s", *td.TaskDefinitionArn)
	}
	s.RunTaskInputs = append(s.RunTaskInputs, input)
	count := int(aws.ToInt32(input.Count))
	if count == 0 {
		count = 1
	}
	out := &ecs.RunTaskOutput{}
	for i := 0; i < count; i++ {
		taskArn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:task/%s/%s", aws.ToString(input.Cluster), uuid.New().String())
		containers := make([]types.Container, len(td.ContainerDefinitions))
		for i, v := range td.ContainerDefinitions {
			containers[i] = types.Container{
				Name:       v.Name,
				Image:      v.Image,
				LastStatus: aws.String("RUNNING"),
			}
		}
		task := &types.Task{
			TaskArn:           aws.String(taskArn),
			ClusterArn:        input.Cluster,
			TaskDefinitionArn: td.TaskDefinitionArn,
			Group:             input.Group,
			StartedBy:         input.StartedBy,
			LaunchType:        input.LaunchType,
			Containers:        containers,
			LastStatus:        aws.String("RUNNING"),
			DesiredStatus:     aws.String("RUNNING"),
		}
		s.Tasks[taskArn] = task
		out.Tasks = append(out.Tasks, *task)
	}
	return out, nil
}

func (s *EcsServer) stopTask(task *types.Task) {
	family, _ := parseTaskDefinitionArn(*task.TaskDefinitionArn)
	code, ok := s.ExitCodes[family]
	if !ok {
		code = aws.Int32(0)
	}
	for i := range task.Containers {
		v := &task.Containers[i]
		v.ExitCode = code
		v.LastStatus = aws.String("STOPPED")
		if code == nil {
			v.Reason = aws.String("CannotPullContainerError: pull image manifest has been retried 5 time(s)")
		} else if *code != 0 {
			v.Reason = aws.String("Essential container in task exited")
		}
	}
	task.LastStatus = aws.String("STOPPED")
	task.DesiredStatus = aws.String("STOPPED")
	task.StopCode = types.TaskStopCodeEssentialContainerExited
}

func (s *EcsServer) DescribeTasks(_ context.Context, input *ecs.DescribeTasksInput, _ ...func(options *ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := &ecs.DescribeTasksOutput{}
	for _, arn := range input.Tasks {
		task, ok := s.Tasks[arn]
		if !ok {
			out.Failures = append(out.Failures, types.Failure{
				Arn:    aws.String(arn),
				Reason: aws.String("MISSING"),
			})
			continue
		}
		if aws.ToString(task.LastStatus) != "STOPPED" {
			if s.taskPolls[arn] >= s.TaskPolls {
				s.stopTask(task)
			}
			s.taskPolls[arn]++
		}
		cp := *task
		cp.Containers = append([]types.Container(nil), task.Containers...)
		out.Tasks = append(out.Tasks, cp)
	}
	return out, nil
}
