package test

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

type TaskDefinitionRepository struct {
	families map[string]*TaskDefinitionFamily
}

type TaskDefinitionFamily struct {
	family    string
	revision  int32
	revisions map[int32]*ecstypes.TaskDefinition
	tags      map[int32][]ecstypes.Tag
	inputs    map[int32]*ecs.RegisterTaskDefinitionInput
}

func NewTaskDefinitionRepository() *TaskDefinitionRepository {
	return &TaskDefinitionRepository{families: make(map[string]*TaskDefinitionFamily)}
}

func (t *TaskDefinitionRepository) Register(input *ecs.RegisterTaskDefinitionInput) (*ecstypes.TaskDefinition, error) {
	if input.Family == nil || *input.Family == "" {
		return nil, fmt.Errorf("family is required")
	}
	family := *input.Family
	if _, ok := t.families[family]; !ok {
		t.families[family] = &TaskDefinitionFamily{
			family:    family,
			revisions: make(map[int32]*ecstypes.TaskDefinition),
			tags:      make(map[int32][]ecstypes.Tag),
			inputs:    make(map[int32]*ecs.RegisterTaskDefinitionInput),
		}
	}
	return t.families[family].Register(input)
}

var fullArnPattern = regexp.MustCompile(`^arn:aws:ecs:.*:.*:task-definition/(.+):(\d+)$`)
var familyRevPattern = regexp.MustCompile(`^([^:/]+):(\d+)$`)

func parseTaskDefinitionArn(arn string) (string, int32) {
	var m []string
	if m = fullArnPattern.FindStringSubmatch(arn); m == nil {
		m = familyRevPattern.FindStringSubmatch(arn)
	}
	if m == nil {
		return "", 0
	}
	revision, _ := strconv.ParseInt(m[2], 10, 32)
	return m[1], int32(revision)
}

func (t *TaskDefinitionRepository) find(familyRev string) (*TaskDefinitionFamily, int32) {
	family, revision := parseTaskDefinitionArn(familyRev)
	f, ok := t.families[family]
	if !ok {
		return nil, 0
	}
	if _, ok := f.revisions[revision]; !ok {
		return nil, 0
	}
	return f, revision
}

func (t *TaskDefinitionRepository) Get(familyRev string) *ecstypes.TaskDefinition {
	if f, rev := t.find(familyRev); f != nil {
		return f.revisions[rev]
	}
	return nil
}

func (t *TaskDefinitionRepository) Tags(familyRev string) []ecstypes.Tag {
	if f, rev := t.find(familyRev); f != nil {
		return f.tags[rev]
	}
	return nil
}

// Input returns the request a revision was registered with.
func (t *TaskDefinitionRepository) Input(familyRev string) *ecs.RegisterTaskDefinitionInput {
	if f, rev := t.find(familyRev); f != nil {
		return f.inputs[rev]
	}
	return nil
}

func (t *TaskDefinitionRepository) Deregister(familyRev string) (*ecstypes.TaskDefinition, error) {
	td := t.Get(familyRev)
	if td == nil {
		return nil, fmt.Errorf("task definition not found: %s", familyRev)
	}
	td.Status = ecstypes.TaskDefinitionStatusInactive
	return td, nil
}

// ListArns returns the ARNs of one family with the given status, newest first.
func (t *TaskDefinitionRepository) ListArns(family string, status ecstypes.TaskDefinitionStatus) []string {
	f, ok := t.families[family]
	if !ok {
		return nil
	}
	var revs []int32
	for rev, td := range f.revisions {
		if status == "" || td.Status == status {
			revs = append(revs, rev)
		}
	}
	sort.Slice(revs, func(i, j int) bool { return revs[i] > revs[j] })
	arns := make([]string, len(revs))
	for i, rev := range revs {
		arns[i] = *f.revisions[rev].TaskDefinitionArn
	}
	return arns
}

func (t *TaskDefinitionRepository) ActiveArns(family string) []string {
	return t.ListArns(family, ecstypes.TaskDefinitionStatusActive)
}

func (t *TaskDefinitionFamily) Register(input *ecs.RegisterTaskDefinitionInput) (*ecstypes.TaskDefinition, error) {
	t.revision++
	arn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:task-definition/%s:%d", t.family, t.revision)
	containers := make([]ecstypes.ContainerDefinition, len(input.ContainerDefinitions))
	copy(containers, input.ContainerDefinitions)
	td := &ecstypes.TaskDefinition{
		TaskDefinitionArn:       &arn,
		Family:                  aws.String(t.family),
		Revision:                t.revision,
		Status:                  ecstypes.TaskDefinitionStatusActive,
		ContainerDefinitions:    containers,
		Cpu:                     input.Cpu,
		Memory:                  input.Memory,
		NetworkMode:             input.NetworkMode,
		ExecutionRoleArn:        input.ExecutionRoleArn,
		TaskRoleArn:             input.TaskRoleArn,
		RequiresCompatibilities: input.RequiresCompatibilities,
		Compatibilities:         []ecstypes.Compatibility{ecstypes.CompatibilityEc2, ecstypes.CompatibilityFargate},
		RequiresAttributes:      []ecstypes.Attribute{{Name: aws.String("com.amazonaws.ecs.capability.logging-driver.awslogs")}},
		RegisteredBy:            aws.String("arn:aws:iam::012345678910:role/deployer"),
		Volumes:                 input.Volumes,
		RuntimePlatform:         input.RuntimePlatform,
	}
	t.revisions[t.revision] = td
	t.tags[t.revision] = input.Tags
	t.inputs[t.revision] = input
	return td, nil
}

// Placeholder is the image every template container starts with.
const Placeholder = "PLACEHOLDER"

// TemplateInput is a seed task definition as infrastructure code registers it.
func TemplateInput(family string, tags ...ecstypes.Tag) *ecs.RegisterTaskDefinitionInput {
	return &ecs.RegisterTaskDefinitionInput{
		Family: aws.String(family),
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{
				Name:      aws.String(strings.TrimSuffix(family, "-dev")),
				Image:     aws.String(Placeholder),
				Essential: aws.Bool(true),
				PortMappings: []ecstypes.PortMapping{
					{ContainerPort: aws.Int32(8000)},
				},
			},
		},
		Cpu:                     aws.String("256"),
		Memory:                  aws.String("512"),
		NetworkMode:             ecstypes.NetworkModeAwsvpc,
		ExecutionRoleArn:        aws.String("arn:aws:iam::012345678910:role/ecsTaskExecutionRole"),
		TaskRoleArn:             aws.String("arn:aws:iam::012345678910:role/app"),
		RequiresCompatibilities: []ecstypes.Compatibility{ecstypes.CompatibilityFargate},
		Tags:                    tags,
	}
}
