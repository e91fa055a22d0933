// Package taskdef renders seed task definitions with a concrete image and
// registers them as new revisions of an application identity.
package taskdef

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/errs"
	"golang.org/x/xerrors"
)

// Placeholder is the image every container of a seed task definition must use.
const Placeholder = "PLACEHOLDER"

type Renderer struct {
	ecs awsiface.EcsClient
}

func NewRenderer(ecsCli awsiface.EcsClient) *Renderer {
	return &Renderer{ecs: ecsCli}
}

// Render describes the template and returns a registration request for the
// same definition running imageUri.
func (r *Renderer) Render(ctx context.Context, templateArn string, imageUri string) (*ecs.RegisterTaskDefinitionInput, error) {
	o, err := r.ecs.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: &templateArn,
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to describe template '%s': %w", templateArn, err)
	}
	return RenderDefinition(o.TaskDefinition, imageUri)
}

// RenderDefinition validates td as a template and substitutes the image.
// Fields assigned by ECS (arn, revision, status, compatibilities,
// requiresAttributes, registration and deregistration stamps) are left out
// since RegisterTaskDefinition does not accept them. td is not modified.
func RenderDefinition(td *ecstypes.TaskDefinition, imageUri string) (*ecs.RegisterTaskDefinitionInput, error) {
	arn := aws.ToString(td.TaskDefinitionArn)
	var images []string
	seen := make(map[string]struct{})
	for _, c := range td.ContainerDefinitions {
		image := aws.ToString(c.Image)
		if _, ok := seen[image]; !ok {
			seen[image] = struct{}{}
			images = append(images, image)
		}
	}
	if len(images) != 1 || images[0] != Placeholder {
		return nil, &errs.TemplateImageMismatchError{
			TaskDefinitionArn: arn,
			Placeholder:       Placeholder,
			Images:            images,
		}
	}
	containers := make([]ecstypes.ContainerDefinition, len(td.ContainerDefinitions))
	copy(containers, td.ContainerDefinitions)
	for i := range containers {
		containers[i].Image = aws.String(imageUri)
	}
	return &ecs.RegisterTaskDefinitionInput{
		Family:                  td.Family,
		ContainerDefinitions:    containers,
		Cpu:                     td.Cpu,
		Memory:                  td.Memory,
		ExecutionRoleArn:        td.ExecutionRoleArn,
		TaskRoleArn:             td.TaskRoleArn,
		NetworkMode:             td.NetworkMode,
		PlacementConstraints:    td.PlacementConstraints,
		RequiresCompatibilities: td.RequiresCompatibilities,
		Volumes:                 td.Volumes,
		IpcMode:                 td.IpcMode,
		PidMode:                 td.PidMode,
		ProxyConfiguration:      td.ProxyConfiguration,
		InferenceAccelerators:   td.InferenceAccelerators,
		EphemeralStorage:        td.EphemeralStorage,
		RuntimePlatform:         td.RuntimePlatform,
	}, nil
}
