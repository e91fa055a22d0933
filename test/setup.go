package test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/tag"
)

func DefaultEnvars() *env.Envars {
	return &env.Envars{
		Region:        "us-west-2",
		Environment:   env.Dev,
		EcrRepository: "app",
		DeploymentTag: "gha",
		ImageTag:      "v1.1.0",
		DesiredCount:  2,
		SeedCreator:   env.DefaultSeedCreator,
	}
}

// PreviousImageTag is the image the previously deployed revisions run.
const PreviousImageTag = "v1.0.0"

var DefaultNetworkConfiguration = &ecstypes.NetworkConfiguration{
	AwsvpcConfiguration: &ecstypes.AwsVpcConfiguration{
		Subnets:        []string{"subnet-0a1b2c", "subnet-3d4e5f"},
		SecurityGroups: []string{"sg-0123456789"},
		AssignPublicIp: ecstypes.AssignPublicIpEnabled,
	},
}

type Fixture struct {
	Ecs *EcsServer
	Ecr *EcrServer
	// Seeds maps an application identity to its seed revision.
	Seeds map[string]string
	// Previous maps an application identity to its deploy-tagged revision.
	// Empty unless the fixture was set up as already deployed.
	Previous map[string]string
}

func Identities(envars *env.Envars) []string {
	return []string{
		envars.LocalExecIdentity(),
		envars.ServiceName(),
		envars.PreflightIdentity(),
	}
}

// Setup seeds a fake control plane the way infrastructure code leaves it:
// one seed revision per identity, the image in ECR, and the service running
// the production seed. With deployed set, every identity also has one
// revision from an earlier pipeline run and the service runs that one.
func Setup(envars *env.Envars, deployed bool) *Fixture {
	f := &Fixture{
		Ecs:      NewEcsServer(),
		Ecr:      NewEcrServer(),
		Seeds:    make(map[string]string),
		Previous: make(map[string]string),
	}
	f.Ecr.PutImage(envars.EcrRepository, PreviousImageTag)
	f.Ecr.PutImage(envars.EcrRepository, envars.ImageTag, "latest")
	ctx := context.Background()
	for _, identity := range Identities(envars) {
		seed := TemplateInput(identity, tag.EcsTags(tag.Identity(envars.SeedCreator, identity))...)
		o, err := f.Ecs.RegisterTaskDefinition(ctx, seed)
		if err != nil {
			panic(err)
		}
		f.Seeds[identity] = *o.TaskDefinition.TaskDefinitionArn
		if !deployed {
			continue
		}
		prev := TemplateInput(identity, tag.EcsTags(tag.Identity(envars.DeploymentTag, identity))...)
		for i := range prev.ContainerDefinitions {
			prev.ContainerDefinitions[i].Image = aws.String(ImageUri(envars.EcrRepository, PreviousImageTag))
		}
		o, err = f.Ecs.RegisterTaskDefinition(ctx, prev)
		if err != nil {
			panic(err)
		}
		f.Previous[identity] = *o.TaskDefinition.TaskDefinitionArn
	}
	current := f.Seeds[envars.ServiceName()]
	if deployed {
		current = f.Previous[envars.ServiceName()]
	}
	f.Ecs.PutService(envars.Cluster(), envars.ServiceName(), current, 1, DefaultNetworkConfiguration)
	return f
}

func ImageUri(repository, imageTag string) string {
	return "012345678910.dkr.ecr.us-west-2.amazonaws.com/" + repository + ":" + imageTag
}
