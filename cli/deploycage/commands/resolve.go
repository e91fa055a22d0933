package commands

import (
	"github.com/loilo-inc/deploycage/cli/deploycage/deployapp"
	"github.com/loilo-inc/deploycage/env"
	"github.com/loilo-inc/deploycage/image"
	"github.com/loilo-inc/deploycage/tag"
	"github.com/urfave/cli/v2"
)

func (c *Commands) GetActiveTaskDefinition(envars *env.Envars) *cli.Command {
	var familyPrefix string
	var tags string
	var allowInitial bool
	return &cli.Command{
		Name:  "get-active-task-definition",
		Usage: "print the only active task definition of a family carrying the given tags",
		Flags: []cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.FamilyPrefixFlag(&familyPrefix),
			deployapp.TagsFlag(&tags),
			deployapp.AllowInitialDeploymentFlag(&allowInitial),
			deployapp.SeedCreatorFlag(&envars.SeedCreator),
		},
		Action: func(ctx *cli.Context) error {
			required, err := tag.ParseTags(tags)
			if err != nil {
				return err
			}
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			arn, err := tag.NewResolver(input.Ecs, envars.SeedCreator).
				ResolveUniqueActiveArn(ctx.Context, familyPrefix, required, allowInitial)
			if err != nil {
				return err
			}
			c.printer.PrintOutf("%s\n", arn)
			return nil
		},
	}
}

func (c *Commands) GetImageUri(envars *env.Envars) *cli.Command {
	return &cli.Command{
		Name:  "get-image-uri",
		Usage: "print the full uri of an image in ecr",
		Flags: []cli.Flag{
			deployapp.RegionFlag(&envars.Region),
			deployapp.EcrRepositoryFlag(&envars.EcrRepository),
			deployapp.ImageTagFlag(&envars.ImageTag),
		},
		Action: func(ctx *cli.Context) error {
			input, closer, err := c.setup(ctx.Context, envars)
			if err != nil {
				return err
			}
			defer closer()
			uri, err := image.NewResolver(input.Ecr).ResolveImageUri(ctx.Context, envars.EcrRepository, envars.ImageTag)
			if err != nil {
				return err
			}
			input.Outputs.Set("image_uri", uri)
			return nil
		},
	}
}
