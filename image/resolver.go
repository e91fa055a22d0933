// Package image turns an image tag into a fully qualified image URI.
package image

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/errs"
	"golang.org/x/xerrors"
)

type Resolver struct {
	ecr awsiface.EcrClient
}

func NewResolver(ecrCli awsiface.EcrClient) *Resolver {
	return &Resolver{ecr: ecrCli}
}

// ResolveImageUri returns "{repositoryUri}:{tag}" after checking that
// exactly one image in repository carries tag.
func (r *Resolver) ResolveImageUri(ctx context.Context, repository string, tag string) (string, error) {
	images, err := r.ecr.DescribeImages(ctx, &ecr.DescribeImagesInput{
		RepositoryName: &repository,
		ImageIds:       []ecrtypes.ImageIdentifier{{ImageTag: &tag}},
	})
	if err != nil {
		return "", xerrors.Errorf("failed to describe image '%s:%s': %w", repository, tag, err)
	}
	if len(images.ImageDetails) != 1 {
		var found []string
		for _, d := range images.ImageDetails {
			found = append(found, d.ImageTags...)
		}
		return "", &errs.ImageNotFoundError{Repository: repository, Tag: tag, Found: found}
	}
	detail := images.ImageDetails[0]
	occurrences := 0
	for _, t := range detail.ImageTags {
		if t == tag {
			occurrences++
		}
	}
	if occurrences != 1 {
		return "", &errs.ImageNotFoundError{Repository: repository, Tag: tag, Found: detail.ImageTags}
	}
	repos, err := r.ecr.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
		RepositoryNames: []string{repository},
	})
	if err != nil {
		return "", xerrors.Errorf("failed to describe repository '%s': %w", repository, err)
	}
	if len(repos.Repositories) != 1 {
		return "", xerrors.Errorf("expected exactly one repository named '%s', found %d", repository, len(repos.Repositories))
	}
	uri := fmt.Sprintf("%s:%s", aws.ToString(repos.Repositories[0].RepositoryUri), tag)
	log.Infof("image uri: %s", uri)
	return uri, nil
}
