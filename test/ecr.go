package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/google/uuid"
)

type EcrServer struct {
	repositories map[string]*types.Repository
	images       map[string][]types.ImageDetail
	mux          sync.Mutex
}

func NewEcrServer() *EcrServer {
	return &EcrServer{
		repositories: make(map[string]*types.Repository),
		images:       make(map[string][]types.ImageDetail),
	}
}

// PutImage pushes one image carrying the given tags, creating the repository if needed.
func (s *EcrServer) PutImage(repository string, tags ...string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	repo, ok := s.repositories[repository]
	if !ok {
		repo = &types.Repository{
			RepositoryName: aws.String(repository),
			RepositoryArn:  aws.String(fmt.Sprintf("arn:aws:ecr:us-west-2:012345678910:repository/%s", repository)),
			RepositoryUri:  aws.String(fmt.Sprintf("012345678910.dkr.ecr.us-west-2.amazonaws.com/%s", repository)),
			RegistryId:     aws.String("012345678910"),
		}
		s.repositories[repository] = repo
	}
	s.images[repository] = append(s.images[repository], types.ImageDetail{
		RepositoryName: repo.RepositoryName,
		RegistryId:     repo.RegistryId,
		ImageDigest:    aws.String("sha256:" + uuid.New().String()),
		ImageTags:      tags,
	})
}

func (s *EcrServer) DescribeImages(_ context.Context, input *ecr.DescribeImagesInput, _ ...func(options *ecr.Options)) (*ecr.DescribeImagesOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	name := aws.ToString(input.RepositoryName)
	if _, ok := s.repositories[name]; !ok {
		return nil, &types.RepositoryNotFoundException{Message: aws.String(fmt.Sprintf("repository '%s' does not exist", name))}
	}
	if len(input.ImageIds) == 0 {
		return &ecr.DescribeImagesOutput{ImageDetails: s.images[name]}, nil
	}
	out := &ecr.DescribeImagesOutput{}
	for _, id := range input.ImageIds {
		found := false
		for _, detail := range s.images[name] {
			for _, t := range detail.ImageTags {
				if t == aws.ToString(id.ImageTag) {
					out.ImageDetails = append(out.ImageDetails, detail)
					found = true
					break
				}
			}
		}
		if !found {
			return nil, &types.ImageNotFoundException{Message: aws.String(fmt.Sprintf("image with tag '%s' does not exist", aws.ToString(id.ImageTag)))}
		}
	}
	return out, nil
}

func (s *EcrServer) DescribeRepositories(_ context.Context, input *ecr.DescribeRepositoriesInput, _ ...func(options *ecr.Options)) (*ecr.DescribeRepositoriesOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := &ecr.DescribeRepositoriesOutput{}
	for _, name := range input.RepositoryNames {
		repo, ok := s.repositories[name]
		if !ok {
			return nil, &types.RepositoryNotFoundException{Message: aws.String(fmt.Sprintf("repository '%s' does not exist", name))}
		}
		out.Repositories = append(out.Repositories, *repo)
	}
	return out, nil
}
