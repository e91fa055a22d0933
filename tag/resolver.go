package tag

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/awsiface"
	"github.com/loilo-inc/deploycage/errs"
	"golang.org/x/xerrors"
)

type Resolver struct {
	ecs awsiface.EcsClient
	// SeedTag marks the revision provisioned by infrastructure code, which
	// is the only one allowed to exist before the first deployment.
	SeedTag Tag
}

func NewResolver(ecsCli awsiface.EcsClient, seedCreator string) *Resolver {
	return &Resolver{ecs: ecsCli, SeedTag: Tag{Key: CreatedByKey, Value: seedCreator}}
}

// ResolveUniqueActiveArn returns the one ACTIVE revision under familyPrefix
// carrying all of required.
//
// With allowBootstrap, a family holding exactly one ACTIVE revision is
// treated as never deployed: "" is returned if that revision is the seed,
// otherwise the family is in a state no deployment could have produced.
func (r *Resolver) ResolveUniqueActiveArn(
	ctx context.Context,
	familyPrefix string,
	required []Tag,
	allowBootstrap bool,
) (string, error) {
	var active []string
	tagsByArn := make(map[string][]ecstypes.Tag)
	var matches []string
	pager := ecs.NewListTaskDefinitionsPaginator(r.ecs, &ecs.ListTaskDefinitionsInput{
		FamilyPrefix: &familyPrefix,
		Status:       ecstypes.TaskDefinitionStatusActive,
		Sort:         ecstypes.SortOrderDesc,
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", xerrors.Errorf("failed to list task definitions of '%s': %w", familyPrefix, err)
		}
		active = append(active, page.TaskDefinitionArns...)
	}
	for _, arn := range active {
		o, err := r.ecs.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
			TaskDefinition: &arn,
			Include:        []ecstypes.TaskDefinitionField{ecstypes.TaskDefinitionFieldTags},
		})
		if err != nil {
			return "", xerrors.Errorf("failed to describe task definition '%s': %w", arn, err)
		}
		tagsByArn[arn] = o.Tags
		if Contains(o.Tags, required) {
			matches = append(matches, arn)
		}
	}
	if allowBootstrap && len(active) == 1 {
		sole := active[0]
		if !Contains(tagsByArn[sole], []Tag{r.SeedTag}) {
			return "", &errs.BootstrapInvariantViolationError{
				FamilyPrefix: familyPrefix,
				Arn:          sole,
				SeedTag:      r.SeedTag.String(),
			}
		}
		log.Infof("only the seed task definition '%s' is active. treating '%s' as an initial deployment", sole, familyPrefix)
		return "", nil
	}
	if len(matches) != 1 {
		return "", &errs.AmbiguousActiveDefinitionError{
			FamilyPrefix: familyPrefix,
			Tags:         FormatTags(required),
			Candidates:   matches,
		}
	}
	log.Infof("active task definition with tags %s: '%s'", FormatTags(required), matches[0])
	return matches[0], nil
}
