// Package tag resolves task definition revisions by their tags.
package tag

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/loilo-inc/deploycage/errs"
)

const (
	CreatedByKey = "created_by"
	NameKey      = "Name"
)

type Tag struct {
	Key   string
	Value string
}

func (t Tag) String() string {
	return t.Key + ":" + t.Value
}

func (t Tag) EcsTag() ecstypes.Tag {
	return ecstypes.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)}
}

// ParseTags reads "key:value,key:value". Each segment is split on its
// first colon and whitespace around keys and values is dropped.
func ParseTags(spec string) ([]Tag, error) {
	segments := strings.Split(spec, ",")
	tags := make([]Tag, 0, len(segments))
	for _, seg := range segments {
		k, v, ok := strings.Cut(seg, ":")
		if !ok {
			return nil, &errs.MalformedTagSpecError{Spec: spec, Segment: strings.TrimSpace(seg)}
		}
		tags = append(tags, Tag{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
	}
	return tags, nil
}

func FormatTags(tags []Tag) string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = t.String()
	}
	return strings.Join(s, ",")
}

// Identity returns the tags stamped on every revision of an application
// identity: who created it and which identity it belongs to.
func Identity(createdBy string, name string) []Tag {
	return []Tag{
		{Key: CreatedByKey, Value: createdBy},
		{Key: NameKey, Value: name},
	}
}

func EcsTags(tags []Tag) []ecstypes.Tag {
	ret := make([]ecstypes.Tag, len(tags))
	for i, t := range tags {
		ret[i] = t.EcsTag()
	}
	return ret
}

// Contains reports whether every tag in required is present in set.
func Contains(set []ecstypes.Tag, required []Tag) bool {
	have := make(map[Tag]struct{}, len(set))
	for _, t := range set {
		have[Tag{Key: aws.ToString(t.Key), Value: aws.ToString(t.Value)}] = struct{}{}
	}
	for _, t := range required {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}
