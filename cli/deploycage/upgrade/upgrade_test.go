package upgrade_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/jarcoal/httpmock"
	"github.com/loilo-inc/deploycage/cli/deploycage/upgrade"
	"github.com/stretchr/testify/assert"
)

const releasesUrl = "https://api.github.com/repos/loilo-inc/deploycage/releases"

// sha256 of "1"
const checksumOfOne = "6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b"

func TestUpgrader_Upgrade(t *testing.T) {
	makeAsset := func(tag, name string) *github.ReleaseAsset {
		return &github.ReleaseAsset{
			Name:               github.String(name),
			BrowserDownloadURL: github.String(fmt.Sprintf("https://localhost/%s/%s", tag, name)),
		}
	}
	binaryAssetName := fmt.Sprintf("deploycage_%s_%s.zip", runtime.GOOS, runtime.GOARCH)
	makeReleases := func(tags ...string) []*github.RepositoryRelease {
		var releases []*github.RepositoryRelease
		for _, tag := range tags {
			releases = append(releases, &github.RepositoryRelease{
				TagName:    github.String(tag),
				Prerelease: github.Bool(strings.HasSuffix(tag, "-pre")),
				Assets: []*github.ReleaseAsset{
					makeAsset(tag, "deploycage_"+tag+"_checksums.txt"),
					makeAsset(tag, binaryAssetName)},
			})
		}
		sort.Slice(releases, func(i, j int) bool {
			return strings.Compare(releases[i].GetTagName(), releases[j].GetTagName()) > 0
		})
		return releases
	}
	makeTarget := func(t *testing.T) string {
		target := filepath.Join(t.TempDir(), "deploycage")
		assert.NoError(t, os.WriteFile(target, []byte("0.1.0"), 0755))
		return target
	}
	readTarget := func(t *testing.T, target string) string {
		content, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		return string(content)
	}
	ctx := context.Background()
	t.Run("basic", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/deploycage_0.2.0_checksums.txt",
			httpmock.NewStringResponder(200, checksumOfOne+"  "+binaryAssetName))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/"+binaryAssetName,
			httpmock.NewStringResponder(200, "1"))
		target := makeTarget(t)
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{TargetPath: target})
		assert.NoError(t, err)
		assert.Equal(t, "1", readTarget(t, target))
	})
	t.Run("dev build always upgrades", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.1.0/deploycage_0.1.0_checksums.txt",
			httpmock.NewStringResponder(200, checksumOfOne+"  "+binaryAssetName))
		httpmock.RegisterResponder("GET", "https://localhost/0.1.0/"+binaryAssetName,
			httpmock.NewStringResponder(200, "1"))
		target := makeTarget(t)
		err := upgrade.NewUpgrader("dev").Upgrade(ctx, &upgrade.Input{TargetPath: target})
		assert.NoError(t, err)
		assert.Equal(t, "1", readTarget(t, target))
	})
	t.Run("no updates", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0")))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.NoError(t, err)
		assert.Equal(t, 1, httpmock.GetTotalCallCount())
	})
	t.Run("pre-release", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0-pre")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0-pre/deploycage_0.2.0-pre_checksums.txt",
			httpmock.NewStringResponder(200, checksumOfOne+"  "+binaryAssetName))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0-pre/"+binaryAssetName,
			httpmock.NewStringResponder(200, "1"))
		target := makeTarget(t)
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{
			PreRelease: true,
			TargetPath: target})
		assert.NoError(t, err)
		assert.Equal(t, "1", readTarget(t, target))
	})
	t.Run("pre-release is skipped by default", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0-pre")))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.NoError(t, err)
	})
	t.Run("no release", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("nightly")))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.EqualError(t, err, "failed to find latest release")
	})
	t.Run("missing assets", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		releases := makeReleases("0.2.0")
		releases[0].Assets = releases[0].Assets[:1]
		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, releases))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.EqualError(t, err, "failed to find assets for version 0.2.0")
	})
	t.Run("parse checksum error", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/deploycage_0.2.0_checksums.txt",
			httpmock.NewStringResponder(200, "invalid"))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.EqualError(t, err, "invalid checksum line: invalid")
	})
	t.Run("checksum missing for binary", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/deploycage_0.2.0_checksums.txt",
			httpmock.NewStringResponder(200, checksumOfOne+"  other.zip"))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.EqualError(t, err, "failed to find checksum for "+binaryAssetName)
	})
	t.Run("checksum download failure", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", releasesUrl,
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.1.0", "0.2.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/deploycage_0.2.0_checksums.txt",
			httpmock.NewStringResponder(404, "not found"))
		err := upgrade.NewUpgrader("0.1.0").Upgrade(ctx, &upgrade.Input{})
		assert.EqualError(t, err, "failed to download https://localhost/0.2.0/deploycage_0.2.0_checksums.txt: 404")
	})
}

func TestParseChecksums(t *testing.T) {
	sums, err := upgrade.ParseChecksums("abc  a.zip\n\ndef  b.zip\n")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"a.zip": "abc", "b.zip": "def"}, sums)
}
