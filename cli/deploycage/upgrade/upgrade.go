package upgrade

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
	"github.com/google/go-github/v62/github"
	"github.com/minio/selfupdate"
	"golang.org/x/xerrors"
)

const (
	owner = "loilo-inc"
	repo  = "deploycage"
)

type Input struct {
	PreRelease bool
	TargetPath string
}

type Upgrader interface {
	Upgrade(ctx context.Context, input *Input) error
}

type upgrader struct {
	currentVersion string
	client         *github.Client
}

func NewUpgrader(currentVersion string) Upgrader {
	return &upgrader{currentVersion: currentVersion, client: github.NewClient(nil)}
}

func (u *upgrader) Upgrade(ctx context.Context, input *Input) error {
	log.Infof("checking for updates...")
	releases, _, err := u.client.Repositories.ListReleases(ctx, owner, repo, nil)
	if err != nil {
		return xerrors.Errorf("failed to list releases: %w", err)
	}
	latest := findLatestRelease(releases, input.PreRelease)
	if latest == nil {
		return xerrors.Errorf("failed to find latest release")
	}
	version := latest.GetTagName()
	log.Infof("latest release: %s", version)
	// a current version that is not semver (e.g. dev builds) always upgrades
	if currVer, err := semver.NewVersion(u.currentVersion); err == nil {
		if !currVer.LessThan(semver.MustParse(version)) {
			log.Info("no updates available")
			return nil
		}
	}
	log.Infof("upgrading from %s to %s", u.currentVersion, version)
	checksumAssetName := fmt.Sprintf("%s_%s_checksums.txt", repo, version)
	binaryAssetName := fmt.Sprintf("%s_%s_%s.zip", repo, runtime.GOOS, runtime.GOARCH)
	var checksumAsset, binaryAsset *github.ReleaseAsset
	for _, asset := range latest.Assets {
		switch asset.GetName() {
		case checksumAssetName:
			checksumAsset = asset
		case binaryAssetName:
			binaryAsset = asset
		}
	}
	if checksumAsset == nil || binaryAsset == nil {
		return xerrors.Errorf("failed to find assets for version %s", version)
	}
	log.Info("downloading checksums...")
	checksums, err := fetchChecksums(ctx, checksumAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	checksum, ok := checksums[binaryAssetName]
	if !ok {
		return xerrors.Errorf("failed to find checksum for %s", binaryAssetName)
	}
	sum, err := hex.DecodeString(checksum)
	if err != nil {
		return xerrors.Errorf("invalid checksum for %s: %w", binaryAssetName, err)
	}
	log.Infof("downloading binary %s...", binaryAssetName)
	body, err := get(ctx, binaryAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	defer body.Close()
	log.Infof("upgrading to %s", version)
	return selfupdate.Apply(body, selfupdate.Options{
		Checksum:   sum,
		TargetPath: input.TargetPath,
	})
}

// findLatestRelease expects releases newest first, as GitHub lists them.
func findLatestRelease(releases []*github.RepositoryRelease, preRelease bool) *github.RepositoryRelease {
	for _, release := range releases {
		if _, err := semver.NewVersion(release.GetTagName()); err != nil {
			continue
		}
		if !release.GetPrerelease() || preRelease {
			return release
		}
	}
	return nil
}

func get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("failed to download %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, xerrors.Errorf("failed to download %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

func fetchChecksums(ctx context.Context, url string) (map[string]string, error) {
	body, err := get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return parseChecksums(string(b))
}

// parseChecksums reads sha256sum output: "<hex>  <file name>" per line.
func parseChecksums(str string) (map[string]string, error) {
	sums := make(map[string]string)
	for _, line := range strings.Split(str, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "  ")
		if len(parts) != 2 {
			return nil, xerrors.Errorf("invalid checksum line: %s", line)
		}
		sums[parts[1]] = parts[0]
	}
	return sums, nil
}
