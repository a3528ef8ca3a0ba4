package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rxtech-lab/argo-data/internal/version"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MetadataFileName is written to the root of every data directory.
const MetadataFileName = "argo-data.yaml"

// Metadata records which build created a data directory.
type Metadata struct {
	FormatVersion string    `yaml:"format_version"`
	CreatedBy     string    `yaml:"created_by"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// ReadMetadata loads the metadata file of dataDir.
func ReadMetadata(dataDir string) (Metadata, error) {
	var md Metadata

	raw, err := os.ReadFile(filepath.Join(dataDir, MetadataFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return md, errors.Wrap(errors.ErrCodeDataNotFound, "data directory has no metadata file", err)
		}

		return md, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read data directory metadata", err)
	}

	if err := yaml.Unmarshal(raw, &md); err != nil {
		return md, errors.Wrap(errors.ErrCodeInvalidVersion, "failed to parse data directory metadata", err)
	}

	return md, nil
}

// ensureMetadata creates the metadata file on first use and otherwise checks
// that the directory format can be handled by this build.
func ensureMetadata(dataDir string, now time.Time) error {
	md, err := ReadMetadata(dataDir)
	if err == nil {
		return version.CheckFormatCompatibility(version.FormatVersion, md.FormatVersion)
	}

	if !errors.HasCode(err, errors.ErrCodeDataNotFound) {
		return err
	}

	md = Metadata{
		FormatVersion: version.FormatVersion,
		CreatedBy:     "argo-data " + version.GetVersion(),
		CreatedAt:     now.UTC(),
	}

	raw, err := yaml.Marshal(md)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to encode data directory metadata", err)
	}

	if err := os.WriteFile(filepath.Join(dataDir, MetadataFileName), raw, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to write data directory metadata", err)
	}

	return nil
}

// checkMetadata validates the metadata file of dataDir when there is one.
func checkMetadata(dataDir string) error {
	md, err := ReadMetadata(dataDir)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeDataNotFound) {
			return nil
		}

		return err
	}

	return version.CheckFormatCompatibility(version.FormatVersion, md.FormatVersion)
}
