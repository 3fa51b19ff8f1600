package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"car_rental_app_go/logger"
)

// Files under static/ that are referenced with a cache-busting version
var versionedAssets = []string{
	"css/site.css",
	"js/search-sync.js",
	"images/favicon.png",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		assetVersions = make(map[string]string, len(versionedAssets))
		for _, name := range versionedAssets {
			version := computeFileHash(filepath.Join(staticDir, name))
			if version == "" {
				version = "1"
			}
			assetVersions[name] = version
		}
		logger.Infof("Asset versions initialized: %d files", len(assetVersions))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		logger.Warnf("Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Warnf("Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetURL returns /static/<name>?v=<hash>, with v=1 for unknown or unhashed files
func AssetURL(name string) string {
	version := "1"
	if v, ok := assetVersions[name]; ok {
		version = v
	}
	return "/static/" + name + "?v=" + version
}
