package main

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"calc-catalog/internal/catalog"

	"go.uber.org/zap"
)

const embeddedCatalogKey = "embedded:default_catalog.yaml"

// SeededFile records a catalog that was written to the database.
type SeededFile struct {
	Source   string    `json:"source"`
	FileHash string    `json:"file_hash"`
	SeededAt time.Time `json:"seeded_at"`
}

// CacheData stores the catalogs seeded so far, keyed by source.
type CacheData struct {
	SeededFiles map[string]SeededFile `json:"seeded_files"`
}

// seedPlan is a validated catalog ready to be written.
type seedPlan struct {
	catalog   *catalog.Catalog
	source    string
	hash      string
	cacheFile string
	cache     *CacheData
}

// planSeed reads and validates the catalog. It returns nil when the
// catalog is unchanged since the last recorded seed and force is off.
func planSeed(opts *options, logger *zap.Logger) (*seedPlan, error) {
	source := opts.file
	var data []byte
	if source == "" {
		source = embeddedCatalogKey
		data = catalog.DefaultData()
	} else {
		var err error
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
	}

	hash := contentHash(data)

	cache := &CacheData{SeededFiles: make(map[string]SeededFile)}
	if opts.cacheFile != "" {
		loaded, err := loadCache(opts.cacheFile)
		if err != nil {
			logger.Warn("Failed to load seed cache, seeding anyway", zap.Error(err))
		} else {
			cache = loaded
		}
	}

	if cached, ok := cache.SeededFiles[source]; ok && cached.FileHash == hash && !opts.force && !opts.dryRun {
		logger.Info("Catalog unchanged since last seed, skipping",
			zap.String("source", source),
			zap.Time("seeded_at", cached.SeededAt),
		)
		return nil, nil
	}

	tools, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(tools)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, err)
	}

	return &seedPlan{
		catalog:   c,
		source:    source,
		hash:      hash,
		cacheFile: opts.cacheFile,
		cache:     cache,
	}, nil
}

// commit records the seeded catalog in the cache file.
func (p *seedPlan) commit() error {
	if p.cacheFile == "" {
		return nil
	}
	p.cache.SeededFiles[p.source] = SeededFile{
		Source:   p.source,
		FileHash: p.hash,
		SeededAt: time.Now(),
	}
	return saveCache(p.cacheFile, p.cache)
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		SeededFiles: make(map[string]SeededFile),
	}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.SeededFiles == nil {
		cache.SeededFiles = make(map[string]SeededFile)
	}
	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

func contentHash(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}
