package module

import (
	"legallens/internal/platform/config"
	"legallens/internal/services/api/catalog/service"
)

// Options controls where the catalog is read from and who may reload it
type Options struct {
	Source     string
	Path       string
	AdminToken string // empty disables POST /reload
}

// FromConfig reads CORE_LENS_CATALOG_* and CORE_API_ADMIN_TOKEN
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("CORE_LENS_")
	return Options{
		Source:     lc.MayEnum("CATALOG_SOURCE", service.SourceEmbedded, service.SourceEmbedded, service.SourceCSV, service.SourcePG),
		Path:       lc.MayString("CATALOG_PATH", ""),
		AdminToken: cfg.Prefix("CORE_API_").MayString("ADMIN_TOKEN", ""),
	}
}
