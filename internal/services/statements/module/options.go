package module

import "ledgerdesk/internal/platform/config"

// Options holds configuration settings for the statements module
type Options struct {
	MaxBatch int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("STATEMENTS_")
	return Options{
		MaxBatch: sf.MayInt("MAX_BATCH", 0),
	}
}
