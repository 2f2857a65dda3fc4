package module

import (
	"exposure/internal/core/policy"
	"exposure/internal/platform/config"
	dssvc "exposure/internal/services/datasets/service"
)

// FromConfig reads dataset settings from the config.Conf
func FromConfig(cfg config.Conf) dssvc.Options {
	df := cfg.Prefix("DATASETS_")
	return dssvc.Options{
		DefaultPath: df.MayString("DEFAULT_PATH", ""),
		Presence:    policy.ParsePresence(df.MayString("PRESENCE", "core")),
	}
}
