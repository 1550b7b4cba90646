// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Files.RootDir == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.Parallelism < 0 || (!cfg.App.RunOnce && cfg.Workers.SyncInterval <= 0) {
		return ErrInvalidWorkerConfigs
	}
	if len(cfg.App.Sources) == 0 {
		return ErrInvalidAppConfigs
	}
	for _, src := range cfg.App.Sources {
		if strings.TrimSpace(src) == "" {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}
