package config

import (
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// Validate performs structural validation on a configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return cuierrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return ConvertValidationError(err)
	}

	if cfg.Height < cfg.ShowLogs+5 {
		return cuierrors.NewValidationError("show_logs", "debug panel leaves fewer than 5 rows for the frame", nil)
	}

	return nil
}
