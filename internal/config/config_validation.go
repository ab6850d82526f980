package config

import "strings"

// applyDefaults fills in defaults for every optional field that is still at
// its zero value after all sources were merged. Required fields (OTM base
// URL and credentials) are left untouched and caught by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.OTM.Domain == "" {
		cfg.OTM.Domain = DefaultOTMDomain
	}
	if cfg.OTM.Subdomain == "" {
		cfg.OTM.Subdomain = DefaultOTMSubdomain
	}
	if cfg.OTM.RequestTimeout == 0 {
		cfg.OTM.RequestTimeout = DefaultOTMTimeout
	}

	if cfg.App.StaticDir == "" {
		cfg.App.StaticDir = DefaultStaticDir
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.OTM.BaseURL) == "" {
		return ErrInvalidOTMConfigs
	}
	if cfg.OTM.Username == "" || cfg.OTM.Password == "" {
		return ErrInvalidOTMCredentials
	}
	if cfg.OTM.RequestTimeout <= 0 {
		return ErrInvalidOTMConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
