package config

// minAdminTokenLength is the shortest accepted admin token. Anything shorter
// is trivially brute-forceable for a shared secret compared byte-for-byte.
const minAdminTokenLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if len(cfg.App.AdminToken) < minAdminTokenLength {
		return ErrInvalidAppConfigs
	}

	return nil
}
