// Package config loads appcheck configuration files.
//
// Files ending in .toml are decoded with BurntSushi/toml; anything else is
// treated as YAML. Before decoding, ${VAR} references are replaced with the
// value of the environment variable VAR. A reference to an unset variable is
// an error, and $$ produces a literal dollar sign:
//
//	checks:
//	  - type: s3
//	    bucket: backups
//	    access_key_id: ${S3_ACCESS_KEY_ID}
//	    secret_key: ${S3_SECRET_KEY}
//
// Unknown keys are rejected in both formats.
package config
