// Package config provides configuration management for the schema merger.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// schema-merger.yaml and environment variables. Command-line flags set on a
// command take precedence over all of them.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Output: default paths of the merged XML, the SQL script and the report
//   - Log: logging level and format
//   - Database: connection used by apply and compare --apply
//   - Storage: S3/MinIO bucket receiving published runs
//   - Server: HTTP port and API key
//
// Defaults come from the `default` struct tags, so every key can be set from
// the environment (OUTPUT_SCRIPT, DATABASE_HOST, SERVER_API_KEY, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Output.Script)
package config
