// Package config provides configuration loading, merging, and validation
// facilities for the vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. Command-line flags
//  2. Environment variables (VAULT_ prefix)
//  3. JSON config file
//  4. Defaults under the per-user application data directory
//
// The main entry point is [GetVaultConfig].
package config
