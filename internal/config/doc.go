// Package config provides configuration loading, merging, and validation
// facilities for the zkdrive client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (optional, only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields still zero after merging take the values of [Defaults]. The main
// entry point is [GetClientConfig].
package config
