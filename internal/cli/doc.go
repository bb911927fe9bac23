// Package cli defines the Cobra command tree for the cloud-function-framework
// CLI. Each file registers one top-level command (bootstrap, deploy, config,
// doctor, version) with the root command. Commands delegate to internal
// packages for the work and only handle arguments, prompts, and output.
package cli
