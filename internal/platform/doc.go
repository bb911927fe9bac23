// Package platform papers over the permission differences between Unix and
// Windows for generated files. On Unix it applies chmod directly; on Windows,
// which has no Unix permission bits, the calls are no-ops.
package platform
