// Package platform provides cross-platform filesystem helpers. On Unix
// systems permission bits are applied directly; on Windows they are
// ignored.
package platform
