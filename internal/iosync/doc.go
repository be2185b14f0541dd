// Package iosync writes a file and durably syncs it to disk before
// returning, using the platform-appropriate sync primitive.
package iosync
