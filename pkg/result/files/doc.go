// Package files is the I/O edge for result: it reads text files and converts
// any read error into a failure-tagged Result right where it happens.
//
// - SafeReadString: read a file from the OS file system
// - SafeReadStringFS: read a file from any fs.FS
// - ReadAll: read several paths, one Result per path, in order
//
// Failure payloads are wrapped in the ReadError class.
package files
