// Package coding provides encoding and decoding utilities for various data formats.
// It includes common constants and helper functions used across different encoding
// implementations; Base64 (standard and URL-safe) is the one encoding it provides.
package coding

// BufferSize buffer size for streaming (64KB is a good balance)
var BufferSize = 64 * 1024
