// Package ninep provides low-level routines for parsing and producing
// 9P2000 messages, including the 9P2000.e extension.
//
// The ninep package is to be used for making higher-level 9P libraries.
// The routines within make very few assumptions or decisions, so that
// they may be used for a wide variety of higher-level packages. When
// decoding messages, no copies are made; all variable-length fields of
// a decoded message reference the caller's input buffer, and remain
// valid only for as long as that buffer does.
//
// The package performs no I/O of its own beyond the optional Decoder,
// which slices framed messages out of a byte stream using a fixed-size
// buffer. This allows servers built on the ninep package to have
// predictable resource usage based on the number of connections.
package ninep
