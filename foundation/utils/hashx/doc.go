// Package hashx provides the MurmurHash2A string hash used by strcore.
//
// Package: hashx
// Title: MurmurHash2A
// Description: Incremental MurmurHash2A (Austin Appleby's Merkle-Damgard
//              variant of MurmurHash2). Results are identical whether the
//              input is hashed in one call or streamed through Write in
//              arbitrary chunks. The streaming state implements hash.Hash32.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
package hashx
