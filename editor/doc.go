// Package editor implements the consistency engine for editing
// Byte-Pair-Encoding tokenizer descriptions: a vocabulary mapping token
// strings to integer ids, plus an ordered list of merge rules of the form
// "A + B -> AB".
//
// # Overview
//
// A Model holds the vocabulary and merge sequence exactly as loaded from a
// HuggingFace-style tokenizer.json. An Index, built once from the Model and
// maintained incrementally thereafter, answers three questions in O(1):
// which merge produces a given token, which merges consume a given token,
// and which ids are already in use.
//
// Every exported operation on an Editor — AddToken, RemoveToken, Shrink,
// SyncSingleChars, SyncShortTokens, AddTokensKeepSize — goes through the
// Index and leaves both the Model and the Index consistent with each other
// when it returns. No operation observes a partially-updated Model.
//
// # Invariants
//
//  1. Every token string maps to exactly one id; every id is held by
//     exactly one token.
//  2. For every merge (A, B): A, B, and A+B are all present in the vocab.
//  3. Every non-single-character, non-special token is the output of at
//     most one merge rule.
//  4. The Index's producer map, users map, and used-id set agree with the
//     Model at every observation point.
package editor
