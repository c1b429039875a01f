/*
NAME
  sentinel.go

DESCRIPTION
  sentinel.go defines the tagged-optional sample position returned by stages
  that may fail to locate something in the stream, replacing the source
  protocol's (size_t)-1 sentinel with an explicit present/absent value.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sstv

// Position is a sample index that may be absent, used by the Header Locator
// and Sync Tracker in place of a magic sentinel value.
type Position struct {
	index int
	found bool
}

// Found returns a present Position at index.
func Found(index int) Position { return Position{index: index, found: true} }

// NotFound returns an absent Position.
func NotFound() Position { return Position{} }

// Get returns the sample index and whether it is present.
func (p Position) Get() (int, bool) { return p.index, p.found }

// IsFound reports whether p holds a valid sample index.
func (p Position) IsFound() bool { return p.found }
