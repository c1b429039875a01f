/*
NAME
  logging.go

DESCRIPTION
  logging.go defines the logging capability the decoder accepts. The core
  never logs to a global or package-level logger; every stage that needs to
  report a non-fatal condition receives a Logger through Config.

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

import "github.com/ausocean/utils/logging"

// Logger is the five-severity logging capability consumed by the decoder:
// Debug (verbose diagnostics), Info (stage milestones), Warning (non-fatal
// recoverable conditions), Error and Fatal (see Config.Log's doc comment for
// how the decoder uses each).
type Logger = logging.Logger
