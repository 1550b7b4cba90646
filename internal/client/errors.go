package client

import "errors"

var errNoSyncJob = errors.New("no sync job configured")
