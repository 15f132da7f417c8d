package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("empty mongodb connection URL, use MONGODB_URL env var")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrStoreFailed            = errors.New("mongo session store operation failed")
)
