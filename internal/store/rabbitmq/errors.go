package rabbitmq

import "errors"

var errEmptyJobID = errors.New("message without job_id")
