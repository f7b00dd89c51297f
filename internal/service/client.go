package service

import (
	"context"

	"querydesk/internal/model"
)

type QueryClient interface {
	Endpoint() string
	Execute(ctx context.Context, query string) (model.QueryResponse, error)
}
