package render

import (
	"context"
	"strings"

	"querydesk/internal/model"
	"querydesk/internal/service"
)

// Submit runs one query against client and renders the outcome into d.
// The loading indicator is on for the duration of the call only. Any error
// is rendered into the text region and also returned.
func Submit(ctx context.Context, client service.QueryClient, d *Display, rawQuery string) error {
	d.Clear()
	query := strings.TrimSpace(rawQuery)

	resp, err := execute(ctx, client, d, query)
	if err != nil {
		RenderError(d, err)
		return err
	}

	Render(d, resp)
	return nil
}

func execute(ctx context.Context, client service.QueryClient, d *Display, query string) (model.QueryResponse, error) {
	d.Loading = true
	defer func() { d.Loading = false }()

	return client.Execute(ctx, query)
}
