package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// FetchJSON downloads the document with GET and decodes it into v
func FetchJSON(ctx context.Context, client Getter, u url.URL, v interface{}) error {
	b, err := client.Get(ctx, u)
	if err != nil {
		return TransportError(err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: decode json: %v", ErrStructure, err)
	}

	return nil
}
