// Package fbrapi provides a client for the FBR soccer statistics API
// (https://fbrapi.com).
//
// FBR issues short-lived API keys from an open endpoint instead of using
// account-based credentials. The client obtains a key lazily, attaches it to
// every request via the X-API-Key header, and regenerates it when the server
// answers 401 or 403. Requests are paced by a minimum inter-request interval
// to stay under the provider's (unpublished) rate limit.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fbrapi.NewClient("https://fbrapi.com", logger,
//		fbrapi.WithAPIKey(os.Getenv("FBR_API_KEY")),
//		fbrapi.WithMinInterval(3*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	payload, err := client.GetLeagues(ctx, "ENG")
//	if err != nil {
//		log.Fatal(err)
//	}
//	rows := fbrapi.FlattenLeagues(payload)
//
// # Error Handling
//
// Terminal HTTP failures are returned as *APIError carrying the status code
// and response body; IsUnauthorized and IsNotFound classify them. A
// key-issuance response without the api_key field yields ErrMissingAPIKey.
// Transport errors are wrapped and propagated unchanged.
package fbrapi
