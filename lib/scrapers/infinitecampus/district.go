package infinitecampus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/codes"
)

// SearchDistricts queries the public district directory with a name
// fragment and a two-letter state code.
func (c *Client) SearchDistricts(ctx context.Context, query, state string) ([]District, error) {
	ctx, span := tracer.Start(ctx, "SearchDistricts")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetQueryParam("state", state).
		Get(c.searchUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch district directory")
		return nil, err
	}

	switch res.StatusCode() {
	case http.StatusOK:
		var envelope struct {
			Data []District `json:"data"`
		}
		err = json.Unmarshal(res.Body(), &envelope)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse district directory response")
			return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String(), cause: err}
		}
		return envelope.Data, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrDistrictNotFound, query)
	default:
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String()}
	}
}

// ResolveDistrict looks up a district by (name, state) and stores the
// first directory match on the client. This is a prerequisite for
// Login.
func (c *Client) ResolveDistrict(ctx context.Context, name, state string) (District, error) {
	districts, err := c.SearchDistricts(ctx, name, state)
	if err != nil {
		return District{}, err
	}
	if len(districts) == 0 {
		return District{}, fmt.Errorf("%w: %q, %s", ErrDistrictNotFound, name, state)
	}

	// the directory may return several candidates for a loose query,
	// the first one is taken as-is
	c.district = &districts[0]
	return districts[0], nil
}
