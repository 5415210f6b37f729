package infinitecampus

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/codes"
)

// fetchPlacements pulls the roster document and indexes the first
// placement of each section by its course id.
func (c *Client) fetchPlacements(ctx context.Context) (map[string]Placement, error) {
	ctx, span := tracer.Start(ctx, "fetchPlacements")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("_expand", "{sectionPlacements-{term}}").
		Get(c.district.BaseUrl + "resources/portal/roster")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch roster document")
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String()}
	}

	var sections []rawSection
	err = json.Unmarshal(res.Body(), &sections)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse roster document")
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String(), cause: err}
	}

	placements := make(map[string]Placement, len(sections))
	for _, section := range sections {
		if len(section.Placements) == 0 {
			continue
		}
		p := section.Placements[0]
		placements[section.ID] = Placement{
			PeriodName: p.PeriodName,
			PeriodSeq:  p.PeriodSeq,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
		}
	}
	return placements, nil
}
