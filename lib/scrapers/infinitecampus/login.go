package infinitecampus

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"gradepoint-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

var errorMarker = regexp.MustCompile(`error`)

// Login submits credentials to the resolved district's verify
// endpoint. The session cookie set by the response is what
// authenticates every later call. Failed logins are retryable, the
// session stays in the district-resolved state.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if c.district == nil {
		return &PreconditionError{Required: "resolve district first"}
	}

	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"nonBrowser": "true",
			"username":   username,
			"password":   password,
			"appName":    c.district.AppName,
		}).
		Get(c.district.BaseUrl + "verify.jsp")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reach verify endpoint")
		return err
	}

	// the portal answers 200 with an "error" marker in the body on bad
	// credentials rather than a 4xx
	body := res.String()
	if !res.IsSuccess() || errorMarker.MatchString(body) {
		authErr := &AuthError{Status: res.StatusCode(), Message: portalErrorMessage(body)}
		span.RecordError(authErr)
		span.SetStatus(codes.Error, "credentials rejected")
		return authErr
	}

	c.authenticated = true
	slog.InfoContext(ctx, "login successful", "district", c.district.Name)
	return nil
}

// failures often come back as a full html page, pull a readable
// message out of it when possible
func portalErrorMessage(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return htmlutil.CleanText(body)
	}
	for _, selector := range []string{"p.errorMessage", "div.error", "title"} {
		nodes := doc.Find(selector).Nodes
		if len(nodes) == 0 {
			continue
		}
		text := htmlutil.CleanText(htmlutil.GetText(nodes[0]))
		if text != "" {
			return text
		}
	}
	return htmlutil.CleanText(body)
}
