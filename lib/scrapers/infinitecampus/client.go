package infinitecampus

import (
	"context"
	"net/http/cookiejar"
	"time"

	"gradepoint-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/infinitecampus")

const defaultDistrictSearchUrl = "https://mobile.infinitecampus.com/api/district/searchDistrict"

// TaskStrategy picks which grading task of a course holds the
// authoritative grade.
type TaskStrategy int

const (
	// the task literally named "Final Grade", courses without one are
	// skipped
	TaskNamedFinalGrade TaskStrategy = iota
	// the first task in document order, some districts don't name
	// their final task
	FirstTask
)

// Client is a session against one district's portal: a cookie store,
// a fixed header set and the authentication state accumulated by
// ResolveDistrict and Login. One client per logical user, sequential
// use.
type Client struct {
	http          *resty.Client
	searchUrl     string
	taskStrategy  TaskStrategy
	district      *District
	authenticated bool
}

type ClientOptions struct {
	// overrides the public district directory endpoint, mainly for
	// tests
	DistrictSearchUrl string
	TaskStrategy      TaskStrategy
}

func NewClient(opts ClientOptions) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "gradepoint/0.1")
	client.SetHeader("accept", "application/json")

	requestId, err := random.String(12)
	if err != nil {
		return nil, err
	}
	client.SetHeader("x-request-id", requestId)

	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/infinitecampus/http")

	searchUrl := opts.DistrictSearchUrl
	if searchUrl == "" {
		searchUrl = defaultDistrictSearchUrl
	}

	return &Client{
		http:         client,
		searchUrl:    searchUrl,
		taskStrategy: opts.TaskStrategy,
	}, nil
}

// Fetch is the generic authenticated-fetch primitive, cookies set by
// any earlier response replay automatically through the jar.
func (c *Client) Fetch(ctx context.Context, url string) (*resty.Response, error) {
	return c.http.R().SetContext(ctx).Get(url)
}

// the district resolved for this session, nil before ResolveDistrict
func (c *Client) District() *District {
	return c.district
}

func (c *Client) Authenticated() bool {
	return c.authenticated
}
