package infinitecampus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gradepoint-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "JSESSIONID"
const sessionCookieValue = "abc123"

// a fake district portal plus the public district directory on a
// single test server
type mockPortal struct {
	server *httptest.Server

	searchStatus int
	districts    []District
	gradesBody   string
	rosterBody   string
}

func newMockPortal(t testing.TB) *mockPortal {
	p := &mockPortal{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/district/searchDistrict", func(w http.ResponseWriter, r *http.Request) {
		if p.searchStatus != 0 {
			w.WriteHeader(p.searchStatus)
			fmt.Fprint(w, "district directory offline")
			return
		}
		w.Header().Set("content-type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": p.districts})
	})
	mux.HandleFunc("/campus/verify.jsp", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("nonBrowser") != "true" || q.Get("appName") != "riverside" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "error: bad request")
			return
		}
		if q.Get("username") != "jdoe" || q.Get("password") != "hunter2" {
			fmt.Fprint(w, `<html><head><title>Campus Portal</title></head><body><p class="errorMessage">The username or password you entered is incorrect</p></body></html>`)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: sessionCookieValue, Path: "/"})
		fmt.Fprint(w, "success")
	})
	mux.HandleFunc("/campus/resources/portal/grades", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value != sessionCookieValue {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("content-type", "application/json")
		fmt.Fprint(w, p.gradesBody)
	})
	mux.HandleFunc("/campus/resources/portal/roster", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value != sessionCookieValue {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("content-type", "application/json")
		fmt.Fprint(w, p.rosterBody)
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)

	p.districts = []District{{
		ID:        1234,
		Name:      "Riverside County Schools",
		AppName:   "riverside",
		BaseUrl:   p.server.URL + "/campus/",
		Code:      "hkgkjx",
		StateCode: "GA",
	}}
	return p
}

func newTestClient(t testing.TB, portal *mockPortal, strategy TaskStrategy) *Client {
	client, err := NewClient(ClientOptions{
		DistrictSearchUrl: portal.server.URL + "/api/district/searchDistrict",
		TaskStrategy:      strategy,
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func loginTestClient(ctx context.Context, t testing.TB, portal *mockPortal, strategy TaskStrategy) *Client {
	client := newTestClient(t, portal, strategy)
	_, err := client.ResolveDistrict(ctx, "Riverside", "GA")
	if err != nil {
		t.Fatal(err)
	}
	err = client.Login(ctx, "jdoe", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestResolveDistrict(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)

	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		district, err := client.ResolveDistrict(ctx, "Riverside", "GA")
		require.NoError(t, err)
		require.Equal(t, "riverside", district.AppName)
		require.Equal(t, portal.server.URL+"/campus/", district.BaseUrl)
		require.NotNil(t, client.District())

		// resolving the same input twice yields the same district
		again, err := client.ResolveDistrict(ctx, "Riverside", "GA")
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(district, again))
	})

	t.Run("empty data", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		saved := portal.districts
		portal.districts = nil
		defer func() { portal.districts = saved }()

		_, err := client.ResolveDistrict(ctx, "Nowhere", "MN")
		require.ErrorIs(t, err, ErrDistrictNotFound)
		require.Nil(t, client.District())
	})

	t.Run("upstream error", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		portal.searchStatus = http.StatusInternalServerError
		defer func() { portal.searchStatus = 0 }()

		_, err := client.ResolveDistrict(ctx, "Riverside", "GA")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		require.Equal(t, http.StatusInternalServerError, upstream.Status)
		require.Contains(t, upstream.Body, "offline")
	})

	t.Run("directory 404", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		portal.searchStatus = http.StatusNotFound
		defer func() { portal.searchStatus = 0 }()

		_, err := client.ResolveDistrict(ctx, "Riverside", "GA")
		require.ErrorIs(t, err, ErrDistrictNotFound)
	})
}

func TestLogin(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)

	t.Run("requires resolved district", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		err := client.Login(ctx, "jdoe", "hunter2")
		var precondition *PreconditionError
		require.ErrorAs(t, err, &precondition)
		require.False(t, client.Authenticated())
	})

	t.Run("rejected then retried", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)
		_, err := client.ResolveDistrict(ctx, "Riverside", "GA")
		require.NoError(t, err)

		err = client.Login(ctx, "jdoe", "wrong")
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Contains(t, authErr.Message, "incorrect")
		require.False(t, client.Authenticated())

		// a failed login leaves the session retryable
		err = client.Login(ctx, "jdoe", "hunter2")
		require.NoError(t, err)
		require.True(t, client.Authenticated())
	})
}

func TestFetchTermsEndToEnd(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = gradesDocBasic

	t.Run("requires login", func(t *testing.T) {
		client := newTestClient(t, portal, TaskNamedFinalGrade)

		_, err := client.FetchTerms(ctx, FetchTermsOptions{})
		var precondition *PreconditionError
		require.ErrorAs(t, err, &precondition)
		require.Contains(t, precondition.Error(), "Login")
	})

	t.Run("single school single course", func(t *testing.T) {
		client := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)

		terms, err := client.FetchTerms(ctx, FetchTermsOptions{})
		require.NoError(t, err)
		require.Len(t, terms, 1)
		require.Equal(t, "Quarter 1", terms[0].Name)
		require.Equal(t, 1, terms[0].Seq)
		require.Len(t, terms[0].Courses, 1)

		course := terms[0].Courses[0]
		require.Equal(t, "2 English II", course.Name)
		require.Equal(t, "John Doe", course.Teacher)
		require.Equal(t, "205B", course.RoomName)
		require.Equal(t, "A-", course.Grade.Score)
		require.InDelta(t, 89.76, course.Grade.Percent, 0.001)
		require.InDelta(t, 227, course.Grade.TotalPoints, 0.001)
		require.InDelta(t, 207, course.Grade.PointsEarned, 0.001)
		require.Nil(t, course.Placement)
	})
}

func TestFetchTermsFiltering(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = gradesDocFiltering

	client := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)

	terms, err := client.FetchTerms(ctx, FetchTermsOptions{})
	require.NoError(t, err)
	require.Len(t, terms, 1)

	var names []string
	for _, c := range terms[0].Courses {
		names = append(names, c.Name)
	}
	// "Gifted Participation" carries the CR sentinel, "Advisory" has no
	// Final Grade task and "Study Hall" resolves to an all-empty grade
	require.Equal(t, []string{"Algebra I", "Chemistry"}, names)

	// the in-progress values override the finalized snapshot
	chemistry := terms[0].Courses[1]
	require.Equal(t, "B+", chemistry.Grade.Score)
	require.InDelta(t, 88.5, chemistry.Grade.Percent, 0.001)
	// no progress variant present for total points, the finalized value
	// stays
	require.InDelta(t, 180, chemistry.Grade.TotalPoints, 0.001)
}

func TestFetchTermsFirstTaskStrategy(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = gradesDocUnnamedTask

	strict := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)
	terms, err := strict.FetchTerms(ctx, FetchTermsOptions{})
	require.NoError(t, err)
	require.Empty(t, terms[0].Courses)

	lenient := loginTestClient(ctx, t, portal, FirstTask)
	terms, err = lenient.FetchTerms(ctx, FetchTermsOptions{})
	require.NoError(t, err)
	require.Len(t, terms[0].Courses, 1)
	require.Equal(t, "B", terms[0].Courses[0].Grade.Score)
}

func TestFetchTermsSchoolSelection(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = gradesDocMultiSchool

	client := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)

	// no selector defaults to the first school
	terms, err := client.FetchTerms(ctx, FetchTermsOptions{})
	require.NoError(t, err)
	require.Equal(t, "English 9", terms[0].Courses[0].Name)

	terms, err = client.FetchTerms(ctx, FetchTermsOptions{SchoolID: 202})
	require.NoError(t, err)
	require.Equal(t, "AP Calculus AB", terms[0].Courses[0].Name)

	_, err = client.FetchTerms(ctx, FetchTermsOptions{SchoolID: 999})
	require.ErrorIs(t, err, ErrSchoolNotFound)
}

func TestFetchTermsPlacements(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = gradesDocTwoCourses
	portal.rosterBody = rosterDoc

	client := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)

	terms, err := client.FetchTerms(ctx, FetchTermsOptions{IncludePlacements: true})
	require.NoError(t, err)
	require.Len(t, terms[0].Courses, 2)

	english := terms[0].Courses[0]
	require.NotNil(t, english.Placement)
	require.Equal(t, "6", english.Placement.PeriodName)
	require.Equal(t, 7, english.Placement.PeriodSeq)
	require.Equal(t, "14:00:00", english.Placement.StartTime)
	require.Equal(t, "15:00:00", english.Placement.EndTime)

	// no roster section matched this course
	require.Nil(t, terms[0].Courses[1].Placement)
}

func TestFetchTermsUnparseable(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/infinitecampus")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	portal := newMockPortal(t)
	portal.gradesBody = `<html>maintenance page</html>`

	client := loginTestClient(ctx, t, portal, TaskNamedFinalGrade)

	_, err := client.FetchTerms(ctx, FetchTermsOptions{})
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Error(t, upstream.Unwrap())
}

func TestSortTermsBySeq(t *testing.T) {
	terms := []Term{
		{Name: "Quarter 3", Seq: 3},
		{Name: "Quarter 1", Seq: 1},
		{Name: "Quarter 2", Seq: 2},
	}
	SortTermsBySeq(terms)
	require.Equal(t, "Quarter 1", terms[0].Name)
	require.Equal(t, "Quarter 2", terms[1].Name)
	require.Equal(t, "Quarter 3", terms[2].Name)
}
