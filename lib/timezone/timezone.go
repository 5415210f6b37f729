package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force the timezone to the one the districts we scrape live in,
// deployment machines sometimes come up in UTC which skews any date
// math done with <time.Time>.Year()/Month()/Day()
func Now() time.Time {
	return time.Now().In(Location)
}
